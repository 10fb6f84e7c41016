package combat

import (
	"github.com/AsperforMias/cli-game/internal/dice"
	"github.com/AsperforMias/cli-game/internal/entity"
	"github.com/AsperforMias/cli-game/internal/gamedata"
)

// Probability that an enemy which decided to run actually gets away.
const enemyFleeChance = 0.3

// ChooseAction picks the enemy's move for the current turn according to
// its AI policy.
//
// aggressive  always attack.
// defensive   defend below 30% HP, with a 30% chance to flee instead.
// smart       flee when nearly dead, press the attack when the player
//             is weak, sometimes defend when wounded.
// normal      attack about two turns in three, otherwise defend.
func ChooseAction(enemy *entity.Enemy, player *entity.Player, roller *dice.Roller) ActionKind {
	switch enemy.AI {
	case gamedata.AIAggressive:
		return ActionAttack

	case gamedata.AIDefensive:
		if float64(enemy.HP) < float64(enemy.MaxHP)*0.3 {
			if roller.Chance(0.3) {
				return ActionFlee
			}
			return ActionDefend
		}
		return ActionAttack

	case gamedata.AISmart:
		hpRatio := float64(enemy.HP) / float64(enemy.MaxHP)
		playerRatio := float64(player.HP) / float64(player.MaxHP)
		switch {
		case hpRatio < 0.2 && roller.Chance(0.4):
			return ActionFlee
		case playerRatio < 0.3:
			return ActionAttack
		case hpRatio < 0.5 && roller.Chance(0.3):
			return ActionDefend
		default:
			return ActionAttack
		}

	default:
		if roller.Intn(3) < 2 {
			return ActionAttack
		}
		return ActionDefend
	}
}
