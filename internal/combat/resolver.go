// Package combat resolves turn-based fights between the player and a
// single enemy. One player command advances one full cycle: the
// player's action, then the enemy's response chosen by its AI policy.
// All randomness flows through the session's roller, so a fight replays
// identically from a restored (seed, position) pair.
package combat

import (
	"github.com/AsperforMias/cli-game/internal/dice"
)

// DamageRoll computes the damage of one physical strike. The base is
// attack minus defense with a floor of 1, and the final value varies by
// up to 10% of the base in either direction, floored again at 1.
func DamageRoll(attack, defense int, roller *dice.Roller) int {
	base := attack - defense
	if base < 1 {
		base = 1
	}
	variance := base / 10
	low := base - variance
	if low < 1 {
		low = 1
	}
	return roller.Between(low, base+variance)
}

// FleeChance returns the probability that a combatant with the given
// agility escapes an opponent with enemyAgility. The 50% baseline
// shifts by 2% per point of agility difference and clamps to
// [0.10, 0.90], so escape is never certain in either direction.
func FleeChance(agility, enemyAgility int) float64 {
	chance := 0.5 + 0.02*float64(agility-enemyAgility)
	if chance < 0.10 {
		chance = 0.10
	}
	if chance > 0.90 {
		chance = 0.90
	}
	return chance
}
