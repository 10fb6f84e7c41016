package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/AsperforMias/cli-game/internal/gamedata"
	"github.com/AsperforMias/cli-game/internal/ui"
	"github.com/AsperforMias/cli-game/internal/world"
)

// Items sell back at half their listed price, rounded down on the total.
const sellDivisor = 2

// dialogueCommand interprets one line said while facing an NPC. Trade
// and quest words are carved out per the partner's capability;
// everything else goes to the NPC verbatim.
func (s *Session) dialogueCommand(ctx context.Context, command string, args []string, line string) {
	switch {
	case command == "exit" || command == "bye":
		s.out.Notice("You take your leave of %s.", s.npc.Name())
		s.npc = nil
		s.state = StatePlaying

	case s.npc.IsMerchant() && (command == "shop" || command == "list"):
		s.renderShop()
	case s.npc.IsMerchant() && command == "buy":
		s.buyItem(ctx, args)
	case s.npc.IsMerchant() && command == "sell":
		s.sellItem(ctx, args)

	case s.npc.GivesQuests() && command == "quests":
		s.listQuests()
	case s.npc.GivesQuests() && command == "accept":
		s.acceptQuest(ctx, args)

	default:
		s.out.Say(s.npc.Name(), s.dialogue.Say(ctx, npcProfile(s.npc), s.playerProfile(), line))
	}
}

// shopStock returns this session's view of a merchant's stock, cloning
// the immutable world data on first contact. Writes through the
// returned slice stick for the rest of the session.
func (s *Session) shopStock(npc *world.NPC) []gamedata.ShopEntry {
	if stock, ok := s.stock[npc.ID()]; ok {
		return stock
	}
	stock := append([]gamedata.ShopEntry(nil), npc.Def.Shop...)
	s.stock[npc.ID()] = stock
	return stock
}

func (s *Session) renderShop() {
	stock := s.shopStock(s.npc)
	lines := make([]ui.ShopLine, 0, len(stock))
	for _, entry := range stock {
		def := s.world.Registry().ItemByID(entry.ItemID)
		if def == nil {
			continue
		}
		lines = append(lines, ui.ShopLine{Name: def.Name, Price: entry.Price, Stock: entry.Stock})
	}
	s.out.Shop(s.npc.Name(), lines)
}

// tradeArgs splits "iron sword 2" into the item words and a count. A
// bare name trades one.
func tradeArgs(args []string) (string, int) {
	count := 1
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
			count = n
			args = args[:len(args)-1]
		}
	}
	return strings.Join(args, " "), count
}

func (s *Session) buyItem(ctx context.Context, args []string) {
	if len(args) == 0 {
		s.out.Notice("Buy what? Usage: buy <item> [count]")
		return
	}
	name, count := tradeArgs(args)
	if count < 1 {
		s.out.Notice("Buy how many?")
		return
	}

	stock := s.shopStock(s.npc)
	var entry *gamedata.ShopEntry
	var def *gamedata.ItemDef
	for i := range stock {
		d := s.world.Registry().ItemByID(stock[i].ItemID)
		if d == nil {
			continue
		}
		if strings.EqualFold(stock[i].ItemID, name) || strings.EqualFold(d.Name, name) {
			entry, def = &stock[i], d
			break
		}
	}
	if entry == nil {
		s.out.Say(s.npc.Name(), "I don't carry that.")
		return
	}
	if entry.Stock >= 0 && count > entry.Stock {
		s.out.Say(s.npc.Name(), fmt.Sprintf("Only %d of those left, friend.", entry.Stock))
		return
	}
	total := entry.Price * count
	if s.player.Money < total {
		s.out.Say(s.npc.Name(), fmt.Sprintf("That's %d coins. Come back when you have them.", total))
		return
	}
	if err := s.player.AddItem(def, count); err != nil {
		s.complain(ctx, err)
		return
	}
	s.player.Money -= total
	if entry.Stock >= 0 {
		entry.Stock -= count
	}
	s.out.Notice("You buy %d x %s for %d coins.", count, def.Name, total)
}

func (s *Session) sellItem(ctx context.Context, args []string) {
	if len(args) == 0 {
		s.out.Notice("Sell what? Usage: sell <item> [count]")
		return
	}
	name, count := tradeArgs(args)
	if count < 1 {
		s.out.Notice("Sell how many?")
		return
	}

	item := s.player.FindItem(name)
	if item == nil {
		s.out.Notice("You don't have %s.", name)
		return
	}
	if item.Quantity < count {
		s.out.Notice("You only have %d of those.", item.Quantity)
		return
	}
	payout := item.Def.Price * count / sellDivisor
	itemName := item.Def.Name
	if err := s.player.RemoveItem(item.Def.ID, count); err != nil {
		s.complain(ctx, err)
		return
	}
	s.player.Money += payout
	s.out.Notice("You sell %d x %s for %d coins.", count, itemName, payout)
}

func (s *Session) listQuests() {
	defs := s.npc.Def.Quests
	lines := make([]ui.QuestLine, 0, len(defs))
	for i := range defs {
		def := &defs[i]
		status := "available"
		switch {
		case s.player.HasCompletedQuest(def.ID):
			status = "done"
		case s.player.QuestByID(def.ID) != nil:
			q := s.player.QuestByID(def.ID)
			status = fmt.Sprintf("%d/%d", q.Kills, def.TargetCount)
		case s.player.Level < def.RequiredLevel:
			status = fmt.Sprintf("needs level %d", def.RequiredLevel)
		}
		lines = append(lines, ui.QuestLine{Name: def.Name, Text: def.Description, Status: status})
	}
	s.out.Quests(s.npc.Name(), lines)
}

func (s *Session) acceptQuest(ctx context.Context, args []string) {
	if len(args) == 0 {
		s.out.Notice("Accept which quest? Usage: accept <quest>")
		return
	}
	name := strings.Join(args, " ")
	defs := s.npc.Def.Quests
	var def *gamedata.QuestDef
	for i := range defs {
		if strings.EqualFold(defs[i].ID, name) || strings.EqualFold(defs[i].Name, name) {
			def = &defs[i]
			break
		}
	}
	if def == nil {
		s.out.Say(s.npc.Name(), "I have no such task for you.")
		return
	}
	if err := s.player.AcceptQuest(def); err != nil {
		s.complain(ctx, err)
		return
	}
	s.out.Notice("Quest accepted: %s.", def.Name)
	s.out.Narrate(def.Description)
}
