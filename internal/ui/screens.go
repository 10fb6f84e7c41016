package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AsperforMias/cli-game/internal/entity"
	"github.com/AsperforMias/cli-game/internal/gamedata"
	"github.com/AsperforMias/cli-game/internal/world"
)

const bannerWidth = 46

// Welcome draws the banner and the main menu commands.
func (r *Renderer) Welcome() {
	var b strings.Builder
	b.WriteString(r.lip.PlaceHorizontal(bannerWidth, lipgloss.Center, r.title.Render("C L I   R P G")))
	b.WriteString("\n")
	b.WriteString(r.lip.PlaceHorizontal(bannerWidth, lipgloss.Center, r.label.Render("an adventure down the wire")))
	b.WriteString("\n\n")
	b.WriteString(r.menuLine("new", "forge a new character"))
	b.WriteString(r.menuLine("load <name>", "return to a saved one"))
	b.WriteString(r.menuLine("help", "list commands"))
	b.WriteString(r.menuLine("quit", "hang up"))
	r.write(r.box.Render(strings.TrimRight(b.String(), "\n")))
}

func (r *Renderer) menuLine(command, text string) string {
	return fmt.Sprintf("%s %s\n", r.prompt.Render(fmt.Sprintf("%-12s", command)), r.label.Render("- "+text))
}

// ClassMenu lists the playable classes for character creation.
func (r *Renderer) ClassMenu(classes []gamedata.ClassDef) {
	r.write(r.title.Render("Choose your class:"))
	for i, class := range classes {
		r.writef("  %s %s", r.prompt.Render(fmt.Sprintf("%d)", i+1)), r.title.Render(class.Name))
		r.writef("     %s", r.label.Render(class.Description))
		r.writef("     %s", r.system.Render(fmt.Sprintf("HP %d  MP %d  ATK %d  DEF %d  AGI %d  INT %d",
			class.Stats.HP, class.Stats.MP, class.Stats.Attack, class.Stats.Defense,
			class.Stats.Agility, class.Stats.Intelligence)))
	}
	r.write(r.system.Render("Type a number or a class name."))
}

// SceneView draws the current location: art, description, inhabitants,
// and exits.
func (r *Renderer) SceneView(scene *world.Scene) {
	r.write(r.title.Render("― " + scene.Name() + " ―"))
	for _, line := range scene.Def.Art {
		r.write(r.art.Render(line))
	}
	r.write(scene.Def.Description)
	if npcs := scene.NPCs(); len(npcs) > 0 {
		names := make([]string, 0, len(npcs))
		for _, npc := range npcs {
			names = append(names, npc.Name())
		}
		r.writef("%s %s", r.title.Render("You see:"), strings.Join(names, ", "))
	}
	r.write(r.exits.Render("Exits: " + strings.Join(exitNames(scene), ", ")))
}

func exitNames(scene *world.Scene) []string {
	dirs := make([]string, 0, len(scene.Def.Exits))
	for dir := range scene.Def.Exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// Status draws the character sheet.
func (r *Renderer) Status(p *entity.Player) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.title.Render(fmt.Sprintf("%s - %s", p.Name, p.Class)))
	fmt.Fprintf(&b, "%s %d    %s %d %s\n",
		r.label.Render("Level"), p.Level,
		r.gold.Render("Money"), p.Money, r.gold.Render("coins"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "ATK %s  DEF %s  AGI %d  INT %d\n",
		statWithBonus(p.Attack, p.TotalAttack()),
		statWithBonus(p.Defense, p.TotalDefense()),
		p.Agility, p.Intelligence)
	fmt.Fprintf(&b, "%s\n", r.hpBar(p.HP, p.MaxHP))
	fmt.Fprintf(&b, "%s\n", r.mpBar(p.MP, p.MaxMP))
	fmt.Fprintf(&b, "%s\n", r.expBar(p.Exp, p.ExpNeeded))
	if len(p.Skills) > 0 {
		names := make([]string, 0, len(p.Skills))
		for _, skill := range p.Skills {
			names = append(names, fmt.Sprintf("%s Lv.%d", skill.Def.Name, skill.Level))
		}
		fmt.Fprintf(&b, "%s %s\n", r.label.Render("Skills:"), strings.Join(names, ", "))
	}
	if len(p.ActiveQuests) > 0 {
		lines := make([]string, 0, len(p.ActiveQuests))
		for _, q := range p.ActiveQuests {
			lines = append(lines, fmt.Sprintf("%s %d/%d", q.Def.Name, q.Kills, q.Def.TargetCount))
		}
		fmt.Fprintf(&b, "%s %s\n", r.label.Render("Quests:"), strings.Join(lines, ", "))
	}
	r.write(r.box.Render(strings.TrimRight(b.String(), "\n")))
}

// statWithBonus shows a base stat, appending the equipment bonus when one
// applies, e.g. "19 (+10)".
func statWithBonus(base, total int) string {
	if total == base {
		return fmt.Sprintf("%d", base)
	}
	return fmt.Sprintf("%d (+%d)", base, total-base)
}

// Inventory draws money, equipment, and carried items.
func (r *Renderer) Inventory(p *entity.Player) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.title.Render("Inventory"))
	fmt.Fprintf(&b, "%s %d %s    %s %d/%d\n",
		r.gold.Render("Money:"), p.Money, r.gold.Render("coins"),
		r.label.Render("Slots:"), len(p.Inventory), entity.MaxInventory)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", r.label.Render("Equipped:"))
	for _, slot := range []string{entity.SlotWeapon, entity.SlotArmor, entity.SlotAccessory} {
		fmt.Fprintf(&b, "  %-10s %s\n", slot, equippedName(p, slot))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", r.label.Render("Carrying:"))
	if len(p.Inventory) == 0 {
		fmt.Fprintf(&b, "  %s\n", r.system.Render("(nothing)"))
	}
	for _, item := range p.Inventory {
		name := item.Def.Name
		if item.Quantity > 1 {
			name = fmt.Sprintf("%s x%d", name, item.Quantity)
		}
		fmt.Fprintf(&b, "  %-24s %s\n", name, r.system.Render(item.Def.Description))
	}
	r.write(r.box.Render(strings.TrimRight(b.String(), "\n")))
}

func equippedName(p *entity.Player, slot string) string {
	item := p.Equipment[slot]
	if item == nil {
		return "(nothing)"
	}
	switch slot {
	case entity.SlotWeapon:
		return fmt.Sprintf("%s (+%d ATK)", item.Def.Name, item.Def.Attack)
	case entity.SlotArmor:
		return fmt.Sprintf("%s (+%d DEF)", item.Def.Name, item.Def.Defense)
	default:
		return fmt.Sprintf("%s (+%d AGI)", item.Def.Name, item.Def.Agility)
	}
}

// Combat draws the battle frame: enemy above, player below, turn count in
// the header.
func (r *Renderer) Combat(p *entity.Player, enemy *entity.Enemy, turn int) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", r.title.Render(fmt.Sprintf("Battle - Turn %d", turn)))
	fmt.Fprintf(&b, "%s %s\n", r.alert.Render(enemy.Name), r.label.Render(fmt.Sprintf("Lv.%d", enemy.Level)))
	fmt.Fprintf(&b, "%s\n", r.hpBar(enemy.HP, enemy.MaxHP))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", r.title.Render(p.Name), r.label.Render(fmt.Sprintf("Lv.%d %s", p.Level, p.Class)))
	fmt.Fprintf(&b, "%s\n", r.hpBar(p.HP, p.MaxHP))
	fmt.Fprintf(&b, "%s\n", r.mpBar(p.MP, p.MaxMP))
	r.write(r.box.Render(strings.TrimRight(b.String(), "\n")))
	r.write(r.system.Render("attack | defend | skill <name> | use <item> | flee"))
}

// ShopLine is one row of a merchant's stock listing.
type ShopLine struct {
	Name  string
	Price int
	Stock int // -1 means unlimited
}

// Shop draws a merchant's stock with prices and remaining counts.
func (r *Renderer) Shop(merchant string, lines []ShopLine) {
	r.write(r.title.Render(merchant + "'s wares:"))
	if len(lines) == 0 {
		r.writef("  %s", r.system.Render("(nothing today)"))
		return
	}
	for _, line := range lines {
		left := fmt.Sprintf("  %-24s %s", line.Name, r.gold.Render(fmt.Sprintf("%4d coins", line.Price)))
		if line.Stock < 0 {
			r.writef("%s  %s", left, r.system.Render("(plenty)"))
		} else {
			r.writef("%s  %s", left, r.system.Render(fmt.Sprintf("(%d left)", line.Stock)))
		}
	}
	r.write(r.system.Render("buy <item> [count] | sell <item> [count] | exit"))
}

// QuestLine is one row of a quest giver's listing.
type QuestLine struct {
	Name   string
	Text   string
	Status string
}

// Quests draws a quest giver's offers with each quest's standing.
func (r *Renderer) Quests(giver string, lines []QuestLine) {
	r.write(r.title.Render(giver + "'s requests:"))
	if len(lines) == 0 {
		r.writef("  %s", r.system.Render("(none right now)"))
		return
	}
	for _, line := range lines {
		r.writef("  %s %s", r.title.Render(line.Name), r.system.Render("["+line.Status+"]"))
		r.writef("     %s", r.label.Render(line.Text))
	}
	r.write(r.system.Render("accept <quest> | exit"))
}

// HelpEntry is one command in a help listing.
type HelpEntry struct {
	Command string
	Text    string
}

// Help draws an aligned command listing.
func (r *Renderer) Help(entries []HelpEntry) {
	width := 0
	for _, e := range entries {
		if len(e.Command) > width {
			width = len(e.Command)
		}
	}
	r.write(r.title.Render("Commands:"))
	for _, e := range entries {
		r.writef("  %s %s", r.prompt.Render(fmt.Sprintf("%-*s", width, e.Command)), r.label.Render("- "+e.Text))
	}
}

// Farewell draws the goodbye line written before the connection closes.
func (r *Renderer) Farewell() {
	r.write(r.system.Render("The road rises to meet you. Until next time."))
}
