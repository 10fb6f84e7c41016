package game

import "github.com/AsperforMias/cli-game/internal/ui"

var menuHelp = []ui.HelpEntry{
	{Command: "new", Text: "start a fresh character"},
	{Command: "load <name>", Text: "resume a saved character"},
	{Command: "help", Text: "show this list"},
	{Command: "quit", Text: "disconnect"},
}

var playingHelp = []ui.HelpEntry{
	{Command: "look", Text: "look around"},
	{Command: "move <direction>", Text: "travel through an exit"},
	{Command: "talk <name>", Text: "speak with someone nearby"},
	{Command: "attack <name>", Text: "pick a fight"},
	{Command: "status", Text: "stats, skills and quests"},
	{Command: "inventory", Text: "pack and equipment"},
	{Command: "use <item>", Text: "drink or apply an item"},
	{Command: "equip <item>", Text: "wield or wear an item"},
	{Command: "unequip <slot>", Text: "remove weapon, armor or accessory"},
	{Command: "save", Text: "record your progress"},
	{Command: "quit", Text: "leave the game"},
}
