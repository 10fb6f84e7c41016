// Package game runs one player's session: a state machine that interprets
// command lines, mutates session-local entities, and renders the results.
// Sessions share the immutable world and the dialogue/store collaborators;
// everything else lives and dies with the connection.
package game

// State is the session's current mode. It decides which commands are legal
// and how input lines are interpreted.
type State int

const (
	// StateMainMenu greets a fresh connection: new, load, help, quit.
	StateMainMenu State = iota
	// StateCreation is the guided character flow. Every line is flow
	// input until the character is complete.
	StateCreation
	// StatePlaying is exploration: moving, talking, fighting, managing
	// gear.
	StatePlaying
	// StateDialogue is a conversation bound to one NPC.
	StateDialogue
	// StateCombat is a live encounter. Every line is a combat action.
	StateCombat
)

// String returns the state's wire-friendly name.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateCreation:
		return "character_creation"
	case StatePlaying:
		return "playing"
	case StateDialogue:
		return "dialogue"
	case StateCombat:
		return "combat"
	default:
		return "unknown"
	}
}
