package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GauBen/le-pire-cube/internal/vecmath"
)

// Intent represents a semantic play action, abstracted from physical key presses.
// This allows the play model to work with high-level intents rather than raw input.
type Intent int

const (
	IntentNone       Intent = iota
	IntentSteerEast         // D, Right arrow - head toward +x
	IntentSteerNorth        // W, Up arrow - head toward +y
	IntentSteerWest         // A, Left arrow - head toward -x
	IntentSteerSouth        // S, Down arrow - head toward -y
	IntentJump              // Space - jump
	IntentPause             // P, Escape - pause/unpause
	IntentRestart           // R key - restart after game over
	IntentBack              // B - back to menu
	IntentQuit              // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the intent.
func (in Intent) String() string {
	switch in {
	case IntentNone:
		return "None"
	case IntentSteerEast:
		return "SteerEast"
	case IntentSteerNorth:
		return "SteerNorth"
	case IntentSteerWest:
		return "SteerWest"
	case IntentSteerSouth:
		return "SteerSouth"
	case IntentJump:
		return "Jump"
	case IntentPause:
		return "Pause"
	case IntentRestart:
		return "Restart"
	case IntentBack:
		return "Back"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SteerDirection returns the world-space heading a steering intent asks for.
func (in Intent) SteerDirection() (vecmath.Vector3, bool) {
	switch in {
	case IntentSteerEast:
		return vecmath.New(1, 0, 0), true
	case IntentSteerNorth:
		return vecmath.New(0, 1, 0), true
	case IntentSteerWest:
		return vecmath.New(-1, 0, 0), true
	case IntentSteerSouth:
		return vecmath.New(0, -1, 0), true
	}
	return vecmath.Vector3{}, false
}

// KeyMapper translates Bubble Tea key messages to play and menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a play intent.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Intent {
	switch msg.String() {
	case "ctrl+c", "q":
		return IntentQuit
	case "right", "d":
		return IntentSteerEast
	case "up", "w":
		return IntentSteerNorth
	case "left", "a":
		return IntentSteerWest
	case "down", "s":
		return IntentSteerSouth
	case " ":
		return IntentJump
	case "p", "esc":
		return IntentPause
	case "r":
		return IntentRestart
	case "b":
		return IntentBack
	}

	return IntentNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
