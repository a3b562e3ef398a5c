package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuiselect/internal/ui/state"
)

// Mode represents an input mode
type Mode int

const (
	ModeTrigger Mode = iota // list closed, keys go to the trigger
	ModeList                // list open, keys go to the list
)

func (m Mode) String() string {
	if m == ModeList {
		return "list"
	}
	return "trigger"
}

// Context provides read-only access to select state needed for input handling
type Context interface {
	IsOpen() bool
	HasValue() bool
	Focused() int
	OptionTexts() []string
	IsDisabled(index int) bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]state.Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context)

	// Name returns the mode name for display
	Name() string
}
