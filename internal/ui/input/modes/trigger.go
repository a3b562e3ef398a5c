package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuiselect/internal/ui/input/types"
	"tuiselect/internal/ui/state"
)

// TriggerMode handles keys while the list is closed
type TriggerMode struct {
	keys *types.KeyMap
}

func NewTriggerMode(keys *types.KeyMap) *TriggerMode {
	return &TriggerMode{keys: keys}
}

func (m *TriggerMode) Name() string {
	return "trigger"
}

func (m *TriggerMode) Enter(ctx types.Context) {}

func (m *TriggerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]state.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		return []state.Action{state.ToggleAction{Seed: state.SeedFirst}}, true

	case key.Matches(msg, m.keys.OpenNext):
		return []state.Action{state.OpenAction{Seed: state.SeedFirst}}, true

	case key.Matches(msg, m.keys.OpenPrev):
		return []state.Action{state.OpenAction{Seed: state.SeedLast}}, true
	}

	return nil, false
}
