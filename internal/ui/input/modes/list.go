package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuiselect/internal/ui/input/types"
	"tuiselect/internal/ui/services/navigation"
	"tuiselect/internal/ui/services/search"
	"tuiselect/internal/ui/state"
)

// ListMode handles keys while the list is open
type ListMode struct {
	keys   *types.KeyMap
	search *search.Service
}

func NewListMode(keys *types.KeyMap) *ListMode {
	return &ListMode{keys: keys, search: search.NewService()}
}

// Search exposes the typeahead service
func (m *ListMode) Search() *search.Service {
	return m.search
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) Enter(ctx types.Context) {
	m.search.Reset()
}

// Query returns the current typeahead buffer
func (m *ListMode) Query() string {
	return m.search.Query()
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]state.Action, bool) {
	switch {
	// Relative moves need an anchor, so with nothing focused they enter from an end
	case key.Matches(msg, m.keys.Next):
		if ctx.Focused() == navigation.NoIndex {
			return move(navigation.DirectionFirst), true
		}
		return move(navigation.DirectionNext), true

	case key.Matches(msg, m.keys.Prev):
		if ctx.Focused() == navigation.NoIndex {
			return move(navigation.DirectionLast), true
		}
		return move(navigation.DirectionPrev), true

	case key.Matches(msg, m.keys.First):
		return move(navigation.DirectionFirst), true

	case key.Matches(msg, m.keys.Last):
		return move(navigation.DirectionLast), true

	case key.Matches(msg, m.keys.Select):
		return []state.Action{state.SelectFocusedAction{}}, true

	case key.Matches(msg, m.keys.Close):
		return []state.Action{state.CloseAction{}}, true

	case key.Matches(msg, m.keys.Tab):
		// Focus stays inside the open list
		return nil, true
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		return m.typeahead(string(msg.Runes), ctx), true
	}

	return nil, false
}

// typeahead focuses the best enabled match for the typed text
func (m *ListMode) typeahead(typed string, ctx types.Context) []state.Action {
	idx := m.search.Type(typed, ctx.OptionTexts(), ctx.IsDisabled)
	if idx == navigation.NoIndex || idx == ctx.Focused() {
		return nil
	}
	return []state.Action{state.MoveAction{Move: navigation.To(idx)}}
}

func move(d navigation.Direction) []state.Action {
	return []state.Action{state.MoveAction{Move: navigation.Toward(d)}}
}
