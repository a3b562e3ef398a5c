package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuiselect/internal/ui/input/modes"
	"tuiselect/internal/ui/input/types"
	"tuiselect/internal/ui/state"
)

// Handler routes keys to the trigger or the list depending on whether the list is open
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        *types.KeyMap
	list        *modes.ListMode
}

func New(keys types.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeTrigger,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        &keys,
	}

	h.list = modes.NewListMode(h.keys)
	h.modes[types.ModeTrigger] = modes.NewTriggerMode(h.keys)
	h.modes[types.ModeList] = h.list

	return h
}

// HandleKey returns the controller actions for msg and whether the key was consumed
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]state.Action, bool) {
	h.Sync(ctx)

	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}
	return handler.HandleKey(msg, ctx)
}

// Sync switches mode to match the open state, entering the new mode when it changes
func (h *Handler) Sync(ctx types.Context) {
	mode := types.ModeTrigger
	if ctx.IsOpen() {
		mode = types.ModeList
	}
	if mode == h.currentMode {
		return
	}
	h.currentMode = mode
	if handler := h.modes[mode]; handler != nil {
		handler.Enter(ctx)
	}
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Keys returns the bindings in use
func (h *Handler) Keys() types.KeyMap {
	return *h.keys
}

// Query returns the typeahead buffer while the list is open
func (h *Handler) Query() string {
	if h.currentMode != types.ModeList {
		return ""
	}
	return h.list.Query()
}
