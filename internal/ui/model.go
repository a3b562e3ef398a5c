package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"tuiselect/internal/domain"
	"tuiselect/internal/eventbus"
	"tuiselect/internal/ui/commands"
	"tuiselect/internal/ui/input"
	inputtypes "tuiselect/internal/ui/input/types"
	"tuiselect/internal/ui/services/navigation"
	"tuiselect/internal/ui/services/outside"
	"tuiselect/internal/ui/services/selection"
	"tuiselect/internal/ui/state"
	"tuiselect/internal/ui/viewmodels"
	"tuiselect/internal/ui/views"
)

const defaultMaxVisible = 8

// Config configures a Select
type Config[T comparable] struct {
	ID          string // generated when empty
	Prompt      string
	Placeholder string
	MaxVisible  int
	ShowHelp    bool
	Keys        *inputtypes.KeyMap

	// Value makes the select controlled: the host owns the value and
	// updates it from OnChange.
	Value        *T
	DefaultValue *T
	OnChange     func(T)

	Renderer views.OptionRenderer
	Format   func(T) string // trigger text for values with no registered option
	Bus      eventbus.EventBus
}

// Model is the root of one Select. It owns the controller and routes
// keyboard and mouse input to it.
type Model[T comparable] struct {
	id       string
	onChange func(T)

	ctrl      *state.Controller[T]
	exec      *commands.Executor[T]
	input     *input.Handler
	watcher   *outside.Watcher
	viewModel *viewmodels.ViewModel[T]
	renderer  *views.Renderer

	x, y    int
	layout  views.Layout // absolute, from the last View
	hovered int
	changes []T
}

// NewModel creates a closed select with no options
func NewModel[T comparable](cfg Config[T]) *Model[T] {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	keys := inputtypes.DefaultKeyMap()
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = defaultMaxVisible
	}

	m := &Model[T]{
		id:        cfg.ID,
		onChange:  cfg.OnChange,
		input:     input.New(keys),
		viewModel: viewmodels.NewViewModel(cfg.Prompt, cfg.Placeholder, cfg.MaxVisible, cfg.Format),
		renderer:  views.NewRenderer(cfg.Renderer),
		hovered:   navigation.NoIndex,
	}
	m.viewModel.SetShowHelp(cfg.ShowHelp)

	resolver := selection.NewResolver(cfg.Value, m.recordChange, cfg.DefaultValue)
	m.ctrl = state.NewController(cfg.ID, resolver, cfg.Bus)
	m.exec = commands.NewExecutor[T](m.ctrl)
	m.watcher = outside.Watch(nil, m.exec.Close, m.IsOpen)

	return m
}

func (m *Model[T]) recordChange(v T) {
	m.changes = append(m.changes, v)
	if m.onChange != nil {
		m.onChange(v)
	}
}

// ID returns the select ID carried by events and ChangedMsg
func (m *Model[T]) ID() string {
	return m.id
}

// State returns a snapshot of the controller
func (m *Model[T]) State() state.State[T] {
	return m.ctrl.State()
}

// IsOpen reports whether the list is showing
func (m *Model[T]) IsOpen() bool {
	return m.ctrl.State().Open
}

// Value returns the effective value
func (m *Model[T]) Value() (T, bool) {
	return m.ctrl.Resolver().Value()
}

// Executor exposes the typed operations for programmatic control
func (m *Model[T]) Executor() *commands.Executor[T] {
	return m.exec
}

// SetValue switches the select to controlled mode with v, or back to
// uncontrolled with nil
func (m *Model[T]) SetValue(v *T) {
	m.ctrl.Resolver().SetExternal(v)
}

// SetOptions mounts exactly opts, in order. Options without an ID are keyed by
// their printed value; values that print alike get a "#n" suffix so each keeps
// its own slot.
func (m *Model[T]) SetOptions(opts []domain.Option[T]) {
	taken := make(map[string]bool, len(opts))
	for _, o := range opts {
		if o.ID != "" {
			taken[o.ID] = true
		}
	}

	keyed := make([]domain.Option[T], len(opts))
	for i, o := range opts {
		if o.ID == "" {
			o.ID = derivedID(fmt.Sprint(o.Value), taken)
			taken[o.ID] = true
		}
		keyed[i] = o
	}
	m.exec.SyncOptions(keyed)
}

func derivedID(base string, taken map[string]bool) string {
	id := base
	for n := 2; taken[id]; n++ {
		id = fmt.Sprintf("%s#%d", base, n)
	}
	return id
}

// SetPosition records where the host draws the select so mouse
// coordinates can be mapped onto it
func (m *Model[T]) SetPosition(x, y int) {
	m.x, m.y = x, y
}

// SetStatus sets a one-line message shown under the select
func (m *Model[T]) SetStatus(s string) {
	m.viewModel.SetStatus(s)
}

// Layout returns the screen areas drawn by the last View
func (m *Model[T]) Layout() views.Layout {
	return m.layout
}

// Mode returns the current input mode
func (m *Model[T]) Mode() inputtypes.Mode {
	return m.input.CurrentMode()
}

func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewModel.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		cmd, _ := m.HandleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.input.Sync(m.context())
	return m, m.flushChanges()
}

// HandleKey routes one key and reports whether the select consumed it
func (m *Model[T]) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	actions, consumed := m.input.HandleKey(msg, m.context())
	for _, a := range actions {
		m.ctrl.Dispatch(a)
	}
	m.input.Sync(m.context())
	return m.flushChanges(), consumed
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) {
	if m.watcher.HandleMouse(msg) {
		m.hovered = navigation.NoIndex
		return
	}

	open := m.IsOpen()
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.layout.Trigger.Contains(msg.X, msg.Y) {
			m.exec.Toggle(state.SeedFirst)
			return
		}
		if i, ok := m.layout.OptionAt(msg.X, msg.Y); ok && open {
			m.exec.SelectIndex(i)
		}

	case msg.Action == tea.MouseActionMotion && open:
		if i, ok := m.layout.OptionAt(msg.X, msg.Y); ok {
			m.hovered = i
			if i != m.ctrl.State().Focused {
				m.exec.MoveTo(i)
			}
			return
		}
		if m.hovered != navigation.NoIndex {
			m.hovered = navigation.NoIndex
			m.exec.Blur()
		}

	case msg.Button == tea.MouseButtonWheelUp && open:
		m.step(navigation.DirectionPrev, navigation.DirectionLast)

	case msg.Button == tea.MouseButtonWheelDown && open:
		m.step(navigation.DirectionNext, navigation.DirectionFirst)
	}
}

// step moves relative to focus, or enters from an end when nothing is focused
func (m *Model[T]) step(relative, fromNothing navigation.Direction) {
	if m.ctrl.State().Focused == navigation.NoIndex {
		m.exec.Move(fromNothing)
		return
	}
	m.exec.Move(relative)
}

// flushChanges turns committed values into ChangedMsg commands, in order
func (m *Model[T]) flushChanges() tea.Cmd {
	if len(m.changes) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.changes))
	for _, v := range m.changes {
		msg := ChangedMsg[T]{SelectID: m.id, Value: v}
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.changes = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// View renders the select. It also records the layout used for mouse hit testing.
func (m *Model[T]) View() string {
	out, layout := m.renderer.Render(m.viewState())
	m.layout = layout.Offset(m.x, m.y)
	m.watcher.SetSurfaces(&m.layout.Trigger, m.layout.List)
	return out
}

func (m *Model[T]) viewState() views.ViewState {
	return m.viewModel.BuildViewState(m.ctrl.State(), m.input.Keys(), m.input.Query())
}

func (m *Model[T]) context() inputtypes.Context {
	return selectContext[T]{s: m.ctrl.State()}
}
