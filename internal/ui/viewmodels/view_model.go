package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"

	inputtypes "tuiselect/internal/ui/input/types"
	"tuiselect/internal/ui/services/navigation"
	"tuiselect/internal/ui/state"
	"tuiselect/internal/ui/views"
)

// ViewModel transforms controller state into view-ready data
type ViewModel[T comparable] struct {
	prompt      string
	placeholder string
	format      func(T) string
	viewport    *navigation.Viewport
	help        help.Model
	showHelp    bool
	status      string
}

// NewViewModel creates a new view model. A nil format uses fmt.Sprint.
func NewViewModel[T comparable](prompt, placeholder string, maxVisible int, format func(T) string) *ViewModel[T] {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	return &ViewModel[T]{
		prompt:      prompt,
		placeholder: placeholder,
		format:      format,
		viewport:    navigation.NewViewport(maxVisible),
		help:        help.New(),
	}
}

// SetWidth sets the terminal width used to truncate help
func (vm *ViewModel[T]) SetWidth(width int) {
	vm.help.Width = width
}

// SetShowHelp toggles the key help line
func (vm *ViewModel[T]) SetShowHelp(show bool) {
	vm.showHelp = show
}

// SetStatus sets the status line; empty hides it
func (vm *ViewModel[T]) SetStatus(status string) {
	vm.status = status
}

// BuildViewState prepares everything the renderer needs. It scrolls the
// viewport so the focused option stays visible.
func (vm *ViewModel[T]) BuildViewState(s state.State[T], keys inputtypes.KeyMap, query string) views.ViewState {
	vs := views.ViewState{
		Prompt:      vm.prompt,
		Placeholder: vm.placeholder,
		Open:        s.Open,
		HasValue:    s.HasValue,
		Status:      vm.status,
	}
	if s.HasValue {
		if opt, ok := s.SelectedOption(); ok {
			vs.ValueLabel = opt.Label()
		} else {
			vs.ValueLabel = vm.format(s.Value)
		}
	}

	if !s.Open {
		if vm.showHelp {
			vs.Help = vm.help.ShortHelpView(keys.TriggerHelp())
		}
		return vs
	}

	total := len(s.Options)
	vm.viewport.EnsureVisible(s.Focused, total)
	start, end := vm.viewport.Range(total)
	vs.HiddenAbove = start
	vs.HiddenBelow = total - end
	for i := start; i < end; i++ {
		o := s.Options[i]
		vs.Options = append(vs.Options, views.OptionView{
			Index: i,
			Label: o.Label(),
			State: views.OptionState{
				Focused:  i == s.Focused,
				Selected: s.IsSelected(o),
				Disabled: o.Disabled,
			},
		})
	}
	vs.Query = query
	if vm.showHelp {
		vs.Help = vm.help.ShortHelpView(keys.ShortHelp())
	}
	return vs
}
