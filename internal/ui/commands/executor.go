package commands

import (
	"tuiselect/internal/domain"
	"tuiselect/internal/ui/services/navigation"
	"tuiselect/internal/ui/state"
)

// Dispatcher accepts controller actions
type Dispatcher interface {
	Dispatch(a state.Action)
}

// Executor wraps each controller operation in a typed call.
// Every call dispatches exactly one action and returns nothing; read the
// controller state afterwards to observe the effect.
type Executor[T comparable] struct {
	d Dispatcher
}

// NewExecutor creates a new command executor
func NewExecutor[T comparable](d Dispatcher) *Executor[T] {
	return &Executor[T]{d: d}
}

// Open opens the list, seeding focus as described by seed
func (e *Executor[T]) Open(seed state.Seed) {
	e.d.Dispatch(state.OpenAction{Seed: seed})
}

// Close closes the list
func (e *Executor[T]) Close() {
	e.d.Dispatch(state.CloseAction{})
}

// Toggle opens a closed list and closes an open one
func (e *Executor[T]) Toggle(seed state.Seed) {
	e.d.Dispatch(state.ToggleAction{Seed: seed})
}

// Move moves focus relative to the current option
func (e *Executor[T]) Move(direction navigation.Direction) {
	e.d.Dispatch(state.MoveAction{Move: navigation.Toward(direction)})
}

// MoveTo focuses the option at index
func (e *Executor[T]) MoveTo(index int) {
	e.d.Dispatch(state.MoveAction{Move: navigation.To(index)})
}

// Blur clears focus without closing the list
func (e *Executor[T]) Blur() {
	e.Move(navigation.DirectionOut)
}

// Select commits value
func (e *Executor[T]) Select(value T) {
	e.d.Dispatch(state.SelectAction[T]{Value: value})
}

// SelectIndex commits the value of the option at index
func (e *Executor[T]) SelectIndex(index int) {
	e.d.Dispatch(state.SelectIndexAction{Index: index})
}

// SelectFocused commits the focused option
func (e *Executor[T]) SelectFocused() {
	e.d.Dispatch(state.SelectFocusedAction{})
}

// Register mounts an option
func (e *Executor[T]) Register(opt domain.Option[T]) {
	e.d.Dispatch(state.RegisterAction[T]{Option: opt})
}

// Unregister unmounts an option
func (e *Executor[T]) Unregister(id string) {
	e.d.Dispatch(state.UnregisterAction{ID: id})
}

// SyncOptions mounts exactly opts
func (e *Executor[T]) SyncOptions(opts []domain.Option[T]) {
	e.d.Dispatch(state.SyncOptionsAction[T]{Options: opts})
}
