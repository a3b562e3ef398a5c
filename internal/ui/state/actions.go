package state

import (
	"tuiselect/internal/domain"
	"tuiselect/internal/ui/services/navigation"
)

// Action is a closed set of controller commands. Only this package can add variants.
type Action interface {
	Type() string
	isAction()
}

// Seed chooses where focus lands on open when no selected option can be found
type Seed int

const (
	SeedNone Seed = iota
	SeedFirst
	SeedLast
)

// OpenAction opens the list
type OpenAction struct {
	Seed Seed
}

func (a OpenAction) Type() string { return "open" }
func (OpenAction) isAction()      {}

// CloseAction closes the list
type CloseAction struct{}

func (a CloseAction) Type() string { return "close" }
func (CloseAction) isAction()      {}

// ToggleAction flips the list; Seed applies when it opens
type ToggleAction struct {
	Seed Seed
}

func (a ToggleAction) Type() string { return "toggle" }
func (ToggleAction) isAction()      {}

// MoveAction moves focus inside an open list
type MoveAction struct {
	Move navigation.Move
}

func (a MoveAction) Type() string { return "move" }
func (MoveAction) isAction()      {}

// SelectAction commits a value and closes the list
type SelectAction[T comparable] struct {
	Value T
}

func (a SelectAction[T]) Type() string { return "select" }
func (SelectAction[T]) isAction()      {}

// SelectIndexAction commits the value of the option at Index
type SelectIndexAction struct {
	Index int
}

func (a SelectIndexAction) Type() string { return "select_index" }
func (SelectIndexAction) isAction()      {}

// SelectFocusedAction commits the focused option, if any, and closes the list
type SelectFocusedAction struct{}

func (a SelectFocusedAction) Type() string { return "select_focused" }
func (SelectFocusedAction) isAction()      {}

// RegisterAction mounts an option
type RegisterAction[T comparable] struct {
	Option domain.Option[T]
}

func (a RegisterAction[T]) Type() string { return "register" }
func (RegisterAction[T]) isAction()      {}

// UnregisterAction unmounts an option by ID
type UnregisterAction struct {
	ID string
}

func (a UnregisterAction) Type() string { return "unregister" }
func (UnregisterAction) isAction()      {}

// SyncOptionsAction mounts and unmounts options so the registry holds exactly
// Options. It counts as a single registry change, so a pending open seed sees
// the whole set.
type SyncOptionsAction[T comparable] struct {
	Options []domain.Option[T]
}

func (a SyncOptionsAction[T]) Type() string { return "sync_options" }
func (SyncOptionsAction[T]) isAction()      {}

// seedAction applies a pending open seed once options are available
type seedAction struct{}

func (a seedAction) Type() string { return "seed" }
func (seedAction) isAction()      {}
