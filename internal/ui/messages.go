package ui

import (
	"errors"

	"tuiselect/internal/eventbus"
)

// ErrNoSelect is returned when a Trigger, List or Option is built without a Select root
var ErrNoSelect = errors.New("select component used outside of a select")

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ChangedMsg is emitted after every committed selection
type ChangedMsg[T comparable] struct {
	SelectID string
	Value    T
}
