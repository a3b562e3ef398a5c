package handlers

import (
	"fmt"
	"log"

	"tuiselect/internal/eventbus"
)

// EventHandler turns domain events forwarded to the UI into status text
type EventHandler struct{}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// HandleEvent returns the status line for event, if it warrants one
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) (string, bool) {
	switch e := event.(type) {
	case eventbus.ConfigLoadedEvent:
		return fmt.Sprintf("%d options from %s", e.Options, e.Path), true

	case eventbus.ConfigSavedEvent:
		return fmt.Sprintf("config written to %s", e.Path), true

	case eventbus.ValueChangedEvent:
		log.Printf("UI: select %s changed to %v", e.SelectID, e.Value)
		return fmt.Sprintf("selected %v", e.Value), true
	}
	return "", false
}
