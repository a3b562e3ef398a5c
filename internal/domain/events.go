package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOpened             EventType = "Opened"
	EventClosed             EventType = "Closed"
	EventFocusMoved         EventType = "FocusMoved"
	EventValueChanged       EventType = "ValueChanged"
	EventOptionRegistered   EventType = "OptionRegistered"
	EventOptionUnregistered EventType = "OptionUnregistered"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OpenedEvent is emitted when a select's list opens
type OpenedEvent struct {
	SelectID string
}

func (e OpenedEvent) Type() EventType { return EventOpened }

// ClosedEvent is emitted when a select's list closes
type ClosedEvent struct {
	SelectID string
}

func (e ClosedEvent) Type() EventType { return EventClosed }

// FocusMovedEvent is emitted when the focused option changes
type FocusMovedEvent struct {
	SelectID string
	OldIndex int
	NewIndex int
}

func (e FocusMovedEvent) Type() EventType { return EventFocusMoved }

// ValueChangedEvent is emitted once per committed selection
type ValueChangedEvent struct {
	SelectID string
	Value    any
}

func (e ValueChangedEvent) Type() EventType { return EventValueChanged }

// OptionRegisteredEvent is emitted when an option mounts
type OptionRegisteredEvent struct {
	SelectID string
	OptionID string
	Index    int
}

func (e OptionRegisteredEvent) Type() EventType { return EventOptionRegistered }

// OptionUnregisteredEvent is emitted when an option unmounts
type OptionUnregisteredEvent struct {
	SelectID string
	OptionID string
	Index    int
}

func (e OptionUnregisteredEvent) Type() EventType { return EventOptionUnregistered }

// ConfigLoadedEvent is emitted after the config file has been read
type ConfigLoadedEvent struct {
	Path    string
	Options int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the config file has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
