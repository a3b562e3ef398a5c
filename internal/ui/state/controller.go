package state

import (
	"fmt"
	"log"

	"tuiselect/internal/domain"
	"tuiselect/internal/eventbus"
	"tuiselect/internal/ui/services/navigation"
	"tuiselect/internal/ui/services/registry"
	"tuiselect/internal/ui/services/selection"
)

// State is a read-only snapshot of a controller
type State[T comparable] struct {
	Open        bool
	Focused     int // navigation.NoIndex when nothing is focused
	Value       T
	HasValue    bool
	Options     []domain.Option[T]
	PendingSeed bool
}

// FocusedOption returns the option under focus
func (s State[T]) FocusedOption() (domain.Option[T], bool) {
	if s.Focused < 0 || s.Focused >= len(s.Options) {
		return domain.Option[T]{}, false
	}
	return s.Options[s.Focused], true
}

// IsSelected reports whether opt holds the current value
func (s State[T]) IsSelected(opt domain.Option[T]) bool {
	return s.HasValue && opt.Value == s.Value
}

// SelectedOption returns the first option holding the current value
func (s State[T]) SelectedOption() (domain.Option[T], bool) {
	for _, o := range s.Options {
		if s.IsSelected(o) {
			return o, true
		}
	}
	return domain.Option[T]{}, false
}

type pendingSeed struct {
	armed    bool
	fallback Seed
}

// Controller is the state machine behind one Select.
// All mutation goes through Dispatch; it is meant to be driven from a single
// goroutine (the Bubble Tea update loop).
type Controller[T comparable] struct {
	id       string
	open     bool
	focused  int
	pending  pendingSeed
	registry *registry.Store[T]
	value    *selection.Resolver[T]
	bus      eventbus.EventBus
}

// NewController creates a closed controller. bus may be nil.
func NewController[T comparable](id string, value *selection.Resolver[T], bus eventbus.EventBus) *Controller[T] {
	if value == nil {
		value = selection.NewResolver[T](nil, nil, nil)
	}
	return &Controller[T]{
		id:       id,
		focused:  navigation.NoIndex,
		registry: registry.NewStore[T](),
		value:    value,
		bus:      bus,
	}
}

// ID returns the select ID used in published events
func (c *Controller[T]) ID() string {
	return c.id
}

// Resolver exposes the value resolver so hosts can switch ownership
func (c *Controller[T]) Resolver() *selection.Resolver[T] {
	return c.value
}

// State returns a snapshot of the controller
func (c *Controller[T]) State() State[T] {
	v, ok := c.value.Value()
	return State[T]{
		Open:        c.open,
		Focused:     c.focused,
		Value:       v,
		HasValue:    ok,
		Options:     c.registry.List(),
		PendingSeed: c.pending.armed,
	}
}

// Dispatch applies one action, then a pending open seed if the registry now allows it
func (c *Controller[T]) Dispatch(a Action) {
	c.reduce(a)

	if c.pending.armed && c.open && c.registry.Len() > 0 {
		c.reduce(seedAction{})
	}
}

func (c *Controller[T]) reduce(a Action) {
	switch a := a.(type) {
	case OpenAction:
		c.setOpen(true, a.Seed)

	case CloseAction:
		c.setOpen(false, SeedNone)

	case ToggleAction:
		c.setOpen(!c.open, a.Seed)

	case MoveAction:
		if !c.open {
			return
		}
		next := navigation.NextIndex(c.registry.List(), c.focused, a.Move)
		c.setFocus(c.validIndex(next))

	case SelectAction[T]:
		c.commit(a.Value)

	case SelectIndexAction:
		opt, ok := c.registry.At(a.Index)
		if !ok || opt.Disabled {
			return
		}
		c.commit(opt.Value)

	case SelectFocusedAction:
		opt, ok := c.registry.At(c.focused)
		if ok && !opt.Disabled {
			c.commit(opt.Value)
			return
		}
		c.setOpen(false, SeedNone)

	case RegisterAction[T]:
		index, id := c.registry.Register(a.Option)
		c.publish(eventbus.OptionRegisteredEvent{SelectID: c.id, OptionID: id, Index: index})

	case UnregisterAction:
		removed, ok := c.registry.Unregister(a.ID)
		if !ok {
			return
		}
		c.publish(eventbus.OptionUnregisteredEvent{SelectID: c.id, OptionID: a.ID, Index: removed})
		c.revalidateAfterRemoval(removed)

	case SyncOptionsAction[T]:
		keep := make(map[string]bool, len(a.Options))
		for _, o := range a.Options {
			keep[o.ID] = true
		}
		for _, o := range c.registry.List() {
			if !keep[o.ID] {
				c.reduce(UnregisterAction{ID: o.ID})
			}
		}
		for _, o := range a.Options {
			c.reduce(RegisterAction[T]{Option: o})
		}

	case seedAction:
		c.applySeed()

	default:
		panic(fmt.Sprintf("state: unhandled action %T", a))
	}
}

func (c *Controller[T]) setOpen(open bool, seed Seed) {
	if open == c.open {
		return
	}
	c.open = open
	c.setFocus(navigation.NoIndex)

	if open {
		c.pending = pendingSeed{armed: true, fallback: seed}
		c.publish(eventbus.OpenedEvent{SelectID: c.id})
		return
	}
	c.pending = pendingSeed{}
	c.publish(eventbus.ClosedEvent{SelectID: c.id})
}

// applySeed runs once per open. Anything that focused an option in the
// meantime wins over the seed.
func (c *Controller[T]) applySeed() {
	seed := c.pending
	c.pending = pendingSeed{}
	if !seed.armed || c.focused != navigation.NoIndex {
		return
	}

	options := c.registry.List()
	if v, ok := c.value.Value(); ok {
		if i := c.registry.IndexOfValue(v); i >= 0 {
			c.setFocus(c.validIndex(navigation.NextIndex(options, c.focused, navigation.To(i))))
		}
		return
	}

	switch seed.fallback {
	case SeedFirst:
		c.setFocus(navigation.NextIndex(options, c.focused, navigation.Toward(navigation.DirectionFirst)))
	case SeedLast:
		c.setFocus(navigation.NextIndex(options, c.focused, navigation.Toward(navigation.DirectionLast)))
	}
}

func (c *Controller[T]) commit(v T) {
	c.value.Change(v)
	log.Printf("select %s: value changed to %v", c.id, v)
	c.publish(eventbus.ValueChangedEvent{SelectID: c.id, Value: v})
	c.setOpen(false, SeedNone)
}

// revalidateAfterRemoval keeps focus on the same descriptor when an earlier
// slot disappears and drops it when the focused slot itself goes away.
func (c *Controller[T]) revalidateAfterRemoval(removed int) {
	switch {
	case c.focused == navigation.NoIndex:
	case removed == c.focused:
		c.setFocus(navigation.NoIndex)
	case removed < c.focused:
		c.setFocus(c.focused - 1)
	}
	c.setFocus(c.validIndex(c.focused))
}

func (c *Controller[T]) validIndex(i int) int {
	if i < 0 || i >= c.registry.Len() {
		return navigation.NoIndex
	}
	return i
}

func (c *Controller[T]) setFocus(i int) {
	if i == c.focused {
		return
	}
	old := c.focused
	c.focused = i
	c.publish(eventbus.FocusMovedEvent{SelectID: c.id, OldIndex: old, NewIndex: i})
}

func (c *Controller[T]) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
