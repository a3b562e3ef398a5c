package ui

import (
	"tuiselect/internal/ui/state"
)

// selectContext adapts a controller snapshot to the input handler
type selectContext[T comparable] struct {
	s state.State[T]
}

func (c selectContext[T]) IsOpen() bool   { return c.s.Open }
func (c selectContext[T]) HasValue() bool { return c.s.HasValue }
func (c selectContext[T]) Focused() int   { return c.s.Focused }

func (c selectContext[T]) OptionTexts() []string {
	texts := make([]string, len(c.s.Options))
	for i, o := range c.s.Options {
		texts[i] = o.Label()
	}
	return texts
}

func (c selectContext[T]) IsDisabled(index int) bool {
	if index < 0 || index >= len(c.s.Options) {
		return true
	}
	return c.s.Options[index].Disabled
}
