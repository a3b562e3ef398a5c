package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tuiselect/internal/domain"
)

func opts(disabled ...bool) []domain.Option[string] {
	out := make([]domain.Option[string], len(disabled))
	for i, d := range disabled {
		v := string(rune('a' + i))
		out[i] = domain.Option[string]{ID: v, Value: v, Text: v, Disabled: d}
	}
	return out
}

func TestNextIndexEmptyRegistry(t *testing.T) {
	for _, d := range []Direction{DirectionPrev, DirectionNext, DirectionFirst, DirectionLast, DirectionTarget, DirectionOut} {
		for _, current := range []int{NoIndex, 0, 3} {
			assert.Equal(t, NoIndex, NextIndex[string](nil, current, Move{Direction: d, Target: 2}), "direction %s", d)
		}
	}
}

func TestNextIndexTargetSeedsFromNoIndex(t *testing.T) {
	options := opts(false, false, false)
	for _, target := range []int{0, 2, 7, -3} {
		assert.Equal(t, target, NextIndex(options, NoIndex, To(target)))
	}
}

func TestNextIndexFromNoIndexPrefersGivenTarget(t *testing.T) {
	options := opts(false, false, false)
	for _, d := range []Direction{DirectionPrev, DirectionNext, DirectionFirst, DirectionLast, DirectionOut} {
		assert.Equal(t, 2, NextIndex(options, NoIndex, Move{Direction: d, Target: 2}), "direction %s", d)
	}
}

func TestNextIndexFromNoIndexWithoutTarget(t *testing.T) {
	options := opts(true, false, false)

	assert.Equal(t, NoIndex, NextIndex(options, NoIndex, Toward(DirectionNext)))
	assert.Equal(t, NoIndex, NextIndex(options, NoIndex, Toward(DirectionPrev)))
	assert.Equal(t, 1, NextIndex(options, NoIndex, Toward(DirectionFirst)))
	assert.Equal(t, 2, NextIndex(options, NoIndex, Toward(DirectionLast)))
	assert.Equal(t, NoIndex, NextIndex(options, NoIndex, Toward(DirectionOut)))
}

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name     string
		options  []domain.Option[string]
		current  int
		move     Move
		expected int
	}{
		{"next moves forward", opts(false, false, false), 0, Toward(DirectionNext), 1},
		{"next clamps at tail", opts(false, false, false), 2, Toward(DirectionNext), 2},
		{"next skips disabled", opts(false, true, false), 0, Toward(DirectionNext), 2},
		{"next stays when only disabled remain", opts(false, true, true), 0, Toward(DirectionNext), 0},
		{"next from no index stays unfocused", opts(true, false, false), NoIndex, Toward(DirectionNext), NoIndex},
		{"prev moves backward", opts(false, false, false), 2, Toward(DirectionPrev), 1},
		{"prev clamps at head", opts(false, false, false), 0, Toward(DirectionPrev), 0},
		{"prev skips disabled", opts(false, true, false), 2, Toward(DirectionPrev), 0},
		{"prev stays when only disabled remain", opts(true, true, false), 2, Toward(DirectionPrev), 2},
		{"prev from no index stays unfocused", opts(false, false, true), NoIndex, Toward(DirectionPrev), NoIndex},
		{"first", opts(false, false, false), 2, Toward(DirectionFirst), 0},
		{"first skips disabled", opts(true, false, false), 2, Toward(DirectionFirst), 1},
		{"first all disabled", opts(true, true), 1, Toward(DirectionFirst), NoIndex},
		{"last", opts(false, false, false), 0, Toward(DirectionLast), 2},
		{"last skips disabled", opts(false, false, true), 0, Toward(DirectionLast), 1},
		{"target is verbatim", opts(false, false, false), 1, To(5), 5},
		{"target onto disabled is allowed", opts(false, true), 0, To(1), 1},
		{"out defocuses", opts(false, false), 1, Toward(DirectionOut), NoIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextIndex(tt.options, tt.current, tt.move))
		})
	}
}

func TestNextIndexIsIdempotent(t *testing.T) {
	options := opts(false, true, false, false)
	first := NextIndex(options, 0, Toward(DirectionNext))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, NextIndex(options, 0, Toward(DirectionNext)))
	}
}

func TestNextThenPrevRoundTrip(t *testing.T) {
	options := opts(false, false, false, false)
	for current := 0; current < len(options)-1; current++ {
		next := NextIndex(options, current, Toward(DirectionNext))
		assert.Equal(t, current, NextIndex(options, next, Toward(DirectionPrev)))
	}
}

// NEXT then PREV across a disabled entry still returns to an enabled start,
// but a start on the disabled slot itself (reachable via TARGET) is lost.
func TestNextThenPrevAcrossDisabledEntry(t *testing.T) {
	options := opts(false, true, false)

	next := NextIndex(options, 0, Toward(DirectionNext))
	assert.Equal(t, 2, next)
	assert.Equal(t, 0, NextIndex(options, next, Toward(DirectionPrev)))

	// Starting on the disabled slot (reachable via TARGET) does not round trip
	next = NextIndex(options, 1, Toward(DirectionNext))
	assert.Equal(t, 2, next)
	assert.Equal(t, 0, NextIndex(options, next, Toward(DirectionPrev)))
}

func TestViewportEnsureVisible(t *testing.T) {
	v := NewViewport(3)

	v.EnsureVisible(4, 10)
	assert.Equal(t, 2, v.Offset)

	v.EnsureVisible(0, 10)
	assert.Equal(t, 0, v.Offset)

	v.EnsureVisible(NoIndex, 10)
	assert.Equal(t, 0, v.Offset)

	start, end := v.Range(2)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestViewportClampsWhenListShrinks(t *testing.T) {
	v := NewViewport(2)
	v.EnsureVisible(9, 10)
	assert.Equal(t, 8, v.Offset)

	start, end := v.Range(4)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)
}
