package navigation

import "tuiselect/internal/domain"

// NextIndex computes the focus index a move lands on.
// It never mutates options and returns NoIndex when there is nothing to focus.
func NextIndex[T comparable](options []domain.Option[T], current int, move Move) int {
	if len(options) == 0 {
		return NoIndex
	}
	// Nothing focused: an explicit target wins, relative moves have no anchor
	if current == NoIndex {
		if move.Target != NoIndex {
			return move.Target
		}
		if move.Direction == DirectionNext || move.Direction == DirectionPrev {
			return NoIndex
		}
	}

	switch move.Direction {
	case DirectionNext:
		if i := scanForward(options, current+1); i != NoIndex {
			return i
		}
		return current

	case DirectionPrev:
		start := current - 1
		if current > len(options) {
			start = len(options) - 1
		}
		if i := scanBackward(options, start); i != NoIndex {
			return i
		}
		return current

	case DirectionFirst:
		return scanForward(options, 0)

	case DirectionLast:
		return scanBackward(options, len(options)-1)

	case DirectionTarget:
		return move.Target

	case DirectionOut:
		return NoIndex
	}

	return NoIndex
}

func scanForward[T comparable](options []domain.Option[T], from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(options); i++ {
		if !options[i].Disabled {
			return i
		}
	}
	return NoIndex
}

func scanBackward[T comparable](options []domain.Option[T], from int) int {
	if from >= len(options) {
		from = len(options) - 1
	}
	for i := from; i >= 0; i-- {
		if !options[i].Disabled {
			return i
		}
	}
	return NoIndex
}
