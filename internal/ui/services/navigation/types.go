package navigation

// NoIndex marks the absence of a focused option
const NoIndex = -1

// Direction represents movement directions
type Direction int

const (
	DirectionPrev Direction = iota
	DirectionNext
	DirectionFirst
	DirectionLast
	DirectionTarget
	DirectionOut
)

func (d Direction) String() string {
	switch d {
	case DirectionPrev:
		return "prev"
	case DirectionNext:
		return "next"
	case DirectionFirst:
		return "first"
	case DirectionLast:
		return "last"
	case DirectionTarget:
		return "target"
	case DirectionOut:
		return "out"
	default:
		return "unknown"
	}
}

// Move is a direction plus the explicit index a TARGET move needs
type Move struct {
	Direction Direction
	Target    int
}

// To builds a TARGET move
func To(index int) Move {
	return Move{Direction: DirectionTarget, Target: index}
}

// Toward builds a relative move
func Toward(d Direction) Move {
	return Move{Direction: d, Target: NoIndex}
}
