package outside

// Surface is a screen region that belongs to the widget
type Surface interface {
	Contains(x, y int) bool
}

// Rect is a cell rectangle; right and bottom edges are exclusive
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r. A nil Rect contains nothing.
func (r *Rect) Contains(x, y int) bool {
	if r == nil {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
