package navigation

// Viewport tracks the window of list rows that fits on screen
type Viewport struct {
	Offset int
	Height int
}

// NewViewport creates a viewport showing at most height rows
func NewViewport(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{Height: height}
}

// SetHeight updates the window height and keeps the offset valid
func (v *Viewport) SetHeight(height, total int) {
	if height < 1 {
		height = 1
	}
	v.Height = height
	v.clamp(total)
}

// EnsureVisible scrolls so that cursor is inside the window.
// A NoIndex cursor leaves the offset alone.
func (v *Viewport) EnsureVisible(cursor, total int) {
	if cursor != NoIndex {
		if cursor < v.Offset {
			v.Offset = cursor
		} else if cursor >= v.Offset+v.Height {
			v.Offset = cursor - v.Height + 1
		}
	}
	v.clamp(total)
}

// Range returns the half-open [start, end) slice of rows to draw
func (v *Viewport) Range(total int) (int, int) {
	v.clamp(total)
	end := v.Offset + v.Height
	if end > total {
		end = total
	}
	return v.Offset, end
}

func (v *Viewport) clamp(total int) {
	maxOffset := total - v.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
