package outside

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// Watcher calls onOutside when a click lands outside every registered surface
type Watcher struct {
	surfaces  []Surface
	onOutside func()
	active    func() bool
}

// Watch creates a watcher. The host forwards every tea.MouseMsg to HandleMouse.
func Watch(surfaces []Surface, onOutside func(), active func() bool) *Watcher {
	return &Watcher{
		surfaces:  surfaces,
		onOutside: onOutside,
		active:    active,
	}
}

// SetSurfaces replaces the surfaces used for containment checks
func (w *Watcher) SetSurfaces(surfaces ...Surface) {
	w.surfaces = surfaces
}

// HandleMouse checks one mouse event and reports whether onOutside fired
func (w *Watcher) HandleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if w.active == nil || !w.active() {
		return false
	}

	live := 0
	for _, s := range w.surfaces {
		if isNil(s) {
			continue
		}
		live++
		if s.Contains(msg.X, msg.Y) {
			return false
		}
	}
	if live == 0 {
		return false
	}

	if w.onOutside != nil {
		w.onOutside()
	}
	return true
}

// isNil catches typed nils such as (*Rect)(nil) stored in the interface
func isNil(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
