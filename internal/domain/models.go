package domain

// Option describes one selectable entry of a Select
type Option[T comparable] struct {
	ID       string // opaque, unique within one Select
	Value    T
	Disabled bool
	Text     string // display text, also used for typeahead
}

// Label returns the text shown for the option, falling back to its ID
func (o Option[T]) Label() string {
	if o.Text != "" {
		return o.Text
	}
	return o.ID
}
