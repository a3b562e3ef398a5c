package selection

// Resolver decides who owns a Select's value.
// While external is nil the resolver keeps its own value (uncontrolled);
// once external is set the caller owns it and Change only notifies.
// The mode is checked on every read.
type Resolver[T comparable] struct {
	external *T
	onChange func(T)

	internal    T
	hasInternal bool
}

// NewResolver creates a resolver. external and defaultValue may be nil.
func NewResolver[T comparable](external *T, onChange func(T), defaultValue *T) *Resolver[T] {
	r := &Resolver[T]{
		external: external,
		onChange: onChange,
	}
	if defaultValue != nil {
		r.internal = *defaultValue
		r.hasInternal = true
	}
	return r
}

// Value returns the current value and whether one is set
func (r *Resolver[T]) Value() (T, bool) {
	if r.external != nil {
		return *r.external, true
	}
	return r.internal, r.hasInternal
}

// Controlled reports whether the caller currently owns the value
func (r *Resolver[T]) Controlled() bool {
	return r.external != nil
}

// Change commits a new value
func (r *Resolver[T]) Change(next T) {
	if r.onChange != nil {
		r.onChange(next)
	}
	if r.external == nil {
		r.internal = next
		r.hasInternal = true
	}
}

// SetExternal switches ownership. Passing nil hands the value back to the resolver.
func (r *Resolver[T]) SetExternal(external *T) {
	r.external = external
}

// SetOnChange replaces the change callback
func (r *Resolver[T]) SetOnChange(fn func(T)) {
	r.onChange = fn
}
