package registry

import (
	"github.com/google/uuid"

	"tuiselect/internal/domain"
)

// Store keeps the mounted options of one Select in mount order.
// It is owned by a single controller and is not safe for concurrent use.
type Store[T comparable] struct {
	options []domain.Option[T]
}

// NewStore creates an empty option store
func NewStore[T comparable]() *Store[T] {
	return &Store[T]{}
}

// Register appends an option and returns its index and (possibly generated) ID.
// Registering an ID that is already mounted replaces it in place.
func (s *Store[T]) Register(opt domain.Option[T]) (int, string) {
	if opt.ID == "" {
		opt.ID = uuid.NewString()
	}
	if i := s.IndexOf(opt.ID); i >= 0 {
		s.options[i] = opt
		return i, opt.ID
	}
	s.options = append(s.options, opt)
	return len(s.options) - 1, opt.ID
}

// Unregister removes an option by ID, reporting the index it occupied.
// Unknown IDs are ignored.
func (s *Store[T]) Unregister(id string) (int, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return -1, false
	}
	s.options = append(s.options[:i:i], s.options[i+1:]...)
	return i, true
}

// List returns a copy of the options in navigation order
func (s *Store[T]) List() []domain.Option[T] {
	out := make([]domain.Option[T], len(s.options))
	copy(out, s.options)
	return out
}

// At returns the option at index
func (s *Store[T]) At(index int) (domain.Option[T], bool) {
	if index < 0 || index >= len(s.options) {
		return domain.Option[T]{}, false
	}
	return s.options[index], true
}

// Len returns the number of mounted options
func (s *Store[T]) Len() int {
	return len(s.options)
}

// IndexOf returns the index of the option with id, or -1
func (s *Store[T]) IndexOf(id string) int {
	for i, o := range s.options {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// IndexOfValue returns the index of the first option holding value, or -1
func (s *Store[T]) IndexOfValue(value T) int {
	for i, o := range s.options {
		if o.Value == value {
			return i
		}
	}
	return -1
}
