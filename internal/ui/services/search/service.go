package search

import (
	"time"

	"github.com/sahilm/fuzzy"

	"tuiselect/internal/ui/services/navigation"
)

// Service accumulates typed characters into a query and fuzzy matches it
// against option labels
type Service struct {
	state     State
	lastTyped time.Time
	now       func() time.Time
}

// NewService creates a new typeahead service
func NewService() *Service {
	return &Service{now: time.Now}
}

// SetClock replaces time.Now, for tests
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Type appends text to the query, starting over after Timeout, and returns
// the best match that skip does not reject, or NoIndex
func (s *Service) Type(text string, labels []string, skip func(int) bool) int {
	now := s.now()
	if now.Sub(s.lastTyped) > Timeout {
		s.state.Query = ""
	}
	s.lastTyped = now
	s.state.Query += text

	s.state.Matches = s.state.Matches[:0]
	for _, m := range fuzzy.Find(s.state.Query, labels) {
		if skip != nil && skip(m.Index) {
			continue
		}
		s.state.Matches = append(s.state.Matches, m.Index)
	}

	if len(s.state.Matches) == 0 {
		return navigation.NoIndex
	}
	return s.state.Matches[0]
}

// Reset clears the query
func (s *Service) Reset() {
	s.state = State{}
	s.lastTyped = time.Time{}
}

// Query returns the current query
func (s *Service) Query() string {
	return s.state.Query
}

// State returns a copy of the current state
func (s *Service) State() State {
	out := s.state
	out.Matches = append([]int(nil), s.state.Matches...)
	return out
}
