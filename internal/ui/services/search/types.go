package search

import "time"

// Timeout resets the query after a pause in typing
const Timeout = 800 * time.Millisecond

// State holds typeahead state
type State struct {
	Query   string
	Matches []int // option indices, best match first
}
