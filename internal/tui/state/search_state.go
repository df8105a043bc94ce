package state

const maxQueryLength = 100

// SearchState manages the vim-style search functionality state.
type SearchState struct {
	// Query is the current search text entered by the user
	Query string

	// IsActive indicates whether the filter stays applied after leaving
	// search mode
	IsActive bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// AppendText appends typed text to the query.
// Returns false if the query is already at max length.
func (s *SearchState) AppendText(text string) bool {
	if len([]rune(s.Query))+len([]rune(text)) > maxQueryLength {
		return false
	}
	s.Query += text
	return true
}

// Backspace removes the last character from the query.
// Returns false if the query was already empty.
func (s *SearchState) Backspace() bool {
	r := []rune(s.Query)
	if len(r) == 0 {
		return false
	}
	s.Query = string(r[:len(r)-1])
	return true
}

// Clear resets the query and deactivates the filter.
func (s *SearchState) Clear() {
	s.Query = ""
	s.IsActive = false
}

// Activate keeps the filter applied in normal mode.
func (s *SearchState) Activate() {
	s.IsActive = true
}

// Filtering reports whether the board should be filtered by Query.
func (s *SearchState) Filtering(mode Mode) bool {
	return s.Query != "" && (s.IsActive || mode == SearchMode)
}
