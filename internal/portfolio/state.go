package portfolio

import "sync"

// State is the active language and document of one rendering context.
// Overlapping loads commit in issue order: only the newest token wins and
// results for older tokens are discarded.
type State struct {
	doc    *Document
	lang   Code
	issued uint64
	mu     sync.Mutex
}

// Begin issues a token for a new load.
func (s *State) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Commit applies a load result if token is the newest issued token.
// It reports whether the result was applied.
func (s *State) Commit(token uint64, lang Code, doc *Document) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.issued {
		return false
	}
	s.lang, s.doc = lang, doc
	return true
}

// Current returns the committed language and document.
func (s *State) Current() (Code, *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang, s.doc
}
