// Package session holds the per-conversation state of the skill: the search
// results under discussion, the cursor into them, and content fetched for
// the song under the cursor.
package session

import (
	"errors"
	"fmt"
)

// MaxResults is how many search hits a conversation keeps.
const MaxResults = 3

var ErrInvalid = errors.New("invalid session")

// SearchResult is one candidate track.
type SearchResult struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}

// Session is the state of one conversation. Cursor is only meaningful while
// Results is non-empty.
type Session struct {
	Results      []SearchResult `json:"search_results,omitempty"`
	Cursor       int            `json:"current_index"`
	CachedLyrics string         `json:"full_lyrics,omitempty"`
	CachedFacts  string         `json:"facts,omitempty"`
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Reset replaces the results with the first MaxResults of hits and rewinds
// the cursor.
func (s *Session) Reset(hits []SearchResult) {
	if len(hits) > MaxResults {
		hits = hits[:MaxResults]
	}
	s.Results = append([]SearchResult(nil), hits...)
	s.Cursor = 0
	s.clearContent()
}

func (s *Session) HasResults() bool {
	return len(s.Results) > 0
}

// Current returns the result under the cursor.
func (s *Session) Current() (SearchResult, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return SearchResult{}, false
	}
	return s.Results[s.Cursor], true
}

// Next advances the cursor. It reports false, leaving the session untouched,
// when there is no further result.
func (s *Session) Next() (SearchResult, bool) {
	if !s.HasResults() || s.Cursor+1 >= len(s.Results) {
		return SearchResult{}, false
	}
	s.Cursor++
	s.clearContent()
	return s.Results[s.Cursor], true
}

func (s *Session) clearContent() {
	s.CachedLyrics = ""
	s.CachedFacts = ""
}

// Validate checks the shape of a session decoded from an external store.
func (s *Session) Validate() error {
	if len(s.Results) > MaxResults {
		return fmt.Errorf("%w: %d results, at most %d allowed", ErrInvalid, len(s.Results), MaxResults)
	}
	if len(s.Results) == 0 {
		if s.Cursor != 0 {
			return fmt.Errorf("%w: cursor %d without results", ErrInvalid, s.Cursor)
		}
		return nil
	}
	if s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return fmt.Errorf("%w: cursor %d out of range [0,%d)", ErrInvalid, s.Cursor, len(s.Results))
	}
	return nil
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	c := *s
	c.Results = append([]SearchResult(nil), s.Results...)
	return &c
}
