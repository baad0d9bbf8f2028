package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func results(n int) []SearchResult {
	out := make([]SearchResult, n)
	for i := range out {
		out[i] = SearchResult{
			Title:  fmt.Sprintf("Song %d", i+1),
			Artist: fmt.Sprintf("Artist %d", i+1),
			URL:    fmt.Sprintf("https://genius.com/song-%d-lyrics", i+1),
		}
	}
	return out
}

func TestReset_CursorStartsAtZeroForAllSizes(t *testing.T) {
	for n := 0; n <= 5; n++ {
		t.Run(fmt.Sprintf("%d hits", n), func(t *testing.T) {
			s := New()
			s.Cursor = 2
			s.CachedLyrics = "old"
			s.Reset(results(n))

			assert.Equal(t, 0, s.Cursor)
			assert.Len(t, s.Results, min(n, MaxResults))
			assert.Empty(t, s.CachedLyrics)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestNext_WalksToTheEndThenStops(t *testing.T) {
	for n := 0; n <= MaxResults; n++ {
		t.Run(fmt.Sprintf("%d results", n), func(t *testing.T) {
			s := New()
			s.Reset(results(n))

			for want := 1; want < n; want++ {
				r, ok := s.Next()
				require.True(t, ok)
				assert.Equal(t, want, s.Cursor)
				assert.Equal(t, fmt.Sprintf("Song %d", want+1), r.Title)
			}

			before := s.Cursor
			_, ok := s.Next()
			assert.False(t, ok)
			assert.Equal(t, before, s.Cursor)
		})
	}
}

func TestNext_ClearsCachedContent(t *testing.T) {
	s := New()
	s.Reset(results(2))
	s.CachedLyrics = "lyrics"
	s.CachedFacts = "facts"

	_, ok := s.Next()
	require.True(t, ok)
	assert.Empty(t, s.CachedLyrics)
	assert.Empty(t, s.CachedFacts)
}

func TestCurrent(t *testing.T) {
	s := New()
	_, ok := s.Current()
	assert.False(t, ok)

	s.Reset(results(3))
	r, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Song 1", r.Title)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		wantErr bool
	}{
		{"empty", Session{}, false},
		{"cursor without results", Session{Cursor: 1}, true},
		{"too many results", Session{Results: results(4)}, true},
		{"cursor past end", Session{Results: results(2), Cursor: 2}, true},
		{"negative cursor", Session{Results: results(2), Cursor: -1}, true},
		{"last position", Session{Results: results(3), Cursor: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s := New()
	s.Reset(results(2))
	c := s.Clone()
	c.Results[0].Title = "changed"
	c.Cursor = 1

	assert.Equal(t, "Song 1", s.Results[0].Title)
	assert.Equal(t, 0, s.Cursor)
}
