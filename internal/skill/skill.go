// Package skill implements the LyricEcho conversation: searching songs by
// lyrics, paging through the matches, and revealing lyrics and facts for the
// match under the cursor.
package skill

import (
	"context"

	"github.com/sukalov/lyricecho/internal/alexa"
	"github.com/sukalov/lyricecho/internal/lyrics"
	"github.com/sukalov/lyricecho/internal/metrics"
	"github.com/sukalov/lyricecho/internal/session"
)

// Searcher finds candidate songs for a free-text query.
type Searcher interface {
	SearchResults(ctx context.Context, query string) ([]session.SearchResult, error)
}

// ContentFetcher retrieves the content of a song page.
type ContentFetcher interface {
	Lyrics(ctx context.Context, url string) (*lyrics.LyricsResult, error)
	Facts(ctx context.Context, url string) (*lyrics.FactsResult, error)
}

// Recorder keeps a history of searches and lookups.
type Recorder interface {
	RecordSearch(ctx context.Context, sessionID, query string, hits int) error
	RecordLookup(ctx context.Context, url, title, artist string) error
}

// Response is what one turn says back.
type Response struct {
	Speech     string
	Reprompt   string
	EndSession bool
}

// Envelope converts r into the platform response.
func (r Response) Envelope() alexa.ResponseEnvelope {
	return alexa.NewResponse(r.Speech, r.Reprompt, r.EndSession)
}

// Turn is the input of one handler invocation. Handlers mutate Session in
// place; the dispatcher persists it afterwards.
type Turn struct {
	SessionID string
	Intent    Intent
	Envelope  *alexa.RequestEnvelope
	Session   *session.Session
}

type handlerFunc func(ctx context.Context, t *Turn) (Response, error)

// Skill wires the handlers to their collaborators.
type Skill struct {
	searcher Searcher
	content  ContentFetcher
	store    session.Store
	recorder Recorder
	metrics  *metrics.Metrics

	handlers map[Intent]handlerFunc
}

// Option configures optional collaborators.
type Option func(*Skill)

func WithRecorder(r Recorder) Option {
	return func(s *Skill) { s.recorder = r }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Skill) { s.metrics = m }
}

// New creates a skill. store holds sessions between turns.
func New(searcher Searcher, content ContentFetcher, store session.Store, opts ...Option) *Skill {
	s := &Skill{
		searcher: searcher,
		content:  content,
		store:    store,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handlers = map[Intent]handlerFunc{
		IntentLaunch:            s.launchHandler,
		IntentHello:             s.helloHandler,
		IntentGetLyrics:         s.lyricsHandler,
		IntentContinueListening: s.continueListeningHandler,
		IntentGetFacts:          s.factsHandler,
		IntentSongInfo:          s.songInfoHandler,
		IntentNoMoreSongs:       s.noMoreSongsHandler,
		IntentNextSong:          s.nextSongHandler,
		IntentSearchSong:        s.searchHandler,
		IntentHelp:              s.helpHandler,
		IntentCancelOrStop:      s.cancelOrStopHandler,
		IntentFallback:          s.fallbackHandler,
		IntentSessionEnded:      s.sessionEndedHandler,
	}
	return s
}
