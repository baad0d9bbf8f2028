package skill

import (
	"context"
	"fmt"

	"github.com/sukalov/lyricecho/internal/logger"
	"github.com/sukalov/lyricecho/internal/lyrics"
	"github.com/sukalov/lyricecho/internal/metrics"
	"github.com/sukalov/lyricecho/internal/session"
)

func (s *Skill) launchHandler(_ context.Context, _ *Turn) (Response, error) {
	return Response{Speech: speechWelcome, Reprompt: speechWelcome}, nil
}

func (s *Skill) helloHandler(_ context.Context, _ *Turn) (Response, error) {
	return Response{Speech: speechHello}, nil
}

func (s *Skill) songInfoHandler(_ context.Context, _ *Turn) (Response, error) {
	return Response{Speech: speechSongInfo}, nil
}

func (s *Skill) helpHandler(_ context.Context, _ *Turn) (Response, error) {
	return Response{Speech: speechHelp, Reprompt: speechHelp}, nil
}

func (s *Skill) cancelOrStopHandler(_ context.Context, _ *Turn) (Response, error) {
	return Response{Speech: speechGoodbye, EndSession: true}, nil
}

func (s *Skill) noMoreSongsHandler(_ context.Context, t *Turn) (Response, error) {
	logger.Info("user declined more song options", "session_id", t.SessionID)
	return Response{Speech: speechDecline, EndSession: true}, nil
}

func (s *Skill) fallbackHandler(_ context.Context, _ *Turn) (Response, error) {
	return Response{Speech: speechFallback, Reprompt: repromptFallback}, nil
}

func (s *Skill) sessionEndedHandler(_ context.Context, t *Turn) (Response, error) {
	logger.Debug("session ended", "session_id", t.SessionID, "reason", t.Envelope.Request.Reason)
	return Response{EndSession: true}, nil
}

func (s *Skill) intentReflectorHandler(_ context.Context, t *Turn) (Response, error) {
	return Response{Speech: fmt.Sprintf(speechReflect, t.Envelope.Request.Intent.Name)}, nil
}

func (s *Skill) searchHandler(ctx context.Context, t *Turn) (Response, error) {
	query, ok := t.Envelope.SlotValue(SlotLyrics)
	if !ok {
		logger.Info("no lyrics were provided", "session_id", t.SessionID)
		return Response{Speech: speechNoLyricsGiven, Reprompt: repromptOptions}, nil
	}
	logger.Info("user provided lyrics", "session_id", t.SessionID, "query", query)

	results, err := s.searcher.SearchResults(ctx, query)
	if err != nil {
		s.metrics.UpstreamError(metrics.UpstreamSearch)
		logger.Error("error in search request", "query", query, "error", err)
		return Response{Speech: speechSearchFailed, Reprompt: repromptOptions}, nil
	}
	s.recordSearch(ctx, t.SessionID, query, len(results))

	if len(results) == 0 {
		logger.Info("no matching songs found", "query", query)
		return Response{Speech: speechNoMatches, Reprompt: repromptOptions}, nil
	}

	t.Session.Reset(results)
	first, _ := t.Session.Current()
	return Response{
		Speech:   fmt.Sprintf(speechFound, first.Title, first.Artist),
		Reprompt: repromptOptions,
	}, nil
}

func (s *Skill) nextSongHandler(_ context.Context, t *Turn) (Response, error) {
	next, ok := t.Session.Next()
	if !ok {
		return Response{Speech: speechNoMore, Reprompt: repromptOptions}, nil
	}
	return Response{
		Speech:   fmt.Sprintf(speechNextMatch, next.Title, next.Artist),
		Reprompt: repromptOptions,
	}, nil
}

// currentSong returns the song under the cursor, or the guidance to speak
// when there is none to fetch.
func currentSong(sess *session.Session) (session.SearchResult, *Response) {
	if !sess.HasResults() {
		return session.SearchResult{}, &Response{Speech: speechSearchFirst}
	}
	song, ok := sess.Current()
	if !ok || song.URL == "" {
		return session.SearchResult{}, &Response{Speech: speechNoReference}
	}
	return song, nil
}

func (s *Skill) lyricsHandler(ctx context.Context, t *Turn) (Response, error) {
	song, guidance := currentSong(t.Session)
	if guidance != nil {
		return *guidance, nil
	}

	result, err := s.content.Lyrics(ctx, song.URL)
	if err != nil {
		s.metrics.UpstreamError(metrics.UpstreamPage)
		logger.Error("error during page scraping", "url", song.URL, "error", err)
		return Response{Speech: speechLyricsFailed, Reprompt: repromptContinue}, nil
	}
	s.recordLookup(ctx, song)

	t.Session.CachedLyrics = result.Text
	return Response{
		Speech:   fmt.Sprintf(speechLyricsPreview, lyrics.Preview(result.Text)),
		Reprompt: repromptContinue,
	}, nil
}

func (s *Skill) continueListeningHandler(_ context.Context, t *Turn) (Response, error) {
	if t.Session.CachedLyrics == "" {
		return Response{Speech: speechNoFullLyrics}, nil
	}
	return Response{Speech: fmt.Sprintf(speechFullLyrics, t.Session.CachedLyrics)}, nil
}

// factsHandler answers from the session cache when the facts of the current
// song were already fetched.
func (s *Skill) factsHandler(ctx context.Context, t *Turn) (Response, error) {
	song, guidance := currentSong(t.Session)
	if guidance != nil {
		return *guidance, nil
	}
	if t.Session.CachedFacts != "" {
		return Response{Speech: t.Session.CachedFacts}, nil
	}

	result, err := s.content.Facts(ctx, song.URL)
	if err != nil {
		s.metrics.UpstreamError(metrics.UpstreamPage)
		logger.Error("error during page scraping", "url", song.URL, "error", err)
		return Response{Speech: speechFactsFailed}, nil
	}
	s.recordLookup(ctx, song)

	speech := fmt.Sprintf(speechFacts, result.ReleaseDate, result.Facts)
	t.Session.CachedFacts = speech
	return Response{Speech: speech}, nil
}

func (s *Skill) recordSearch(ctx context.Context, sessionID, query string, hits int) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordSearch(ctx, sessionID, query, hits); err != nil {
		logger.Warn("failed to record search", "error", err)
	}
}

func (s *Skill) recordLookup(ctx context.Context, song session.SearchResult) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordLookup(ctx, song.URL, song.Title, song.Artist); err != nil {
		logger.Warn("failed to record lookup", "url", song.URL, "error", err)
	}
}
