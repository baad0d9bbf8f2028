package lyrics

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sukalov/lyricecho/internal/logger"
	"github.com/sukalov/lyricecho/internal/lyrics/parsers/genius"
)

// ErrUnsupportedURL is returned for references that are not absolute http(s) URLs.
var ErrUnsupportedURL = errors.New("unsupported URL")

const (
	PreviewLines = 5
	PreviewChars = 200
)

// LyricsResult represents the result of lyrics extraction
type LyricsResult struct {
	URL       string    `json:"url"`
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	Found     bool      `json:"found"`
	FetchedAt time.Time `json:"fetched_at"`
}

// FactsResult represents the descriptive content of a song page.
type FactsResult struct {
	URL         string    `json:"url"`
	ReleaseDate string    `json:"release_date"`
	Facts       string    `json:"facts"`
	Source      string    `json:"source"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Service fetches song pages and extracts lyrics and facts from them.
type Service struct {
	geniusParser *genius.Parser
}

// NewService creates a new lyrics service
func NewService(timeout time.Duration) *Service {
	return &Service{
		geniusParser: genius.NewParser(timeout),
	}
}

// Lyrics fetches the page at rawURL and extracts its lyrics.
func (s *Service) Lyrics(ctx context.Context, rawURL string) (*LyricsResult, error) {
	if err := checkURL(rawURL); err != nil {
		return nil, err
	}

	result, err := s.geniusParser.ExtractLyrics(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("extract lyrics from %s: %w", rawURL, err)
	}

	logger.Debug("lyrics extracted", "url", rawURL, "length", len(result.Text), "found", result.Found)

	return &LyricsResult{
		URL:       result.URL,
		Text:      result.Text,
		Source:    "genius.com",
		Found:     result.Found,
		FetchedAt: result.FetchedAt,
	}, nil
}

// Facts fetches the page at rawURL and extracts its release date and facts.
func (s *Service) Facts(ctx context.Context, rawURL string) (*FactsResult, error) {
	if err := checkURL(rawURL); err != nil {
		return nil, err
	}

	result, err := s.geniusParser.ExtractFacts(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("extract facts from %s: %w", rawURL, err)
	}

	return &FactsResult{
		URL:         result.URL,
		ReleaseDate: result.ReleaseDate,
		Facts:       result.Facts,
		Source:      "genius.com",
		FetchedAt:   result.FetchedAt,
	}, nil
}

func checkURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, rawURL)
	}
	return nil
}

// Preview returns the first PreviewLines lines of text, or its first
// PreviewChars characters when the text is a single line. The result is
// always a prefix of text.
func Preview(text string) string {
	if strings.Contains(text, "\n") {
		lines := strings.SplitN(text, "\n", PreviewLines+1)
		if len(lines) > PreviewLines {
			lines = lines[:PreviewLines]
		}
		return strings.Join(lines, "\n")
	}

	runes := []rune(text)
	if len(runes) > PreviewChars {
		return string(runes[:PreviewChars])
	}
	return text
}
