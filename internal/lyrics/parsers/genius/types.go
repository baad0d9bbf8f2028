package genius

import "time"

const (
	LyricsNotFound      = "Lyrics not found."
	FactsNotFound       = "No Facts found."
	ReleaseDateNotFound = "Release date not found."
)

// LyricsResult represents the extracted lyrics result
type LyricsResult struct {
	URL       string    `json:"url"`
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
	Found     bool      `json:"found"`
}

// FactsResult holds the descriptive blocks and release date of a song page.
type FactsResult struct {
	URL         string    `json:"url"`
	ReleaseDate string    `json:"release_date"`
	Facts       string    `json:"facts"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Selectors for the Genius song page markup. Class names carry a build hash
// suffix, so they are matched by prefix.
const (
	lyricsSelector      = `div[data-lyrics-container="true"], div[class*="Lyrics__Container"]`
	excludedSelector    = `[data-exclude-from-selection="true"]`
	descriptionSelector = `div[class*="SongDescription__Content"]`
	dateLabelSelector   = `span[class*="LabelWithIcon__Label"]`
)
