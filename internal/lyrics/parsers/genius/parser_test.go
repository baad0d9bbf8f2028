package genius

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/song.html")
	require.NoError(t, err)
	return string(data)
}

func TestPage_Lyrics(t *testing.T) {
	page, err := ParsePage("https://genius.com/The-beatles-yesterday-lyrics", loadFixture(t))
	require.NoError(t, err)

	text, found := page.Lyrics()
	require.True(t, found)

	lines := strings.Split(text, "\n")
	assert.Equal(t, "[Verse 1]", lines[0])
	assert.Equal(t, "Yesterday, all my troubles seemed so far away", lines[1])
	assert.Equal(t, "Now it looks as though they're here to stay", lines[2])
	assert.NotContains(t, text, "Yesterday Lyrics")
	assert.Contains(t, text, "Oh, yesterday came suddenly")
	assert.NotContains(t, text, "\n\n\n")
}

func TestPage_LyricsMissing(t *testing.T) {
	page, err := ParsePage("u", "<html><body><p>nothing here</p></body></html>")
	require.NoError(t, err)

	text, found := page.Lyrics()
	assert.False(t, found)
	assert.Equal(t, LyricsNotFound, text)

	page, err = ParsePage("u", `<div data-lyrics-container="true">  <br/> </div>`)
	require.NoError(t, err)
	text, found = page.Lyrics()
	assert.False(t, found)
	assert.Equal(t, LyricsNotFound, text)
}

func TestPage_Facts(t *testing.T) {
	page, err := ParsePage("u", loadFixture(t))
	require.NoError(t, err)

	want := "\nAdditional Information:\n" +
		"- Paul McCartney wrote the melody in a dream. - Its working title was \"Scrambled Eggs\".\n"
	assert.Equal(t, want, page.Facts())
}

func TestPage_FactsMissing(t *testing.T) {
	page, err := ParsePage("u", "<html></html>")
	require.NoError(t, err)
	assert.Equal(t, FactsNotFound, page.Facts())
}

func TestPage_ReleaseDateUsesSecondLabel(t *testing.T) {
	page, err := ParsePage("u", loadFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "Aug. 6, 1965", page.ReleaseDate())
}

func TestPage_ReleaseDateSingleLabelFallsBack(t *testing.T) {
	page, err := ParsePage("u", `<span class="LabelWithIcon__Label-hjli77-1">Aug. 6, 1965</span>`)
	require.NoError(t, err)
	assert.Equal(t, ReleaseDateNotFound, page.ReleaseDate())

	page, err = ParsePage("u", "<html></html>")
	require.NoError(t, err)
	assert.Equal(t, ReleaseDateNotFound, page.ReleaseDate())
}

func TestParser_ExtractFromServer(t *testing.T) {
	fixture := loadFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(fixture))
		_ = gz.Close()
	}))
	defer srv.Close()

	p := NewParser(time.Second)
	lyrics, err := p.ExtractLyrics(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, lyrics.Found)
	assert.True(t, strings.HasPrefix(lyrics.Text, "[Verse 1]"))

	facts, err := p.ExtractFacts(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Aug. 6, 1965", facts.ReleaseDate)
}

func TestParser_FetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewParser(time.Second).ExtractLyrics(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestCleanup(t *testing.T) {
	in := "  line one  \n\n\n\n  line   two\n"
	assert.Equal(t, "line one\n\nline two", cleanup(in))
}
