package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukalov/lyricecho/internal/db"
)

func newHistory(t *testing.T) *db.History {
	t.Helper()
	database, err := db.Open(":memory:", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(database) })

	h := db.NewHistory(database)
	require.NoError(t, h.Migrate(context.Background()))
	return h
}

func TestPrintTop_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printTop(context.Background(), &out, newHistory(t), 10, ""))
	assert.Equal(t, "no lookups recorded yet\n", out.String())
}

func TestPrintTop_SongsAndSessionSearches(t *testing.T) {
	ctx := context.Background()
	h := newHistory(t)
	require.NoError(t, h.RecordSearch(ctx, "amzn1.echo-api.session.1", "yesterday", 3))
	require.NoError(t, h.RecordSearch(ctx, "amzn1.echo-api.session.1", "let it be", 1))
	require.NoError(t, h.RecordLookup(ctx, "https://genius.com/The-beatles-yesterday-lyrics", "Yesterday", "The Beatles"))
	require.NoError(t, h.RecordLookup(ctx, "https://genius.com/The-beatles-yesterday-lyrics", "Yesterday", "The Beatles"))
	require.NoError(t, h.RecordLookup(ctx, "https://genius.com/The-beatles-let-it-be-lyrics", "Let It Be", "The Beatles"))

	var out bytes.Buffer
	require.NoError(t, printTop(ctx, &out, h, 1, "amzn1.echo-api.session.1"))

	text := out.String()
	assert.Contains(t, text, "session amzn1.echo-api.session.1 made 2 searches")
	assert.Contains(t, text, "LOOKUPS")
	assert.Contains(t, text, "Yesterday")
	assert.NotContains(t, text, "Let It Be")
}
