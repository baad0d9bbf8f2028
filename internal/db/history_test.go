package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()
	database, err := Open(":memory:", "")
	require.NoError(t, err)
	t.Cleanup(func() { Close(database) })

	h := NewHistory(database)
	require.NoError(t, h.Migrate(context.Background()))
	return h
}

func TestDriverFor(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		token      string
		wantDriver string
		wantDSN    string
	}{
		{"remote with token", "libsql://songs.turso.io", "tok", "libsql", "libsql://songs.turso.io?authToken=tok"},
		{"remote without token", "libsql://songs.turso.io", "", "libsql", "libsql://songs.turso.io"},
		{"token is escaped", "libsql://songs.turso.io", "a+b/c=&d", "libsql", "libsql://songs.turso.io?authToken=a%2Bb%2Fc%3D%26d"},
		{"existing query kept", "libsql://songs.turso.io?tls=1", "tok", "libsql", "libsql://songs.turso.io?authToken=tok&tls=1"},
		{"local file", "file:history.db", "", "sqlite", "file:history.db"},
		{"in memory", ":memory:", "tok", "sqlite", ":memory:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, dsn, err := driverFor(tt.url, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, d)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}

	_, _, err := driverFor("libsql://songs.turso.io/%zz", "tok")
	assert.Error(t, err)
}

func TestHistory_RecordSearch(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory(t)

	require.NoError(t, h.RecordSearch(ctx, "s1", "yesterday", 3))
	require.NoError(t, h.RecordSearch(ctx, "s1", "let it be", 0))
	require.NoError(t, h.RecordSearch(ctx, "s2", "help", 2))

	n, err := h.SearchCount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestHistory_TopSongs(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory(t)

	require.NoError(t, h.RecordLookup(ctx, "https://genius.com/a", "Yesterday", "The Beatles"))
	require.NoError(t, h.RecordLookup(ctx, "https://genius.com/b", "Help!", "The Beatles"))
	require.NoError(t, h.RecordLookup(ctx, "https://genius.com/a", "Yesterday", "The Beatles"))

	top, err := h.TopSongs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Yesterday", top[0].Title)
	assert.Equal(t, 2, top[0].Lookups)
	assert.Equal(t, 1, top[1].Lookups)

	top, err = h.TopSongs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}
