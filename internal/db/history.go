package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// History records searches and song lookups.
type History struct {
	db *sql.DB
}

// SongStat is one row of the lookup ranking.
type SongStat struct {
	URL          string
	Title        string
	Artist       string
	Lookups      int
	LastLookedUp time.Time
}

func NewHistory(database *sql.DB) *History {
	return &History{db: database}
}

const schema = `
CREATE TABLE IF NOT EXISTS searches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	query TEXT NOT NULL,
	hits INTEGER NOT NULL,
	searched_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS songs (
	url TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	artist TEXT NOT NULL,
	lookups INTEGER NOT NULL DEFAULT 0,
	last_looked_up TIMESTAMP NOT NULL
);`

// Migrate creates the history tables when they are missing.
func (h *History) Migrate(ctx context.Context) error {
	if _, err := h.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create history tables: %w", err)
	}
	return nil
}

func (h *History) RecordSearch(ctx context.Context, sessionID, query string, hits int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := h.db.ExecContext(ctx,
		`INSERT INTO searches (session_id, query, hits, searched_at) VALUES (?, ?, ?, ?)`,
		sessionID, query, hits, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// RecordLookup counts one lyrics or facts request for a song.
func (h *History) RecordLookup(ctx context.Context, url, title, artist string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO songs (url, title, artist, lookups, last_looked_up)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(url) DO UPDATE SET
			lookups = lookups + 1,
			last_looked_up = excluded.last_looked_up
	`
	if _, err := h.db.ExecContext(ctx, query, url, title, artist, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record lookup for %s: %w", url, err)
	}
	return nil
}

// TopSongs returns the most looked-up songs, most popular first.
func (h *History) TopSongs(ctx context.Context, limit int) ([]SongStat, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := h.db.QueryContext(ctx,
		`SELECT url, title, artist, lookups, last_looked_up FROM songs ORDER BY lookups DESC, url ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var stats []SongStat
	for rows.Next() {
		var s SongStat
		if err := rows.Scan(&s.URL, &s.Title, &s.Artist, &s.Lookups, &s.LastLookedUp); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return stats, nil
}

// SearchCount returns how many searches a session made.
func (h *History) SearchCount(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM searches WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count searches: %w", err)
	}
	return n, nil
}
