// db.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"github.com/sukalov/lyricecho/internal/logger"
)

// Open connects to the history database. Remote libsql URLs go through the
// libsql driver; file: and :memory: URLs use the embedded sqlite driver.
func Open(dbURL, authToken string) (*sql.DB, error) {
	driver, dsn, err := driverFor(dbURL, authToken)
	if err != nil {
		return nil, err
	}

	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if driver == "sqlite" {
		// a single connection keeps :memory: databases shared across queries
		database.SetMaxOpenConns(1)
	} else {
		database.SetMaxOpenConns(25)
		database.SetMaxIdleConns(25)
		database.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return database, nil
}

func driverFor(dbURL, authToken string) (driver, dsn string, err error) {
	if dbURL == ":memory:" || strings.HasPrefix(dbURL, "file:") {
		return "sqlite", dbURL, nil
	}
	if authToken == "" {
		return "libsql", dbURL, nil
	}

	u, err := url.Parse(dbURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid database url: %w", err)
	}
	q := u.Query()
	q.Set("authToken", authToken)
	u.RawQuery = q.Encode()
	return "libsql", u.String(), nil
}

// Close closes the database connection safely
func Close(database *sql.DB) {
	if database != nil {
		if err := database.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}
}
