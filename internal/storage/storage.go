// Package storage opens the relational store behind the API and prepares its schema.
package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

//go:embed schema.sql data/*.csv
var files embed.FS

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know about
	sqlx.BindDriver(driverSQLite, sqlx.QUESTION)
}

// ErrUnsupportedURL is returned for database URLs with an unknown scheme
var ErrUnsupportedURL = errors.New("unsupported database url")

// Open connects to the database named by databaseURL and bootstraps the schema.
//
// postgres:// and postgresql:// URLs use lib/pq. sqlite:// URLs, file: URIs,
// ":memory:" and bare paths use the pure-Go SQLite driver.
func Open(ctx context.Context, databaseURL string) (*sqlx.DB, error) {
	driver, dsn, err := driverFor(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == driverSQLite {
		// One writer at a time; also keeps ":memory:" on a single database
		db.SetMaxOpenConns(1)
	}

	if err := Bootstrap(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Bootstrap creates the tables if they do not exist yet
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	schema, err := files.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	for _, stmt := range strings.Split(string(schema), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}

// driverFor picks the sql driver and data source name for a database URL
func driverFor(databaseURL string) (string, string, error) {
	raw := strings.TrimSpace(databaseURL)
	switch {
	case raw == "":
		return "", "", fmt.Errorf("%w: empty", ErrUnsupportedURL)
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return driverPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: sqlite url without a path", ErrUnsupportedURL)
		}
		return driverSQLite, sqliteDSN(path), nil
	case strings.HasPrefix(raw, "file:"), raw == ":memory:":
		return driverSQLite, sqliteDSN(raw), nil
	case strings.Contains(raw, "://"):
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedURL, raw[:strings.Index(raw, "://")])
	default:
		return driverSQLite, sqliteDSN(filepath.Clean(raw)), nil
	}
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}
