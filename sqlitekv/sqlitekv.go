// Package sqlitekv provides an assetcache loader that snapshots a key/value
// table from a SQLite database file.
//
// The database is opened read-only through the pure-Go modernc.org/sqlite
// driver, so no CGO is required. The snapshot is taken once, when the asset
// is loaded; later writes to the file are not observed.
package sqlitekv

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"time"

	// Register the pure-Go SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/giantswarm/assetcache/internal/logging"
	"github.com/giantswarm/assetcache/internal/sentinel"
)

// ErrInvalidIdentifier is returned when a table or column name in Query is
// not a plain SQL identifier.
const ErrInvalidIdentifier = sentinel.Error("invalid SQL identifier")

// DefaultBusyTimeout is how long a load waits on a database locked by a
// writer when Query.BusyTimeout is zero.
const DefaultBusyTimeout = 5 * time.Second

// identifierPattern matches identifiers that are safe to interpolate into a
// query without quoting.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Query selects the table and columns a Table load reads.
type Query struct {
	Table       string        // Table to snapshot
	KeyColumn   string        // Column holding keys (text)
	ValueColumn string        // Column holding values (blob or text)
	BusyTimeout time.Duration // Wait on a locked database (zero uses DefaultBusyTimeout)
}

// validate checks that all identifiers are set and safe to interpolate.
func (q Query) validate() error {
	for _, f := range []struct{ name, value string }{
		{"table", q.Table},
		{"key column", q.KeyColumn},
		{"value column", q.ValueColumn},
	} {
		if !identifierPattern.MatchString(f.value) {
			return ErrInvalidIdentifier.Withf("%s %q", f.name, f.value)
		}
	}
	return nil
}

func (q Query) busyTimeout() time.Duration {
	if q.BusyTimeout > 0 {
		return q.BusyTimeout
	}
	return DefaultBusyTimeout
}

// Table loads every row of Query.Table into a map from key to value.
// When a key appears more than once, the row with the highest rowid wins.
type Table struct{}

// Load implements assetcache.Loader.
func (Table) Load(path string, q Query) (map[string][]byte, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	// Opening a missing file read-only fails lazily and with a vague
	// message; report it up front instead.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(%d)",
		(&url.URL{Path: path}).EscapedPath(), q.busyTimeout().Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logging.Logger().Warn("sqlitekv: close sqlite", "path", path, "error", closeErr)
		}
	}()

	// Single connection: a short-lived session, not a pool.
	db.SetMaxOpenConns(1)

	return snapshot(context.Background(), db, q)
}

// snapshot reads all rows of the configured table.
func snapshot(ctx context.Context, db *sql.DB, q Query) (map[string][]byte, error) {
	//nolint:gosec // identifiers are validated against identifierPattern.
	query := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY rowid", q.KeyColumn, q.ValueColumn, q.Table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", q.Table, err)
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", q.Table, err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", q.Table, err)
	}
	return out, nil
}
