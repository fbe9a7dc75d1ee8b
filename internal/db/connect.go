// Package db opens the service database and bootstraps its schema.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:sihtests.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/sihtests?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS results (
  id TEXT PRIMARY KEY,
  anonymous_user_id TEXT NOT NULL,
  test_name TEXT NOT NULL,
  test_type TEXT NOT NULL,
  answers_json TEXT NOT NULL,
  result_json TEXT NOT NULL,
  language TEXT NOT NULL DEFAULT 'en',
  completed_at INTEGER NOT NULL,
  ip_hash TEXT NOT NULL DEFAULT '',
  device_hash TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_results_user ON results(anonymous_user_id, completed_at DESC);
CREATE INDEX IF NOT EXISTS idx_results_test ON results(test_name, completed_at DESC);

CREATE TABLE IF NOT EXISTS user_analytics (
  anonymous_user_id TEXT PRIMARY KEY,
  total_tests INTEGER NOT NULL DEFAULT 0,
  tests_by_type_json TEXT NOT NULL DEFAULT '{}',
  preferred_language TEXT NOT NULL DEFAULT 'en',
  last_active_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_stats (
  day TEXT PRIMARY KEY,
  total_tests INTEGER NOT NULL DEFAULT 0,
  test_breakdown_json TEXT NOT NULL DEFAULT '{}',
  language_json TEXT NOT NULL DEFAULT '{}',
  severity_json TEXT NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS event_log (
  seq INTEGER PRIMARY KEY AUTOINCREMENT, -- BIGSERIAL in Postgres
  typ TEXT NOT NULL,                     -- e.g., ResultSaved
  key TEXT NOT NULL,                     -- natural key: result id
  data TEXT NOT NULL,                    -- JSON payload
  created_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS results (
  id TEXT PRIMARY KEY,
  anonymous_user_id TEXT NOT NULL,
  test_name TEXT NOT NULL,
  test_type TEXT NOT NULL,
  answers_json TEXT NOT NULL,
  result_json TEXT NOT NULL,
  language TEXT NOT NULL DEFAULT 'en',
  completed_at BIGINT NOT NULL,
  ip_hash TEXT NOT NULL DEFAULT '',
  device_hash TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_results_user ON results(anonymous_user_id, completed_at DESC);
CREATE INDEX IF NOT EXISTS idx_results_test ON results(test_name, completed_at DESC);

CREATE TABLE IF NOT EXISTS user_analytics (
  anonymous_user_id TEXT PRIMARY KEY,
  total_tests INTEGER NOT NULL DEFAULT 0,
  tests_by_type_json TEXT NOT NULL DEFAULT '{}',
  preferred_language TEXT NOT NULL DEFAULT 'en',
  last_active_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_stats (
  day TEXT PRIMARY KEY,
  total_tests INTEGER NOT NULL DEFAULT 0,
  test_breakdown_json TEXT NOT NULL DEFAULT '{}',
  language_json TEXT NOT NULL DEFAULT '{}',
  severity_json TEXT NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS event_log (
  seq BIGSERIAL PRIMARY KEY,
  typ TEXT NOT NULL,
  key TEXT NOT NULL,
  data TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`
