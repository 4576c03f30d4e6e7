package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DBTX abstracts *sqlx.DB for the adapters so tests can run against sqlmock.
type DBTX interface {
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PingContext(ctx context.Context) error
}

// Dialect selects the SQL flavour of the key-value queries.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectOracle Dialect = "oracle"
)
