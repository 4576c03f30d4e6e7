package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quiz-board/internal/domain"
	"quiz-board/internal/repository/models"
)

type kvQueries struct {
	get    string
	upsert string
	delete string
}

var dialectQueries = map[Dialect]kvQueries{
	DialectSQLite: {
		get: `SELECT store_key, store_value, expires_at FROM kv_store WHERE store_key = ?`,
		upsert: `INSERT INTO kv_store (store_key, store_value, expires_at) VALUES (?, ?, ?)
ON CONFLICT(store_key) DO UPDATE SET store_value = excluded.store_value, expires_at = excluded.expires_at`,
		delete: `DELETE FROM kv_store WHERE store_key = ?`,
	},
	DialectOracle: {
		get: `SELECT store_key, store_value, expires_at FROM kv_store WHERE store_key = :1`,
		upsert: `MERGE INTO kv_store t
USING (SELECT :1 AS store_key, :2 AS store_value, :3 AS expires_at FROM dual) s
ON (t.store_key = s.store_key)
WHEN MATCHED THEN UPDATE SET t.store_value = s.store_value, t.expires_at = s.expires_at
WHEN NOT MATCHED THEN INSERT (store_key, store_value, expires_at) VALUES (s.store_key, s.store_value, s.expires_at)`,
		delete: `DELETE FROM kv_store WHERE store_key = :1`,
	},
}

// KVDatabaseAdapter implements domain.Cache on a single SQL table.
type KVDatabaseAdapter struct {
	db      DBTX
	queries kvQueries
	now     func() time.Time
}

// NewKVDatabaseAdapter creates a key-value adapter for the given dialect.
func NewKVDatabaseAdapter(db DBTX, dialect Dialect) (*KVDatabaseAdapter, error) {
	queries, ok := dialectQueries[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}
	return &KVDatabaseAdapter{db: db, queries: queries, now: time.Now}, nil
}

// Get returns domain.ErrCacheMiss for absent and expired keys.
func (a *KVDatabaseAdapter) Get(ctx context.Context, key string) (string, error) {
	var entry models.KVEntry
	err := a.db.QueryRowxContext(ctx, a.queries.get, key).Scan(&entry.Key, &entry.Value, &entry.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	if entry.Expired(a.now().UnixNano()) {
		return "", domain.ErrCacheMiss
	}
	return entry.Value, nil
}

// Set upserts the value. A zero expiration stores a row that never expires.
func (a *KVDatabaseAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	var expiresAt sql.NullInt64
	if expiration > 0 {
		expiresAt = sql.NullInt64{Int64: a.now().Add(expiration).UnixNano(), Valid: true}
	}
	if _, err := a.db.ExecContext(ctx, a.queries.upsert, key, value, expiresAt); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (a *KVDatabaseAdapter) Delete(ctx context.Context, key string) error {
	if _, err := a.db.ExecContext(ctx, a.queries.delete, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (a *KVDatabaseAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

var _ domain.Cache = (*KVDatabaseAdapter)(nil)
