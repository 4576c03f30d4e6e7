package models

import "database/sql"

// KVEntry is one row of the KV_STORE table.
type KVEntry struct {
	Key       string        `db:"STORE_KEY"`
	Value     string        `db:"STORE_VALUE"`
	ExpiresAt sql.NullInt64 `db:"EXPIRES_AT"` // unix nanoseconds, NULL never expires
}

// Expired reports whether the entry is past its expiry at now (unix nanoseconds).
func (e KVEntry) Expired(now int64) bool {
	return e.ExpiresAt.Valid && e.ExpiresAt.Int64 <= now
}
