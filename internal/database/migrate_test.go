package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_SQLite(t *testing.T) {
	db, err := NewSQLXDB(context.Background(), DriverSQLite, "file:"+t.TempDir()+"/test.db")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(context.Background(), db.DB, DriverSQLite))
	// second run is a no-op
	require.NoError(t, RunMigrations(context.Background(), db.DB, DriverSQLite))

	_, err = db.Exec(`INSERT INTO kv_store (store_key, store_value, expires_at) VALUES (?, ?, NULL)`, "k", "v")
	require.NoError(t, err)

	var value string
	require.NoError(t, db.Get(&value, `SELECT store_value FROM kv_store WHERE store_key = ?`, "k"))
	assert.Equal(t, "v", value)
}

func TestRunOracleMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"m/000002_b.up.sql":   {Data: []byte("CREATE TABLE b (id NUMBER)\n")},
		"m/000001_a.up.sql":   {Data: []byte("CREATE TABLE a (id NUMBER)")},
		"m/000001_a.down.sql": {Data: []byte("DROP TABLE a")},
	}

	t.Run("AppliesInOrder", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id NUMBER)")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id NUMBER)")).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, runOracleMigrations(context.Background(), db, fsys, "m"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SkipsExistingTables", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE a").WillReturnError(errors.New("ORA-00955: name is already used by an existing object"))
		mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, runOracleMigrations(context.Background(), db, fsys, "m"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("StopsOnError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE a").WillReturnError(errors.New("ORA-01031: insufficient privileges"))

		assert.Error(t, runOracleMigrations(context.Background(), db, fsys, "m"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewSQLXDB_UnsupportedDriver(t *testing.T) {
	_, err := NewSQLXDB(context.Background(), "postgres", "")
	assert.Error(t, err)
}
