package kv

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/mindful/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestSQLiteStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store { return NewSQLite(setupSQLite(t)) })
}

func TestOpenSQLite_MigratesAndReopens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mindful.db")
	log := logging.NewNopLogger()

	s, err := OpenSQLite(ctx, path, log)
	require.NoError(t, err)
	assert.True(t, tableExists(t, s.db, "kv"))
	assert.True(t, tableExists(t, s.db, "goose_db_version"))
	require.NoError(t, s.Set(ctx, "mindful_data", []byte("[]")))
	require.NoError(t, s.Close())

	// second open runs migrations again as a no-op and keeps the data
	s, err = OpenSQLite(ctx, path, log)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, "mindful_data")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v))
}

func TestSQLiteStore_ErrorsWrapped(t *testing.T) {
	db := setupSQLite(t)
	s := NewSQLite(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := s.Get(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get kv[k]")

	err = s.Set(ctx, "k", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set kv[k]")

	err = s.Delete(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete kv[k]")

	err = s.Update(ctx, "k", func(cur []byte) ([]byte, error) { return cur, nil })
	require.Error(t, err)
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()
	log := logging.NewNopLogger()

	s, err := Open(ctx, Options{Driver: DriverMemory}, log)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(ctx, Options{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.db")}, log)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Options{Driver: "etcd"}, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown storage driver "etcd"`)

	_, err = Open(ctx, Options{Driver: DriverPostgres}, log)
	require.Error(t, err)

	_, err = Open(ctx, Options{Driver: DriverS3}, log)
	require.Error(t, err)
}
