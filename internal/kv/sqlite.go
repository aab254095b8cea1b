package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindful/internal/common"
	"github.com/dmitrijs2005/mindful/internal/dbx"
	"github.com/dmitrijs2005/mindful/internal/filex"
	"github.com/dmitrijs2005/mindful/internal/kv/migrations"
	"github.com/dmitrijs2005/mindful/internal/logging"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps values in the kv table of a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite wraps an open database that already has the kv table.
func NewSQLite(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens (or creates) the database file at path and migrates it.
func OpenSQLite(ctx context.Context, path string, logger logging.Logger) (*SQLiteStore, error) {
	if path == "" {
		path = "mindful.db"
	}
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := RunMigrations(ctx, db, "sqlite3", migrations.SQLite, "sqlite", logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLite(db), nil
}

func (r *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	return sqliteGet(ctx, r.db, key)
}

func (r *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	return sqliteSet(ctx, r.db, key, value)
}

func (r *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// Update reads and writes key inside one transaction.
func (r *SQLiteStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := sqliteGet(ctx, tx, key)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		return sqliteSet(ctx, tx, key, next)
	})
	if errors.Is(err, ErrNoChange) {
		return nil
	}
	return err
}

func (r *SQLiteStore) Close() error {
	return r.db.Close()
}

func sqliteGet(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func sqliteSet(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
