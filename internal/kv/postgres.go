package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindful/internal/common"
	"github.com/dmitrijs2005/mindful/internal/dbx"
	"github.com/dmitrijs2005/mindful/internal/kv/migrations"
	"github.com/dmitrijs2005/mindful/internal/logging"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps values in the kv table of a PostgreSQL database.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres connects through the pgx stdlib driver and migrates the schema.
func OpenPostgres(ctx context.Context, dsn string, logger logging.Logger) (*PostgresStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty postgres dsn", common.ErrorValidation)
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := RunMigrations(ctx, db, "postgres", migrations.Postgres, "postgres", logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewPostgres(db), nil
}

func (r *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	return postgresGet(ctx, r.db, key, false)
}

func (r *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	return postgresSet(ctx, r.db, key, value)
}

func (r *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update locks the row (when it exists) for the duration of the transaction.
func (r *PostgresStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := postgresGet(ctx, tx, key, true)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		return postgresSet(ctx, tx, key, next)
	})
	if errors.Is(err, ErrNoChange) {
		return nil
	}
	return err
}

func (r *PostgresStore) Close() error {
	return r.db.Close()
}

func postgresGet(ctx context.Context, q dbx.DBTX, key string, forUpdate bool) ([]byte, error) {
	query := `SELECT value FROM kv WHERE key = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var value []byte
	err := q.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return value, nil
}

func postgresSet(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	query :=
		`INSERT INTO kv (key, value)
		 VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		 `
	if _, err := q.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
