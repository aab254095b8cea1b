// Package kv is the backing key-value store the journal persists into.
//
// The journal only ever touches two keys (the session and the check-in
// array), so every backend implements the same small Store contract and is
// chosen at start-up from configuration:
//
//   - memory   : process-local map, used by tests and throwaway sessions
//   - sqlite   : single-file database (default), schema managed by goose
//   - postgres : pgx through database/sql, schema managed by goose
//   - redis    : go-redis, Update via WATCH/MULTI
//   - s3       : one object per key in an S3 (or MinIO) bucket
package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mindful/internal/logging"
)

// ErrNoChange may be returned by an Update callback to leave the stored
// value untouched. Update then returns nil.
var ErrNoChange = errors.New("kv: no change")

// UpdateFunc receives the current value (nil when the key is absent) and
// returns the value to store.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is a byte-valued key-value store.
type Store interface {
	// Get returns the value for key or common.ErrorNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Update performs a read-modify-write of key as one backend operation.
	// Atomicity depends on the backend; see the package documentation of
	// each implementation.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverS3       = "s3"
)

// Options selects and parameterises a backend.
type Options struct {
	Driver string

	SQLitePath  string
	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	// Timeout bounds connection checks and migrations at start-up.
	Timeout time.Duration
}

// Open builds the backend named by opts.Driver, verifies connectivity and
// applies migrations where the backend has a schema.
func Open(ctx context.Context, opts Options, logger logging.Logger) (Store, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	log := logger.With("driver", opts.Driver)

	var (
		s   Store
		err error
	)

	switch opts.Driver {
	case DriverMemory:
		s = NewMemory()
	case DriverSQLite, "":
		s, err = OpenSQLite(ctx, opts.SQLitePath, log)
	case DriverPostgres:
		s, err = OpenPostgres(ctx, opts.PostgresDSN, log)
	case DriverRedis:
		s, err = OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	case DriverS3:
		s, err = OpenS3(ctx, S3Options{
			Bucket:    opts.S3Bucket,
			Region:    opts.S3Region,
			Endpoint:  opts.S3Endpoint,
			AccessKey: opts.S3AccessKey,
			SecretKey: opts.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", opts.Driver, err)
	}

	log.Debug(ctx, "store opened")
	return s, nil
}
