package kv

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/dmitrijs2005/mindful/internal/logging"
	"github.com/pressly/goose/v3"
)

// goose keeps base FS and dialect in package globals.
var migrateMu sync.Mutex

// RunMigrations applies every pending migration found in dir of fsys.
// Applying an up-to-date schema is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS, dir string, logger logging.Logger) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(fsys)
	goose.SetLogger(gooseLogger{ctx: ctx, l: logger})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return nil
}

// gooseLogger routes goose progress output into the application logger.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Debug(g.ctx, fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(g.ctx, fmt.Sprintf(format, v...))
	os.Exit(1)
}
