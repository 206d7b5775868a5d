package pg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// goose configuration is package-global, so concurrent Migrate calls against
// different pools must not interleave.
var migrateMu sync.Mutex

// Migrate applies pending goose migrations from dir inside fsys, which is
// typically an embed.FS shipped with the domain package. The pool stays
// usable afterwards; goose runs through a database/sql shim over it.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, dir string, log *slog.Logger) error {
	if dir == "" {
		return ErrMigrationPathNotProvided
	}
	if _, err := fs.Stat(fsys, dir); err != nil {
		return fmt.Errorf("%w: %s", ErrMigrationsDirNotFound, dir)
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// gooseLogger routes goose output through slog. A nil logger discards it.
type gooseLogger struct {
	log *slog.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	if g.log != nil {
		g.log.Info(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
	}
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	if g.log != nil {
		g.log.Error(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
	}
}
