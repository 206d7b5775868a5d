package auth

import (
	"context"
	"embed"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebeWizard/flashcard-server/integration/database/pg"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the account schema to the auth database.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	return pg.Migrate(ctx, pool, migrationsFS, "migrations", log)
}
