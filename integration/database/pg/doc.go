// Package pg manages PostgreSQL connection pools for the account and
// flashcard databases, with goose migrations and transaction plumbing on top
// of pgx.
//
// Connect builds a verified pgxpool with retry, so a database that is still
// booting does not kill the service:
//
//	pool, err := pg.Connect(ctx, pg.Config{ConnectionString: databaseURL})
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
// Migrations ship embedded in the domain packages and are applied at startup:
//
//	//go:embed migrations/*.sql
//	var migrationsFS embed.FS
//
//	if err := pg.Migrate(ctx, pool, migrationsFS, "migrations", log); err != nil {
//		return err
//	}
//
// Storage code that must work both inside and outside a transaction resolves
// its executor from the context:
//
//	tx, err := pool.Begin(ctx)
//	if err != nil {
//		return err
//	}
//	defer tx.Rollback(ctx)
//
//	ctx = pg.WithTx(ctx, tx)
//	// calls below run their queries on tx via pg.QuerierFromContext
//
// The Is*Error helpers classify pgx errors (no rows, unique and foreign key
// violations, closed transaction) so managers can map them onto their own
// sentinels.
package pg
