package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies schema migrations in file name order.
// Migrations are idempotent so it's safe to run it on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("can't list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		query, err := migrations.ReadFile(file)
		if err != nil {
			return fmt.Errorf("can't read migration %s: %w", file, err)
		}

		if _, err = db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("can't apply migration %s: %w", file, err)
		}
	}

	return nil
}
