package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

//go:embed sql
var migrations embed.FS

func migrationSource() *migrate.EmbedFileSystemMigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "sql",
	}
}

// Migrate aplica as migrações pendentes das tabelas profiles e kpi_goals
func Migrate(ctx context.Context, db *sql.DB) error {
	type result struct {
		n   int
		err error
	}

	done := make(chan result, 1)
	go func() {
		n, err := migrate.Exec(db, "postgres", migrationSource(), migrate.Up)
		done <- result{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("timeout nas migrações: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("falha ao aplicar migrações: %w", res.err)
		}
		logrus.WithField("count", res.n).Info("Migrações aplicadas")
		return nil
	}
}
