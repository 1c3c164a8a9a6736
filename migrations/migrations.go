package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// all lists every schema migration in version order for the given dialect.
func all(dialect goose.Dialect) []*goose.Migration {
	return []*goose.Migration{
		createUsersTable(dialect),
		createStudyPlansTable(dialect),
		createMessagesTable(dialect),
	}
}

// Up applies all pending migrations. dialect is goose's dialect name, "postgres" or "sqlite3".
func Up(ctx context.Context, db *sql.DB, dialect string) error {
	d := goose.Dialect(dialect)

	provider, err := goose.NewProvider(d, db, nil,
		goose.WithDisableGlobalRegistry(true),
		goose.WithGoMigrations(all(d)...),
	)
	if err != nil {
		return fmt.Errorf("goose: failed to create provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose: failed to run migrations: %w", err)
	}

	for _, r := range results {
		slog.InfoContext(ctx, "Migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}

func txFunc(query string) *goose.GoFunc {
	return &goose.GoFunc{
		Mode: goose.TransactionEnabled,
		RunTx: func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// identityColumn is an integer primary key whose values are never handed out twice.
func identityColumn(dialect goose.Dialect) string {
	if dialect == goose.DialectPostgres {
		return "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func timestampType(dialect goose.Dialect) string {
	if dialect == goose.DialectPostgres {
		return "TIMESTAMP WITH TIME ZONE"
	}
	return "DATETIME"
}

func referenceType(dialect goose.Dialect) string {
	if dialect == goose.DialectPostgres {
		return "BIGINT"
	}
	return "INTEGER"
}
