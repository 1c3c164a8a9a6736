package database

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect names the SQL flavour behind a connection string.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == Postgres {
		return "pgx"
	}
	return "sqlite3"
}

// ParseURL splits a DATABASE_URL into its dialect and the DSN understood by the driver.
// postgres:// and postgresql:// URLs go to pgx unchanged; sqlite3://, sqlite:// and
// bare paths are treated as SQLite files.
func ParseURL(rawURL string) (Dialect, string, error) {
	switch {
	case rawURL == "":
		return "", "", fmt.Errorf("database url is empty")
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return Postgres, rawURL, nil
	case strings.HasPrefix(rawURL, "sqlite3://"):
		return SQLite, strings.TrimPrefix(rawURL, "sqlite3://"), nil
	case strings.HasPrefix(rawURL, "sqlite://"):
		return SQLite, strings.TrimPrefix(rawURL, "sqlite://"), nil
	case strings.Contains(rawURL, "://"):
		return "", "", fmt.Errorf("unsupported database url scheme: %s", rawURL[:strings.Index(rawURL, "://")])
	default:
		return SQLite, rawURL, nil
	}
}

// Open connects to the store selected by rawURL.
func Open(ctx context.Context, rawURL string) (*sqlx.DB, Dialect, error) {
	dialect, dsn, err := ParseURL(rawURL)
	if err != nil {
		return nil, "", err
	}

	if dialect == SQLite {
		dsn = withSQLiteParams(dsn)
	}

	db, err := sqlx.ConnectContext(ctx, dialect.DriverName(), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}

	if dialect == SQLite {
		// SQLite allows one writer.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	return db, dialect, nil
}

// sqliteParams are applied by go-sqlite3 to every connection it opens, including ones the
// pool creates after discarding a broken connection.
var sqliteParams = []string{
	"_foreign_keys=on",
	"_busy_timeout=5000",
	"_journal_mode=WAL",
	"_synchronous=NORMAL",
}

func withSQLiteParams(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(sqliteParams, "&")
}
