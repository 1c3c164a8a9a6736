// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"studyplanner/internal/database"
	"studyplanner/migrations"

	"github.com/jmoiron/sqlx"
)

// NewSQLiteDB opens a migrated SQLite database in a per-test temporary directory.
func NewSQLiteDB(t testing.TB) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, dialect, err := database.Open(ctx, "sqlite3://"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("database.Open() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Up(ctx, db.DB, string(dialect)); err != nil {
		t.Fatalf("migrations.Up() failed: %v", err)
	}

	return db
}

// Clock is a deterministic time source advancing one second per call.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start.UTC()}
}

// Now returns the current time and then advances the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}
