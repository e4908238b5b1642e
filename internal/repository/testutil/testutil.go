// Package testutil provides throwaway migrated databases for repository
// and service tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"faqdesk/backend/internal/db"
	"faqdesk/backend/internal/snowflake"
)

// NewTestDB opens a migrated SQLite database in a temp directory. The
// database is closed and removed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if err := snowflake.Init(1); err != nil {
		t.Fatalf("init snowflake: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}
