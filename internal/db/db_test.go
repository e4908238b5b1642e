package db_test

import (
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"faqdesk/backend/internal/db"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "faqdesk-db-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NotNil(t, database)
	defer database.Close()

	for _, table := range []string{"faqs", "faq_translations"} {
		var name string
		err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err)
		require.Equal(t, table, name)
	}
}

// Pragmas must be embedded in the DSN so every connection in the pool has
// them; busy_timeout in particular prevents "database is locked" errors
// under concurrent background saves.
func TestBuildDSN(t *testing.T) {
	dsn := db.BuildDSN("test.db")
	require.Contains(t, dsn, "file:test.db")
	require.Contains(t, dsn, "journal_mode")
	require.Contains(t, dsn, "WAL")
	require.Contains(t, dsn, "foreign_keys")
	require.Contains(t, dsn, "ON")
	require.Contains(t, dsn, "busy_timeout")
	require.Contains(t, dsn, "30000")
	require.Contains(t, dsn, "synchronous")
	require.Contains(t, dsn, "NORMAL")
}
