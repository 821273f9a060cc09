package database

import (
	"testing"

	"github.com/diegoclair/reminder-bot/migrator/sqlite"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database with the reminder schema
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "Failed to create test database")

	err = sqlite.Migrate(db.DB())
	require.NoError(t, err, "Failed to run migrations on test database")

	t.Cleanup(func() {
		require.NoError(t, db.Close(), "Failed to close test database")
	})

	return db
}
