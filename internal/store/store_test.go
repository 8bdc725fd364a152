package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmccall/shelftrack-golang/internal/database"
)

// newTestDB opens an in-memory database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenDBAtPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := database.NewSchemaManager(db, database.SchemaConfig{Name: "test", Version: 2})
	require.NoError(t, m.Initialize())
	return db
}
