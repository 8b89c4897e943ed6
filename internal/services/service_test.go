package services

import (
	"testing"

	"github.com/bimma2006/dhanukayaff/internal/database"
)

// setupTestStore points the global store at a fresh temp directory, the same
// way handler tests swap in an in-memory database.
func setupTestStore(t *testing.T) {
	t.Helper()
	database.DB = database.NewFileStore(t.TempDir())
	ResetPlayerCache()
}
