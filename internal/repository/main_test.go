//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guttosm/catering-service/internal/testutil"
)

// TestMain sets up a shared MongoDB container for all integration tests in
// this package. One container for the package instead of one per test.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDBFromSharedContainer connects to the shared container with a
// unique database name for test isolation.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	dbName := testutil.SanitizeDBName(t.Name())
	uri := testutil.GetSharedContainerURI()
	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	return db
}
