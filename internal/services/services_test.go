package services

import (
	"context"
	"testing"

	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/stretchr/testify/require"
)

// newDocs returns a seeded file store in a temp dir.
func newDocs(t *testing.T) store.DocumentStore {
	t.Helper()

	docs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Seed(context.Background(), docs))
	return docs
}
