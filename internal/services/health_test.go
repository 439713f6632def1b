package services

import (
	"context"
	"os"
	"testing"

	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	docs := newDocs(t)
	cfg := &config.Config{StoreType: config.StoreFile, DataDir: "/tmp/test"}
	ctx := context.Background()

	result := HealthCheck(ctx, cfg, docs, discardLog())
	assert.True(t, result.Healthy())
	assert.Equal(t, "ok", result.Store)
	assert.Equal(t, "ok", result.Documents)
	assert.Equal(t, "file", result.Details["store_type"])

	fileStore := docs.(*store.FileStore)
	require.NoError(t, os.Remove(fileStore.Path(store.Categories)))

	result = HealthCheck(ctx, cfg, docs, discardLog())
	assert.False(t, result.Healthy())
	assert.Equal(t, "error", result.Documents)
	assert.Contains(t, result.Details, "categories_error")
	assert.Contains(t, result.ErrorMessage, "categories")
}
