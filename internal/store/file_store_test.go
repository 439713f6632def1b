package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/localnerve/enxovaldb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "documents")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())
	assert.Equal(t, filepath.Join(dir, "items.json"), s.Path(Items))

	require.NoError(t, s.Replace(context.Background(), Items, []byte("[]\n")))

	info, err := os.Stat(s.Path(Items))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Replace(ctx, Users, []byte("[]")))
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Update(ctx, Users, func(b []byte) ([]byte, error) { return b, nil }))
	}
	require.NoError(t, s.Ping(ctx))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}

func TestFileStoreRewriteKeepsFileMode(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Replace(ctx, Categories, []byte("[]\n")))
	require.NoError(t, os.Chmod(s.Path(Categories), 0o600))

	require.NoError(t, s.Replace(ctx, Categories, []byte(`[{"id":1,"name":"Bedding"}]`)))

	info, err := os.Stat(s.Path(Categories))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := s.Load(ctx, Categories)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Bedding"}]`, string(data))
}

func TestFileStoreRejectsPathNames(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "../users", "a/b", `a\b`, ".hidden"} {
		_, err := s.Load(ctx, name)
		assert.ErrorIs(t, err, types.ErrInvalidArgument, name)
		assert.ErrorIs(t, s.Replace(ctx, name, []byte("[]")), types.ErrInvalidArgument, name)
	}
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	s := newFileStore(t)
	require.NoError(t, s.Replace(context.Background(), Users, []byte("[]")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Load(ctx, Users)
	assert.ErrorIs(t, err, types.ErrStorageRead)
}

func TestFileStorePingFailsWhenDirRemoved(t *testing.T) {
	s := newFileStore(t)
	require.NoError(t, os.RemoveAll(s.Dir()))
	assert.Error(t, s.Ping(context.Background()))
}
