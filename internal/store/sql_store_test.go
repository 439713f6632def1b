package store

import (
	"context"
	"testing"

	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedVersion(t *testing.T, s *SQLStore, name string) uint64 {
	t.Helper()

	var doc models.StoredDocument
	require.NoError(t, s.DB().Where("document_name = ?", name).First(&doc).Error)
	return doc.DocumentVersion
}

func TestSQLStoreVersionAdvancesPerWrite(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Ensure(ctx, Items, []byte("[]")))
	assert.Equal(t, uint64(1), storedVersion(t, s, Items))

	require.NoError(t, s.Update(ctx, Items, func([]byte) ([]byte, error) {
		return []byte(`[{"id":1}]`), nil
	}))
	assert.Equal(t, uint64(2), storedVersion(t, s, Items))

	require.NoError(t, s.Replace(ctx, Items, []byte(`[]`)))
	assert.Equal(t, uint64(3), storedVersion(t, s, Items))
}

func TestSQLStoreReplaceCreatesRow(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Replace(ctx, PersonalInfos, []byte(`{"name":"Elder Silva"}`)))

	data, err := s.Load(ctx, PersonalInfos)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Elder Silva"}`, string(data))
	assert.Equal(t, uint64(1), storedVersion(t, s, PersonalInfos))
}

func TestSQLStoreOneRowPerDocument(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, s))
	require.NoError(t, Seed(ctx, s))

	var count int64
	require.NoError(t, s.DB().Model(&models.StoredDocument{}).Count(&count).Error)
	assert.Equal(t, int64(len(Names)), count)
}

func TestSQLStorePingAfterClose(t *testing.T) {
	s := newSQLiteStore(t)
	require.NoError(t, s.Close())

	assert.Error(t, s.Ping(context.Background()))

	_, err := s.Load(context.Background(), Users)
	assert.ErrorIs(t, err, types.ErrStorageRead)
}
