package services

import (
	"context"
	"testing"

	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceAddAssignsIncreasingIDs(t *testing.T) {
	users := NewUserService(newDocs(t))
	ctx := context.Background()

	var last int64
	for _, username := range []string{"ana", "bia", "caio"} {
		u, err := users.Add(ctx, models.User{Username: username, Name: username})
		require.NoError(t, err)
		assert.Greater(t, u.ID, last)
		assert.Equal(t, []string{}, u.Roles)
		last = u.ID

		got, err := users.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
	assert.Equal(t, int64(3), last)
}

func TestUserServiceAddRejectsDuplicateUsername(t *testing.T) {
	users := NewUserService(newDocs(t))
	ctx := context.Background()

	_, err := users.Add(ctx, models.User{Username: "Ana"})
	require.NoError(t, err)

	_, err = users.Add(ctx, models.User{Username: "ana"})
	assert.ErrorIs(t, err, types.ErrConflict)

	_, err = users.Add(ctx, models.User{Username: "  "})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserServiceUpdateMatchesUsernameIgnoringCase(t *testing.T) {
	users := NewUserService(newDocs(t))
	ctx := context.Background()

	created, err := users.Add(ctx, models.User{Username: "ana", Name: "Ana", Roles: []string{"admin"}})
	require.NoError(t, err)

	updated, err := users.Update(ctx, models.User{ID: 99, Username: "ANA", Name: "Ana Souza"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "the stored id is kept")
	assert.Equal(t, "Ana Souza", updated.Name)
	assert.Equal(t, []string{}, updated.Roles, "update replaces the whole record")

	got, err := users.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = users.Update(ctx, models.User{Username: "nobody"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUserServiceRemove(t *testing.T) {
	users := NewUserService(newDocs(t))
	ctx := context.Background()

	a, err := users.Add(ctx, models.User{Username: "ana"})
	require.NoError(t, err)
	b, err := users.Add(ctx, models.User{Username: "bia"})
	require.NoError(t, err)

	require.NoError(t, users.Remove(ctx, a.ID))

	_, err = users.Get(ctx, a.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{b}, all)

	assert.ErrorIs(t, users.Remove(ctx, a.ID), types.ErrNotFound)
}

func TestUserServicePage(t *testing.T) {
	users := NewUserService(newDocs(t))
	ctx := context.Background()

	for _, username := range []string{"a", "b", "c"} {
		_, err := users.Add(ctx, models.User{Username: username})
		require.NoError(t, err)
	}

	page, err := users.Page(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].Username)

	_, err = users.Page(ctx, 0, 2)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}
