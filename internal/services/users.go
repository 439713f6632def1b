package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/localnerve/enxovaldb/internal/types"
)

// UserService manages the users document.
//
// Users are identified by id for get and remove, and by username (case-insensitive)
// for update. Usernames are unique regardless of case.
type UserService struct {
	registry[models.User]
}

// NewUserService returns a service over the users document of docs.
func NewUserService(docs store.DocumentStore) *UserService {
	return &UserService{registry: newRegistry[models.User](docs, store.Users, "user")}
}

// Add stores a new user under the next free id.
func (s *UserService) Add(ctx context.Context, draft models.User) (models.User, error) {
	if strings.TrimSpace(draft.Username) == "" {
		return models.User{}, fmt.Errorf("%w: username is required", types.ErrInvalidArgument)
	}

	return s.add(ctx, draft.Normalize(), func(records []models.User, draft models.User) error {
		for _, u := range records {
			if strings.EqualFold(u.Username, draft.Username) {
				return fmt.Errorf("%w: username %q is already taken", types.ErrConflict, draft.Username)
			}
		}
		return nil
	})
}

// Update replaces the user whose username matches user.Username, ignoring case.
// The stored id is kept; every other field comes from user.
func (s *UserService) Update(ctx context.Context, user models.User) (models.User, error) {
	if strings.TrimSpace(user.Username) == "" {
		return models.User{}, fmt.Errorf("%w: username is required", types.ErrInvalidArgument)
	}

	return s.replace(ctx,
		func(u models.User) bool { return strings.EqualFold(u.Username, user.Username) },
		func(current models.User) (models.User, error) {
			return user.WithID(current.ID).Normalize(), nil
		},
		user.Username,
	)
}
