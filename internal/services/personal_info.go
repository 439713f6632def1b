package services

import (
	"context"

	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/store"
)

// PersonalInfoService manages the single personal info record.
type PersonalInfoService struct {
	record *store.Record[models.PersonalInfo]
}

// NewPersonalInfoService returns a service over the personalInfos document of docs.
func NewPersonalInfoService(docs store.DocumentStore) *PersonalInfoService {
	return &PersonalInfoService{record: store.NewRecord[models.PersonalInfo](docs, store.PersonalInfos)}
}

// Get returns the stored record.
func (s *PersonalInfoService) Get(ctx context.Context) (models.PersonalInfo, error) {
	return s.record.Get(ctx)
}

// Replace overwrites the record unconditionally and returns what was stored.
func (s *PersonalInfoService) Replace(ctx context.Context, info models.PersonalInfo) (models.PersonalInfo, error) {
	if err := s.record.Put(ctx, info); err != nil {
		return models.PersonalInfo{}, err
	}
	return info, nil
}
