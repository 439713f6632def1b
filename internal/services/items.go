// items.go
//
// A Go data service for the Enxoval Missionário donation registry
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of enxovaldb.
// enxovaldb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// enxovaldb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with enxovaldb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"

	"github.com/localnerve/enxovaldb/internal/metrics"
	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/sirupsen/logrus"
)

// ItemService manages the items document. Items are keyed by id.
type ItemService struct {
	registry[models.Item]
	log logrus.FieldLogger
}

// NewItemService returns a service over the items document of docs.
func NewItemService(docs store.DocumentStore, log logrus.FieldLogger) *ItemService {
	return &ItemService{
		registry: newRegistry[models.Item](docs, store.Items, "item"),
		log:      log.WithField("document", store.Items),
	}
}

// Add stores a new item under the next free id.
func (s *ItemService) Add(ctx context.Context, draft models.Item) (models.Item, error) {
	return s.add(ctx, draft.Normalize(), nil)
}

// Update replaces the item with item.ID.
func (s *ItemService) Update(ctx context.Context, item models.Item) (models.Item, error) {
	return s.replace(ctx,
		func(i models.Item) bool { return i.ID == item.ID },
		func(models.Item) (models.Item, error) { return item.Normalize(), nil },
		item.ID,
	)
}

// ApplyDonationBatch applies the updates to the stored items and persists them as one write.
// Updates for unknown items are skipped and reported in the result.
func (s *ItemService) ApplyDonationBatch(ctx context.Context, updates []DonationUpdate) (DonationResult, error) {
	var result DonationResult

	err := s.records.Mutate(ctx, func(items []models.Item) ([]models.Item, error) {
		var next []models.Item
		next, result = ApplyDonations(items, updates)
		return next, nil
	})
	if err != nil {
		return DonationResult{}, err
	}

	metrics.DonationsApplied.Add(float64(result.Applied))
	metrics.DonationsSkipped.Add(float64(result.Skipped))

	entry := s.log.WithFields(logrus.Fields{
		"applied": result.Applied,
		"skipped": result.Skipped,
	})
	if result.Skipped > 0 {
		entry.WithField("skippedItemIds", result.SkippedItemIDs).Warn("Donation batch skipped unknown items")
	} else {
		entry.Debug("Donation batch applied")
	}

	return result, nil
}
