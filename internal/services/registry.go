// registry.go
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
	"fmt"

	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/localnerve/enxovaldb/internal/types"
)

// registry implements the operations shared by the array collections on top of a
// store.Collection. Every write happens inside Collection.Mutate, so it sees the
// latest document and holds the document lock until it is persisted.
type registry[T models.Entity[T]] struct {
	records *store.Collection[T]
	label   string
}

func newRegistry[T models.Entity[T]](docs store.DocumentStore, name, label string) registry[T] {
	return registry[T]{records: store.NewCollection[T](docs, name), label: label}
}

// List returns every record in stored order.
func (r *registry[T]) List(ctx context.Context) ([]T, error) {
	return r.records.All(ctx)
}

// Get returns the record with id.
func (r *registry[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T

	records, err := r.records.All(ctx)
	if err != nil {
		return zero, err
	}

	if i := indexByID(records, id); i >= 0 {
		return records[i], nil
	}
	return zero, r.notFound(id)
}

// Page returns one page of records.
func (r *registry[T]) Page(ctx context.Context, page, pageSize int) ([]T, error) {
	if _, err := Paginate([]T{}, page, pageSize); err != nil {
		return nil, err
	}

	records, err := r.records.All(ctx)
	if err != nil {
		return nil, err
	}
	return Paginate(records, page, pageSize)
}

// add assigns the next id to draft and appends it. check may reject the draft
// against the current records.
func (r *registry[T]) add(ctx context.Context, draft T, check func(records []T, draft T) error) (T, error) {
	var created T

	err := r.records.Mutate(ctx, func(records []T) ([]T, error) {
		if check != nil {
			if err := check(records, draft); err != nil {
				return nil, err
			}
		}
		created = draft.WithID(NextID(records))
		return append(records, created), nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// replace swaps the first record matched by match for next.
func (r *registry[T]) replace(ctx context.Context, match func(T) bool, next func(current T) (T, error), key any) (T, error) {
	var updated T

	err := r.records.Mutate(ctx, func(records []T) ([]T, error) {
		for i := range records {
			if !match(records[i]) {
				continue
			}
			value, err := next(records[i])
			if err != nil {
				return nil, err
			}
			records[i] = value
			updated = value
			return records, nil
		}
		return nil, r.notFound(key)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Remove deletes the record with id.
func (r *registry[T]) Remove(ctx context.Context, id int64) error {
	return r.records.Mutate(ctx, func(records []T) ([]T, error) {
		i := indexByID(records, id)
		if i < 0 {
			return nil, r.notFound(id)
		}
		return append(records[:i], records[i+1:]...), nil
	})
}

func (r *registry[T]) notFound(key any) error {
	return fmt.Errorf("%w: %s %v", types.ErrNotFound, r.label, key)
}

func indexByID[T models.Entity[T]](records []T, id int64) int {
	for i := range records {
		if records[i].GetID() == id {
			return i
		}
	}
	return -1
}
