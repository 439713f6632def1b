// collection.go
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

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/localnerve/enxovaldb/internal/types"
)

// Collection is a typed view of an array document.
type Collection[T any] struct {
	docs DocumentStore
	name string
}

// NewCollection binds a document name to its record type.
func NewCollection[T any](docs DocumentStore, name string) *Collection[T] {
	return &Collection[T]{docs: docs, name: name}
}

// Name returns the document name.
func (c *Collection[T]) Name() string {
	return c.name
}

// All loads every record in stored order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	data, err := c.docs.Load(ctx, c.name)
	if err != nil {
		return nil, err
	}
	return c.decode(data)
}

// Mutate runs fn over the full record list while the document is locked and
// persists what fn returns. An error from fn leaves the document untouched.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(records []T) ([]T, error)) error {
	return c.docs.Update(ctx, c.name, func(current []byte) ([]byte, error) {
		records, err := c.decode(current)
		if err != nil {
			return nil, err
		}

		next, err := fn(records)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []T{}
		}

		return encode(c.name, next)
	})
}

func (c *Collection[T]) decode(data []byte) ([]T, error) {
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrStorageRead, c.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Record is a typed view of a single-object document.
type Record[T any] struct {
	docs DocumentStore
	name string
}

// NewRecord binds a document name to its record type.
func NewRecord[T any](docs DocumentStore, name string) *Record[T] {
	return &Record[T]{docs: docs, name: name}
}

// Get loads the record.
func (r *Record[T]) Get(ctx context.Context) (T, error) {
	var value T

	data, err := r.docs.Load(ctx, r.name)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("%w: %s: %v", types.ErrStorageRead, r.name, err)
	}
	return value, nil
}

// Put overwrites the record without looking at the stored value.
func (r *Record[T]) Put(ctx context.Context, value T) error {
	data, err := encode(r.name, value)
	if err != nil {
		return err
	}
	return r.docs.Replace(ctx, r.name, data)
}

// encode renders documents with two-space indentation and a trailing newline.
func encode(name string, v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrStorageWrite, name, err)
	}
	var buf bytes.Buffer
	buf.Grow(len(data) + 1)
	buf.Write(data)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
