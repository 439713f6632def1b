// store.go
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

// Package store persists whole JSON documents and owns the read-modify-write cycle.
//
// Every mutation of a document goes through DocumentStore.Update, which holds the
// document's write lock while the current bytes are loaded, transformed and written
// back. Concurrent writers to one document are serialized, so no update is lost.
package store

import "context"

// Document names
const (
	Users         = "users"
	Items         = "items"
	Categories    = "categories"
	PersonalInfos = "personalInfos"
)

// Names lists every document the service manages.
var Names = []string{Users, Items, Categories, PersonalInfos}

// UpdateFunc receives the current document bytes and returns the bytes to persist.
// Returning an error aborts the cycle and nothing is written.
type UpdateFunc func(current []byte) ([]byte, error)

// DocumentStore is a keyed set of whole JSON documents.
type DocumentStore interface {
	// Load returns the current bytes of a document.
	Load(ctx context.Context, name string) ([]byte, error)

	// Update runs fn under the document's write lock and persists its result.
	Update(ctx context.Context, name string, fn UpdateFunc) error

	// Replace overwrites a document without reading it first.
	Replace(ctx context.Context, name string, data []byte) error

	// Ensure writes initial when the document does not exist yet.
	Ensure(ctx context.Context, name string, initial []byte) error

	// Ping reports whether the backing storage is usable.
	Ping(ctx context.Context) error

	Close() error
}
