// file_store.go
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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/localnerve/enxovaldb/internal/metrics"
	"github.com/localnerve/enxovaldb/internal/types"
	"github.com/natefinch/atomic"
)

// FileStore keeps each document in <dir>/<name>.json.
type FileStore struct {
	dir   string
	locks *documentLocks
}

// NewFileStore creates the directory if needed and returns a store rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, locks: newDocumentLocks()}, nil
}

// Dir returns the directory the documents live in.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file backing a document.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads a document under its read lock.
func (s *FileStore) Load(ctx context.Context, name string) (data []byte, err error) {
	defer observe(name, "load", time.Now(), &err)

	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrStorageRead, name, err)
	}

	lock := s.locks.get(name)
	lock.RLock()
	defer lock.RUnlock()

	return s.read(name)
}

// Update loads, transforms and atomically rewrites a document under its write lock.
func (s *FileStore) Update(ctx context.Context, name string, fn UpdateFunc) (err error) {
	defer observe(name, "update", time.Now(), &err)

	if err := checkName(name); err != nil {
		return err
	}

	lock := s.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrStorageRead, name, err)
	}

	current, err := s.read(name)
	if err != nil {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	return s.write(name, next)
}

// Replace overwrites a document under its write lock.
func (s *FileStore) Replace(ctx context.Context, name string, data []byte) (err error) {
	defer observe(name, "replace", time.Now(), &err)

	if err := checkName(name); err != nil {
		return err
	}

	lock := s.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrStorageWrite, name, err)
	}

	return s.write(name, data)
}

// Ensure writes initial when the document file does not exist.
func (s *FileStore) Ensure(ctx context.Context, name string, initial []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	lock := s.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	if _, err := os.Stat(s.Path(name)); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %v", types.ErrStorageRead, name, err)
	}

	return s.write(name, initial)
}

// Ping checks the directory exists and is writable.
func (s *FileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}

	probe, err := os.CreateTemp(s.dir, ".ping-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrStorageRead, name, err)
	}
	return data, nil
}

// write replaces the file atomically, so readers never see a partial document.
// A new file gets 0644; an existing one keeps its mode.
func (s *FileStore) write(name string, data []byte) error {
	path := s.Path(name)
	_, statErr := os.Stat(path)

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrStorageWrite, name, err)
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		if err := os.Chmod(path, 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrStorageWrite, name, err)
		}
	}
	return nil
}

// checkName keeps document names inside the data directory.
func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: invalid document name %q", types.ErrInvalidArgument, name)
	}
	return nil
}

// observe records the operation outcome. Callback errors such as not-found are not store failures.
func observe(name, op string, start time.Time, errp *error) {
	var err error
	if errp != nil && *errp != nil && types.IsStorageError(*errp) {
		err = *errp
	}
	metrics.ObserveStore(name, op, start, err)
}
