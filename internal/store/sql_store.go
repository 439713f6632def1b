// sql_store.go
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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// SQLStore keeps each document as one row of stored_documents.
//
// Update holds the in-process document lock and, inside a transaction, a row lock
// (SELECT ... FOR UPDATE where the dialect supports it). The version column guards
// the write, so processes sharing the database cannot overwrite each other either.
type SQLStore struct {
	db    *gorm.DB
	locks *documentLocks
}

// NewSQLStore wraps an open, migrated connection.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db, locks: newDocumentLocks()}
}

// DB returns the underlying connection.
func (s *SQLStore) DB() *gorm.DB {
	return s.db
}

// Load reads a document row.
func (s *SQLStore) Load(ctx context.Context, name string) (data []byte, err error) {
	defer observe(name, "load", time.Now(), &err)

	lock := s.locks.get(name)
	lock.RLock()
	defer lock.RUnlock()

	var doc models.StoredDocument
	if err := s.quiet(ctx).
		Clauses(hints.CommentBefore("select", "enxovaldb:load:"+name)).
		Where("document_name = ?", name).
		First(&doc).Error; err != nil {
		return nil, readError(name, err)
	}

	return doc.Body.Bytes(), nil
}

// Update loads, transforms and rewrites a document in one transaction.
func (s *SQLStore) Update(ctx context.Context, name string, fn UpdateFunc) (err error) {
	defer observe(name, "update", time.Now(), &err)

	lock := s.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doc models.StoredDocument
		if err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Clauses(
				clause.Locking{Strength: "UPDATE"},
				hints.CommentBefore("select", "enxovaldb:update:"+name),
			).
			Where("document_name = ?", name).
			First(&doc).Error; err != nil {
			return readError(name, err)
		}

		next, err := fn(doc.Body.Bytes())
		if err != nil {
			return err
		}

		result := tx.Model(&doc).
			Where("document_version = ?", doc.DocumentVersion).
			Updates(map[string]interface{}{
				"body":             models.NewJSON(next),
				"document_version": doc.DocumentVersion + 1,
			})
		if result.Error != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrStorageWrite, name, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s: concurrent modification", types.ErrStorageWrite, name)
		}
		return nil
	})
}

// Replace overwrites a document row, creating it when missing.
func (s *SQLStore) Replace(ctx context.Context, name string, data []byte) (err error) {
	defer observe(name, "replace", time.Now(), &err)

	lock := s.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doc models.StoredDocument
		err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("document_name = ?", name).
			First(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.StoredDocument{
				DocumentName:    name,
				DocumentVersion: 1,
				Body:            models.NewJSON(data),
			}).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&doc).Updates(map[string]interface{}{
			"body":             models.NewJSON(data),
			"document_version": doc.DocumentVersion + 1,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrStorageWrite, name, err)
	}
	return nil
}

// Ensure inserts the document row when it does not exist.
func (s *SQLStore) Ensure(ctx context.Context, name string, initial []byte) error {
	lock := s.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	doc := models.StoredDocument{
		DocumentName:    name,
		DocumentVersion: 1,
		Body:            models.NewJSON(initial),
	}
	if err := s.db.WithContext(ctx).
		Where("document_name = ?", name).
		Attrs(doc).
		FirstOrCreate(&doc).Error; err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrStorageWrite, name, err)
	}
	return nil
}

// Ping checks the database answers.
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLStore) quiet(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)})
}

func readError(name string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s: document does not exist", types.ErrStorageRead, name)
	}
	return fmt.Errorf("%w: %s: %v", types.ErrStorageRead, name, err)
}
