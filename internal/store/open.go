package store

import (
	"context"
	"fmt"

	"github.com/localnerve/enxovaldb/data"
	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/database"
	"github.com/sirupsen/logrus"
)

// Open returns the document store selected by STORE_TYPE.
func Open(cfg *config.Config, log *logrus.Logger) (DocumentStore, error) {
	switch cfg.StoreType {
	case config.StoreFile:
		fs, err := NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		log.WithField("dir", cfg.DataDir).Info("Using file document store")
		return fs, nil

	case config.StoreSQL:
		db, err := database.Connect(cfg, log)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			database.Close(db)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return NewSQLStore(db), nil
	}

	return nil, fmt.Errorf("unsupported store type: %s", cfg.StoreType)
}

// Seed writes the embedded initial document for every name that does not exist yet.
func Seed(ctx context.Context, docs DocumentStore) error {
	for _, name := range Names {
		initial, err := data.Seed(name)
		if err != nil {
			return err
		}
		if err := docs.Ensure(ctx, name, initial); err != nil {
			return err
		}
	}
	return nil
}
