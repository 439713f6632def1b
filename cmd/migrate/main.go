// main.go
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

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/logger"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/sirupsen/logrus"
)

func main() {
	var from, to string
	flag.StringVar(&from, "from", config.StoreFile, "source store: file or sql")
	flag.StringVar(&to, "to", config.StoreSQL, "destination store: file or sql")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	log := logger.New(cfg)

	if from == to {
		log.Fatalf("Source and destination are both %q", from)
	}

	src, err := openStore(cfg, from, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open source store")
	}
	defer src.Close()

	dst, err := openStore(cfg, to, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open destination store")
	}
	defer dst.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	copied, err := copyDocuments(ctx, src, dst, log)
	if err != nil {
		log.WithError(err).Error("Migration failed")
		return
	}
	log.WithFields(logrus.Fields{
		"from":      from,
		"to":        to,
		"documents": copied,
	}).Info("Migration complete")
}

// openStore opens the store of the given type with the rest of cfg unchanged.
func openStore(cfg *config.Config, storeType string, log *logrus.Logger) (store.DocumentStore, error) {
	c := *cfg
	c.StoreType = storeType
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return store.Open(&c, log)
}

// copyDocuments overwrites every document of dst with the one in src.
// Documents missing from src are skipped.
func copyDocuments(ctx context.Context, src, dst store.DocumentStore, log logrus.FieldLogger) (int, error) {
	copied := 0
	for _, name := range store.Names {
		body, err := src.Load(ctx, name)
		if err != nil {
			log.WithError(err).WithField("document", name).Warn("Skipping unreadable document")
			continue
		}
		if !json.Valid(body) {
			return copied, fmt.Errorf("document %s is not valid JSON", name)
		}
		if err := dst.Replace(ctx, name, body); err != nil {
			return copied, fmt.Errorf("failed to write %s: %w", name, err)
		}
		copied++
	}
	return copied, nil
}
