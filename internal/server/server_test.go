// server_test.go
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

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/database"
	"github.com/localnerve/enxovaldb/internal/logger"
	"github.com/localnerve/enxovaldb/internal/middleware"
	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/localnerve/enxovaldb/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileApp(t *testing.T, opts Options) *fiber.App {
	t.Helper()

	docs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Seed(context.Background(), docs))

	cfg := &config.Config{StoreType: config.StoreFile, DataDir: docs.Dir(), CORSOrigins: "*"}
	return New(cfg, docs, logger.Discard(), opts)
}

func newSQLApp(t *testing.T) *fiber.App {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "enxoval.db")
	db, err := database.Open(sqlite.Open(dbPath+"?_pragma=busy_timeout(5000)"), logger.Discard())
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	docs := store.NewSQLStore(db)
	t.Cleanup(func() { docs.Close() })
	require.NoError(t, store.Seed(context.Background(), docs))

	cfg := &config.Config{StoreType: config.StoreSQL, DBType: "sqlite", DBDatabase: dbPath, CORSOrigins: "*"}
	return New(cfg, docs, logger.Discard(), Options{})
}

// TestBlanketDonationScenario walks the registry flow: add an item, record a donation, read it back.
func TestBlanketDonationScenario(t *testing.T) {
	apps := map[string]func(t *testing.T) *fiber.App{
		"file": func(t *testing.T) *fiber.App { return newFileApp(t, Options{}) },
		"sql":  newSQLApp,
	}

	for name, newApp := range apps {
		t.Run(name, func(t *testing.T) {
			app := newApp(t)

			resp := testutil.Request(t, app, http.MethodPost, "/items/add", map[string]interface{}{
				"name":           "Blanket",
				"category":       map[string]interface{}{"id": 1, "name": "Bedding"},
				"remainQuantity": 5,
				"totalQuantity":  5,
				"donations":      []interface{}{},
			})
			testutil.AssertStatus(t, resp, fiber.StatusCreated)
			var blanket models.Item
			testutil.ParseJSON(t, resp, &blanket)
			require.Equal(t, int64(1), blanket.ID)

			resp = testutil.Request(t, app, http.MethodPut, "/items/donations", map[string]interface{}{
				"updates": []map[string]interface{}{
					{"itemId": 1, "donationsObject": map[string]interface{}{"name": "Ana", "contact": "123", "quantity": 2}},
				},
			})
			testutil.AssertStatus(t, resp, fiber.StatusOK)

			resp = testutil.Request(t, app, http.MethodGet, "/items/1", nil)
			testutil.AssertStatus(t, resp, fiber.StatusOK)
			var stored models.Item
			testutil.ParseJSON(t, resp, &stored)
			assert.Equal(t, 3, stored.RemainQuantity)
			assert.Equal(t, 5, stored.TotalQuantity)
			assert.Equal(t, []models.Donation{{Name: "Ana", Contact: "123", Quantity: 2}}, stored.Donations)
			assert.Equal(t, models.CategoryRef{ID: 1, Name: "Bedding"}, stored.Category)
		})
	}
}

func TestUnknownRouteEnvelope(t *testing.T) {
	app := newFileApp(t, Options{})

	resp := testutil.Request(t, app, http.MethodGet, "/nowhere", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	var body map[string]interface{}
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "/nowhere", body["url"])
	assert.Equal(t, "notFound", body["type"])
}

func TestWritesRequireJSON(t *testing.T) {
	app := newFileApp(t, Options{})

	req := httptest.NewRequest(http.MethodPost, "/categories/add", strings.NewReader("name=Bedding"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, fiber.StatusUnsupportedMediaType)

	var body map[string]interface{}
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "validation.contentType", body["type"])
}

func TestResponseHeaders(t *testing.T) {
	app := newFileApp(t, Options{})

	resp := testutil.Request(t, app, http.MethodGet, "/users", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, middleware.APIVersion, resp.Header.Get("X-Api-Version"))
}

func TestMetricsEndpoint(t *testing.T) {
	app := newFileApp(t, Options{Registerer: prometheus.NewRegistry()})

	resp := testutil.Request(t, app, http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
}

func TestCustomErrorHandlerFiberError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: customErrorHandler})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp := testutil.Request(t, app, http.MethodGet, "/teapot", nil)
	testutil.AssertStatus(t, resp, fiber.StatusTeapot)

	var body map[string]interface{}
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "short and stout", body["message"])
}
