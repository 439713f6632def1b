// handlers_test.go
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

package handlers

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/logger"
	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/localnerve/enxovaldb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *store.FileStore) {
	t.Helper()

	docs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Seed(context.Background(), docs))

	cfg := &config.Config{StoreType: config.StoreFile, DataDir: docs.Dir()}
	app := fiber.New()
	Register(app, cfg, docs, logger.Discard())
	return app, docs
}

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Ok      bool   `json:"ok"`
	URL     string `json:"url"`
	Type    string `json:"type"`
}

func TestUserRoutes(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := testutil.Request(t, app, http.MethodPost, "/users/add", map[string]interface{}{
		"name":     "Ana",
		"username": "ana",
		"password": "secret",
		"roles":    []string{"admin"},
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var created models.User
	testutil.ParseJSON(t, resp, &created)
	assert.Equal(t, int64(1), created.ID)

	resp = testutil.Request(t, app, http.MethodPost, "/users/add", map[string]interface{}{"username": "ANA"})
	testutil.AssertStatus(t, resp, fiber.StatusConflict)

	resp = testutil.Request(t, app, http.MethodPut, "/users/update", map[string]interface{}{
		"username": "Ana",
		"name":     "Ana Souza",
	})
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	resp = testutil.Request(t, app, http.MethodGet, "/users/1", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var got models.User
	testutil.ParseJSON(t, resp, &got)
	assert.Equal(t, "Ana Souza", got.Name)

	resp = testutil.Request(t, app, http.MethodGet, "/users", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var all []models.User
	testutil.ParseJSON(t, resp, &all)
	assert.Len(t, all, 1)

	resp = testutil.Request(t, app, http.MethodDelete, "/users/remove/1", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	resp = testutil.Request(t, app, http.MethodGet, "/users/1", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
	var notFound errorBody
	testutil.ParseJSON(t, resp, &notFound)
	assert.False(t, notFound.Ok)
	assert.Equal(t, "notFound", notFound.Type)
	assert.Equal(t, "/users/1", notFound.URL)
}

func TestUserAddRequiresUsername(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := testutil.Request(t, app, http.MethodPost, "/users/add", map[string]interface{}{"name": "Nobody"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	var body errorBody
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "validation.addUser", body.Type)
}

func TestGetWithLenientID(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := testutil.Request(t, app, http.MethodPost, "/categories/add", map[string]interface{}{"name": "Bedding"})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)

	resp = testutil.Request(t, app, http.MethodGet, "/categories/001", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	resp = testutil.Request(t, app, http.MethodGet, "/categories/one", nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestPageRoutes(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, name := range []string{"Bedding", "Clothing", "Hygiene"} {
		resp := testutil.Request(t, app, http.MethodPost, "/categories/add", map[string]interface{}{"name": name})
		testutil.AssertStatus(t, resp, fiber.StatusCreated)
	}

	resp := testutil.Request(t, app, http.MethodGet, "/categories/page/2/2", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var page []models.Category
	testutil.ParseJSON(t, resp, &page)
	require.Len(t, page, 1)
	assert.Equal(t, "Hygiene", page[0].Name)

	resp = testutil.Request(t, app, http.MethodGet, "/categories/page/9/2", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &page)
	assert.Empty(t, page)

	for _, target := range []string{"/categories/page/0/2", "/categories/page/1/0", "/categories/page/x/2"} {
		resp = testutil.Request(t, app, http.MethodGet, target, nil)
		testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
	}
}

func TestItemValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := testutil.Request(t, app, http.MethodPost, "/items/add", map[string]interface{}{
		"name":           "Blanket",
		"remainQuantity": -1,
		"totalQuantity":  5,
	})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testutil.Request(t, app, http.MethodPost, "/items/add", `{"name": "Blanket",`)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testutil.Request(t, app, http.MethodPut, "/items/update", map[string]interface{}{"id": 9, "name": "Ghost"})
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestItemUpdateWithStringID(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := testutil.Request(t, app, http.MethodPost, "/items/add", map[string]interface{}{
		"name":           "Blanket",
		"remainQuantity": 5,
		"totalQuantity":  5,
		"imageUrl":       "blanket.png",
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)

	resp = testutil.Request(t, app, http.MethodPut, "/items/update", map[string]interface{}{
		"id":             "1",
		"name":           "Wool blanket",
		"remainQuantity": 4,
		"totalQuantity":  5,
		"imageUrl":       "wool.png",
	})
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var updated models.Item
	testutil.ParseJSON(t, resp, &updated)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Wool blanket", updated.Name)
	assert.JSONEq(t, `"wool.png"`, string(updated.Extra["imageUrl"]))

	resp = testutil.Request(t, app, http.MethodPut, "/items/update", map[string]interface{}{"id": "one", "name": "Ghost"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestPageBeyondRangeIsEmpty(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := testutil.Request(t, app, http.MethodPost, "/items/add", map[string]interface{}{"name": "Blanket"})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)

	resp = testutil.Request(t, app, http.MethodGet, "/items/page/2305843009213693953/8", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var page []models.Item
	testutil.ParseJSON(t, resp, &page)
	assert.Empty(t, page)
}

func TestDonationsAcceptSingleUpdateObject(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := testutil.Request(t, app, http.MethodPost, "/items/add", map[string]interface{}{
		"name":           "Towel",
		"remainQuantity": 4,
		"totalQuantity":  4,
	})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)

	resp = testutil.Request(t, app, http.MethodPut, "/items/donations", map[string]interface{}{
		"updates": map[string]interface{}{
			"itemId":          "1",
			"donationsObject": map[string]interface{}{"name": "Bia", "contact": "555", "quantity": 1},
		},
	})
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var result struct {
		Ok             bool    `json:"ok"`
		Applied        int     `json:"applied"`
		Skipped        int     `json:"skipped"`
		SkippedItemIDs []int64 `json:"skippedItemIds"`
	}
	testutil.ParseJSON(t, resp, &result)
	assert.True(t, result.Ok)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.SkippedItemIDs)

	resp = testutil.Request(t, app, http.MethodPut, "/items/donations", map[string]interface{}{
		"updates": []map[string]interface{}{
			{"itemId": 1, "donationsObject": map[string]interface{}{"quantity": -2}},
		},
	})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testutil.Request(t, app, http.MethodPut, "/items/donations", map[string]interface{}{})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestPersonalInfoRoutes(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := testutil.Request(t, app, http.MethodGet, "/personalInfos", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	info := models.PersonalInfo{Name: "João", MissionaryName: "Elder Silva", Mission: "Brasil Recife"}
	resp = testutil.Request(t, app, http.MethodPut, "/personalInfos/update", info)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	resp = testutil.Request(t, app, http.MethodGet, "/personalInfos", nil)
	var got models.PersonalInfo
	testutil.ParseJSON(t, resp, &got)
	assert.Equal(t, info, got)
}

func TestStorageFailureIsServerError(t *testing.T) {
	app, docs := setupTestApp(t)
	require.NoError(t, docs.Replace(context.Background(), store.Items, []byte("{corrupt")))

	resp := testutil.Request(t, app, http.MethodGet, "/items", nil)
	testutil.AssertStatus(t, resp, fiber.StatusInternalServerError)

	var body errorBody
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "Error reading document", body.Message)
	assert.Equal(t, "storage.read.listItems", body.Type)
}

func TestHealthRoute(t *testing.T) {
	app, docs := setupTestApp(t)

	resp := testutil.Request(t, app, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	require.NoError(t, os.Remove(docs.Path(store.Users)))

	resp = testutil.Request(t, app, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, resp, fiber.StatusServiceUnavailable)
}
