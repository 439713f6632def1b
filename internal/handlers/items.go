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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/services"
	"github.com/localnerve/enxovaldb/internal/types"
	"github.com/localnerve/enxovaldb/internal/utils"
	"github.com/sirupsen/logrus"
)

// ItemHandler handles /items routes
type ItemHandler struct {
	Items *services.ItemService
	Log   logrus.FieldLogger
}

// DonationBatchInput is the body of PUT /items/donations.
// `updates` may be an array or a single update object.
type DonationBatchInput struct {
	Updates types.FlexList[services.DonationUpdate] `json:"updates" validate:"required,dive"`
}

// ListItems handles GET /items
// @Summary List items
// @Description Get every item
// @Tags Items
// @Produce json
// @Success 200 {array} models.Item
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items [get]
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.Items.List(c.UserContext())
	if err != nil {
		return respondError(c, h.Log, err, "listItems")
	}
	return utils.SuccessResponse(c, items, fiber.StatusOK)
}

// GetItem handles GET /items/:id
// @Summary Get item
// @Description Get one item by id
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.Log, err, "getItem")
	}

	item, err := h.Items.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.Log, err, "getItem")
	}
	return utils.SuccessResponse(c, item, fiber.StatusOK)
}

// PageItems handles GET /items/page/:page/:pageSize
// @Summary Page items
// @Description Get one page of items, pages start at 1
// @Tags Items
// @Produce json
// @Param page path int true "Page number"
// @Param pageSize path int true "Page size"
// @Success 200 {array} models.Item
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items/page/{page}/{pageSize} [get]
func (h *ItemHandler) PageItems(c *fiber.Ctx) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return respondError(c, h.Log, err, "pageItems")
	}

	items, err := h.Items.Page(c.UserContext(), page, pageSize)
	if err != nil {
		return respondError(c, h.Log, err, "pageItems")
	}
	return utils.SuccessResponse(c, items, fiber.StatusOK)
}

// AddItem handles POST /items/add
// @Summary Add item
// @Description Register an item; the id is assigned by the service
// @Tags Items
// @Accept json
// @Produce json
// @Param body body models.Item true "Item without id"
// @Success 201 {object} models.Item
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items/add [post]
func (h *ItemHandler) AddItem(c *fiber.Ctx) error {
	var draft models.Item
	if err := parseBody(c, &draft); err != nil {
		return respondError(c, h.Log, err, "addItem")
	}

	item, err := h.Items.Add(c.UserContext(), draft)
	if err != nil {
		return respondError(c, h.Log, err, "addItem")
	}
	return utils.SuccessResponse(c, item, fiber.StatusCreated)
}

// UpdateItem handles PUT /items/update
// @Summary Update item
// @Description Replace the item with the same id
// @Tags Items
// @Accept json
// @Produce json
// @Param body body models.Item true "Item"
// @Success 200 {object} models.Item
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items/update [put]
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	var item models.Item
	if err := parseBody(c, &item); err != nil {
		return respondError(c, h.Log, err, "updateItem")
	}

	updated, err := h.Items.Update(c.UserContext(), item)
	if err != nil {
		return respondError(c, h.Log, err, "updateItem")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// ApplyDonations handles PUT /items/donations
// @Summary Record donations
// @Description Append donations to items and lower their remaining quantity (never below zero). Unknown item ids are skipped and reported.
// @Tags Items
// @Accept json
// @Produce json
// @Param body body DonationBatchInput true "Donation updates"
// @Success 200 {object} utils.DonationBatchResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items/donations [put]
func (h *ItemHandler) ApplyDonations(c *fiber.Ctx) error {
	var body DonationBatchInput
	if err := parseBody(c, &body); err != nil {
		return respondError(c, h.Log, err, "applyDonations")
	}

	result, err := h.Items.ApplyDonationBatch(c.UserContext(), body.Updates.Slice())
	if err != nil {
		return respondError(c, h.Log, err, "applyDonations")
	}
	return utils.DonationBatchResponse(c, result.Applied, result.Skipped, result.SkippedItemIDs)
}

// RemoveItem handles DELETE /items/remove/:id
// @Summary Remove item
// @Description Remove an item by id
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items/remove/{id} [delete]
func (h *ItemHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.Log, err, "removeItem")
	}

	if err := h.Items.Remove(c.UserContext(), id); err != nil {
		return respondError(c, h.Log, err, "removeItem")
	}
	return utils.MutationSuccessResponse(c, "Item removed", 1)
}
