// common.go
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
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/enxovaldb/internal/types"
	"github.com/localnerve/enxovaldb/internal/utils"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

// pathID parses the :id route parameter. Ids compare by value, so "07" finds record 7.
func pathID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := types.ParseID(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", types.ErrInvalidArgument, raw)
	}
	return id, nil
}

// pageParams parses the :page and :pageSize route parameters.
// Range checks are left to the paginator.
func pageParams(c *fiber.Ctx) (int, int, error) {
	page, err := c.ParamsInt("page")
	if err != nil {
		return 0, 0, fmt.Errorf("%w: page %q is not an integer", types.ErrInvalidArgument, c.Params("page"))
	}
	pageSize, err := c.ParamsInt("pageSize")
	if err != nil {
		return 0, 0, fmt.Errorf("%w: pageSize %q is not an integer", types.ErrInvalidArgument, c.Params("pageSize"))
	}
	return page, pageSize, nil
}

// parseBody decodes and validates a JSON request body into out.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidArgument, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidArgument, err)
	}
	return nil
}

// respondError maps service errors onto the JSON error envelope.
// Storage failures are logged; the client only sees a generic message.
func respondError(c *fiber.Ctx, log logrus.FieldLogger, err error, op string) error {
	if types.IsStorageError(err) {
		log.WithError(err).WithFields(logrus.Fields{
			"op":        op,
			"requestId": c.GetRespHeader(fiber.HeaderXRequestID),
		}).Error("Document store failure")
	}

	switch {
	case errors.Is(err, types.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, types.ErrInvalidArgument):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "validation."+op)
	case errors.Is(err, types.ErrConflict):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, "conflict."+op)
	case errors.Is(err, types.ErrStorageRead):
		return utils.ErrorResponse(c, "Error reading document", fiber.StatusInternalServerError, "storage.read."+op)
	case errors.Is(err, types.ErrStorageWrite):
		return utils.ErrorResponse(c, "Error writing document", fiber.StatusInternalServerError, "storage.write."+op)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, op)
}
