// users.go
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
	"github.com/localnerve/enxovaldb/internal/utils"
	"github.com/sirupsen/logrus"
)

// UserHandler handles /users routes
type UserHandler struct {
	Users *services.UserService
	Log   logrus.FieldLogger
}

// ListUsers handles GET /users
// @Summary List users
// @Description Get every registered user
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Users.List(c.UserContext())
	if err != nil {
		return respondError(c, h.Log, err, "listUsers")
	}
	return utils.SuccessResponse(c, users, fiber.StatusOK)
}

// GetUser handles GET /users/:id
// @Summary Get user
// @Description Get one user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.Log, err, "getUser")
	}

	user, err := h.Users.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.Log, err, "getUser")
	}
	return utils.SuccessResponse(c, user, fiber.StatusOK)
}

// PageUsers handles GET /users/page/:page/:pageSize
// @Summary Page users
// @Description Get one page of users, pages start at 1
// @Tags Users
// @Produce json
// @Param page path int true "Page number"
// @Param pageSize path int true "Page size"
// @Success 200 {array} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/page/{page}/{pageSize} [get]
func (h *UserHandler) PageUsers(c *fiber.Ctx) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return respondError(c, h.Log, err, "pageUsers")
	}

	users, err := h.Users.Page(c.UserContext(), page, pageSize)
	if err != nil {
		return respondError(c, h.Log, err, "pageUsers")
	}
	return utils.SuccessResponse(c, users, fiber.StatusOK)
}

// AddUser handles POST /users/add
// @Summary Add user
// @Description Register a user; the id is assigned by the service
// @Tags Users
// @Accept json
// @Produce json
// @Param body body models.User true "User without id"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/add [post]
func (h *UserHandler) AddUser(c *fiber.Ctx) error {
	var draft models.User
	if err := parseBody(c, &draft); err != nil {
		return respondError(c, h.Log, err, "addUser")
	}

	user, err := h.Users.Add(c.UserContext(), draft)
	if err != nil {
		return respondError(c, h.Log, err, "addUser")
	}
	return utils.SuccessResponse(c, user, fiber.StatusCreated)
}

// UpdateUser handles PUT /users/update
// @Summary Update user
// @Description Replace the user with the same username (case-insensitive)
// @Tags Users
// @Accept json
// @Produce json
// @Param body body models.User true "User"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/update [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := parseBody(c, &user); err != nil {
		return respondError(c, h.Log, err, "updateUser")
	}

	updated, err := h.Users.Update(c.UserContext(), user)
	if err != nil {
		return respondError(c, h.Log, err, "updateUser")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// RemoveUser handles DELETE /users/remove/:id
// @Summary Remove user
// @Description Remove a user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/remove/{id} [delete]
func (h *UserHandler) RemoveUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.Log, err, "removeUser")
	}

	if err := h.Users.Remove(c.UserContext(), id); err != nil {
		return respondError(c, h.Log, err, "removeUser")
	}
	return utils.MutationSuccessResponse(c, "User removed", 1)
}
