package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/services"
	"github.com/localnerve/enxovaldb/internal/utils"
	"github.com/sirupsen/logrus"
)

// CategoryHandler handles /categories routes
type CategoryHandler struct {
	Categories *services.CategoryService
	Log        logrus.FieldLogger
}

// ListCategories handles GET /categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.Categories.List(c.UserContext())
	if err != nil {
		return respondError(c, h.Log, err, "listCategories")
	}
	return utils.SuccessResponse(c, categories, fiber.StatusOK)
}

// GetCategory handles GET /categories/:id
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Category
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.Log, err, "getCategory")
	}

	category, err := h.Categories.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.Log, err, "getCategory")
	}
	return utils.SuccessResponse(c, category, fiber.StatusOK)
}

// PageCategories handles GET /categories/page/:page/:pageSize
// @Summary Page categories
// @Tags Categories
// @Produce json
// @Param page path int true "Page number"
// @Param pageSize path int true "Page size"
// @Success 200 {array} models.Category
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/page/{page}/{pageSize} [get]
func (h *CategoryHandler) PageCategories(c *fiber.Ctx) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return respondError(c, h.Log, err, "pageCategories")
	}

	categories, err := h.Categories.Page(c.UserContext(), page, pageSize)
	if err != nil {
		return respondError(c, h.Log, err, "pageCategories")
	}
	return utils.SuccessResponse(c, categories, fiber.StatusOK)
}

// AddCategory handles POST /categories/add
// @Summary Add category
// @Tags Categories
// @Accept json
// @Produce json
// @Param body body models.Category true "Category without id"
// @Success 201 {object} models.Category
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/add [post]
func (h *CategoryHandler) AddCategory(c *fiber.Ctx) error {
	var draft models.Category
	if err := parseBody(c, &draft); err != nil {
		return respondError(c, h.Log, err, "addCategory")
	}

	category, err := h.Categories.Add(c.UserContext(), draft)
	if err != nil {
		return respondError(c, h.Log, err, "addCategory")
	}
	return utils.SuccessResponse(c, category, fiber.StatusCreated)
}

// UpdateCategory handles PUT /categories/update
// @Summary Update category
// @Description Replace the category with the same id. Items keep their category snapshot.
// @Tags Categories
// @Accept json
// @Produce json
// @Param body body models.Category true "Category"
// @Success 200 {object} models.Category
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/update [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := parseBody(c, &category); err != nil {
		return respondError(c, h.Log, err, "updateCategory")
	}

	updated, err := h.Categories.Update(c.UserContext(), category)
	if err != nil {
		return respondError(c, h.Log, err, "updateCategory")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// RemoveCategory handles DELETE /categories/remove/:id
// @Summary Remove category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/remove/{id} [delete]
func (h *CategoryHandler) RemoveCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, h.Log, err, "removeCategory")
	}

	if err := h.Categories.Remove(c.UserContext(), id); err != nil {
		return respondError(c, h.Log, err, "removeCategory")
	}
	return utils.MutationSuccessResponse(c, "Category removed", 1)
}
