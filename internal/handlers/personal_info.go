package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/enxovaldb/internal/models"
	"github.com/localnerve/enxovaldb/internal/services"
	"github.com/localnerve/enxovaldb/internal/utils"
	"github.com/sirupsen/logrus"
)

// PersonalInfoHandler handles /personalInfos routes
type PersonalInfoHandler struct {
	PersonalInfo *services.PersonalInfoService
	Log          logrus.FieldLogger
}

// GetPersonalInfo handles GET /personalInfos
// @Summary Get personal info
// @Description Get the missionary's personal info record
// @Tags PersonalInfo
// @Produce json
// @Success 200 {object} models.PersonalInfo
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /personalInfos [get]
func (h *PersonalInfoHandler) GetPersonalInfo(c *fiber.Ctx) error {
	info, err := h.PersonalInfo.Get(c.UserContext())
	if err != nil {
		return respondError(c, h.Log, err, "getPersonalInfo")
	}
	return utils.SuccessResponse(c, info, fiber.StatusOK)
}

// ReplacePersonalInfo handles PUT /personalInfos/update
// @Summary Replace personal info
// @Description Overwrite the personal info record
// @Tags PersonalInfo
// @Accept json
// @Produce json
// @Param body body models.PersonalInfo true "Personal info"
// @Success 200 {object} models.PersonalInfo
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /personalInfos/update [put]
func (h *PersonalInfoHandler) ReplacePersonalInfo(c *fiber.Ctx) error {
	var info models.PersonalInfo
	if err := parseBody(c, &info); err != nil {
		return respondError(c, h.Log, err, "replacePersonalInfo")
	}

	stored, err := h.PersonalInfo.Replace(c.UserContext(), info)
	if err != nil {
		return respondError(c, h.Log, err, "replacePersonalInfo")
	}
	return utils.SuccessResponse(c, stored, fiber.StatusOK)
}
