package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/services"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/sirupsen/logrus"
)

// HealthHandler handles GET /health
type HealthHandler struct {
	Config *config.Config
	Store  store.DocumentStore
	Log    logrus.FieldLogger
}

// Health reports whether the document store is reachable and every document is readable.
// @Summary Health check
// @Tags Ops
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config, h.Store, h.Log)
	status := fiber.StatusOK
	if !result.Healthy() {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
