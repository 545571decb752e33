package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Pinger is satisfied by *database.Database.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	uploads bool
	version string
	logger  *logrus.Logger
}

func NewHealthHandler(db Pinger, uploads bool, version string, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		uploads: uploads,
		version: version,
		logger:  logger,
	}
}

// Check reports 503 while the database is unreachable so load balancers can
// take the instance out of rotation.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status, dbStatus, code := "ok", "healthy", fiber.StatusOK
	if err := h.db.HealthCheck(c.UserContext()); err != nil {
		h.logger.WithError(err).Warn("Database health check failed")
		status, dbStatus, code = "degraded", "unhealthy", fiber.StatusServiceUnavailable
	}

	uploads := "disabled"
	if h.uploads {
		uploads = "enabled"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"service":   "fyyur",
		"version":   h.version,
		"database":  dbStatus,
		"uploads":   uploads,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
