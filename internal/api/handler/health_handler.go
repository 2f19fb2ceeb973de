package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/armydb/soldiers-api/internal/core/ports"
)

// dbPingTimeout bounds the readiness round trip; exceeding it is treated
// identically to a connectivity failure.
const dbPingTimeout = 1 * time.Second

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// DBHealthHandler handles GET /health/db — readiness probe.
// Pings the storage backend under a hard 1-second deadline and reports the
// outcome as a status body, never as a hard failure.
type DBHealthHandler struct {
	repo ports.HealthRepository
}

func NewDBHealthHandler(repo ports.HealthRepository) *DBHealthHandler {
	return &DBHealthHandler{repo: repo}
}

func (h *DBHealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbPingTimeout)
	defer cancel()

	if err := h.repo.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, statusResponse{Status: "not connected"})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "connected"})
}
