package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/caching"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/storage"

	"github.com/labstack/echo/v4"
)

// HealthHandlers handles health check endpoints.
type HealthHandlers struct {
	db      repositories.DB
	cache   caching.CacheService
	storage storage.Service
}

func NewHealthHandlers(db repositories.DB, cache caching.CacheService, storageSvc storage.Service) *HealthHandlers {
	return &HealthHandlers{
		db:      db,
		cache:   cache,
		storage: storageSvc,
	}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthCheck reports per-dependency health. Redis or MinIO being down
// degrades the response but the indent ledger keeps working, so the status
// code stays 200 unless Postgres is unreachable.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()
	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
	}

	statusCode := http.StatusOK

	if err := h.checkDatabase(ctx); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "degraded"
		statusCode = http.StatusServiceUnavailable
	} else {
		health.Services["database"] = "healthy"
	}

	if err := h.cache.Ping(ctx); err != nil {
		health.Services["redis"] = "unhealthy"
		health.Status = "degraded"
	} else {
		health.Services["redis"] = "healthy"
	}

	if err := h.storage.EnsureBucketExists(ctx); err != nil {
		health.Services["storage"] = "unhealthy"
		health.Status = "degraded"
	} else {
		health.Services["storage"] = "healthy"
	}

	return c.JSON(statusCode, health)
}

func (h *HealthHandlers) checkDatabase(ctx context.Context) error {
	_, err := h.db.Exec(ctx, "SELECT 1")
	return err
}

// LivenessCheck is a basic liveness probe.
func (h *HealthHandlers) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadinessCheck fails while critical dependencies are unreachable.
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	if err := h.checkDatabase(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": "Database unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// BufferStatus reports how many indents are parked in the local Redis buffer
// waiting for the flush job.
func (h *HealthHandlers) BufferStatus(c echo.Context) error {
	length, err := h.cache.IndentBufferLen(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Buffer unavailable")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"buffered_indents": length,
	})
}
