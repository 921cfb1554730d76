package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royalguard/activity-api/internal/adapter/presenter"
)

// StorePinger reports storage reachability for health checks.
type StorePinger interface {
	Connected() bool
	Ping(ctx context.Context) error
}

// HealthHandler serves the service status endpoint.
type HealthHandler struct {
	store            StorePinger
	serviceName      string
	apiKeyConfigured bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store StorePinger, serviceName string, apiKeyConfigured bool) *HealthHandler {
	return &HealthHandler{
		store:            store,
		serviceName:      serviceName,
		apiKeyConfigured: apiKeyConfigured,
	}
}

// Health is the GET / handler. A store that never connected reports
// "disconnected" but the service itself is still healthy; only a probe
// failure on a live connection makes the check fail.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "connected"
	if !h.store.Connected() {
		database = "disconnected"
	} else if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, presenter.UnhealthyResponse{
			Status:   "unhealthy",
			Database: "error",
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, presenter.HealthResponse{
		Status:           "healthy",
		Service:          h.serviceName,
		Database:         database,
		APIKeyConfigured: h.apiKeyConfigured,
	})
}

// RegisterRoutes registers the health route.
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Health)
}
