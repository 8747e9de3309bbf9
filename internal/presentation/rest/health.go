package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler creates a health check handler.
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// RegisterRoutes attaches health-check routes to the engine.
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.liveness)
	r.GET("/readyz", h.readiness)
}

func (h *HealthHandler) liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.serviceName})
}

func (h *HealthHandler) readiness(c *gin.Context) {
	// The catalog is loaded before the server starts, so a serving process
	// is always ready.
	c.JSON(http.StatusOK, gin.H{"status": "ready", "service": h.serviceName})
}
