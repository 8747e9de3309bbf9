package rest

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the HTTP surface: the calculator API under /api/v1,
// health probes, and the metrics endpoint.
func NewRouter(
	handler *CalculatorHandler,
	health *HealthHandler,
	metricsHandler http.Handler,
	logger *slog.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), CORS())

	health.RegisterRoutes(r)
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)

	return r
}
