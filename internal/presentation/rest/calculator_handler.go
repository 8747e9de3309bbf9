package rest

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crediflow/calc-service/internal/application/dto"
	"github.com/crediflow/calc-service/internal/application/usecase"
	"github.com/crediflow/calc-service/internal/domain/valueobject"
)

// CalculatorHandler exposes the calculator operations over HTTP.
type CalculatorHandler struct {
	calculate *usecase.CalculateUseCase
	list      *usecase.ListProductsUseCase
	logger    *slog.Logger
}

// NewCalculatorHandler creates the handler with its use-case dependencies.
func NewCalculatorHandler(
	calculate *usecase.CalculateUseCase,
	list *usecase.ListProductsUseCase,
	logger *slog.Logger,
) *CalculatorHandler {
	return &CalculatorHandler{
		calculate: calculate,
		list:      list,
		logger:    logger,
	}
}

// RegisterRoutes attaches the calculator routes to the router group.
func (h *CalculatorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.listProducts)
	rg.POST("/calculations", h.createCalculation)
}

func (h *CalculatorHandler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.list.Execute(c.Request.Context())})
}

func (h *CalculatorHandler) createCalculation(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  "MALFORMED_REQUEST",
			"error": "request body is not valid JSON: " + err.Error(),
		})
		return
	}

	resp, err := h.calculate.Execute(c.Request.Context(), req)
	if err != nil {
		if calcErr, ok := valueobject.AsCalculationError(err); ok {
			c.JSON(statusForCode(calcErr.Code), gin.H{
				"code":  string(calcErr.Code),
				"error": calcErr.Message,
			})
			return
		}
		h.logger.Error("calculation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// statusForCode maps the calculation error taxonomy onto HTTP statuses. All
// of them are caller input errors.
func statusForCode(code valueobject.ErrorCode) int {
	if code == valueobject.ErrCodeUnsupportedCreditType {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
