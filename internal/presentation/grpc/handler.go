package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/crediflow/calc-service/internal/application/usecase"
	"github.com/crediflow/calc-service/internal/domain/valueobject"
)

// CalculatorHandler exposes the calculator operations over gRPC.
type CalculatorHandler struct {
	UnimplementedCalculatorServiceServer

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

// ListProducts returns the full credit catalog.
func (h *CalculatorHandler) ListProducts(ctx context.Context, _ *ListProductsRequest) (*ListProductsResponse, error) {
	return &ListProductsResponse{Products: h.list.Execute(ctx)}, nil
}

// Calculate runs one repayment calculation.
func (h *CalculatorHandler) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error) {
	resp, err := h.calculate.Execute(ctx, req.CalculateRequest)
	if err != nil {
		if calcErr, ok := valueobject.AsCalculationError(err); ok {
			return nil, status.Error(codeForCalcError(calcErr.Code), calcErr.Message)
		}
		h.logger.Error("calculation failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &CalculateResponse{CalculationResponse: resp}, nil
}

func codeForCalcError(code valueobject.ErrorCode) codes.Code {
	if code == valueobject.ErrCodeUnsupportedCreditType {
		return codes.NotFound
	}
	return codes.InvalidArgument
}
