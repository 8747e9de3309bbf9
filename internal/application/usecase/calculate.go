package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/crediflow/calc-service/internal/application/dto"
	"github.com/crediflow/calc-service/internal/domain/event"
	"github.com/crediflow/calc-service/internal/domain/model"
	"github.com/crediflow/calc-service/internal/domain/port"
	"github.com/crediflow/calc-service/internal/domain/service"
	"github.com/crediflow/calc-service/internal/domain/valueobject"
)

// CalculateUseCase runs a repayment calculation: it parses and validates the
// raw request, consults the result cache, invokes the engine, and publishes
// a CalculationPerformed event.
type CalculateUseCase struct {
	engine    *service.Engine
	catalog   model.Catalog
	cache     port.ResultCache
	publisher port.EventPublisher
	logger    *slog.Logger
	cacheTTL  time.Duration
}

// NewCalculateUseCase wires dependencies.
func NewCalculateUseCase(
	engine *service.Engine,
	catalog model.Catalog,
	cache port.ResultCache,
	publisher port.EventPublisher,
	logger *slog.Logger,
	cacheTTL time.Duration,
) *CalculateUseCase {
	return &CalculateUseCase{
		engine:    engine,
		catalog:   catalog,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Execute processes one calculation request.
func (uc *CalculateUseCase) Execute(
	ctx context.Context,
	req dto.CalculateRequest,
) (dto.CalculationResponse, error) {
	start, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		return dto.CalculationResponse{}, valueobject.NewCalculationError(
			valueobject.ErrCodeInvalidDate,
			"start date %q is not a valid YYYY-MM-DD date", req.StartDate)
	}
	end, err := time.Parse(dto.DateLayout, req.EndDate)
	if err != nil {
		return dto.CalculationResponse{}, valueobject.NewCalculationError(
			valueobject.ErrCodeInvalidDate,
			"end date %q is not a valid YYYY-MM-DD date", req.EndDate)
	}

	key := cacheKey(req)
	if raw, ok := uc.cache.Get(ctx, key); ok {
		var cached dto.CalculationResponse
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			uc.logger.DebugContext(ctx, "calculation served from cache", "key", key)
			return cached, nil
		}
		uc.logger.WarnContext(ctx, "discarding unreadable cache entry", "key", key)
	}

	result, err := uc.engine.Calculate(model.CalculationRequest{
		CreditType: req.CreditType,
		LoanAmount: req.LoanAmount,
		StartDate:  start,
		EndDate:    end,
	}, uc.catalog)
	if err != nil {
		return dto.CalculationResponse{}, err
	}

	resp := toCalculationResponse(result)

	if raw, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, key, string(raw), uc.cacheTTL); err != nil {
			uc.logger.WarnContext(ctx, "failed to cache calculation", "key", key, "error", err)
		}
	}

	// The calculation itself is read-only, so a publish failure must not
	// fail the request.
	if err := uc.publisher.Publish(ctx, event.NewCalculationPerformed(result)); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish calculation event", "error", err)
	}

	return resp, nil
}

// cacheKey derives a deterministic cache key from the request tuple.
func cacheKey(req dto.CalculateRequest) string {
	return fmt.Sprintf("calc:%s:%s:%s:%s", req.CreditType, req.LoanAmount, req.StartDate, req.EndDate)
}

func toCalculationResponse(result model.CalculationResult) dto.CalculationResponse {
	schedule := make([]dto.ScheduleLineResponse, len(result.Schedule))
	for i, line := range result.Schedule {
		schedule[i] = dto.ScheduleLineResponse{
			Date:                 line.Date.Format(dto.DateLayout),
			OutstandingPrincipal: line.OutstandingPrincipal,
			DailyFee:             line.DailyFee,
			PenaltyFee:           line.PenaltyFee,
			Subtotal:             line.Subtotal,
		}
	}
	return dto.CalculationResponse{
		CreditType:      result.CreditType,
		LoanAmount:      result.LoanAmount,
		LoanPeriodDays:  result.LoanPeriodDays,
		FacilitationFee: result.FacilitationFee,
		DailyFee:        result.DailyFee,
		PenaltyFee:      result.PenaltyFee,
		TotalRepayment:  result.TotalRepayment,
		Schedule:        schedule,
	}
}
