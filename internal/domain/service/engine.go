package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crediflow/calc-service/internal/domain/model"
	"github.com/crediflow/calc-service/internal/domain/valueobject"
)

// MaxLoanAmount is the global loan ceiling in currency units. No product may
// be requested above it regardless of its own bounds or tiers.
var MaxLoanAmount = decimal.NewFromInt(6_000_000)

// ---------------------------------------------------------------------------
// Engine – repayment calculation orchestrator
// ---------------------------------------------------------------------------

// Engine is the stateless repayment calculation engine. It validates the
// request against the product definition, dispatches to the range or tiered
// pricing path, and assembles the result. It holds no state and performs no
// I/O, so a single instance may be shared by any number of goroutines.
type Engine struct{}

// NewEngine returns a new engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate runs one repayment calculation against the given catalog. Every
// validation failure is detected before any schedule computation begins and
// returned as a *valueobject.CalculationError; no partial result is ever
// produced.
func (e *Engine) Calculate(req model.CalculationRequest, catalog model.Catalog) (model.CalculationResult, error) {
	product, ok := catalog.Find(req.CreditType)
	if !ok {
		return model.CalculationResult{}, valueobject.NewCalculationError(
			valueobject.ErrCodeUnsupportedCreditType,
			"credit type %q is not supported", req.CreditType)
	}
	if req.LoanAmount.LessThanOrEqual(decimal.Zero) {
		return model.CalculationResult{}, valueobject.NewCalculationError(
			valueobject.ErrCodeInvalidAmount,
			"loan amount must be positive, got %s", req.LoanAmount)
	}
	if req.LoanAmount.GreaterThan(MaxLoanAmount) {
		return model.CalculationResult{}, valueobject.NewCalculationError(
			valueobject.ErrCodeAmountTooLarge,
			"loan amount %s exceeds the maximum of %s", req.LoanAmount, MaxLoanAmount)
	}
	if req.EndDate.Before(req.StartDate) {
		return model.CalculationResult{}, valueobject.NewCalculationError(
			valueobject.ErrCodeInvalidDateRange,
			"start date %s is after end date %s",
			req.StartDate.Format(time.DateOnly), req.EndDate.Format(time.DateOnly))
	}

	periodDays := inclusiveDays(req.StartDate, req.EndDate)
	if periodDays <= 0 {
		// Unreachable given the range check above; kept so a bad clock or
		// timezone mixup cannot produce an empty schedule silently.
		return model.CalculationResult{}, valueobject.NewCalculationError(
			valueobject.ErrCodeInvalidDateRange,
			"loan period of %d days is not valid", periodDays)
	}

	switch product.Kind() {
	case model.PricingRange:
		return e.calculateRange(req, product, periodDays)
	case model.PricingTiered:
		return e.calculateTiered(req, product, periodDays)
	default:
		return model.CalculationResult{}, valueobject.NewCalculationError(
			valueobject.ErrCodeUnsupportedCreditType,
			"credit type %q has unknown pricing kind %q", req.CreditType, product.Kind())
	}
}

func (e *Engine) calculateRange(req model.CalculationRequest, product model.CreditProduct, periodDays int) (model.CalculationResult, error) {
	pricing, _ := product.RangePricing()
	if req.LoanAmount.LessThan(pricing.MinLoan) || req.LoanAmount.GreaterThan(pricing.MaxLoan) {
		return model.CalculationResult{}, valueobject.NewCalculationError(
			valueobject.ErrCodeAmountOutOfRange,
			"loan amount %s is outside the allowed range [%s, %s] for credit type %q",
			req.LoanAmount, pricing.MinLoan, pricing.MaxLoan, req.CreditType)
	}

	facilitation := FacilitationFee(req.LoanAmount, pricing.FacilitationFeePercent)
	perDay, dailyTotal := DailyFees(req.LoanAmount, pricing.DailyFeePercent, pricing.DailyFeeMaxPercent, periodDays)

	allowed := AllowedPeriodDays(product, periodDays)
	penaltyTotal, overdue := PenaltyFee(req.LoanAmount, pricing.PenaltyPercent, periodDays, allowed)

	return e.assemble(req, periodDays, facilitation, perDay, dailyTotal, penaltyTotal, overdue, allowed), nil
}

func (e *Engine) calculateTiered(req model.CalculationRequest, product model.CreditProduct, periodDays int) (model.CalculationResult, error) {
	tier, ok := ResolveTier(product.Tiers(), req.LoanAmount)
	if !ok {
		return model.CalculationResult{}, valueobject.NewCalculationError(
			valueobject.ErrCodeNoMatchingTier,
			"no pricing tier of credit type %q covers loan amount %s", req.CreditType, req.LoanAmount)
	}

	facilitation := FacilitationFee(req.LoanAmount, tier.FacilitationFeePercent)
	// Tiered products have no cap concept; every day carries the base fee.
	perDay, dailyTotal := DailyFees(req.LoanAmount, tier.DailyFeePercent, nil, periodDays)

	allowed := AllowedPeriodDays(product, periodDays)
	penaltyTotal, overdue := PenaltyFee(req.LoanAmount, tier.PenaltyPercent, periodDays, allowed)

	return e.assemble(req, periodDays, facilitation, perDay, dailyTotal, penaltyTotal, overdue, allowed), nil
}

func (e *Engine) assemble(
	req model.CalculationRequest,
	periodDays int,
	facilitation decimal.Decimal,
	perDay []decimal.Decimal,
	dailyTotal, penaltyTotal decimal.Decimal,
	overdueDays, allowedDays int,
) model.CalculationResult {
	amount := valueobject.RoundMoney(req.LoanAmount)
	total := valueobject.RoundMoney(amount.Add(facilitation).Add(dailyTotal).Add(penaltyTotal))

	return model.CalculationResult{
		CreditType:      req.CreditType,
		LoanAmount:      amount,
		LoanPeriodDays:  periodDays,
		FacilitationFee: facilitation,
		DailyFee:        dailyTotal,
		PenaltyFee:      penaltyTotal,
		TotalRepayment:  total,
		Schedule:        BuildSchedule(amount, startOfDay(req.StartDate), perDay, penaltyTotal, overdueDays, allowedDays),
	}
}

// inclusiveDays counts calendar days between two dates, both endpoints
// included: a same-day loan has a period of 1.
func inclusiveDays(start, end time.Time) int {
	s := startOfDay(start)
	e := startOfDay(end)
	return int(e.Sub(s).Hours()/24) + 1
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
