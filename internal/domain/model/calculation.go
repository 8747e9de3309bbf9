package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationRequest is a validated repayment-calculation request. Dates are
// calendar dates; the period is inclusive of both endpoints.
type CalculationRequest struct {
	CreditType string
	LoanAmount decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
}

// ScheduleLine is one day of the repayment schedule.
//
// Subtotal is cumulative: the amount owed if the loan were settled through
// this day (principal plus all fees and penalties accrued so far), not a
// per-day charge.
type ScheduleLine struct {
	Date                 time.Time
	OutstandingPrincipal decimal.Decimal
	DailyFee             decimal.Decimal
	PenaltyFee           decimal.Decimal
	Subtotal             decimal.Decimal
}

// CalculationResult is an immutable value object holding the computed fee
// totals and the day-by-day schedule. All monetary figures are rounded to
// 2 fractional digits.
type CalculationResult struct {
	CreditType      string
	LoanAmount      decimal.Decimal
	LoanPeriodDays  int
	FacilitationFee decimal.Decimal
	DailyFee        decimal.Decimal
	PenaltyFee      decimal.Decimal
	TotalRepayment  decimal.Decimal
	Schedule        []ScheduleLine
}
