package dto

import (
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CalculateRequest carries one repayment-calculation request. Dates are
// YYYY-MM-DD strings and validated by the use case, not here.
type CalculateRequest struct {
	CreditType string          `json:"credit_type"`
	LoanAmount decimal.Decimal `json:"loan_amount"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleLineResponse is one day of the repayment schedule.
type ScheduleLineResponse struct {
	Date                 string          `json:"date"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
	DailyFee             decimal.Decimal `json:"daily_fee"`
	PenaltyFee           decimal.Decimal `json:"penalty_fee"`
	Subtotal             decimal.Decimal `json:"subtotal"`
}

// CalculationResponse is the external representation of a calculation result.
type CalculationResponse struct {
	CreditType      string                 `json:"credit_type"`
	LoanAmount      decimal.Decimal        `json:"loan_amount"`
	LoanPeriodDays  int                    `json:"loan_period_days"`
	FacilitationFee decimal.Decimal        `json:"facilitation_fee"`
	DailyFee        decimal.Decimal        `json:"daily_fee"`
	PenaltyFee      decimal.Decimal        `json:"penalty_fee"`
	TotalRepayment  decimal.Decimal        `json:"total_repayment"`
	Schedule        []ScheduleLineResponse `json:"schedule"`
}

// TierResponse is one pricing tier of a tiered product.
type TierResponse struct {
	Amount                 decimal.Decimal `json:"amount"`
	FacilitationFeePercent decimal.Decimal `json:"facilitation_fee_percent"`
	DailyFeePercent        decimal.Decimal `json:"daily_fee_percent"`
	PenaltyPercent         decimal.Decimal `json:"penalty_percent"`
}

// ProductResponse is the external representation of a credit product. The
// two pricing shapes serialise distinctly: range products carry the bound
// and rate fields, tiered products carry amounts.
type ProductResponse struct {
	Type string `json:"type"`
	Kind string `json:"kind"`

	MinLoan                *decimal.Decimal `json:"min_loan,omitempty"`
	MaxLoan                *decimal.Decimal `json:"max_loan,omitempty"`
	PaymentPeriodDays      *int             `json:"payment_period_days,omitempty"`
	FacilitationFeePercent *decimal.Decimal `json:"facilitation_fee_percent,omitempty"`
	DailyFeePercent        *decimal.Decimal `json:"daily_fee_percent,omitempty"`
	DailyFeeMaxPercent     *decimal.Decimal `json:"daily_fee_max_percent,omitempty"`
	PenaltyPercent         *decimal.Decimal `json:"penalty_percent,omitempty"`

	Amounts []TierResponse `json:"amounts,omitempty"`
}
