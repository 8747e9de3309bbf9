package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crediflow/calc-service/internal/domain/model"
	"github.com/crediflow/calc-service/internal/domain/valueobject"
)

// BuildSchedule assembles the per-day ledger lines for the loan period.
//
// Line i covers startDate + i days. The outstanding principal is the full
// loan amount on every line; this model simulates a bullet repayment, not
// an amortizing one. Days at index >= allowedDays are overdue and carry an
// even share of the penalty total. Subtotal is the cumulative amount owed
// if the loan were settled through that day.
func BuildSchedule(
	amount decimal.Decimal,
	startDate time.Time,
	dailyFees []decimal.Decimal,
	penaltyTotal decimal.Decimal,
	overdueDays int,
	allowedDays int,
) []model.ScheduleLine {
	var perDayPenalty decimal.Decimal
	if overdueDays > 0 {
		perDayPenalty = valueobject.RoundMoney(penaltyTotal.Div(decimal.NewFromInt(int64(overdueDays))))
	}

	lines := make([]model.ScheduleLine, len(dailyFees))
	feeRunning := decimal.Zero
	penaltyRunning := decimal.Zero
	for i := range dailyFees {
		penalty := decimal.Zero
		if overdueDays > 0 && i >= allowedDays {
			penalty = perDayPenalty
		}
		feeRunning = feeRunning.Add(dailyFees[i])
		penaltyRunning = penaltyRunning.Add(penalty)

		lines[i] = model.ScheduleLine{
			Date:                 startDate.AddDate(0, 0, i),
			OutstandingPrincipal: valueobject.RoundMoney(amount),
			DailyFee:             dailyFees[i],
			PenaltyFee:           penalty,
			Subtotal:             valueobject.RoundMoney(amount.Add(feeRunning).Add(penaltyRunning)),
		}
	}
	return lines
}
