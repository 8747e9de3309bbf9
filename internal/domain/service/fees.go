package service

import (
	"github.com/shopspring/decimal"

	"github.com/crediflow/calc-service/internal/domain/valueobject"
)

// FacilitationFee computes the one-time fee proportional to the loan amount,
// rounded once.
func FacilitationFee(amount, percent decimal.Decimal) decimal.Decimal {
	return valueobject.RoundMoney(valueobject.PercentOf(amount, percent))
}

// DailyFees computes the per-day fee sequence for the loan period and its
// total.
//
// The base per-day fee is amount * dailyPercent / 100. When capPercent is
// set, the cap amount * capPercent / 100 limits the running total across
// the whole period, not each day individually: the accumulator is carried
// from day to day and once exhausted every later day contributes zero.
//
// Each day's value is rounded before summation and the total is rounded
// again. The reference system double-rounds this way; keep it.
func DailyFees(amount, dailyPercent decimal.Decimal, capPercent *decimal.Decimal, periodDays int) ([]decimal.Decimal, decimal.Decimal) {
	base := valueobject.PercentOf(amount, dailyPercent)
	fees := make([]decimal.Decimal, periodDays)
	total := decimal.Zero

	if capPercent == nil {
		rounded := valueobject.RoundMoney(base)
		for i := range fees {
			fees[i] = rounded
			total = total.Add(rounded)
		}
		return fees, valueobject.RoundMoney(total)
	}

	capAmount := valueobject.PercentOf(amount, *capPercent)
	accrued := decimal.Zero
	for i := range fees {
		remaining := capAmount.Sub(accrued)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		fee := base
		if fee.GreaterThan(remaining) {
			fee = remaining
		}
		accrued = accrued.Add(fee)
		fees[i] = valueobject.RoundMoney(fee)
		total = total.Add(fees[i])
	}
	return fees, valueobject.RoundMoney(total)
}
