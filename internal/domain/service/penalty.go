package service

import (
	"github.com/shopspring/decimal"

	"github.com/crediflow/calc-service/internal/domain/model"
	"github.com/crediflow/calc-service/internal/domain/valueobject"
)

// tieredAllowedPeriods maps tiered product names to their allowed payment
// period in days. Tiered products carry no period of their own, so the
// window comes from this closed table.
var tieredAllowedPeriods = map[string]int{
	"micro30": 30,
	"micro50": 50,
}

// AllowedPeriodDays returns the penalty-free payment window for a product.
//
// Range products carry their own payment period. Tiered products are looked
// up in tieredAllowedPeriods; a tiered product missing from the table falls
// back to the requested period itself, which by construction makes it
// penalty-free. That fallback reproduces the reference system's behaviour
// for unmapped products and is intentional, not a bug to fix here.
func AllowedPeriodDays(product model.CreditProduct, periodDays int) int {
	switch product.Kind() {
	case model.PricingRange:
		pricing, _ := product.RangePricing()
		return pricing.PaymentPeriodDays
	case model.PricingTiered:
		if days, ok := tieredAllowedPeriods[product.Type()]; ok {
			return days
		}
		return periodDays
	default:
		return periodDays
	}
}

// PenaltyFee computes the total penalty for a period exceeding the allowed
// payment window, and the number of overdue days it is spread across.
//
// The penalty triggers only when the end date falls strictly after the last
// day of the allowed window, i.e. when periodDays > allowedDays. The total
// is amount * penaltyPercent * overdueDays / 100, rounded once.
func PenaltyFee(amount, penaltyPercent decimal.Decimal, periodDays, allowedDays int) (decimal.Decimal, int) {
	overdue := periodDays - allowedDays
	if overdue <= 0 {
		return decimal.Zero, 0
	}
	total := valueobject.PercentOf(amount, penaltyPercent).Mul(decimal.NewFromInt(int64(overdue)))
	return valueobject.RoundMoney(total), overdue
}
