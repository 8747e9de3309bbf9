package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/crediflow/calc-service/internal/domain/model"
)

// ResolveTier determines which pricing tier applies to the requested amount.
//
// Tiers are sorted ascending by their lower-bound amount and partition the
// amount axis into half-open intervals [tier.Amount, nextTier.Amount); the
// last interval is bounded above only by the global loan ceiling. An amount
// exactly on a boundary resolves to the upper tier.
//
// ok is false when the amount falls below the lowest tier or above the
// global ceiling. Duplicate tier amounts are a data error; the first
// occurrence wins rather than failing the whole calculation.
func ResolveTier(tiers []model.Tier, amount decimal.Decimal) (model.Tier, bool) {
	if len(tiers) == 0 || amount.GreaterThan(MaxLoanAmount) {
		return model.Tier{}, false
	}

	sorted := make([]model.Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.LessThan(sorted[j].Amount)
	})

	matched := -1
	for i, t := range sorted {
		if i > 0 && t.Amount.Equal(sorted[i-1].Amount) {
			continue
		}
		if amount.GreaterThanOrEqual(t.Amount) {
			matched = i
		}
	}
	if matched < 0 {
		return model.Tier{}, false
	}
	return sorted[matched], true
}
