package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// CreditProduct – tagged union over the two pricing shapes
// ---------------------------------------------------------------------------

// PricingKind discriminates the two pricing shapes of a credit product.
// New shapes must be added here and handled in every switch over Kind().
type PricingKind string

const (
	// PricingRange prices a continuous loan-amount interval with one fee schedule.
	PricingRange PricingKind = "RANGE"
	// PricingTiered prices discrete amount tiers, each with its own fee schedule.
	PricingTiered PricingKind = "TIERED"
)

// RangePricing is the fee schedule of a range-priced product.
type RangePricing struct {
	MinLoan                decimal.Decimal
	MaxLoan                decimal.Decimal
	PaymentPeriodDays      int
	FacilitationFeePercent decimal.Decimal
	DailyFeePercent        decimal.Decimal
	// DailyFeeMaxPercent caps the cumulative daily fee as a percent of the
	// loan amount. Nil means uncapped.
	DailyFeeMaxPercent *decimal.Decimal
	PenaltyPercent     decimal.Decimal
}

// Tier is one pricing tier of a tiered product. Amount is the tier's lower
// bound; tiers partition the amount axis into half-open intervals
// [tier.Amount, nextTier.Amount), the last interval unbounded above.
type Tier struct {
	Amount                 decimal.Decimal
	FacilitationFeePercent decimal.Decimal
	DailyFeePercent        decimal.Decimal
	PenaltyPercent         decimal.Decimal
}

// CreditProduct is an immutable credit-product definition. Exactly one of
// the two pricing shapes applies; construction goes through NewRangeProduct
// or NewTieredProduct so the invariant cannot be violated.
type CreditProduct struct {
	productType string
	kind        PricingKind
	rangePrice  *RangePricing
	tiers       []Tier
}

// NewRangeProduct creates a range-priced product.
func NewRangeProduct(productType string, pricing RangePricing) (CreditProduct, error) {
	if productType == "" {
		return CreditProduct{}, errors.New("product type is required")
	}
	if pricing.MinLoan.GreaterThan(pricing.MaxLoan) {
		return CreditProduct{}, fmt.Errorf("product %q: min loan %s exceeds max loan %s",
			productType, pricing.MinLoan, pricing.MaxLoan)
	}
	if pricing.PaymentPeriodDays <= 0 {
		return CreditProduct{}, fmt.Errorf("product %q: payment period must be positive", productType)
	}
	if pricing.FacilitationFeePercent.IsNegative() ||
		pricing.DailyFeePercent.IsNegative() ||
		pricing.PenaltyPercent.IsNegative() {
		return CreditProduct{}, fmt.Errorf("product %q: fee rates must not be negative", productType)
	}
	if pricing.DailyFeeMaxPercent != nil && pricing.DailyFeeMaxPercent.IsNegative() {
		return CreditProduct{}, fmt.Errorf("product %q: daily fee cap must not be negative", productType)
	}
	p := pricing
	if p.DailyFeeMaxPercent != nil {
		capCopy := *p.DailyFeeMaxPercent
		p.DailyFeeMaxPercent = &capCopy
	}
	return CreditProduct{
		productType: productType,
		kind:        PricingRange,
		rangePrice:  &p,
	}, nil
}

// NewTieredProduct creates a tier-priced product.
func NewTieredProduct(productType string, tiers []Tier) (CreditProduct, error) {
	if productType == "" {
		return CreditProduct{}, errors.New("product type is required")
	}
	if len(tiers) == 0 {
		return CreditProduct{}, fmt.Errorf("product %q: at least one tier is required", productType)
	}
	for _, t := range tiers {
		if t.FacilitationFeePercent.IsNegative() ||
			t.DailyFeePercent.IsNegative() ||
			t.PenaltyPercent.IsNegative() {
			return CreditProduct{}, fmt.Errorf("product %q: fee rates must not be negative", productType)
		}
	}
	copied := make([]Tier, len(tiers))
	copy(copied, tiers)
	return CreditProduct{
		productType: productType,
		kind:        PricingTiered,
		tiers:       copied,
	}, nil
}

// Type returns the unique product name.
func (p CreditProduct) Type() string { return p.productType }

// Kind returns the pricing shape discriminator.
func (p CreditProduct) Kind() PricingKind { return p.kind }

// RangePricing returns the range fee schedule. ok is false for tiered products.
func (p CreditProduct) RangePricing() (RangePricing, bool) {
	if p.kind != PricingRange || p.rangePrice == nil {
		return RangePricing{}, false
	}
	return *p.rangePrice, true
}

// Tiers returns a defensive copy of the pricing tiers. Empty for range products.
func (p CreditProduct) Tiers() []Tier {
	if p.tiers == nil {
		return nil
	}
	out := make([]Tier, len(p.tiers))
	copy(out, p.tiers)
	return out
}
