package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/crediflow/calc-service/internal/domain/model"
)

// productRecord is the on-disk shape of one catalog entry. The pricing shape
// is tagged by field presence: min_loan/max_loan for range products, amounts
// for tiered products.
type productRecord struct {
	Type string `json:"type"`

	MinLoan                *decimal.Decimal `json:"min_loan"`
	MaxLoan                *decimal.Decimal `json:"max_loan"`
	PaymentPeriodDays      *int             `json:"payment_period_days"`
	FacilitationFeePercent *decimal.Decimal `json:"facilitation_fee_percent"`
	DailyFeePercent        *decimal.Decimal `json:"daily_fee_percent"`
	DailyFeeMaxPercent     *decimal.Decimal `json:"daily_fee_max_percent"`
	PenaltyPercent         *decimal.Decimal `json:"penalty_percent"`

	Amounts []tierRecord `json:"amounts"`
}

type tierRecord struct {
	Amount                 decimal.Decimal `json:"amount"`
	FacilitationFeePercent decimal.Decimal `json:"facilitation_fee_percent"`
	DailyFeePercent        decimal.Decimal `json:"daily_fee_percent"`
	PenaltyPercent         decimal.Decimal `json:"penalty_percent"`
}

// FileSource loads the credit catalog from a JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a catalog source reading from the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and validates the catalog file.
func (s *FileSource) Load(_ context.Context) (model.Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("read catalog file %s: %w", s.path, err)
	}

	var records []productRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog file %s: %w", s.path, err)
	}

	products := make([]model.CreditProduct, 0, len(records))
	for _, rec := range records {
		p, err := recordToProduct(rec)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("catalog file %s: %w", s.path, err)
		}
		products = append(products, p)
	}

	catalog, err := model.NewCatalog(products)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog file %s: %w", s.path, err)
	}
	return catalog, nil
}

// recordToProduct discriminates the pricing shape by field presence and
// builds the corresponding product variant.
func recordToProduct(rec productRecord) (model.CreditProduct, error) {
	tiered := len(rec.Amounts) > 0
	ranged := rec.MinLoan != nil || rec.MaxLoan != nil

	switch {
	case tiered && ranged:
		return model.CreditProduct{}, fmt.Errorf("product %q mixes range and tiered fields", rec.Type)
	case tiered:
		tiers := make([]model.Tier, len(rec.Amounts))
		for i, t := range rec.Amounts {
			tiers[i] = model.Tier{
				Amount:                 t.Amount,
				FacilitationFeePercent: t.FacilitationFeePercent,
				DailyFeePercent:        t.DailyFeePercent,
				PenaltyPercent:         t.PenaltyPercent,
			}
		}
		return model.NewTieredProduct(rec.Type, tiers)
	case ranged:
		if rec.MinLoan == nil || rec.MaxLoan == nil || rec.PaymentPeriodDays == nil ||
			rec.FacilitationFeePercent == nil || rec.DailyFeePercent == nil || rec.PenaltyPercent == nil {
			return model.CreditProduct{}, fmt.Errorf("product %q is missing range pricing fields", rec.Type)
		}
		return model.NewRangeProduct(rec.Type, model.RangePricing{
			MinLoan:                *rec.MinLoan,
			MaxLoan:                *rec.MaxLoan,
			PaymentPeriodDays:      *rec.PaymentPeriodDays,
			FacilitationFeePercent: *rec.FacilitationFeePercent,
			DailyFeePercent:        *rec.DailyFeePercent,
			DailyFeeMaxPercent:     rec.DailyFeeMaxPercent,
			PenaltyPercent:         *rec.PenaltyPercent,
		})
	default:
		return model.CreditProduct{}, fmt.Errorf("product %q matches neither pricing shape", rec.Type)
	}
}
