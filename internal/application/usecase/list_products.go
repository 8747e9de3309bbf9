package usecase

import (
	"context"

	"github.com/crediflow/calc-service/internal/application/dto"
	"github.com/crediflow/calc-service/internal/domain/model"
)

// ListProductsUseCase returns the credit catalog as loaded at startup.
type ListProductsUseCase struct {
	catalog model.Catalog
}

// NewListProductsUseCase wires dependencies.
func NewListProductsUseCase(catalog model.Catalog) *ListProductsUseCase {
	return &ListProductsUseCase{catalog: catalog}
}

// Execute returns the full catalog.
func (uc *ListProductsUseCase) Execute(_ context.Context) []dto.ProductResponse {
	products := uc.catalog.Products()
	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toProductResponse(p model.CreditProduct) dto.ProductResponse {
	resp := dto.ProductResponse{
		Type: p.Type(),
		Kind: string(p.Kind()),
	}
	switch p.Kind() {
	case model.PricingRange:
		pricing, _ := p.RangePricing()
		minLoan, maxLoan := pricing.MinLoan, pricing.MaxLoan
		period := pricing.PaymentPeriodDays
		facilitation, daily, penalty := pricing.FacilitationFeePercent, pricing.DailyFeePercent, pricing.PenaltyPercent
		resp.MinLoan = &minLoan
		resp.MaxLoan = &maxLoan
		resp.PaymentPeriodDays = &period
		resp.FacilitationFeePercent = &facilitation
		resp.DailyFeePercent = &daily
		resp.DailyFeeMaxPercent = pricing.DailyFeeMaxPercent
		resp.PenaltyPercent = &penalty
	case model.PricingTiered:
		tiers := p.Tiers()
		resp.Amounts = make([]dto.TierResponse, len(tiers))
		for j, t := range tiers {
			resp.Amounts[j] = dto.TierResponse{
				Amount:                 t.Amount,
				FacilitationFeePercent: t.FacilitationFeePercent,
				DailyFeePercent:        t.DailyFeePercent,
				PenaltyPercent:         t.PenaltyPercent,
			}
		}
	}
	return resp
}
