package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crediflow/calc-service/internal/domain/model"
	"github.com/crediflow/calc-service/internal/domain/service"
)

func TestAllowedPeriodDays(t *testing.T) {
	rangeProduct, err := model.NewRangeProduct("standard", model.RangePricing{
		MinLoan:                d("100"),
		MaxLoan:                d("10000"),
		PaymentPeriodDays:      30,
		FacilitationFeePercent: d("5"),
		DailyFeePercent:        d("1"),
		PenaltyPercent:         d("2"),
	})
	require.NoError(t, err)

	tiers := []model.Tier{
		{Amount: d("500"), FacilitationFeePercent: d("4"), DailyFeePercent: d("0.5"), PenaltyPercent: d("1")},
	}
	micro50, err := model.NewTieredProduct("micro50", tiers)
	require.NoError(t, err)
	pilot, err := model.NewTieredProduct("pilot", tiers)
	require.NoError(t, err)

	t.Run("range product uses its own payment period", func(t *testing.T) {
		assert.Equal(t, 30, service.AllowedPeriodDays(rangeProduct, 90))
	})

	t.Run("mapped tiered product uses the table", func(t *testing.T) {
		assert.Equal(t, 50, service.AllowedPeriodDays(micro50, 90))
	})

	t.Run("unmapped tiered product falls back to the requested period", func(t *testing.T) {
		assert.Equal(t, 90, service.AllowedPeriodDays(pilot, 90))
	})
}

func TestPenaltyFee(t *testing.T) {
	tests := []struct {
		name        string
		periodDays  int
		allowedDays int
		wantFee     string
		wantOverdue int
	}{
		{name: "within the window", periodDays: 30, allowedDays: 30, wantFee: "0", wantOverdue: 0},
		{name: "shorter than the window", periodDays: 10, allowedDays: 30, wantFee: "0", wantOverdue: 0},
		{name: "one day overdue", periodDays: 31, allowedDays: 30, wantFee: "20", wantOverdue: 1},
		{name: "five days overdue", periodDays: 35, allowedDays: 30, wantFee: "100", wantOverdue: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, overdue := service.PenaltyFee(d("1000"), d("2"), tt.periodDays, tt.allowedDays)
			assert.True(t, fee.Equal(d(tt.wantFee)), "want %s, got %s", tt.wantFee, fee)
			assert.Equal(t, tt.wantOverdue, overdue)
		})
	}

	t.Run("rounds the total once", func(t *testing.T) {
		fee, overdue := service.PenaltyFee(d("1234.56"), d("1.5"), 33, 30)
		// 1234.56 * 1.5% * 3 = 55.5552.
		assert.True(t, fee.Equal(d("55.56")), "got %s", fee)
		assert.Equal(t, 3, overdue)
	})
}
