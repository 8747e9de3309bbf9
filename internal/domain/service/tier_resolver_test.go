package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crediflow/calc-service/internal/domain/model"
	"github.com/crediflow/calc-service/internal/domain/service"
)

func TestResolveTier(t *testing.T) {
	tiers := []model.Tier{
		{Amount: d("500"), FacilitationFeePercent: d("4"), DailyFeePercent: d("0.5"), PenaltyPercent: d("1")},
		{Amount: d("2000"), FacilitationFeePercent: d("3"), DailyFeePercent: d("0.4"), PenaltyPercent: d("1")},
		{Amount: d("5000"), FacilitationFeePercent: d("2.5"), DailyFeePercent: d("0.35"), PenaltyPercent: d("1")},
	}

	tests := []struct {
		name      string
		amount    string
		wantTier  string
		wantFound bool
	}{
		{name: "exactly the lowest bound", amount: "500", wantTier: "500", wantFound: true},
		{name: "between two bounds", amount: "1800", wantTier: "500", wantFound: true},
		{name: "exactly a boundary resolves upward", amount: "2000", wantTier: "2000", wantFound: true},
		{name: "above the highest bound", amount: "9000", wantTier: "5000", wantFound: true},
		{name: "below the lowest bound", amount: "499.99", wantFound: false},
		{name: "above the global ceiling", amount: "6000001", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := service.ResolveTier(tiers, d(tt.amount))
			require.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.True(t, tier.Amount.Equal(d(tt.wantTier)),
					"want tier %s, got %s", tt.wantTier, tier.Amount)
			}
		})
	}

	t.Run("input order does not matter", func(t *testing.T) {
		shuffled := []model.Tier{tiers[2], tiers[0], tiers[1]}
		tier, ok := service.ResolveTier(shuffled, d("1800"))
		require.True(t, ok)
		assert.True(t, tier.Amount.Equal(d("500")))
	})

	t.Run("duplicate amounts keep the first occurrence", func(t *testing.T) {
		dup := []model.Tier{
			{Amount: d("500"), FacilitationFeePercent: d("4"), DailyFeePercent: d("0.5"), PenaltyPercent: d("1")},
			{Amount: d("500"), FacilitationFeePercent: d("9"), DailyFeePercent: d("0.9"), PenaltyPercent: d("9")},
		}
		tier, ok := service.ResolveTier(dup, d("600"))
		require.True(t, ok)
		assert.True(t, tier.FacilitationFeePercent.Equal(d("4")))
	})

	t.Run("empty tier list", func(t *testing.T) {
		_, ok := service.ResolveTier(nil, d("1000"))
		assert.False(t, ok)
	})
}
