package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crediflow/calc-service/internal/domain/service"
)

func TestBuildSchedule(t *testing.T) {
	start := date("2024-03-01")

	t.Run("no overdue days", func(t *testing.T) {
		fees := []decimal.Decimal{d("10"), d("10"), d("10")}
		lines := service.BuildSchedule(d("1000"), start, fees, decimal.Zero, 0, 30)

		require.Len(t, lines, 3)
		for i, line := range lines {
			assert.Equal(t, start.AddDate(0, 0, i), line.Date)
			assert.True(t, line.OutstandingPrincipal.Equal(d("1000")))
			assert.True(t, line.PenaltyFee.IsZero())
		}
		assert.True(t, lines[0].Subtotal.Equal(d("1010")))
		assert.True(t, lines[2].Subtotal.Equal(d("1030")))
	})

	t.Run("penalty spread over the overdue tail", func(t *testing.T) {
		fees := make([]decimal.Decimal, 5)
		for i := range fees {
			fees[i] = d("10")
		}
		// 3 allowed days, 2 overdue days sharing a 40.00 penalty.
		lines := service.BuildSchedule(d("1000"), start, fees, d("40"), 2, 3)

		require.Len(t, lines, 5)
		assert.True(t, lines[2].PenaltyFee.IsZero())
		assert.True(t, lines[3].PenaltyFee.Equal(d("20")))
		assert.True(t, lines[4].PenaltyFee.Equal(d("20")))
		assert.True(t, lines[4].Subtotal.Equal(d("1090")))
	})

	t.Run("uneven penalty split rounds per day", func(t *testing.T) {
		fees := make([]decimal.Decimal, 4)
		for i := range fees {
			fees[i] = decimal.Zero
		}
		// 10.00 over 3 overdue days rounds to 3.33 each.
		lines := service.BuildSchedule(d("1000"), start, fees, d("10"), 3, 1)

		require.Len(t, lines, 4)
		assert.True(t, lines[1].PenaltyFee.Equal(d("3.33")))
		assert.True(t, lines[3].Subtotal.Equal(d("1009.99")))
	})

	t.Run("subtotal is cumulative", func(t *testing.T) {
		fees := []decimal.Decimal{d("1.11"), d("2.22"), d("3.33")}
		lines := service.BuildSchedule(d("500"), start, fees, decimal.Zero, 0, 30)

		running := d("500")
		for _, line := range lines {
			running = running.Add(line.DailyFee).Add(line.PenaltyFee)
			assert.True(t, line.Subtotal.Equal(running.Round(2)),
				"want %s, got %s", running.Round(2), line.Subtotal)
		}
	})
}
