package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/crediflow/calc-service/internal/domain/valueobject"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "10", want: "10"},
		{in: "10.004", want: "10"},
		{in: "10.005", want: "10.01"},
		{in: "10.015", want: "10.02"},
		{in: "61.728", want: "61.73"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			in, err := decimal.NewFromString(tt.in)
			assert.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			assert.NoError(t, err)

			got := valueobject.RoundMoney(in)
			assert.True(t, got.Equal(want), "want %s, got %s", want, got)
		})
	}
}

func TestPercentOf(t *testing.T) {
	amount := decimal.NewFromInt(1000)
	percent := decimal.NewFromFloat(2.5)

	got := valueobject.PercentOf(amount, percent)
	assert.True(t, got.Equal(decimal.NewFromInt(25)), "got %s", got)
}
