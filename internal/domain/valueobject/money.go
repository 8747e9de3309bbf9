package valueobject

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds a monetary quantity to 2 fractional digits, half-up.
// Every figure that leaves the domain layer goes through this one function
// so totals stay reproducible bit-for-bit.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf returns amount * percent / 100 without rounding. Callers round
// at the point of emission via RoundMoney.
func PercentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}
