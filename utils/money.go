package utils

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Round2 rounds d to 2 decimal places, half away from zero.
// Every monetary value in this system is non-negative, so this is
// round-half-up for everything we store.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf returns rate% of base, rounded to 2 decimal places.
func PercentOf(base, rate decimal.Decimal) decimal.Decimal {
	return Round2(base.Mul(rate.Div(oneHundred)))
}
