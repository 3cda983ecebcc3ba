package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2HalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"30.015", "30.02"}, // exact half rounds up
		{"30.014", "30.01"},
		{"30.0251", "30.03"},
		{"10", "10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(decimal.RequireFromString(tt.in)).String(), "Round2(%s)", tt.in)
	}
}

func TestPercentOf(t *testing.T) {
	subtotal := decimal.NewFromInt(1000)
	assert.Equal(t, "90.00", PercentOf(subtotal, decimal.NewFromInt(9)).StringFixed(2))
	assert.Equal(t, "180.00", PercentOf(subtotal, decimal.NewFromInt(18)).StringFixed(2))
	assert.Equal(t, "0.00", PercentOf(subtotal, decimal.Zero).StringFixed(2))
}
