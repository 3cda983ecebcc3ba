package utils

import (
	"fmt"
	"time"
)

// FiscalYear returns the Indian financial-year label for a date,
// e.g. "2025-2026". The financial year starts on April 1st, so
// January-March belong to the previous year's label.
func FiscalYear(date time.Time) string {
	year := date.Year()
	if date.Month() < time.April {
		return fmt.Sprintf("%d-%d", year-1, year)
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}
