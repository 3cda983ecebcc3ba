package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiscalYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"mid March stays in previous year", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"March 31 is the last day of the old year", time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"April 1 starts the new year", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"December belongs to the running year", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"January rolls back to the running year", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "2025-2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FiscalYear(tt.date))
		})
	}
}

func TestFiscalYearDeterministic(t *testing.T) {
	d := time.Date(2025, time.June, 10, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, FiscalYear(d), FiscalYear(d))
}
