package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDates(t *testing.T) {
	tests := []struct {
		name          string
		input         time.Time
		expectedShort string
		expectedLong  string
		expectedTime  string
	}{
		{"june evening", time.Date(2025, time.June, 15, 19, 0, 0, 0, time.UTC), "15 Jun 2025", "15 de Junio, 2025", "19:00"},
		{"january first", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "1 Ene 2026", "1 de Enero, 2026", "00:00"},
		{"december late", time.Date(2025, time.December, 31, 23, 45, 0, 0, time.UTC), "31 Dic 2025", "31 de Diciembre, 2025", "23:45"},
		{"august midday", time.Date(2025, time.August, 9, 12, 30, 0, 0, time.UTC), "9 Ago 2025", "9 de Agosto, 2025", "12:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedShort, FormatShortDate(tt.input))
			assert.Equal(t, tt.expectedLong, FormatLongDate(tt.input))
			assert.Equal(t, tt.expectedTime, FormatTime(tt.input))
		})
	}
}
