package orderdoc

import (
	"testing"
	"time"
)

func TestFormatRuDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "march",
			date:     time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			expected: "«5» марта 2026 г.",
		},
		{
			name:     "january first",
			date:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: "«1» января 2025 г.",
		},
		{
			name:     "december end of year",
			date:     time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: "«31» декабря 2025 г.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRuDate(tt.date); got != tt.expected {
				t.Errorf("FormatRuDate() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestFormatRuDateLong(t *testing.T) {
	date := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)
	expected := "20 мая 2026 г."
	if got := FormatRuDateLong(date); got != expected {
		t.Errorf("FormatRuDateLong() = %q, expected %q", got, expected)
	}
}

func TestFormatShortDate(t *testing.T) {
	date := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	expected := "05.03.2026"
	if got := FormatShortDate(date); got != expected {
		t.Errorf("FormatShortDate() = %q, expected %q", got, expected)
	}
}
