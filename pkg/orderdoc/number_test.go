package orderdoc

import (
	"testing"
	"time"
)

func TestNumberFormats(t *testing.T) {
	now := time.Date(2026, time.March, 5, 14, 30, 52, 0, time.UTC)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "group order number",
			got:      GroupOrderNumber(now),
			expected: "УП-20260305-143052",
		},
		{
			name:     "student order number",
			got:      StudentOrderNumber("2021-0401", now),
			expected: "ДП-2021-0401-20260305",
		},
		{
			name:     "document number for student",
			got:      DocumentNumber("student", "42", now),
			expected: "DOC-STUDENT-42-20260305-143052",
		},
		{
			name:     "document number uppercases object type",
			got:      DocumentNumber("group", "7", now),
			expected: "DOC-GROUP-7-20260305-143052",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, expected %q", tt.got, tt.expected)
			}
		})
	}
}

func TestDocumentNumberDiffersByObject(t *testing.T) {
	now := time.Date(2026, time.March, 5, 14, 30, 52, 0, time.UTC)

	a := DocumentNumber("student", "1", now)
	b := DocumentNumber("student", "2", now)
	if a == b {
		t.Errorf("numbers for different objects collided: %q", a)
	}
}
