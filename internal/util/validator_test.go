package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		t.Fatal(err)
	}
	if err := v.RegisterValidation("cmin", CustomMin); err != nil {
		t.Fatal(err)
	}
	if err := v.RegisterValidation("cmax", CustomMax); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		value   string
		tag     string
		wantErr bool
	}{
		{"whitespace only fails strNotEmpty", "   ", "strNotEmpty", true},
		{"text passes strNotEmpty", "ИВТ-401", "strNotEmpty", false},
		{"trimmed length below cmin fails", " ab ", "cmin=3", true},
		{"length at cmin passes", "abc", "cmin=3", false},
		{"length over cmax fails", "abcdef", "cmax=5", true},
		{"length at cmax passes", "abcde", "cmax=5", false},
		{"surrounding spaces ignored by cmax", "  abcde  ", "cmax=5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if (err != nil) != tt.wantErr {
				t.Errorf("Var(%q, %q) error = %v, wantErr %v", tt.value, tt.tag, err, tt.wantErr)
			}
		})
	}
}
