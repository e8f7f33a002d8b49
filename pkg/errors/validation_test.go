package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "sidebar", false},
		{"with dash", "main-editor", false},
		{"with dot and colon", "ws.left:0", false},
		{"uuid", "0b8e9c2a-3c1e-4f7a-9d2b-1f5c6e7a8b9c", false},
		{"digits first", "1pane", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"space", "left pane", true},
		{"newline", "left\npane", true},
		{"control char", "left\x01", true},
		{"leading dash", "-left", true},
		{"slash", "left/right", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID("pane", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePercentage(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"hundred", 100, false},
		{"fraction", 33.3333, false},

		{"negative", -0.5, true},
		{"over", 100.01, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePercentage("min_size", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePercentage(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFinite(t *testing.T) {
	if err := ValidateFinite("delta", -250); err != nil {
		t.Errorf("ValidateFinite(-250) = %v, want nil", err)
	}
	if err := ValidateFinite("delta", math.NaN()); err == nil {
		t.Error("ValidateFinite(NaN) = nil, want error")
	}
}
