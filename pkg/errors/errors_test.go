package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPivot, "pivot (%d, %d) is not adjacent", 0, 2)

	if err.Code != ErrCodeInvalidPivot {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidPivot)
	}

	if err.Message != "pivot (0, 2) is not adjacent" {
		t.Errorf("Message = %v, want %v", err.Message, "pivot (0, 2) is not adjacent")
	}

	expected := "INVALID_PIVOT: pivot (0, 2) is not adjacent"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("toml: line 3: expected '='")
	err := Wrap(ErrCodeInvalidManifest, cause, "decode manifest")

	if err.Code != ErrCodeInvalidManifest {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidManifest)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	want := "INVALID_MANIFEST: decode manifest: toml: line 3: expected '='"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidLayout, "test"),
			code:     ErrCodeInvalidLayout,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidLayout, "test"),
			code:     ErrCodeInvalidPivot,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeGroupNotFound, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeGroupNotFound,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("adjust: %w", New(ErrCodeInvalidPivot, "bad")),
			code:     ErrCodeInvalidPivot,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDuplicateID, "x")); got != ErrCodeDuplicateID {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeDuplicateID)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"structured", New(ErrCodePaneNotFound, "pane %q not found", "sidebar"), `pane "sidebar" not found`},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		code        Code
		wantInvalid bool
		wantMissing bool
	}{
		{ErrCodeInvalidLayout, true, false},
		{ErrCodeInvalidPivot, true, false},
		{ErrCodeInvalidConstraints, true, false},
		{ErrCodeInvalidManifest, true, false},
		{ErrCodeGroupNotFound, false, true},
		{ErrCodePaneNotFound, false, true},
		{ErrCodeDuplicateID, false, false},
		{ErrCodeInternal, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New(tt.code, "x")
			if got := IsInvalid(err); got != tt.wantInvalid {
				t.Errorf("IsInvalid() = %v, want %v", got, tt.wantInvalid)
			}
			if got := IsNotFound(err); got != tt.wantMissing {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.wantMissing)
			}
		})
	}
}
