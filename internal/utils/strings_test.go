package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRegNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase with space",
			input:    "ab12 cde",
			expected: "AB12CDE",
		},
		{
			name:     "already normalized",
			input:    "AB12CDE",
			expected: "AB12CDE",
		},
		{
			name:     "surrounding whitespace",
			input:    "  ab12cde  ",
			expected: "AB12CDE",
		},
		{
			name:     "multiple internal spaces",
			input:    "a b 1 2",
			expected: "AB12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRegNumber(tt.input))
		})
	}
}

func TestValidateRegNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "current style plate",
			input:    "AB12CDE",
			expected: true,
		},
		{
			name:     "dateless plate",
			input:    "1ABC",
			expected: true,
		},
		{
			name:     "empty",
			input:    "",
			expected: false,
		},
		{
			name:     "too long",
			input:    "AB12CDEFG",
			expected: false,
		},
		{
			name:     "lowercase rejected before normalization",
			input:    "ab12cde",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateRegNumber(tt.input))
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "uk mobile",
			input:    "07700900123",
			expected: true,
		},
		{
			name:     "international format",
			input:    "+44 7700 900123",
			expected: true,
		},
		{
			name:     "too short",
			input:    "12345",
			expected: false,
		},
		{
			name:     "letters",
			input:    "not-a-number",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidatePhoneNumber(tt.input))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("  user@example.com "))
	assert.False(t, ValidateEmail("user@invalid"))
	assert.False(t, ValidateEmail("no-at-sign"))
	assert.False(t, ValidateEmail(""))
}
