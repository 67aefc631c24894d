package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected decimal.Decimal
	}{
		{
			name:     "plain integer",
			input:    100,
			expected: decimal.NewFromInt(100),
		},
		{
			name:     "float needing half-up rounding",
			input:    1.005,
			expected: decimal.NewFromFloat(1.01),
		},
		{
			name:     "classic binary float trap",
			input:    2.675,
			expected: decimal.NewFromFloat(2.68),
		},
		{
			name:     "numeric string",
			input:    "1234.5",
			expected: decimal.NewFromFloat(1234.5),
		},
		{
			name:     "string with surrounding whitespace",
			input:    "  42.10 ",
			expected: decimal.NewFromFloat(42.1),
		},
		{
			name:     "string with three decimals rounds",
			input:    "10.999",
			expected: decimal.NewFromInt(11),
		},
		{
			name:     "nil falls back to zero",
			input:    nil,
			expected: decimal.Zero,
		},
		{
			name:     "empty string falls back to zero",
			input:    "",
			expected: decimal.Zero,
		},
		{
			name:     "garbage string falls back to zero",
			input:    "abc",
			expected: decimal.Zero,
		},
		{
			name:     "negative clamps to zero",
			input:    -1,
			expected: decimal.Zero,
		},
		{
			name:     "negative string clamps to zero",
			input:    "-99.99",
			expected: decimal.Zero,
		},
		{
			name:     "json number",
			input:    json.Number("250.505"),
			expected: decimal.NewFromFloat(250.51),
		},
		{
			name:     "unsupported type falls back to zero",
			input:    struct{}{},
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []any{"1.005", 2.675, "1234.5", 0, "", nil, "abc", 99.999}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.True(t, twice.Equal(once),
			"Normalize not idempotent for %v: %v != %v", in, once, twice)
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int64
	}{
		{name: "whole rupees", input: 100, expected: 10000},
		{name: "fractional amount", input: "1234.5", expected: 123450},
		{name: "rounding before scaling", input: 1.005, expected: 101},
		{name: "zero", input: 0, expected: 0},
		{name: "garbage", input: "not-a-number", expected: 0},
		{name: "negative", input: -50, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToMinorUnits(tt.input))
		})
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	inputs := []any{"0.01", "1.005", 2.675, 1234.5, 100, "99999.99"}

	for _, in := range inputs {
		minor := ToMinorUnits(in)
		back := Normalize(FromMinorUnits(minor))
		assert.True(t, back.Equal(Normalize(in)),
			"Round trip mismatch for %v: %v -> %d -> %v", in, Normalize(in), minor, back)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		currency string
		expected string
	}{
		{name: "INR indian grouping", input: 1234567.89, currency: "INR", expected: "₹12,34,567.89"},
		{name: "INR small amount", input: 500, currency: "INR", expected: "₹500.00"},
		{name: "INR four digits", input: 1234.5, currency: "INR", expected: "₹1,234.50"},
		{name: "default currency is INR", input: 100000, currency: "", expected: "₹1,00,000.00"},
		{name: "USD thousands grouping", input: 1234567.89, currency: "USD", expected: "$1,234,567.89"},
		{name: "lowercase currency code", input: 10, currency: "usd", expected: "$10.00"},
		{name: "unknown currency uses code prefix", input: 25000, currency: "AED", expected: "AED 25,000.00"},
		{name: "garbage amount formats as zero", input: "abc", currency: "INR", expected: "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input, tt.currency))
		})
	}
}
