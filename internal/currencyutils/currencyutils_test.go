package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  string
		hasError  bool
	}{
		{"Empty string", "", "0", false},
		{"MT notation", "1000,50", "1000.5", false},
		{"MT notation trailing comma", "1000,", "1000", false},
		{"MX notation", "1000.50", "1000.5", false},
		{"With spaces", " 1 000,25 ", "1000.25", false},
		{"Non-numeric", "abc", "", true},
		{"Two separators", "1,000,00", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.amountStr)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(got), "got %s", got)
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234,5", "1234.50"},
		{"1000,00", "1000.00"},
		{"1000", "1000.00"},
		{"1000,", "1000.00"},
		{"0,1", "0.10"},
		{"12,345", "12.345"},
		{" 250 ", "250.00"},
		{"", "0.00"},
		{"garbage", "0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeAmount(tc.input))
		})
	}
}

func TestFormatMT(t *testing.T) {
	assert.Equal(t, "1000,00", FormatMT(decimal.RequireFromString("1000")))
	assert.Equal(t, "1234,50", FormatMT(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "15,25", FormatMT(decimal.RequireFromString("-15.25")))
}

func TestExtractDigits(t *testing.T) {
	assert.Equal(t, "1000,00", ExtractDigits("1000,00"))
	assert.Equal(t, "1000,00", ExtractDigits("1 000,00 EUR"))
	assert.Equal(t, "", ExtractDigits("NONREF"))
}
