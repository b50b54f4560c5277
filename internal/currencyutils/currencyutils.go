// Package currencyutils provides amount parsing and formatting for the two
// notations the transcoder moves between: SWIFT MT amounts ("1000,5", comma
// decimal separator, no thousands separator) and ISO 20022 amounts
// ("1000.50", dot separator).
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MinorUnits is the minimum number of decimals emitted for an amount.
const MinorUnits = 2

// ParseAmount parses an amount in either MT or MX notation. Whitespace is
// ignored and a comma is read as the decimal separator. An empty string
// parses to zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	clean := strings.Join(strings.Fields(amountStr), "")
	clean = strings.ReplaceAll(clean, ",", ".")
	if clean == "" {
		return decimal.Zero, nil
	}
	// "1000." is a complete MT amount; decimal rejects a trailing dot.
	clean = strings.TrimSuffix(clean, ".")
	if clean == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(clean)
}

// NormalizeAmount converts an amount to ISO 20022 notation with at least two
// decimals. The integer part is never dropped: "1234,5" becomes "1234.50",
// "1000" becomes "1000.00" and "12,345" keeps its three decimals. Unparseable
// input normalizes to "0.00".
func NormalizeAmount(amountStr string) string {
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero.StringFixed(MinorUnits)
	}
	return FormatMX(amount)
}

// FormatMX renders amount with a dot separator and at least two decimals.
func FormatMX(amount decimal.Decimal) string {
	places := int32(MinorUnits)
	if exp := -amount.Exponent(); exp > places {
		places = exp
	}
	return amount.StringFixed(places)
}

// FormatMT renders amount in MT notation: comma separator, always two
// decimals, no thousands separator. Negative amounts are rendered as their
// absolute value because MT carries the sign in a separate D/C mark.
func FormatMT(amount decimal.Decimal) string {
	return strings.Replace(FormatMX(amount.Abs()), ".", ",", 1)
}

// ExtractDigits keeps only digits and decimal separators from s. It is used
// on the amount part of composite MT fields such as 32A and 60F.
func ExtractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
