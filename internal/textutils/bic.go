// Package textutils holds the pure text helpers shared by the MT and MX
// generators: BIC normalization, escaping for both target formats, party name
// cleaning and postal address wrapping.
package textutils

import (
	"regexp"
	"strings"
)

// UnknownBIC is emitted wherever an ISO 20022 BIC is mandatory but the source
// message carries none.
const UnknownBIC = "UNKNUSXXXXX"

// unknownMTBIC fills an MT envelope whose source document lacked a BIC.
const unknownMTBIC = "XXXXXXXX"

var nonAlnum = regexp.MustCompile(`[^A-Z0-9]`)

// BICPattern matches a BIC-shaped token: 4-letter institution code, 2-letter
// country code, 2-character location and an optional 3-character branch.
var BICPattern = regexp.MustCompile(`\b[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}(?:[A-Z0-9]{3})?\b`)

// SanitizeBIC normalizes raw into an 8 or 11 character BIC suitable for a
// BICFI or AnyBIC element. The result is stable: SanitizeBIC(SanitizeBIC(x))
// equals SanitizeBIC(x).
func SanitizeBIC(raw string) string {
	clean := nonAlnum.ReplaceAllString(strings.ToUpper(raw), "")
	if clean == "UNDEFINED" || clean == "NOTPROVIDED" {
		return UnknownBIC
	}
	switch n := len(clean); {
	case n == 0:
		return UnknownBIC
	case n == 8 || n == 11:
		return clean
	case n > 11:
		return clean[:11]
	case n > 8:
		return clean + strings.Repeat("X", 11-n)
	default:
		return clean + strings.Repeat("X", 8-n)
	}
}

// FormatMTBIC returns the 8-character BIC used inside an MT basic or
// application header. Longer values are truncated and shorter ones padded
// with X.
func FormatMTBIC(raw string) string {
	clean := nonAlnum.ReplaceAllString(strings.ToUpper(strings.TrimSpace(raw)), "")
	if clean == "" {
		return unknownMTBIC
	}
	if len(clean) >= 8 {
		return clean[:8]
	}
	return clean + strings.Repeat("X", 8-len(clean))
}

// IsBIC reports whether s is exactly one BIC-shaped token.
func IsBIC(s string) bool {
	loc := BICPattern.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
