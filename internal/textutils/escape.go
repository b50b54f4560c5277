package textutils

import (
	"regexp"
	"strings"
)

var mtEscaper = strings.NewReplacer(
	"\r", "",
	"\n", " ",
	":", "-",
)

// EscapeMT makes s safe as a single-line MT field value: line breaks become
// spaces and colons, which would open a new tag, become hyphens.
func EscapeMT(s string) string {
	return strings.TrimSpace(mtEscaper.Replace(s))
}

var nameNoise = regexp.MustCompile(`[^\p{L}\p{N}\s.\-]`)

// CleanName strips characters that are neither letters, digits, spaces,
// dots nor hyphens and collapses runs of whitespace.
func CleanName(s string) string {
	return strings.Join(strings.Fields(nameNoise.ReplaceAllString(s, "")), " ")
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
