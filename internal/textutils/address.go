package textutils

import "strings"

// ISO 20022 length limits applied to generated party data.
const (
	MaxNameLength        = 140
	MaxAddressLineLength = 70
	MaxAddressLines      = 7
	MaxIDLength          = 35
)

// SplitAddressLines word-wraps text into at most maxLines lines of at most
// maxLen runes. Words longer than maxLen are hard-split. Text that does not
// fit is dropped.
func SplitAddressLines(text string, maxLen, maxLines int) []string {
	if maxLen <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	var current []rune
	flush := func() bool {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
		return len(lines) < maxLines
	}

	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > maxLen {
			if !flush() {
				return lines
			}
			lines = append(lines, string(w[:maxLen]))
			if len(lines) == maxLines {
				return lines
			}
			w = w[maxLen:]
		}
		switch {
		case len(current) == 0:
			current = append(current, w...)
		case len(current)+1+len(w) <= maxLen:
			current = append(current, ' ')
			current = append(current, w...)
		default:
			if !flush() {
				return lines
			}
			current = append(current, w...)
		}
	}
	flush()
	return lines
}

// LimitAddressLines word-wraps every line to MaxAddressLineLength and keeps
// at most MaxAddressLines lines in total.
func LimitAddressLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		remaining := MaxAddressLines - len(out)
		if remaining == 0 {
			break
		}
		out = append(out, SplitAddressLines(l, MaxAddressLineLength, remaining)...)
	}
	return out
}
