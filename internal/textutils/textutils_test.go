package textutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeBIC(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"eight chars passthrough", "DEUTDEFF", "DEUTDEFF"},
		{"eleven chars passthrough", "DEUTDEFF500", "DEUTDEFF500"},
		{"lower case and spaces", " deut deff ", "DEUTDEFF"},
		{"longer than eleven", "DEUTDEFF500XYZ", "DEUTDEFF500"},
		{"nine chars padded to eleven", "DEUTDEFF5", "DEUTDEFF5XX"},
		{"ten chars padded to eleven", "DEUTDEFF50", "DEUTDEFF50X"},
		{"short padded to eight", "DEUT", "DEUTXXXX"},
		{"punctuation only", "--//", UnknownBIC},
		{"blank", "   ", UnknownBIC},
		{"undefined marker", "undefined", UnknownBIC},
		{"not provided marker", "NOTPROVIDED", UnknownBIC},
		{"spaced not provided marker", "NOT PROVIDED", UnknownBIC},
		{"hyphenated not provided marker", "not-provided", UnknownBIC},
		{"spaced undefined marker", "UN DEFINED", UnknownBIC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeBIC(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, SanitizeBIC(got), "sanitizing must be idempotent")
		})
	}
}

func TestSanitizeBIC_Idempotent(t *testing.T) {
	inputs := []string{"", "a", "ab-cd", "UNDEFINED", "XXXXXXXXXXXXXXXXXX", "1234567890", "Bank of Nowhere", "ÄÖÜ", "chasus33", "NOT PROVIDED", "not-provided", "Undefined."}
	for _, in := range inputs {
		once := SanitizeBIC(in)
		assert.Equal(t, once, SanitizeBIC(once), "input %q", in)
	}
}

func TestFormatMTBIC(t *testing.T) {
	assert.Equal(t, "BANKDEFF", FormatMTBIC("BANKDEFFXXX"))
	assert.Equal(t, "BANKDEFF", FormatMTBIC("bankdeff"))
	assert.Equal(t, "BANKXXXX", FormatMTBIC("BANK"))
	assert.Equal(t, "XXXXXXXX", FormatMTBIC(""))
}

func TestIsBIC(t *testing.T) {
	assert.True(t, IsBIC("DEUTDEFF"))
	assert.True(t, IsBIC("DEUTDEFF500"))
	assert.False(t, IsBIC("DEUTDEFF JOHN"))
	assert.False(t, IsBIC("JOHN"))
}

func TestEscapeMT(t *testing.T) {
	assert.Equal(t, "INV 1 REF- 99", EscapeMT("INV 1\r\nREF: 99"))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "ACME Corp. Ltd-", CleanName("ACME  Corp.* (Ltd-)"))
	assert.Equal(t, "Müller GmbH", CleanName("Müller GmbH!"))
}

func TestSplitAddressLines(t *testing.T) {
	t.Run("wraps on word boundaries", func(t *testing.T) {
		lines := SplitAddressLines("1 MAIN STREET SPRINGFIELD", 12, 7)
		assert.Equal(t, []string{"1 MAIN", "STREET", "SPRINGFIELD"}, lines)
	})

	t.Run("hard splits long words", func(t *testing.T) {
		lines := SplitAddressLines("ABCDEFGHIJ", 4, 7)
		assert.Equal(t, []string{"ABCD", "EFGH", "IJ"}, lines)
	})

	t.Run("caps number of lines", func(t *testing.T) {
		lines := SplitAddressLines(strings.Repeat("WORD ", 20), 4, 3)
		assert.Len(t, lines, 3)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SplitAddressLines("   ", 70, 7))
	})
}

func TestLimitAddressLines(t *testing.T) {
	long := strings.Repeat("A", 90)
	in := []string{long, "2", "3", "4", "5", "6", "7", "8"}
	out := LimitAddressLines(in)
	assert.Len(t, out, MaxAddressLines)
	assert.Len(t, out[0], MaxAddressLineLength)
	assert.Equal(t, strings.Repeat("A", 20), out[1], "overflow wraps onto the next line")
	assert.Equal(t, "6", out[6])

	wrapped := LimitAddressLines([]string{strings.Repeat("RUE DE LA GARE ", 6), "1000 LAUSANNE"})
	require.Len(t, wrapped, 3)
	assert.Equal(t, "RUE DE LA GARE RUE DE LA GARE RUE DE LA GARE RUE DE LA GARE RUE DE LA", wrapped[0])
	assert.Equal(t, "GARE RUE DE LA GARE", wrapped[1])
	assert.Equal(t, "1000 LAUSANNE", wrapped[2])

	assert.Empty(t, LimitAddressLines([]string{"  "}))
}
