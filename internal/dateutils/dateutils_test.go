package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMTToISO(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"231204", "2023-12-04"},
		{" 240229 ", "2024-02-29"},
		{"2312", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MTToISO(tt.input))
		})
	}
}

func TestISOToMT(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2023-12-04", "231204"},
		{"2023-12-04T10:15:00Z", "231204"},
		{"2023-13-04", ""},
		{"04.12.2023", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ISOToMT(tt.input))
		})
	}
}

func TestMonthDay(t *testing.T) {
	assert.Equal(t, "1204", MonthDay("2023-12-04"))
	assert.Equal(t, "", MonthDay("2023"))
}

func TestFormatCreation(t *testing.T) {
	ts := time.Date(2023, 12, 4, 10, 15, 30, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "2023-12-04T09:15:30", FormatCreationDateTime(ts))
	assert.Equal(t, "2023-12-04T09:15:30Z", FormatCreationDate(ts))
}
