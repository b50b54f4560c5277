// Package dateutils converts between the SWIFT MT short date (YYMMDD) and the
// ISO 8601 dates and timestamps used in ISO 20022 documents.
package dateutils

import (
	"strings"
	"time"
)

const (
	// LayoutMT is the six-digit MT date layout.
	LayoutMT = "060102"
	// LayoutISO is the ISO 8601 calendar date layout.
	LayoutISO = "2006-01-02"
	// LayoutISODateTime is the ISO 8601 timestamp layout used for CreDtTm.
	LayoutISODateTime = "2006-01-02T15:04:05"

	// PlaceholderMT is emitted when an MT date is mandatory but the source
	// document carries none.
	PlaceholderMT = "230101"
	// PlaceholderISO is PlaceholderMT in ISO notation.
	PlaceholderISO = "2023-01-01"
)

// MTToISO converts "YYMMDD" to "20YY-MM-DD". It works positionally, so a
// six-character value that is not a calendar date is still rewritten rather
// than rejected. Inputs shorter than six characters return "".
func MTToISO(yymmdd string) string {
	s := strings.TrimSpace(yymmdd)
	if len(s) < 6 {
		return ""
	}
	return "20" + s[0:2] + "-" + s[2:4] + "-" + s[4:6]
}

// ISOToMT converts an ISO date or timestamp ("2023-12-04",
// "2023-12-04T10:00:00Z") to "YYMMDD". Values that cannot be read return "".
func ISOToMT(iso string) string {
	s := strings.TrimSpace(iso)
	if len(s) < 10 {
		return ""
	}
	t, err := time.Parse(LayoutISO, s[:10])
	if err != nil {
		return ""
	}
	return t.Format(LayoutMT)
}

// MonthDay returns the "MMDD" part of an ISO date, or "" when iso is too short.
func MonthDay(iso string) string {
	s := strings.TrimSpace(iso)
	if len(s) < 10 {
		return ""
	}
	return s[5:7] + s[8:10]
}

// FormatCreationDateTime renders t as an ISO 20022 CreDtTm value in UTC.
func FormatCreationDateTime(t time.Time) string {
	return t.UTC().Format(LayoutISODateTime)
}

// FormatCreationDate renders t as an AppHdr CreDt value in UTC with a zone
// designator.
func FormatCreationDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
