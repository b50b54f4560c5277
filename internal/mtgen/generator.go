// Package mtgen renders SWIFT MT messages from parsed ISO 20022 documents.
package mtgen

import (
	"strings"

	"fjacquet/swift-mx/internal/currencyutils"
	"fjacquet/swift-mx/internal/dateutils"
	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/parsererror"
	"fjacquet/swift-mx/internal/textutils"
)

// Generator converts an MxMessage of a supported family into MT text.
type Generator interface {
	// Supports reports whether the generator handles the MX type, matched on
	// its family prefix ("pacs.008", "pacs.009", "camt.053").
	Supports(mxType string) bool

	// ValidateInput checks the preconditions Generate relies on.
	ValidateInput(msg *models.MxMessage) error

	// Generate validates msg and returns the complete MT message.
	Generate(msg *models.MxMessage) (string, error)
}

const (
	defaultCurrency    = "USD"
	unknownReference   = "UNKNOWN"
	maxReferenceLength = 16
)

// BaseGenerator holds the logger shared by the MT generators.
type BaseGenerator struct {
	logger logging.Logger
}

// NewBaseGenerator creates a BaseGenerator. If logger is nil a default logger
// is used.
func NewBaseGenerator(logger logging.Logger) BaseGenerator {
	return BaseGenerator{logger: logging.OrDefault(logger)}
}

// requireFields fails when msg carries no fields at all or when none of the
// keys of a group is present. Every group is an any-of set.
func requireFields(generator string, msg *models.MxMessage, groups ...[]string) error {
	if msg.IsEmpty() {
		return &parsererror.MissingFieldError{Generator: generator, Field: "parsed fields"}
	}
	for _, keys := range groups {
		if msg.FirstField(keys...) == "" {
			return &parsererror.MissingFieldError{Generator: generator, Field: strings.Join(keys, " or ")}
		}
	}
	return nil
}

// block4 accumulates the ":tag:value" lines of the text block.
type block4 struct {
	b strings.Builder
}

func (b *block4) add(tag, value string) {
	b.b.WriteString(":")
	b.b.WriteString(tag)
	b.b.WriteString(":")
	b.b.WriteString(value)
	b.b.WriteString("\n")
}

// addParty writes a 50K or 59 style field: an optional "/account" line, the
// name and the country. Nothing is written when name and account are blank.
func (b *block4) addParty(tag, name, account, country string) {
	if name == "" && account == "" {
		return
	}
	var lines []string
	if account != "" {
		lines = append(lines, "/"+textutils.EscapeMT(account))
	}
	if name != "" {
		lines = append(lines, textutils.EscapeMT(name))
	}
	if country != "" {
		lines = append(lines, textutils.EscapeMT(country))
	}
	b.add(tag, strings.Join(lines, "\n"))
}

func (b *block4) String() string {
	return b.b.String()
}

// envelope wraps the text block into blocks 1, 2 and 4.
func envelope(mtType, sender, receiver string, text *block4) string {
	var b strings.Builder
	b.WriteString("{1:F01")
	b.WriteString(textutils.FormatMTBIC(sender))
	b.WriteString("AXXX0000000000}\n")
	b.WriteString("{2:O")
	b.WriteString(mtType)
	b.WriteString("0000000000")
	b.WriteString(textutils.FormatMTBIC(receiver))
	b.WriteString("AXXX00000000000000000000000}\n")
	b.WriteString("{4:\n")
	b.WriteString(text.String())
	b.WriteString("-}\n")
	return b.String()
}

// reference escapes a reference and cuts it to the 16 characters allowed in
// :20: and :21:.
func reference(value string) string {
	ref := textutils.EscapeMT(value)
	if ref == "" {
		return unknownReference
	}
	return textutils.Truncate(ref, maxReferenceLength)
}

// mtDate converts an ISO date or timestamp to YYMMDD, using the placeholder
// date when none can be read.
func mtDate(values ...string) string {
	for _, v := range values {
		if d := dateutils.ISOToMT(v); d != "" {
			return d
		}
	}
	return dateutils.PlaceholderMT
}

// mtAmount renders an ISO 20022 amount with a comma separator and two
// decimals. Blank or unreadable amounts become "0,00".
func mtAmount(value string) string {
	money, err := models.NewMoneyFromString(currencyutils.ExtractDigits(value), "")
	if err != nil {
		return models.ZeroMoney("").MT()
	}
	return money.MT()
}

// currencyOr returns the uppercased currency or fallback when blank.
func currencyOr(value, fallback string) string {
	if ccy := strings.ToUpper(strings.TrimSpace(value)); ccy != "" {
		return ccy
	}
	return fallback
}

// valueDateAmount builds the 32A composite: date, currency and amount.
func valueDateAmount(msg *models.MxMessage) string {
	return mtDate(msg.Field(models.FieldIntrBkSttlmDt), msg.Field(models.FieldCreDtTm)) +
		currencyOr(msg.Field(models.FieldCurrency), defaultCurrency) +
		mtAmount(msg.Field(models.FieldAmount))
}

// bic returns the 8-character form of a BIC field, or "" when absent.
func bic(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return textutils.FormatMTBIC(value)
}
