package mtgen

import (
	"strings"

	"fjacquet/swift-mx/internal/dateutils"
	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/textutils"
)

const (
	defaultTransactionType = "NMSC"
	noReference            = "NONREF"
	defaultEntryInfo       = "Statement entries available"
)

// Mt940Generator converts camt.053 into an MT940 customer statement.
type Mt940Generator struct {
	BaseGenerator
}

// NewMt940Generator creates an Mt940Generator.
func NewMt940Generator(logger logging.Logger) *Mt940Generator {
	return &Mt940Generator{BaseGenerator: NewBaseGenerator(logger)}
}

// Supports reports whether mxType belongs to the camt.053 family.
func (g *Mt940Generator) Supports(mxType string) bool {
	return strings.HasPrefix(mxType, models.Camt053Family)
}

// ValidateInput requires a MsgId and either the account or an opening
// balance.
func (g *Mt940Generator) ValidateInput(msg *models.MxMessage) error {
	return requireFields("MT940", msg,
		[]string{models.FieldMsgID},
		[]string{models.FieldAccountID, models.FieldOpeningBalance})
}

// balance is one side of the statement as read from the MX fields.
type balance struct {
	amount, currency, indicator, date string
}

func (b balance) present() bool {
	return b.amount != ""
}

// field renders "C231204EUR1000,00".
func (b balance) field() string {
	return mark(b.indicator) + mtDate(b.date) + b.currency + mtAmount(b.amount)
}

// mark maps CRDT/DBIT to the MT credit/debit mark. Anything but DBIT is a
// credit.
func mark(indicator string) string {
	if strings.EqualFold(strings.TrimSpace(indicator), "DBIT") {
		return "D"
	}
	return "C"
}

// Generate converts msg to MT940.
func (g *Mt940Generator) Generate(msg *models.MxMessage) (string, error) {
	if err := g.ValidateInput(msg); err != nil {
		return "", err
	}

	opening := balance{
		amount:    msg.Field(models.FieldOpeningBalance),
		currency:  currencyOr(msg.Field(models.FieldOpeningCurrency), defaultCurrency),
		indicator: msg.Field(models.FieldOpeningIndicator),
		date:      msg.Field(models.FieldOpeningDate),
	}
	closing := balance{
		amount:    msg.Field(models.FieldClosingBalance),
		currency:  currencyOr(msg.Field(models.FieldClosingCurrency), opening.currency),
		indicator: msg.Field(models.FieldClosingIndicator),
		date:      msg.Field(models.FieldClosingDate),
	}
	if !closing.present() {
		closing = opening
	}

	seq := strings.TrimSpace(msg.Field(models.FieldStmtSeqNb))
	if seq == "" {
		seq = "1"
	}

	var text block4
	text.add("20", reference(msg.Field(models.FieldMsgID)))
	if account := textutils.EscapeMT(msg.Field(models.FieldAccountID)); account != "" {
		text.add("25", account)
	}
	text.add("28C", seq+"/1")
	if opening.present() {
		text.add("60F", opening.field())
	}
	if count := strings.TrimSpace(msg.Field(models.FieldEntryCount)); count != "" && count != "0" {
		text.add("61", statementLine(msg, opening))
		info := textutils.EscapeMT(msg.Field(models.FieldEntryInfo))
		if info == "" {
			info = defaultEntryInfo
		}
		text.add("86", info)
	}
	if closing.present() {
		text.add("62F", closing.field())
	}

	g.logger.Debug("Generated MT940",
		logging.Field{Key: logging.FieldGenerator, Value: "MT940"},
		logging.Field{Key: logging.FieldCount, Value: msg.Field(models.FieldEntryCount)})
	return envelope("940", msg.SenderBIC, msg.ReceiverBIC, &text), nil
}

// statementLine renders field 61 from the first entry: value date, optional
// entry date (MMDD), mark, amount, transaction type and reference. Without
// entry fields the line is a zero credit dated like the opening balance.
func statementLine(msg *models.MxMessage, opening balance) string {
	if !msg.HasField(models.FieldEntryAmount) {
		return mtDate(opening.date) + "C" + mtAmount("") + defaultTransactionType + noReference
	}

	valueDate := msg.FirstField(models.FieldEntryValueDate, models.FieldEntryBookingDate)
	line := mtDate(valueDate, opening.date)
	if book := dateutils.MonthDay(msg.Field(models.FieldEntryBookingDate)); book != "" {
		line += book
	}
	line += mark(msg.Field(models.FieldEntryIndicator)) + mtAmount(msg.Field(models.FieldEntryAmount)) + defaultTransactionType

	ref := textutils.EscapeMT(msg.Field(models.FieldEntryReference))
	if ref == "" {
		ref = noReference
	}
	return line + textutils.Truncate(ref, maxReferenceLength)
}
