package mxgen

import (
	"errors"
	"regexp"
	"strings"

	"fjacquet/swift-mx/internal/dateutils"
	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/parsererror"

	"github.com/shopspring/decimal"
)

var errBalanceTooShort = errors.New("balance must hold a mark, a date and a currency")

// statementLinePattern reads field 61: value date, optional entry date (MMDD),
// debit/credit mark (C, D, RC, RD), optional funds code, amount, transaction
// type and the customer reference.
var statementLinePattern = regexp.MustCompile(`^(\d{6})(\d{4})?(RC|RD|C|D)([A-Z])?([\d,.]+)(?:([A-Z][A-Z0-9]{3})([^/\n]*))?`)

// Camt053Generator converts an MT940 customer statement into
// camt.053.001.08.
type Camt053Generator struct {
	BaseGenerator
}

// NewCamt053Generator creates a Camt053Generator.
func NewCamt053Generator(logger logging.Logger) *Camt053Generator {
	return &Camt053Generator{BaseGenerator: NewBaseGenerator(logger)}
}

// Supports reports whether mtType is "940".
func (g *Camt053Generator) Supports(mtType string) bool {
	return mtType == "940"
}

// ValidateInput requires the reference (20), account (25), statement
// number (28C) and both an opening and a closing balance.
func (g *Camt053Generator) ValidateInput(msg *models.MtMessage) error {
	const name = "camt.053"
	if err := requireTags(name, msg, "20", "25", "28C"); err != nil {
		return err
	}
	if !msg.HasTag("60F") && !msg.HasTag("60M") {
		return &parsererror.MissingFieldError{Generator: name, Field: ":60F: or :60M:"}
	}
	if !msg.HasTag("62F") && !msg.HasTag("62M") {
		return &parsererror.MissingFieldError{Generator: name, Field: ":62F: or :62M:"}
	}
	return nil
}

// Generate converts msg to camt.053.
func (g *Camt053Generator) Generate(msg *models.MtMessage) (string, error) {
	if err := g.ValidateInput(msg); err != nil {
		return "", err
	}

	ref := strings.TrimSpace(msg.Tag("20"))
	creDt, creDtTm := g.timestamps()
	stmtID, seqNb := statementNumber(msg.Tag("28C"))

	openTag, openRaw, _ := msg.FirstTag("60F", "60M")
	opening, err := parseBalance(openTag, openRaw, "OPBD")
	if err != nil {
		return "", err
	}
	closeTag, closeRaw, _ := msg.FirstTag("62F", "62M")
	closing, err := parseBalance(closeTag, closeRaw, "CLBD")
	if err != nil {
		return "", err
	}

	stmt := models.Statement{
		Id:           stmtID,
		ElctrncSeqNb: seqNb,
		CreDtTm:      creDtTm,
		Acct:         models.StatementAccount{Id: statementAccountID(msg.Tag("25"))},
		Bal:          []models.Balance{opening, closing},
	}
	if msg.HasTag("61") {
		stmt.Ntry = []models.Entry{statementEntry(msg.Tag("61"), opening.Amt.Ccy, msg.Tag("86"))}
	}

	payload := &models.RequestPayload{
		AppHdr: g.appHdr(msg, ref, models.Camt053Type, creDt),
		Document: models.Document{
			Xmlns: models.Namespace(models.Camt053Type),
			BkToCstmrStmt: &models.BankToCustomerStatement{
				GrpHdr: models.GroupHeader{MsgId: ref, CreDtTm: creDtTm},
				Stmt:   stmt,
			},
		},
	}

	g.logger.Debug("Generated camt.053",
		logging.Field{Key: logging.FieldGenerator, Value: "camt.053"},
		logging.Field{Key: logging.FieldCount, Value: len(stmt.Ntry)})
	return marshal(payload)
}

// statementNumber splits 28C ("5/1") into statement number and sequence.
func statementNumber(field28C string) (string, string) {
	stmt, seq := "1", "1"
	parts := strings.SplitN(strings.TrimSpace(field28C), "/", 2)
	if parts[0] != "" {
		stmt = parts[0]
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		seq = strings.TrimSpace(parts[1])
	}
	return stmt, seq
}

// statementAccountID reports an IBAN-shaped account under IBAN and any other
// account as a proprietary id.
func statementAccountID(field25 string) models.AccountIdentification {
	account := strings.Join(strings.Fields(statementAccount(field25)), "")
	if ibanPattern.MatchString(account) {
		return models.AccountIdentification{IBAN: account}
	}
	return models.AccountIdentification{Othr: &models.GenericIdentification{Id: account}}
}

// statementAccount keeps the account part of 25 ("BANKDEFF/123" or "/123").
func statementAccount(field25 string) string {
	account := strings.TrimSpace(field25)
	if idx := strings.Index(account, "/"); idx >= 0 {
		account = account[idx+1:]
	}
	return strings.TrimSpace(account)
}

// parseBalance reads "C231204USD1000,00" into a balance of the given type.
func parseBalance(tag, raw, code string) (models.Balance, error) {
	value := strings.TrimSpace(raw)
	if len(value) < 10 {
		return models.Balance{}, &parsererror.ParseError{
			Parser: "camt.053", Field: ":" + tag + ":", Value: value, Err: errBalanceTooShort,
		}
	}
	money := models.ParseCurrencyAmount(value[7:])
	return models.Balance{
		Tp:        models.BalanceType{CdOrPrtry: models.CodeElement{Cd: code}},
		Amt:       models.NewActiveAmount(money),
		CdtDbtInd: creditDebit(value[:1]),
		Dt:        models.DateChoice{Dt: dateutils.MTToISO(value[1:7])},
	}, nil
}

func creditDebit(mark string) string {
	switch mark {
	case "C", "RD":
		return "CRDT"
	default:
		return "DBIT"
	}
}

// statementEntry builds the entry for field 61. A line that cannot be read
// becomes a zero credit so the statement is still produced.
func statementEntry(field61, currency, field86 string) models.Entry {
	entry := models.Entry{
		Amt:       models.NewActiveAmount(models.ZeroMoney(currency)),
		CdtDbtInd: "CRDT",
		Sts:       models.CodeElement{Cd: "BOOK"},
	}

	if m := statementLinePattern.FindStringSubmatch(strings.TrimSpace(field61)); m != nil {
		valueDate := dateutils.MTToISO(m[1])
		entry.ValDt = &models.DateChoice{Dt: valueDate}
		if m[2] != "" {
			entry.BookgDt = &models.DateChoice{Dt: valueDate[:5] + m[2][:2] + "-" + m[2][2:]}
		}
		entry.CdtDbtInd = creditDebit(m[3])
		if amount, err := decimal.NewFromString(strings.TrimSuffix(strings.ReplaceAll(m[5], ",", "."), ".")); err == nil {
			entry.Amt = models.NewActiveAmount(models.NewMoney(amount, currency))
		}
		if m[6] != "" {
			entry.BkTxCd = &models.BankTxCode{Prtry: models.CodeElement{Cd: m[6]}}
		}
		if ref := strings.TrimSpace(m[7]); ref != "" && ref != "NONREF" {
			entry.NtryRef = ref
		}
	}

	if info := strings.Join(strings.Fields(field86), " "); info != "" {
		entry.NtryDtls = &models.EntryDetails{TxDtls: []models.TransactionDetails{{
			RmtInf: &models.RemittanceInformation{Ustrd: []string{info}},
		}}}
	}
	return entry
}
