// Package mxgen builds ISO 20022 MX documents from parsed MT messages.
//
// Every generator validates its input first and fails with a
// parsererror.MissingFieldError before producing any output. The documents
// are assembled as typed structs from the models package and marshalled with
// encoding/xml inside a RequestPayload envelope carrying the AppHdr.
package mxgen

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
	"time"

	"fjacquet/swift-mx/internal/currencyutils"
	"fjacquet/swift-mx/internal/dateutils"
	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/parsererror"
	"fjacquet/swift-mx/internal/party"
	"fjacquet/swift-mx/internal/textutils"

	"github.com/google/uuid"
)

// Generator converts an MtMessage of a supported type into MX XML.
type Generator interface {
	// Supports reports whether the generator handles the MT type code.
	Supports(mtType string) bool

	// ValidateInput checks the preconditions Generate relies on.
	ValidateInput(msg *models.MtMessage) error

	// Generate validates msg and returns the XML document.
	Generate(msg *models.MtMessage) (string, error)
}

const (
	unknownBank  = "UNKNOWN BANK"
	unknownParty = "UNKNOWN PARTY"
	charSet      = "utf-8"
)

var (
	uetrPattern = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	ibanPattern = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{10,30}$`)
)

// BaseGenerator provides the functionality shared by the MX generators:
// logging, the clock used for creation timestamps and UETR synthesis.
//
// Generators embed BaseGenerator:
//
//	type Pacs008Generator struct {
//		BaseGenerator
//	}
type BaseGenerator struct {
	logger  logging.Logger
	now     func() time.Time
	newUETR func() string
}

// NewBaseGenerator creates a BaseGenerator. If logger is nil a default logger
// is used.
func NewBaseGenerator(logger logging.Logger) BaseGenerator {
	return BaseGenerator{
		logger:  logging.OrDefault(logger),
		now:     time.Now,
		newUETR: func() string { return uuid.New().String() },
	}
}

// SetClock fixes the time source used for CreDt and CreDtTm.
func (b *BaseGenerator) SetClock(now func() time.Time) {
	if now != nil {
		b.now = now
	}
}

func (b *BaseGenerator) timestamps() (creDt, creDtTm string) {
	t := b.now()
	return dateutils.FormatCreationDate(t), dateutils.FormatCreationDateTime(t)
}

// uetr reuses tag 121 when it holds a version 4 UUID and otherwise mints a
// new one.
func (b *BaseGenerator) uetr(msg *models.MtMessage) string {
	if candidate := strings.ToLower(strings.TrimSpace(msg.Tag("121"))); uetrPattern.MatchString(candidate) {
		return candidate
	}
	return b.newUETR()
}

// requireTags fails with a MissingFieldError naming the first absent tag.
func requireTags(generator string, msg *models.MtMessage, tags ...string) error {
	if msg == nil {
		return &parsererror.MissingFieldError{Generator: generator, Field: "message"}
	}
	for _, tag := range tags {
		if !msg.HasTag(tag) {
			return &parsererror.MissingFieldError{Generator: generator, Field: ":" + tag + ":"}
		}
	}
	return nil
}

// marshal renders the payload with an XML declaration.
func marshal(payload *models.RequestPayload) (string, error) {
	out, err := xml.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", payload.AppHdr.MsgDefIdr, err)
	}
	return xml.Header + string(out) + "\n", nil
}

// appHdr builds the business application header. The sender falls back to
// field 52A and the receiver to 57A then 58A before the unknown placeholder.
func (b *BaseGenerator) appHdr(msg *models.MtMessage, bizMsgIdr, msgDefIdr, creDt string) models.AppHdr {
	sender := firstNonBlank(msg.Sender, msg.Tag("52A"))
	receiver := firstNonBlank(msg.Receiver, msg.Tag("57A"), msg.Tag("58A"))
	return models.AppHdr{
		Xmlns:     models.Namespace(models.AppHdrType),
		CharSet:   charSet,
		Fr:        models.HeaderParty{FIId: *agentFromBIC(sender)},
		To:        models.HeaderParty{FIId: *agentFromBIC(receiver)},
		BizMsgIdr: bizMsgIdr,
		MsgDefIdr: msgDefIdr,
		CreDt:     creDt,
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// settlement reads a "YYMMDD" + currency + amount composite (32A). Missing or
// short values settle as a zero amount in the placeholder currency.
func settlement(value string) (models.Money, string) {
	value = strings.TrimSpace(value)
	if len(value) < 9 {
		return models.ZeroMoney(models.PlaceholderCurrency), ""
	}
	return models.ParseCurrencyAmount(value[6:]), dateutils.MTToISO(value[:6])
}

// agentFromBIC identifies an institution by its sanitized BIC.
func agentFromBIC(bic string) *models.Agent {
	return &models.Agent{FinInstnId: models.FinancialInstitution{BICFI: textutils.SanitizeBIC(bic)}}
}

// agentFromTags builds an agent from the first present option of base
// (A, D, F, B, then no letter). The second result carries the party
// identifier line as an account.
func agentFromTags(msg *models.MtMessage, base string) (*models.Agent, *models.CashAccount) {
	_, raw, ok := msg.FirstTag(base+"A", base+"D", base+"F", base+"B", base)
	if !ok {
		return nil, nil
	}
	parsed := party.Parse(raw)

	institution := models.FinancialInstitution{}
	if parsed.BIC != "" {
		bic := textutils.SanitizeBIC(parsed.BIC)
		institution.BICFI = bic
		institution.Nm = bic
	} else {
		name := parsed.Name
		if strings.TrimSpace(name) == "" {
			name = unknownBank
		}
		institution.Nm = textutils.Truncate(textutils.CleanName(name), textutils.MaxNameLength)
		institution.PstlAdr = postalAddress(parsed)
	}

	return &models.Agent{FinInstnId: institution}, otherAccount(parsed.Account)
}

// partyFromTags builds a customer party from the first present tag. Option A
// identifies the party by BIC; every other option is read as free text.
func partyFromTags(msg *models.MtMessage, tags ...string) (*models.PartyIdentification, *models.CashAccount) {
	tag, raw, ok := msg.FirstTag(tags...)
	if !ok {
		return nil, nil
	}
	parsed := party.Parse(raw)

	if strings.HasSuffix(tag, "A") {
		bic := parsed.BIC
		if bic == "" {
			bic = strings.Join(strings.Fields(raw), "")
		}
		return &models.PartyIdentification{
			Id: &models.PartyID{OrgId: models.OrganisationIdentification{AnyBIC: textutils.SanitizeBIC(bic)}},
		}, customerAccount(parsed.Account)
	}

	name := parsed.Name
	if (strings.TrimSpace(name) == "" || name == "NOTPROVIDED") && len(parsed.AddressLines) > 0 {
		name = parsed.AddressLines[0]
		parsed.AddressLines = parsed.AddressLines[1:]
	}
	if strings.TrimSpace(name) == "" {
		name = unknownParty
	}

	return &models.PartyIdentification{
		Nm:      textutils.Truncate(textutils.CleanName(name), textutils.MaxNameLength),
		PstlAdr: postalAddress(parsed),
	}, customerAccount(parsed.Account)
}

func postalAddress(parsed models.ParsedParty) *models.PostalAddress {
	if !parsed.HasAddress() && parsed.Country == "" {
		return nil
	}
	return &models.PostalAddress{
		Ctry:    parsed.Country,
		AdrLine: textutils.LimitAddressLines(parsed.AddressLines),
	}
}

// customerAccount prefers an IBAN and falls back to a proprietary id.
func customerAccount(account string) *models.CashAccount {
	clean := strings.Join(strings.Fields(account), "")
	if clean == "" {
		return nil
	}
	if ibanPattern.MatchString(clean) {
		return &models.CashAccount{Id: models.AccountIdentification{IBAN: clean}}
	}
	return otherAccount(clean)
}

func otherAccount(account string) *models.CashAccount {
	clean := strings.Join(strings.Fields(account), "")
	if clean == "" {
		return nil
	}
	return &models.CashAccount{Id: models.AccountIdentification{
		Othr: &models.GenericIdentification{Id: clean},
	}}
}

// instructionsForNextAgent splits field 72 into instructions. A line opening
// with a single slash starts an instruction; any other line, including "//"
// continuations, is appended to the current one.
func instructionsForNextAgent(field72 string) []models.InstructionForNextAgent {
	var out []models.InstructionForNextAgent
	var current []string
	flush := func() {
		if len(current) > 0 {
			out = append(out, models.InstructionForNextAgent{InstrInf: strings.Join(current, " ")})
			current = nil
		}
	}

	for _, line := range strings.Split(field72, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") && !strings.HasPrefix(line, "//") {
			flush()
			current = append(current, line)
			continue
		}
		if cont := strings.TrimSpace(strings.TrimLeft(line, "/")); cont != "" {
			current = append(current, cont)
		}
	}
	flush()
	return out
}

// remittance wraps field 70 as unstructured remittance text.
func remittance(field70 string) *models.RemittanceInformation {
	text := strings.Join(strings.Fields(field70), " ")
	if text == "" {
		return nil
	}
	return &models.RemittanceInformation{Ustrd: []string{text}}
}

// instructedAmount reads a "<CCY><amount>" field such as 33B or 32B.
func instructedAmount(value string) *models.ActiveAmount {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	amt := models.NewActiveAmount(models.ParseCurrencyAmount(value))
	return &amt
}

// exchangeRate normalizes field 36 to dot notation.
func exchangeRate(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	rate, err := currencyutils.ParseAmount(value)
	if err != nil {
		return ""
	}
	return rate.String()
}
