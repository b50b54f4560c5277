// Package mxparser reduces an ISO 20022 XML document to a models.MxMessage.
//
// Parsing is lenient: empty input, malformed XML and documents carrying a
// DOCTYPE all yield a message of type models.UnknownType with no fields.
package mxparser

import (
	"strconv"
	"strings"

	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/xmlutils"

	"gopkg.in/xmlpath.v2"
)

// envelopeRoots are wrapper elements whose own namespace never names the
// business message.
var envelopeRoots = map[string]bool{
	"RequestPayload": true,
	"DataPDU":        true,
	"Envelope":       true,
	"BizMsg":         true,
}

// Parser extracts header identifiers and the per-family field vocabulary.
type Parser struct {
	logger    logging.Logger
	appHdr    xmlutils.AppHdrPaths
	payment   xmlutils.PaymentPaths
	statement xmlutils.StatementPaths
}

// New creates a Parser. A nil logger selects the default adapter.
func New(logger logging.Logger) *Parser {
	return &Parser{
		logger:    logging.OrDefault(logger),
		appHdr:    xmlutils.DefaultAppHdrXPaths(),
		payment:   xmlutils.DefaultPaymentXPaths(),
		statement: xmlutils.DefaultCamt053XPaths(),
	}
}

// Parse reads content and returns the extracted message. It never fails.
func (p *Parser) Parse(content string) *models.MxMessage {
	doc, err := xmlutils.ParseDocument(content)
	if err != nil {
		p.logger.WithError(err).Debug("MX document could not be parsed")
		msg := models.NewMxMessage(models.UnknownType)
		msg.RawXML = content
		return msg
	}

	msg := models.NewMxMessage(ResolveType(doc))
	msg.RawXML = content

	p.extractAppHdr(doc.Root, msg)

	switch {
	case strings.HasPrefix(msg.MessageType, "pacs.008"):
		p.extractPayment(doc.Root, msg, true)
	case strings.HasPrefix(msg.MessageType, "pacs.009"):
		p.extractPayment(doc.Root, msg, false)
	case strings.HasPrefix(msg.MessageType, "camt.053"):
		p.extractStatement(doc.Root, msg)
	}

	p.logger.Debug("Parsed MX message",
		logging.Field{Key: logging.FieldMessageType, Value: msg.MessageType},
		logging.Field{Key: logging.FieldCount, Value: len(msg.Fields)})
	return msg
}

// ResolveType classifies doc from its root namespace, from the Document
// namespace when the root is an envelope or an application header, and
// finally from the MsgDefIdr element.
func ResolveType(doc *xmlutils.Document) string {
	if doc == nil {
		return models.UnknownType
	}

	rootType := typeFromNamespace(doc.RootName.Space)
	if rootType != "" && !strings.HasPrefix(rootType, "head.") && !envelopeRoots[doc.RootName.Local] {
		return rootType
	}
	if docType := typeFromNamespace(doc.DocumentNamespace); docType != "" {
		return docType
	}
	if defIdr := xmlutils.First(doc.Root, xmlutils.MsgDefIdrXPath); defIdr != "" {
		return defIdr
	}
	return models.UnknownType
}

func typeFromNamespace(ns string) string {
	if !strings.HasPrefix(ns, models.ISO20022NamespacePrefix) {
		return ""
	}
	return strings.TrimPrefix(ns, models.ISO20022NamespacePrefix)
}

func (p *Parser) extractAppHdr(root *xmlpath.Node, msg *models.MxMessage) {
	msg.BusinessMessageID = xmlutils.First(root, p.appHdr.BizMsgIdr)
	msg.MessageDefinitionID = xmlutils.First(root, p.appHdr.MsgDefIdr)
	msg.CreationDateTime = xmlutils.First(root, p.appHdr.CreDt)
	msg.SenderBIC = xmlutils.First(root, p.appHdr.SenderBIC)
	msg.ReceiverBIC = xmlutils.First(root, p.appHdr.ReceiverBIC)

	msg.SetField(models.FieldBizMsgIdr, msg.BusinessMessageID)
	msg.SetField(models.FieldMsgDefIdr, msg.MessageDefinitionID)
	msg.SetField(models.FieldCreDt, msg.CreationDateTime)
	msg.SetField(models.FieldSenderBIC, msg.SenderBIC)
	msg.SetField(models.FieldReceiverBIC, msg.ReceiverBIC)
}

// extractPayment fills the pacs.008 / pacs.009 vocabulary from the group
// header and the first transaction. Customer parties are only read for
// pacs.008.
func (p *Parser) extractPayment(root *xmlpath.Node, msg *models.MxMessage, customer bool) {
	paths := p.payment
	msg.SetField(models.FieldMsgID, xmlutils.First(root, paths.MsgID))
	msg.SetField(models.FieldCreDtTm, xmlutils.First(root, paths.CreDtTm))
	msg.SetField(models.FieldNbOfTxs, xmlutils.First(root, paths.NbOfTxs))

	tx := xmlutils.FirstNode(root, paths.Transaction)
	if tx == nil {
		return
	}

	msg.SetField(models.FieldInstrID, xmlutils.First(tx, paths.InstrID))
	msg.SetField(models.FieldEndToEndID, xmlutils.First(tx, paths.EndToEndID))
	msg.SetField(models.FieldTxID, xmlutils.First(tx, paths.TxID))
	msg.SetField(models.FieldUETR, xmlutils.First(tx, paths.UETR))
	msg.SetField(models.FieldAmount, xmlutils.First(tx, paths.Amount))
	msg.SetField(models.FieldCurrency, xmlutils.First(tx, paths.Currency))
	msg.SetField(models.FieldIntrBkSttlmDt, xmlutils.First(tx, paths.SettlementDate))
	msg.SetField(models.FieldInstdAmount, xmlutils.First(tx, paths.InstdAmount))
	msg.SetField(models.FieldInstdCurrency, xmlutils.First(tx, paths.InstdCurrency))
	msg.SetField(models.FieldRemittanceInfo, joinText(xmlutils.Nodes(tx, paths.Remittance)))
	msg.SetField(models.FieldDbtrAgtBIC, xmlutils.FirstOf(tx, paths.DebtorAgentBIC...))
	msg.SetField(models.FieldCdtrAgtBIC, xmlutils.FirstOf(tx, paths.CreditorAgentBIC...))

	if !customer {
		msg.SetField(models.FieldDbtrBIC, xmlutils.FirstOf(tx, paths.DebtorBIC...))
		msg.SetField(models.FieldCdtrBIC, xmlutils.FirstOf(tx, paths.CreditorBIC...))
		return
	}

	msg.SetField(models.FieldChrgBr, xmlutils.First(tx, paths.ChargeBearer))
	msg.SetField(models.FieldDbtrName, xmlutils.First(tx, paths.DebtorName))
	msg.SetField(models.FieldDbtrAcct, xmlutils.FirstOf(tx, paths.DebtorIBAN, paths.DebtorOther))
	msg.SetField(models.FieldDbtrCtry, xmlutils.First(tx, paths.DebtorCountry))
	msg.SetField(models.FieldCdtrName, xmlutils.First(tx, paths.CreditorName))
	msg.SetField(models.FieldCdtrAcct, xmlutils.FirstOf(tx, paths.CreditorIBAN, paths.CreditorOther))
	msg.SetField(models.FieldCdtrCtry, xmlutils.First(tx, paths.CreditorCountry))
}

// balanceKeys maps a balance type code to the opening or closing key set.
type balanceKeys struct {
	amount, currency, indicator, date string
}

var (
	openingKeys = balanceKeys{models.FieldOpeningBalance, models.FieldOpeningCurrency, models.FieldOpeningIndicator, models.FieldOpeningDate}
	closingKeys = balanceKeys{models.FieldClosingBalance, models.FieldClosingCurrency, models.FieldClosingIndicator, models.FieldClosingDate}
)

var balanceTypes = map[string]balanceKeys{
	"OPBD": openingKeys,
	"PRCD": openingKeys,
	"CLBD": closingKeys,
}

func (p *Parser) extractStatement(root *xmlpath.Node, msg *models.MxMessage) {
	paths := p.statement
	msg.SetField(models.FieldMsgID, xmlutils.First(root, paths.MsgID))
	msg.SetField(models.FieldCreDtTm, xmlutils.First(root, paths.CreDtTm))
	msg.SetField(models.FieldStmtID, xmlutils.First(root, paths.StmtID))
	msg.SetField(models.FieldStmtSeqNb, xmlutils.First(root, paths.ElctrncSeqNb))
	msg.SetField(models.FieldAccountID, xmlutils.FirstOf(root, paths.AccountIBAN, paths.AccountOther))

	for _, bal := range xmlutils.Nodes(root, paths.Balance) {
		keys, ok := balanceTypes[strings.ToUpper(xmlutils.First(bal, paths.BalanceType))]
		if !ok || msg.HasField(keys.amount) {
			continue
		}
		msg.SetField(keys.amount, xmlutils.First(bal, paths.BalanceAmount))
		msg.SetField(keys.currency, xmlutils.First(bal, paths.BalanceCurrency))
		msg.SetField(keys.indicator, xmlutils.First(bal, paths.BalanceIndicator))
		msg.SetField(keys.date, balanceDate(bal, paths))
	}

	entries := xmlutils.Nodes(root, paths.Entry)
	msg.Fields[models.FieldEntryCount] = strconv.Itoa(len(entries))
	if len(entries) == 0 {
		return
	}

	first := entries[0]
	msg.SetField(models.FieldEntryAmount, xmlutils.First(first, paths.EntryAmount))
	msg.SetField(models.FieldEntryCurrency, xmlutils.First(first, paths.EntryCurrency))
	msg.SetField(models.FieldEntryIndicator, xmlutils.First(first, paths.EntryIndicator))
	msg.SetField(models.FieldEntryValueDate, dateOnly(xmlutils.First(first, paths.EntryValueDate)))
	msg.SetField(models.FieldEntryBookingDate, dateOnly(xmlutils.First(first, paths.EntryBookDate)))
	msg.SetField(models.FieldEntryReference, xmlutils.First(first, paths.EntryReference))
	msg.SetField(models.FieldEntryInfo, xmlutils.FirstOf(first, paths.EntryInfo...))
}

func balanceDate(bal *xmlpath.Node, paths xmlutils.StatementPaths) string {
	if d := xmlutils.First(bal, paths.BalanceDate); d != "" {
		return dateOnly(d)
	}
	return dateOnly(xmlutils.First(bal, paths.BalanceDateTime))
}

// dateOnly keeps the YYYY-MM-DD part of an ISO date or date-time.
func dateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func joinText(nodes []*xmlpath.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if text := xmlutils.CleanText(n.String()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
