package mxgen

import (
	"strings"

	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
)

// Pacs009Generator converts an MT202 financial institution transfer into
// pacs.009.001.08. Debtor and creditor are institutions, not customers.
type Pacs009Generator struct {
	BaseGenerator
}

// NewPacs009Generator creates a Pacs009Generator.
func NewPacs009Generator(logger logging.Logger) *Pacs009Generator {
	return &Pacs009Generator{BaseGenerator: NewBaseGenerator(logger)}
}

// Supports reports whether mtType is "202".
func (g *Pacs009Generator) Supports(mtType string) bool {
	return mtType == "202"
}

// ValidateInput requires the transaction reference (20).
func (g *Pacs009Generator) ValidateInput(msg *models.MtMessage) error {
	return requireTags("pacs.009", msg, "20")
}

// Generate converts msg to pacs.009.
func (g *Pacs009Generator) Generate(msg *models.MtMessage) (string, error) {
	if err := g.ValidateInput(msg); err != nil {
		return "", err
	}
	payload := g.build(msg)
	g.logger.Debug("Generated pacs.009",
		logging.Field{Key: logging.FieldGenerator, Value: "pacs.009"},
		logging.Field{Key: logging.FieldMessageType, Value: msg.Type})
	return marshal(payload)
}

// build assembles the pacs.009 document without the underlying customer
// transfer.
func (g *Pacs009Generator) build(msg *models.MtMessage) *models.RequestPayload {
	ref := strings.TrimSpace(msg.Tag("20"))
	endToEnd := ref
	if msg.HasTag("21") {
		endToEnd = strings.TrimSpace(msg.Tag("21"))
	}
	creDt, creDtTm := g.timestamps()
	amount, settlementDate := settlement(msg.Tag("32A"))

	tx := models.InstitutionCreditTransaction{
		PmtId: models.PaymentIdentification{
			InstrId:    ref,
			EndToEndId: endToEnd,
			TxId:       strings.TrimSpace(msg.Tag("108")),
			UETR:       g.uetr(msg),
		},
		PmtTpInf:       &models.PaymentTypeInformation{InstrPrty: "NORM"},
		IntrBkSttlmAmt: models.NewActiveAmount(amount),
		IntrBkSttlmDt:  settlementDate,
		InstgAgt:       agentFromBIC(msg.Sender),
		InstdAgt:       agentFromBIC(msg.Receiver),
		InstrForNxtAgt: instructionsForNextAgent(msg.Tag("72")),
		RmtInf:         remittance(msg.Tag("70")),
	}

	// 56 then 54 fill the intermediary slots in order.
	tx.IntrmyAgt1, tx.IntrmyAgt1Acct = agentFromTags(msg, "56")
	if tx.IntrmyAgt1 != nil {
		tx.IntrmyAgt2, tx.IntrmyAgt2Acct = agentFromTags(msg, "54")
	} else {
		tx.IntrmyAgt1, tx.IntrmyAgt1Acct = agentFromTags(msg, "54")
	}

	tx.Dbtr, tx.DbtrAcct = agentFromTags(msg, "52")
	if tx.Dbtr == nil {
		tx.Dbtr = agentFromBIC(msg.Sender)
	}
	tx.DbtrAgt, tx.DbtrAgtAcct = agentFromTags(msg, "53")
	tx.CdtrAgt, tx.CdtrAgtAcct = agentFromTags(msg, "57")
	tx.Cdtr, tx.CdtrAcct = agentFromTags(msg, "58")
	if tx.Cdtr == nil {
		tx.Cdtr = agentFromBIC(msg.Receiver)
	}

	return &models.RequestPayload{
		AppHdr: g.appHdr(msg, ref, models.Pacs009Type, creDt),
		Document: models.Document{
			Xmlns: models.Namespace(models.Pacs009Type),
			FICdtTrf: &models.FICreditTransfer{
				GrpHdr: models.GroupHeader{
					MsgId:    ref,
					CreDtTm:  creDtTm,
					NbOfTxs:  "1",
					SttlmInf: &models.SettlementInstruction{SttlmMtd: settlementMethod(msg)},
				},
				CdtTrfTxInf: []models.InstitutionCreditTransaction{tx},
			},
		},
	}
}

// Pacs009CovGenerator converts an MT202COV cover payment into pacs.009.001.08
// with the underlying customer credit transfer attached to the transaction.
type Pacs009CovGenerator struct {
	Pacs009Generator
}

// NewPacs009CovGenerator creates a Pacs009CovGenerator.
func NewPacs009CovGenerator(logger logging.Logger) *Pacs009CovGenerator {
	return &Pacs009CovGenerator{Pacs009Generator: *NewPacs009Generator(logger)}
}

// Supports reports whether mtType is "202COV".
func (g *Pacs009CovGenerator) Supports(mtType string) bool {
	return mtType == "202COV"
}

// ValidateInput requires the transaction reference (20).
func (g *Pacs009CovGenerator) ValidateInput(msg *models.MtMessage) error {
	return requireTags("pacs.009.COV", msg, "20")
}

// Generate converts msg to pacs.009 with the underlying customer transfer.
func (g *Pacs009CovGenerator) Generate(msg *models.MtMessage) (string, error) {
	if err := g.ValidateInput(msg); err != nil {
		return "", err
	}

	payload := g.build(msg)
	underlying := &models.UnderlyingCustomerCreditTransfer{
		RmtInf:   remittance(msg.Tag("70")),
		InstdAmt: instructedAmount(msg.Tag("33B")),
	}
	underlying.Dbtr, underlying.DbtrAcct = partyFromTags(msg, "50", "50A", "50K", "50F")
	underlying.Cdtr, underlying.CdtrAcct = partyFromTags(msg, "59", "59A", "59F")
	payload.Document.FICdtTrf.CdtTrfTxInf[0].UndrlygCstmrCdtTrf = underlying

	g.logger.Debug("Generated pacs.009.COV",
		logging.Field{Key: logging.FieldGenerator, Value: "pacs.009.COV"},
		logging.Field{Key: logging.FieldMessageType, Value: msg.Type})
	return marshal(payload)
}
