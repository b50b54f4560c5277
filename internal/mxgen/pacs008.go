package mxgen

import (
	"strings"

	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
)

// Pacs008Generator converts an MT103 customer credit transfer into
// pacs.008.001.08.
type Pacs008Generator struct {
	BaseGenerator
}

// NewPacs008Generator creates a Pacs008Generator.
func NewPacs008Generator(logger logging.Logger) *Pacs008Generator {
	return &Pacs008Generator{BaseGenerator: NewBaseGenerator(logger)}
}

// Supports reports whether mtType is "103".
func (g *Pacs008Generator) Supports(mtType string) bool {
	return mtType == "103"
}

// ValidateInput requires the transaction reference (20).
func (g *Pacs008Generator) ValidateInput(msg *models.MtMessage) error {
	return requireTags("pacs.008", msg, "20")
}

// Generate converts msg to pacs.008.
func (g *Pacs008Generator) Generate(msg *models.MtMessage) (string, error) {
	if err := g.ValidateInput(msg); err != nil {
		return "", err
	}

	ref := strings.TrimSpace(msg.Tag("20"))
	creDt, creDtTm := g.timestamps()
	amount, settlementDate := settlement(msg.Tag("32A"))

	tx := models.CustomerCreditTransaction{
		PmtId: models.PaymentIdentification{
			InstrId:    ref,
			EndToEndId: ref,
			TxId:       strings.TrimSpace(msg.Tag("108")),
			UETR:       g.uetr(msg),
		},
		PmtTpInf:       paymentTypeInformation(msg.Tag("23B")),
		IntrBkSttlmAmt: models.NewActiveAmount(amount),
		IntrBkSttlmDt:  settlementDate,
		XchgRate:       exchangeRate(msg.Tag("36")),
		ChrgBr:         chargeBearer(msg.Tag("71A")),
		InstgAgt:       agentFromBIC(msg.Sender),
		InstrForNxtAgt: instructionsForNextAgent(msg.Tag("72")),
		RmtInf:         remittance(msg.Tag("70")),
	}

	tx.InstdAmt = instructedAmount(msg.Tag("33B"))
	if tx.InstdAmt == nil {
		mirrored := tx.IntrBkSttlmAmt
		tx.InstdAmt = &mirrored
	}

	if agent, _ := agentFromTags(msg, "57"); agent != nil {
		tx.InstdAgt = agent
	} else {
		tx.InstdAgt = agentFromBIC(msg.Receiver)
	}

	// 53 and 56 fill the intermediary slots in order.
	tx.IntrmyAgt1, tx.IntrmyAgt1Acct = agentFromTags(msg, "53")
	if tx.IntrmyAgt1 != nil {
		tx.IntrmyAgt2, tx.IntrmyAgt2Acct = agentFromTags(msg, "56")
	} else {
		tx.IntrmyAgt1, tx.IntrmyAgt1Acct = agentFromTags(msg, "56")
	}

	tx.Dbtr, tx.DbtrAcct = partyFromTags(msg, "50", "50A", "50K", "50F")

	tx.DbtrAgt, tx.DbtrAgtAcct = agentFromTags(msg, "52")
	if tx.DbtrAgt == nil {
		tx.DbtrAgt = agentFromBIC(msg.Sender)
	}
	tx.CdtrAgt, tx.CdtrAgtAcct = agentFromTags(msg, "57")
	if tx.CdtrAgt == nil {
		tx.CdtrAgt = agentFromBIC(msg.Receiver)
	}

	tx.Cdtr, tx.CdtrAcct = partyFromTags(msg, "59", "59A", "59F")

	payload := &models.RequestPayload{
		AppHdr: g.appHdr(msg, ref, models.Pacs008Type, creDt),
		Document: models.Document{
			Xmlns: models.Namespace(models.Pacs008Type),
			FIToFICstmrCdtTrf: &models.FIToFICustomerCreditTransfer{
				GrpHdr: models.GroupHeader{
					MsgId:    ref,
					CreDtTm:  creDtTm,
					NbOfTxs:  "1",
					SttlmInf: &models.SettlementInstruction{SttlmMtd: settlementMethod(msg)},
				},
				CdtTrfTxInf: []models.CustomerCreditTransaction{tx},
			},
		},
	}

	g.logger.Debug("Generated pacs.008",
		logging.Field{Key: logging.FieldGenerator, Value: "pacs.008"},
		logging.Field{Key: logging.FieldMessageType, Value: msg.Type})
	return marshal(payload)
}

// reimbursementOptions are the letter options checked on 53, 54 and 56.
var reimbursementOptions = []string{"A", "B", "C", "D", "F", "K"}

// settlementMethod is CLRG when a reimbursement chain (53, 54, 56) is
// present in any option and INDA otherwise.
func settlementMethod(msg *models.MtMessage) string {
	for _, base := range []string{"53", "54", "56"} {
		if msg.HasAnyVariant(base, reimbursementOptions...) {
			return "CLRG"
		}
	}
	return "INDA"
}

// paymentTypeInformation maps the bank operation code (23B).
func paymentTypeInformation(code string) *models.PaymentTypeInformation {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "SDVA":
		return &models.PaymentTypeInformation{InstrPrty: "HIGH", SvcLvl: &models.CodeElement{Cd: "SDVA"}}
	case "SPAY":
		return &models.PaymentTypeInformation{InstrPrty: "HIGH", SvcLvl: &models.CodeElement{Cd: "URGP"}}
	case "SPRI":
		return &models.PaymentTypeInformation{InstrPrty: "HIGH"}
	case "OTHR":
		return &models.PaymentTypeInformation{CtgyPurp: &models.CodeElement{Cd: "OTHR"}}
	default:
		return &models.PaymentTypeInformation{InstrPrty: "NORM"}
	}
}

// chargeBearer maps field 71A to the ISO 20022 charge bearer code.
func chargeBearer(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "OUR":
		return "DEBT"
	case "BEN":
		return "CRED"
	default:
		return "SHAR"
	}
}
