package mxgen

import (
	"strconv"
	"strings"

	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
)

const defaultBulkReference = "TXN-001"

// Mt102Generator converts an MT102 multiple customer credit transfer into a
// pacs.008.001.08 bulk. Only the first transaction group is read: repeated
// :21: sequences collapse to one transaction because the parser keeps the
// first occurrence of each tag.
type Mt102Generator struct {
	BaseGenerator
}

// NewMt102Generator creates an Mt102Generator.
func NewMt102Generator(logger logging.Logger) *Mt102Generator {
	return &Mt102Generator{BaseGenerator: NewBaseGenerator(logger)}
}

// Supports reports whether mtType is "102".
func (g *Mt102Generator) Supports(mtType string) bool {
	return mtType == "102"
}

// ValidateInput requires the file reference (20).
func (g *Mt102Generator) ValidateInput(msg *models.MtMessage) error {
	return requireTags("pacs.008.bulk", msg, "20")
}

// bulkTransaction is one transaction group of an MT102.
type bulkTransaction struct {
	reference   string
	amount      models.Money
	beneficiary *models.MtMessage
	remittance  string
}

// beneficiaryTags lists the field 59 options read for a bulk transaction.
var beneficiaryTags = []string{"59", "59A", "59F"}

// transactions extracts the transaction groups of msg. The parser keeps one
// value per tag, so a message always yields a single group.
func transactions(msg *models.MtMessage) []bulkTransaction {
	tx := bulkTransaction{
		reference:  strings.TrimSpace(msg.Tag("21")),
		remittance: msg.Tag("70"),
	}
	if tx.reference == "" {
		tx.reference = defaultBulkReference
	}

	if msg.HasTag("32B") {
		tx.amount = models.ParseCurrencyAmount(msg.Tag("32B"))
	} else {
		tx.amount, _ = settlement(msg.Tag("32A"))
	}

	tx.beneficiary = models.NewMtMessage("102")
	if tag, value, ok := msg.FirstTag(beneficiaryTags...); ok {
		tx.beneficiary.Tags[tag] = value
	}
	return []bulkTransaction{tx}
}

// Generate converts msg to a pacs.008 bulk.
func (g *Mt102Generator) Generate(msg *models.MtMessage) (string, error) {
	if err := g.ValidateInput(msg); err != nil {
		return "", err
	}

	ref := strings.TrimSpace(msg.Tag("20"))
	creDt, creDtTm := g.timestamps()
	uetr := g.uetr(msg)
	_, settlementDate := settlement(msg.Tag("32A"))
	debtor, debtorAcct := partyFromTags(msg, "50", "50A", "50K", "50F")

	groups := transactions(msg)
	txs := make([]models.CustomerCreditTransaction, 0, len(groups))
	for _, group := range groups {
		amount := models.NewActiveAmount(group.amount)
		instructed := amount
		tx := models.CustomerCreditTransaction{
			PmtId: models.PaymentIdentification{
				InstrId:    group.reference,
				EndToEndId: group.reference,
				UETR:       uetr,
			},
			PmtTpInf:       &models.PaymentTypeInformation{InstrPrty: "NORM"},
			IntrBkSttlmAmt: amount,
			IntrBkSttlmDt:  settlementDate,
			InstdAmt:       &instructed,
			ChrgBr:         chargeBearer(msg.Tag("71A")),
			InstgAgt:       agentFromBIC(msg.Sender),
			InstdAgt:       agentFromBIC(msg.Receiver),
			Dbtr:           debtor,
			DbtrAcct:       debtorAcct,
			DbtrAgt:        agentFromBIC(msg.Sender),
			CdtrAgt:        agentFromBIC(msg.Receiver),
			RmtInf:         remittance(group.remittance),
		}
		tx.Cdtr, tx.CdtrAcct = partyFromTags(group.beneficiary, beneficiaryTags...)
		txs = append(txs, tx)
	}

	payload := &models.RequestPayload{
		AppHdr: g.appHdr(msg, ref, models.Pacs008Type, creDt),
		Document: models.Document{
			Xmlns: models.Namespace(models.Pacs008Type),
			FIToFICstmrCdtTrf: &models.FIToFICustomerCreditTransfer{
				GrpHdr: models.GroupHeader{
					MsgId:    ref,
					CreDtTm:  creDtTm,
					NbOfTxs:  strconv.Itoa(len(txs)),
					SttlmInf: &models.SettlementInstruction{SttlmMtd: settlementMethod(msg)},
				},
				CdtTrfTxInf: txs,
			},
		},
	}

	g.logger.Debug("Generated pacs.008 bulk",
		logging.Field{Key: logging.FieldGenerator, Value: "pacs.008.bulk"},
		logging.Field{Key: logging.FieldCount, Value: len(txs)})
	return marshal(payload)
}
