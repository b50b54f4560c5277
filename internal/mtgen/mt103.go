package mtgen

import (
	"strings"

	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/textutils"
)

// Mt103Generator converts pacs.008 into an MT103 customer credit transfer.
type Mt103Generator struct {
	BaseGenerator
}

// NewMt103Generator creates an Mt103Generator.
func NewMt103Generator(logger logging.Logger) *Mt103Generator {
	return &Mt103Generator{BaseGenerator: NewBaseGenerator(logger)}
}

// Supports reports whether mxType belongs to the pacs.008 family.
func (g *Mt103Generator) Supports(mxType string) bool {
	return strings.HasPrefix(mxType, models.Pacs008Family)
}

// ValidateInput requires a MsgId or EndToEndId for the :20: reference.
func (g *Mt103Generator) ValidateInput(msg *models.MxMessage) error {
	return requireFields("MT103", msg, []string{models.FieldMsgID, models.FieldEndToEndID})
}

// Generate converts msg to MT103.
func (g *Mt103Generator) Generate(msg *models.MxMessage) (string, error) {
	if err := g.ValidateInput(msg); err != nil {
		return "", err
	}

	var text block4
	text.add("20", reference(msg.FirstField(models.FieldMsgID, models.FieldEndToEndID)))
	text.add("23B", "CRED")
	text.add("32A", valueDateAmount(msg))
	text.addParty("50K", msg.Field(models.FieldDbtrName), msg.Field(models.FieldDbtrAcct), msg.Field(models.FieldDbtrCtry))
	if agent := bic(msg.Field(models.FieldDbtrAgtBIC)); agent != "" {
		text.add("52A", agent)
	}
	if agent := bic(msg.Field(models.FieldCdtrAgtBIC)); agent != "" {
		text.add("57A", agent)
	}
	text.addParty("59", msg.Field(models.FieldCdtrName), msg.Field(models.FieldCdtrAcct), msg.Field(models.FieldCdtrCtry))
	if info := textutils.EscapeMT(msg.Field(models.FieldRemittanceInfo)); info != "" {
		text.add("70", info)
	}
	text.add("71A", detailsOfCharges(msg.Field(models.FieldChrgBr)))

	g.logger.Debug("Generated MT103",
		logging.Field{Key: logging.FieldGenerator, Value: "MT103"},
		logging.Field{Key: logging.FieldMessageType, Value: msg.MessageType})
	return envelope("103", msg.SenderBIC, msg.ReceiverBIC, &text), nil
}

// detailsOfCharges maps the ISO 20022 charge bearer back to field 71A.
func detailsOfCharges(chrgBr string) string {
	switch strings.ToUpper(strings.TrimSpace(chrgBr)) {
	case "DEBT":
		return "OUR"
	case "CRED":
		return "BEN"
	default:
		return "SHAR"
	}
}
