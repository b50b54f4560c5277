package mtgen

import (
	"strings"

	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
)

// Mt202Generator converts pacs.009 into an MT202 institution transfer.
type Mt202Generator struct {
	BaseGenerator
}

// NewMt202Generator creates an Mt202Generator.
func NewMt202Generator(logger logging.Logger) *Mt202Generator {
	return &Mt202Generator{BaseGenerator: NewBaseGenerator(logger)}
}

// Supports reports whether mxType belongs to the pacs.009 family.
func (g *Mt202Generator) Supports(mxType string) bool {
	return strings.HasPrefix(mxType, models.Pacs009Family)
}

// ValidateInput requires a MsgId or InstrId for the :20: reference.
func (g *Mt202Generator) ValidateInput(msg *models.MxMessage) error {
	return requireFields("MT202", msg, []string{models.FieldMsgID, models.FieldInstrID})
}

// Generate converts msg to MT202.
func (g *Mt202Generator) Generate(msg *models.MxMessage) (string, error) {
	if err := g.ValidateInput(msg); err != nil {
		return "", err
	}

	var text block4
	text.add("20", reference(msg.FirstField(models.FieldMsgID, models.FieldInstrID)))
	if msg.HasField(models.FieldEndToEndID) {
		text.add("21", reference(msg.Field(models.FieldEndToEndID)))
	}
	text.add("32A", valueDateAmount(msg))
	if agent := bic(msg.Field(models.FieldDbtrAgtBIC)); agent != "" {
		text.add("52A", agent)
	}
	if agent := bic(msg.Field(models.FieldCdtrAgtBIC)); agent != "" {
		text.add("58A", agent)
	}

	g.logger.Debug("Generated MT202",
		logging.Field{Key: logging.FieldGenerator, Value: "MT202"},
		logging.Field{Key: logging.FieldMessageType, Value: msg.MessageType})
	return envelope("202", msg.SenderBIC, msg.ReceiverBIC, &text), nil
}
