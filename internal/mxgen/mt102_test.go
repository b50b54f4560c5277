package mxgen

import (
	"testing"

	"fjacquet/swift-mx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMt102Generator_Generate(t *testing.T) {
	mt := "{1:F01BANKBEBBAXXX0000000000}{2:O1021200231204BANKDEFFAXXX0000000000}{4:\n" +
		":20:FILE-1\n:21:TX-7\n:32A:231204EUR300,\n:32B:EUR120,5\n:50K:/111\nACME\n" +
		":59:/BE71096123456769\nJANE\n:70:SALARY\n:71A:BEN\n-}"

	g := NewMt102Generator(nil)
	fix(&g.BaseGenerator)
	out, err := g.Generate(parseMT(t, mt))
	require.NoError(t, err)

	assert.Contains(t, out, "<NbOfTxs>1</NbOfTxs>")
	assert.Contains(t, out, "<InstrId>TX-7</InstrId>")
	assert.Contains(t, out, `<IntrBkSttlmAmt Ccy="EUR">120.50</IntrBkSttlmAmt>`)
	assert.Contains(t, out, "<ChrgBr>CRED</ChrgBr>")

	msg := roundTrip(t, out)
	assert.Equal(t, models.Pacs008Type, msg.MessageType)
	assert.Equal(t, "FILE-1", msg.Field(models.FieldMsgID))
	assert.Equal(t, "TX-7", msg.Field(models.FieldEndToEndID))
	assert.Equal(t, "2023-12-04", msg.Field(models.FieldIntrBkSttlmDt))
	assert.Equal(t, "ACME", msg.Field(models.FieldDbtrName))
	assert.Equal(t, "JANE", msg.Field(models.FieldCdtrName))
	assert.Equal(t, "BE71096123456769", msg.Field(models.FieldCdtrAcct))
	assert.Equal(t, "SALARY", msg.Field(models.FieldRemittanceInfo))
}

func TestTransactions_Defaults(t *testing.T) {
	msg := parseMT(t, "{4:\n:20:FILE\n:32A:231204CHF10,\n-}")
	txs := transactions(msg)
	require.Len(t, txs, 1)
	assert.Equal(t, defaultBulkReference, txs[0].reference)
	assert.Equal(t, "CHF", txs[0].amount.Currency)
	assert.Equal(t, "10.00", txs[0].amount.MX())
	assert.False(t, txs[0].beneficiary.HasTag("59"))
}

func TestMt102Generator_OptionFBeneficiary(t *testing.T) {
	mt := "{2:O1021200231204BANKDEFFAXXX0000000000}{4:\n" +
		":20:FILE-2\n:21:TX-8\n:32A:231204EUR50,\n:50K:/111\nACME\n" +
		":59F:/FR7630006000011234567890189\nJEAN DUPONT\nRUE DE LA PAIX 1\n-}"

	msg := parseMT(t, mt)
	txs := transactions(msg)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].beneficiary.HasTag("59F"))

	g := NewMt102Generator(nil)
	fix(&g.BaseGenerator)
	out, err := g.Generate(msg)
	require.NoError(t, err)

	assert.Contains(t, out, "<IBAN>FR7630006000011234567890189</IBAN>")
	assert.Contains(t, out, "<Nm>JEAN DUPONT</Nm>")
}
