package mxgen

import (
	"strings"
	"testing"

	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalMT103 = "{1:F01BANKBEBBAXXX0000000000}{2:O1031200231204BANKDEFFAXXX0000000000}{4:\n" +
	":20:REF1\n:32A:231204USD1000,00\n:50K:/111 JOHN\n:59:/222 JANE\n:71A:SHA\n-}"

func TestPacs008Generator_MinimalMessage(t *testing.T) {
	g := NewPacs008Generator(logging.NewMockLogger())
	fix(&g.BaseGenerator)

	out, err := g.Generate(parseMT(t, minimalMT103))
	require.NoError(t, err)

	assert.Contains(t, out, "<MsgId>REF1</MsgId>")
	assert.Contains(t, out, `<IntrBkSttlmAmt Ccy="USD">1000.00</IntrBkSttlmAmt>`)
	assert.Contains(t, out, "<ChrgBr>SHAR</ChrgBr>")
	assert.Contains(t, out, "<SttlmMtd>INDA</SttlmMtd>")
	assert.Contains(t, out, "<InstrPrty>NORM</InstrPrty>")
	assert.Contains(t, out, "<UETR>"+fixedUETR+"</UETR>")
	assert.Contains(t, out, "<CreDtTm>2023-12-04T10:30:00</CreDtTm>")
	assert.Contains(t, out, "<CreDt>2023-12-04T10:30:00Z</CreDt>")
	assert.Equal(t, 1, strings.Count(out, "<CdtTrfTxInf>"))

	msg := roundTrip(t, out)
	assert.Equal(t, models.Pacs008Type, msg.MessageType)
	assert.Equal(t, "BANKBEBB", msg.SenderBIC)
	assert.Equal(t, "BANKDEFF", msg.ReceiverBIC)
	assert.Equal(t, "2023-12-04", msg.Field(models.FieldIntrBkSttlmDt))
	assert.Equal(t, "1000.00", msg.Field(models.FieldInstdAmount))
	assert.Equal(t, "JOHN", msg.Field(models.FieldDbtrName))
	assert.Equal(t, "111", msg.Field(models.FieldDbtrAcct))
	assert.Equal(t, "JANE", msg.Field(models.FieldCdtrName))
	assert.Equal(t, "222", msg.Field(models.FieldCdtrAcct))
	assert.Equal(t, "BANKBEBB", msg.Field(models.FieldDbtrAgtBIC))
	assert.Equal(t, "BANKDEFF", msg.Field(models.FieldCdtrAgtBIC))
}

func TestPacs008Generator_FullMessage(t *testing.T) {
	mt := "{1:F01BANKBEBBAXXX0000000000}{2:O1031200231204BANKDEFFAXXX0000000000}" +
		"{3:{108:MUR-9}{121:EB6305C9-1F7F-49DE-AED0-16487C27B42D}}{4:\n" +
		":20:REF2\n:23B:SPAY\n:32A:231205EUR250,5\n:33B:USD270,\n:36:0,9277\n" +
		":50K:/DE89370400440532013000\nJOHN DOE\n1 MAIN ST\nDE\n" +
		":52A:AAAABEBBXXX\n:53A:CCCCUS33\n:56A:DDDDGB2L\n:57A:EEEEFRPP\n" +
		":59:/FR7630006000011234567890189\nJANE & CO\nFR\n" +
		":70:INV <42>\n:71A:OUR\n:72:/ACC/FIRST\n//SECOND\n-}"

	g := NewPacs008Generator(nil)
	fix(&g.BaseGenerator)
	out, err := g.Generate(parseMT(t, mt))
	require.NoError(t, err)

	assert.Contains(t, out, "<TxId>MUR-9</TxId>")
	assert.Contains(t, out, "<UETR>eb6305c9-1f7f-49de-aed0-16487c27b42d</UETR>")
	assert.Contains(t, out, "<InstrPrty>HIGH</InstrPrty>")
	assert.Contains(t, out, "<Cd>URGP</Cd>")
	assert.Contains(t, out, `<InstdAmt Ccy="USD">270.00</InstdAmt>`)
	assert.Contains(t, out, "<XchgRate>0.9277</XchgRate>")
	assert.Contains(t, out, "<ChrgBr>DEBT</ChrgBr>")
	assert.Contains(t, out, "<SttlmMtd>CLRG</SttlmMtd>")
	assert.Contains(t, out, "<InstrInf>/ACC/FIRST SECOND</InstrInf>")
	assert.Contains(t, out, "<Ustrd>INV &lt;42&gt;</Ustrd>")
	assert.Contains(t, out, "<Nm>JANE CO</Nm>")

	msg := roundTrip(t, out)
	assert.Equal(t, "250.50", msg.Field(models.FieldAmount))
	assert.Equal(t, "EUR", msg.Field(models.FieldCurrency))
	assert.Equal(t, "DE89370400440532013000", msg.Field(models.FieldDbtrAcct))
	assert.Equal(t, "DE", msg.Field(models.FieldDbtrCtry))
	assert.Equal(t, "FR7630006000011234567890189", msg.Field(models.FieldCdtrAcct))
	assert.Equal(t, "AAAABEBBXXX", msg.Field(models.FieldDbtrAgtBIC))
	assert.Equal(t, "EEEEFRPP", msg.Field(models.FieldCdtrAgtBIC))

	// 53 then 56 fill both intermediary slots. 57 is also the instructed agent.
	assert.Contains(t, out, "<IntrmyAgt1>")
	assert.Contains(t, out, "<BICFI>CCCCUS33</BICFI>")
	assert.Contains(t, out, "<IntrmyAgt2>")
	assert.Contains(t, out, "<BICFI>DDDDGB2L</BICFI>")
	assert.Equal(t, 2, strings.Count(out, "<BICFI>EEEEFRPP</BICFI>"))
}

func TestPacs008Generator_IntermediaryOnly56(t *testing.T) {
	mt := "{4:\n:20:R\n:32A:231204EUR1,\n:56A:DDDDGB2L\n-}"
	g := NewPacs008Generator(nil)
	out, err := g.Generate(parseMT(t, mt))
	require.NoError(t, err)

	assert.Contains(t, out, "<IntrmyAgt1>")
	assert.NotContains(t, out, "<IntrmyAgt2>")
	assert.Contains(t, out, "<BICFI>"+"UNKNUSXXXXX"+"</BICFI>")
}

func TestPaymentTypeInformation(t *testing.T) {
	tests := []struct {
		code     string
		priority string
		svcLvl   string
		ctgy     string
	}{
		{"CRED", "NORM", "", ""},
		{"SDVA", "HIGH", "SDVA", ""},
		{"SPAY", "HIGH", "URGP", ""},
		{"SPRI", "HIGH", "", ""},
		{"OTHR", "", "", "OTHR"},
		{"", "NORM", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			info := paymentTypeInformation(tt.code)
			assert.Equal(t, tt.priority, info.InstrPrty)
			if tt.svcLvl == "" {
				assert.Nil(t, info.SvcLvl)
			} else {
				assert.Equal(t, tt.svcLvl, info.SvcLvl.Cd)
			}
			if tt.ctgy == "" {
				assert.Nil(t, info.CtgyPurp)
			} else {
				assert.Equal(t, tt.ctgy, info.CtgyPurp.Cd)
			}
		})
	}
}

func TestChargeBearer(t *testing.T) {
	assert.Equal(t, "DEBT", chargeBearer("OUR"))
	assert.Equal(t, "CRED", chargeBearer(" ben "))
	assert.Equal(t, "SHAR", chargeBearer("SHA"))
	assert.Equal(t, "SHAR", chargeBearer(""))
}

func TestSettlementMethod(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"53A", "CLRG"},
		{"53B", "CLRG"},
		{"53C", "CLRG"},
		{"53D", "CLRG"},
		{"54F", "CLRG"},
		{"56K", "CLRG"},
		{"56", "CLRG"},
		{"57A", "INDA"},
		{"53Z", "INDA"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			msg := &models.MtMessage{Tags: map[string]string{"20": "R", tt.tag: "VALUE"}}
			assert.Equal(t, tt.want, settlementMethod(msg))
		})
	}
}
