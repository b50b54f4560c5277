package converter

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/mtparser"
	"fjacquet/swift-mx/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const framedMT103 = "{1:F01BANKBEBBAXXX0000000000}{2:O1031200231204BANKDEFFAXXX0000000000}{4:\n" +
	":20:REF1\n:32A:231204USD1000,00\n:50K:/111 JOHN\n:59:/222 JANE\n:71A:SHA\n-}"

const framedMT202 = "{1:F01BANKBEBBAXXX0000000000}{2:O2021200231204BANKDEFFAXXX0000000000}{4:\n" +
	":20:FI-REF\n:21:REL\n:32A:231204EUR5000,25\n:52A:AAAABEBB\n:58A:EEEEFRPP\n-}"

const framedMT940 = "{1:F01BANKBEBBAXXX0000000000}{2:O9401200231204BANKDEFFAXXX0000000000}{4:\n" +
	":20:STMT-1\n:25:BANKBEBB/123456789\n:28C:5/2\n:60F:C231201EUR1000,00\n" +
	":61:2312041204D250,50NTRFINV-42\n:86:PAYMENT TO SUPPLIER\n:62F:D231204EUR10,00\n-}"

func newTestService(opts ...Option) (*Service, *logging.MockLogger) {
	logger := logging.NewMockLogger()
	return NewService(logger, opts...), logger
}

func TestConvertMtToMx_EndToEnd(t *testing.T) {
	s, _ := newTestService()

	out, err := s.ConvertMtToMx(framedMT103, "")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "<CdtTrfTxInf>"))
	assert.Contains(t, out, "<MsgId>REF1</MsgId>")
	assert.Contains(t, out, `<IntrBkSttlmAmt Ccy="USD">1000.00</IntrBkSttlmAmt>`)
	assert.Contains(t, out, "<ChrgBr>SHAR</ChrgBr>")
}

func TestMtToMx_TypeHint(t *testing.T) {
	s, _ := newTestService()
	bare := "{4:\n:20:REF1\n:32A:231204EUR5,\n-}"

	_, err := s.MtToMx(bare, "")
	assert.True(t, errors.Is(err, parsererror.ErrUnsupportedType))

	for _, hint := range []string{"MT202", "mt202", "202", " 202 "} {
		result, err := s.MtToMx(bare, hint)
		require.NoError(t, err, hint)
		assert.Equal(t, "MT202", result.SourceType)
		assert.Equal(t, models.Pacs009Type, result.TargetType)
		assert.Contains(t, result.Output, "<FICdtTrf>")
	}

	result, err := s.MtToMx(bare, "mt202cov")
	require.NoError(t, err)
	assert.Contains(t, result.Output, "<UndrlygCstmrCdtTrf>")
	assert.Contains(t, result.Advisories, "Missing {119:COV} indicator for pacs.009.COV")
}

func TestMtToMx_MissingReference(t *testing.T) {
	s, _ := newTestService()
	mt := strings.Replace(framedMT103, ":20:REF1\n", "", 1)

	out, err := s.ConvertMtToMx(mt, "")
	assert.Empty(t, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrMissingMandatoryField))

	var missing *parsererror.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, ":20:", missing.Field)
}

func TestMtToMx_Advisories(t *testing.T) {
	s, logger := newTestService()
	mt := "{1:F01BANKBEBBAXXX0000000000}{2:O1031200231204BANKDEFFAXXX0000000000}{4:\n:20:R\n:32A:231204USD1,\n-}"

	result, err := s.MtToMx(mt, "")
	require.NoError(t, err)
	assert.Contains(t, result.Advisories, "MT103 Advisory: Missing mandatory tag :71A: (Details of Charges)")
	assert.Contains(t, result.Advisories, "Missing mandatory tag group: Ordering Customer (Debtor) (:50a:)")
	assert.Empty(t, logger.GetEntriesByLevel("WARN"), "MtToMx returns advisories without logging them")

	_, err = s.ConvertMtToMx(mt, "")
	require.NoError(t, err)
	warnings := logger.GetEntriesByLevel("WARN")
	assert.Len(t, warnings, len(result.Advisories))
	value, ok := warnings[0].FieldValue(logging.FieldDirection)
	require.True(t, ok)
	assert.Equal(t, DirectionMtToMx, value)
}

func TestMtToMx_AdvisoryLoggingDisabled(t *testing.T) {
	s, logger := newTestService(WithAdvisoryLogging(false))
	_, err := s.ConvertMtToMx("{2:O1031200231204BANKDEFFAXXX0000000000}{4:\n:20:R\n-}", "")
	require.NoError(t, err)
	assert.Empty(t, logger.GetEntriesByLevel("WARN"))
}

func TestConvertMxToMt_UnsupportedType(t *testing.T) {
	s, _ := newTestService()
	mx, err := s.ConvertMtToMx(framedMT103, "")
	require.NoError(t, err)

	_, err = s.ConvertMxToMt(mx, "unknown.001.001.01")
	assert.True(t, errors.Is(err, parsererror.ErrUnsupportedType))

	var unsupported *parsererror.UnsupportedTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, DirectionMxToMt, unsupported.Direction)
	assert.Equal(t, "unknown.001.001.01", unsupported.Type)

	_, err = s.ConvertMxToMt("not xml", "")
	require.True(t, errors.As(err, &unsupported))
	assert.Empty(t, unsupported.Type)
}

func TestRoundTrip_KeepsReferenceAmountAndCurrency(t *testing.T) {
	tests := []struct {
		name   string
		mt     string
		tag32A string
		ref    string
	}{
		{"MT103", framedMT103, "231204USD1000,00", "REF1"},
		{"MT202", framedMT202, "231204EUR5000,25", "FI-REF"},
	}
	s, _ := newTestService()
	parser := mtparser.New(logging.NewMockLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mx, err := s.ConvertMtToMx(tt.mt, "")
			require.NoError(t, err)
			back, err := s.ConvertMxToMt(mx, "")
			require.NoError(t, err)

			original, _ := parser.Parse(tt.mt)
			parsed, _ := parser.Parse(back)
			assert.Equal(t, original.Type, parsed.Type)
			assert.Equal(t, tt.ref, parsed.Tag("20"))
			assert.Equal(t, tt.tag32A, parsed.Tag("32A"))
			assert.Equal(t, original.Sender, parsed.Sender)
			assert.Equal(t, original.Receiver, parsed.Receiver)
		})
	}
}

func TestRoundTrip_Statement(t *testing.T) {
	s, _ := newTestService()
	mx, err := s.ConvertMtToMx(framedMT940, "")
	require.NoError(t, err)

	result, err := s.MxToMt(mx, "")
	require.NoError(t, err)
	assert.Equal(t, models.Camt053Type, result.SourceType)
	assert.Equal(t, "MT940", result.TargetType)

	parsed, _ := mtparser.New(nil).Parse(result.Output)
	assert.Equal(t, "940", parsed.Type)
	assert.Equal(t, "C231201EUR1000,00", parsed.Tag("60F"))
	assert.Equal(t, "D231204EUR10,00", parsed.Tag("62F"))
	assert.Equal(t, "2312041204D250,50NMSCINV-42", parsed.Tag("61"))
	assert.Equal(t, "PAYMENT TO SUPPLIER", parsed.Tag("86"))
	assert.Equal(t, "123456789", parsed.Tag("25"))
}

func TestConvert_DetectsDirection(t *testing.T) {
	s, _ := newTestService()

	result, err := s.Convert(framedMT103, "")
	require.NoError(t, err)
	assert.Equal(t, models.Pacs008Type, result.TargetType)

	back, err := s.Convert(result.Output, "")
	require.NoError(t, err)
	assert.Equal(t, "MT103", back.TargetType)

	_, err = s.Convert("plain text", "")
	var invalid *parsererror.InvalidFormatError
	assert.True(t, errors.As(err, &invalid))
}

func TestRoutingTables(t *testing.T) {
	s, _ := newTestService()

	for code, route := range s.mxRoutes {
		for other := range s.mxRoutes {
			assert.Equal(t, code == other, route.generator.Supports(other), "%T supports %s", route.generator, other)
		}
	}
	assert.ElementsMatch(t, s.SupportedMtTypes(), keys(s.mxRoutes))

	for family, route := range s.mtRoutes {
		for other := range s.mtRoutes {
			assert.Equal(t, family == other, route.generator.Supports(other+".001.08"), "%T supports %s", route.generator, other)
		}
	}
	assert.ElementsMatch(t, s.SupportedMxFamilies(), keys(s.mtRoutes))
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		content string
		want    Format
	}{
		{framedMT103, FormatMT},
		{"\ufeff{1:F01BANKBEBBAXXX0000000000}", FormatMT},
		{":20:REF\n:32A:231204EUR1,", FormatMT},
		{"  <?xml version=\"1.0\"?><Document/>", FormatMX},
		{"<Document/>", FormatMX},
		{"", FormatUnknown},
		{"hello", FormatUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.content), tt.content)
	}
}

func TestNormalizeMtTypeAndFamily(t *testing.T) {
	assert.Equal(t, "103", NormalizeMtType("MT103"))
	assert.Equal(t, "202COV", NormalizeMtType("mt202cov"))
	assert.Equal(t, "", NormalizeMtType("  "))

	assert.Equal(t, "pacs.008", Family("pacs.008.001.08"))
	assert.Equal(t, "camt.053", Family("CAMT.053.001.02"))
	assert.Equal(t, "", Family("Unknown"))
}
