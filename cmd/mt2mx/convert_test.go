package mt2mx_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/swift-mx/cmd/mt2mx"
	"fjacquet/swift-mx/cmd/root"
	"fjacquet/swift-mx/internal/config"
	"fjacquet/swift-mx/internal/container"
	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mt103 = "{1:F01BANKBEBBAXXX0000000000}{2:O1031200231204BANKDEFFAXXX0000000000}{4:\n" +
	":20:REF1\n:32A:231204USD1000,00\n:50K:/111 JOHN\n:59:/222 JANE\n:71A:SHA\n-}"

func setup(t *testing.T, cfg *config.Config) (*bytes.Buffer, *logging.MockLogger) {
	t.Helper()
	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)

	previousFlags := root.SharedFlags
	previousContainer := root.GetContainer()
	root.SetContainer(c)
	root.SharedFlags = root.CommonFlags{}

	var stdout bytes.Buffer
	mt2mx.Cmd.SetOut(&stdout)
	t.Cleanup(func() {
		root.SharedFlags = previousFlags
		root.SetContainer(previousContainer)
		mt2mx.Cmd.SetOut(nil)
		mt2mx.Cmd.SetIn(nil)
	})
	return &stdout, logger
}

func TestMt2mxCommand_Metadata(t *testing.T) {
	assert.Equal(t, "mt2mx [input]", mt2mx.Cmd.Use)
	assert.Contains(t, mt2mx.Cmd.Short, "SWIFT MT message to ISO 20022 MX")
	assert.Contains(t, mt2mx.Cmd.Long, "--type")
	assert.NotNil(t, mt2mx.Cmd.RunE)
}

func TestMt2mxCommand_FileToFile(t *testing.T) {
	_, logger := setup(t, config.Default())
	dir := t.TempDir()
	in := filepath.Join(dir, "payment.fin")
	require.NoError(t, os.WriteFile(in, []byte(mt103), 0600))
	root.SharedFlags.Output = filepath.Join(dir, "payment.xml")

	require.NoError(t, mt2mx.Cmd.RunE(mt2mx.Cmd, []string{in}))

	data, err := os.ReadFile(root.SharedFlags.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<IntrBkSttlmAmt Ccy="USD">1000.00</IntrBkSttlmAmt>`)
	assert.True(t, logger.HasEntry("INFO", "Conversion completed"))
}

func TestMt2mxCommand_StdinWithTypeFlag(t *testing.T) {
	stdout, _ := setup(t, config.Default())
	mt2mx.Cmd.SetIn(strings.NewReader("{4:\n:20:FI\n:32A:231204EUR5,\n-}"))
	root.SharedFlags.Type = "MT202"

	require.NoError(t, mt2mx.Cmd.RunE(mt2mx.Cmd, nil))
	assert.Contains(t, stdout.String(), "<FICdtTrf>")
}

func TestMt2mxCommand_ConfiguredDefaultType(t *testing.T) {
	cfg := config.Default()
	cfg.Conversion.DefaultMtType = "202COV"
	stdout, _ := setup(t, cfg)
	mt2mx.Cmd.SetIn(strings.NewReader("{4:\n:20:FI\n:32A:231204EUR5,\n-}"))

	require.NoError(t, mt2mx.Cmd.RunE(mt2mx.Cmd, nil))
	assert.Contains(t, stdout.String(), "<UndrlygCstmrCdtTrf>")
}

func TestMt2mxCommand_UnsupportedType(t *testing.T) {
	setup(t, config.Default())
	mt2mx.Cmd.SetIn(strings.NewReader("{2:O9991200231204BANKDEFFAXXX0000000000}{4:\n:20:R\n-}"))

	err := mt2mx.Cmd.RunE(mt2mx.Cmd, nil)
	assert.True(t, errors.Is(err, parsererror.ErrUnsupportedType))
}

func TestMt2mxCommand_WithoutContainer(t *testing.T) {
	setup(t, config.Default())
	root.SetContainer(nil)
	assert.ErrorIs(t, mt2mx.Cmd.RunE(mt2mx.Cmd, nil), root.ErrNotInitialized)
}
