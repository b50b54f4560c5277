package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/swift-mx/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalReport_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarshalReport([]ReportRow{{
		InputFile:    "in/a.fin",
		OutputFile:   "out/a.xml",
		Direction:    "MT->MX",
		SourceType:   "MT103",
		TargetType:   "pacs.008.001.08",
		Status:       StatusConverted,
		Advisories:   1,
		AdvisoryText: "Missing mandatory tag: Value, with comma",
		DurationMs:   3,
	}}, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "input_file,output_file,direction,source_type,target_type,status,advisories,advisory_text,error,duration_ms", lines[0])
	assert.Equal(t, `in/a.fin,out/a.xml,MT->MX,MT103,pacs.008.001.08,converted,1,"Missing mandatory tag: Value, with comma",,3`, lines[1])
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "batch.csv")
	logger := logging.NewMockLogger()
	rows := []ReportRow{
		{InputFile: "a.fin", Status: StatusConverted},
		{InputFile: "b.xml", Status: StatusFailed, Error: "boom"},
	}

	require.NoError(t, WriteReport(rows, path, logger))
	assert.True(t, logger.HasEntry("INFO", "Wrote batch report"))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	back, err := UnmarshalReport(file)
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}

func TestSummary(t *testing.T) {
	s := Summarize([]ReportRow{
		{Status: StatusConverted, Advisories: 2},
		{Status: StatusFailed},
		{Status: StatusCancelled},
		{Status: StatusConverted},
	})
	assert.Equal(t, Summary{Total: 4, Converted: 2, Failed: 1, Cancelled: 1, Advisories: 2}, s)
	assert.Equal(t, "4 files: 2 converted, 1 failed, 1 cancelled, 2 advisories", s.String())
	assert.Equal(t, Summary{}, Summarize(nil))
}
