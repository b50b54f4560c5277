package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"fjacquet/swift-mx/internal/fileutils"
	"fjacquet/swift-mx/internal/logging"

	"github.com/gocarina/gocsv"
)

// Row statuses.
const (
	StatusConverted = "converted"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// advisorySeparator joins several advisories in one CSV cell.
const advisorySeparator = " | "

// ReportRow is one line of the batch report.
type ReportRow struct {
	InputFile    string `csv:"input_file"`
	OutputFile   string `csv:"output_file"`
	Direction    string `csv:"direction"`
	SourceType   string `csv:"source_type"`
	TargetType   string `csv:"target_type"`
	Status       string `csv:"status"`
	Advisories   int    `csv:"advisories"`
	AdvisoryText string `csv:"advisory_text"`
	Error        string `csv:"error"`
	DurationMs   int64  `csv:"duration_ms"`
}

// Summary counts rows by status.
type Summary struct {
	Total      int
	Converted  int
	Failed     int
	Cancelled  int
	Advisories int
}

// Summarize aggregates rows into a Summary.
func Summarize(rows []ReportRow) Summary {
	s := Summary{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case StatusConverted:
			s.Converted++
		case StatusFailed:
			s.Failed++
		case StatusCancelled:
			s.Cancelled++
		}
		s.Advisories += row.Advisories
	}
	return s
}

// String renders the summary for the end of a batch run.
func (s Summary) String() string {
	return fmt.Sprintf("%d files: %d converted, %d failed, %d cancelled, %d advisories",
		s.Total, s.Converted, s.Failed, s.Cancelled, s.Advisories)
}

// MarshalReport writes rows as CSV with a header line.
func MarshalReport(rows []ReportRow, w io.Writer) error {
	if rows == nil {
		rows = []ReportRow{}
	}
	csvWriter := csv.NewWriter(w)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV report: %w", err)
	}
	return nil
}

// UnmarshalReport reads a report produced by MarshalReport.
func UnmarshalReport(r io.Reader) ([]ReportRow, error) {
	var rows []ReportRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV report: %w", err)
	}
	return rows, nil
}

// WriteReport writes rows to path, creating parent directories as needed.
func WriteReport(rows []ReportRow, path string, logger logging.Logger) error {
	logger = logging.OrDefault(logger)

	file, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close report file")
		}
	}()

	if err := MarshalReport(rows, file); err != nil {
		return err
	}

	logger.Info("Wrote batch report",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

func joinAdvisories(advisories []string) string {
	return strings.Join(advisories, advisorySeparator)
}
