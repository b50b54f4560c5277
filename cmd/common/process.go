// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"fjacquet/swift-mx/internal/fileutils"
	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/parsererror"
	"fjacquet/swift-mx/pkg/converter"

	"gopkg.in/yaml.v3"
)

// ReadInput returns the content of path, or of stdin when path is "" or "-".
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteOutput writes content to path, or to stdout when path is "" or "-".
func WriteOutput(path, content string, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	return fileutils.WriteFile(path, []byte(content), 0600)
}

// ProcessFile converts inputFile in the given direction and writes the
// result to outputFile. Advisories are logged by the service according to
// its configuration.
func ProcessFile(service *converter.Service, direction, inputFile, outputFile, typeHint string, stdin io.Reader, stdout io.Writer, log logging.Logger) error {
	log = logging.OrDefault(log)

	content, err := ReadInput(inputFile, stdin)
	if err != nil {
		return err
	}

	var output string
	switch direction {
	case converter.DirectionMtToMx:
		output, err = service.ConvertMtToMx(content, typeHint)
	case converter.DirectionMxToMt:
		output, err = service.ConvertMxToMt(content, typeHint)
	default:
		return fmt.Errorf("unknown conversion direction: %s", direction)
	}
	if err != nil {
		return err
	}

	if err := WriteOutput(outputFile, output, stdout); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info("Conversion completed",
		logging.Field{Key: logging.FieldDirection, Value: direction},
		logging.Field{Key: logging.FieldInputFile, Value: displayName(inputFile)},
		logging.Field{Key: logging.FieldOutputFile, Value: displayName(outputFile)})
	return nil
}

// InspectReport is the structure printed by the inspect command.
type InspectReport struct {
	Format     converter.Format  `yaml:"format"`
	MT         *models.MtMessage `yaml:"mt,omitempty"`
	MX         *models.MxMessage `yaml:"mx,omitempty"`
	Advisories []string          `yaml:"advisories,omitempty"`
	Conversion *converter.Result `yaml:"conversion,omitempty"`
	Error      string            `yaml:"error,omitempty"`
}

// Inspect parses content in whichever notation it is written and, when
// convert is set, also records the conversion result or error.
func Inspect(service *converter.Service, content string, convert bool) (*InspectReport, error) {
	report := &InspectReport{Format: converter.DetectFormat(content)}

	switch report.Format {
	case converter.FormatMT:
		report.MT, report.Advisories = service.ParseMt(content)
	case converter.FormatMX:
		report.MX = service.ParseMx(content)
	default:
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: "SWIFT MT or ISO 20022 XML",
			Msg:            "cannot inspect content",
		}
	}

	if convert {
		result, err := service.Convert(content, "")
		if err != nil {
			report.Error = err.Error()
		} else {
			result.Advisories = nil
			report.Conversion = result
		}
	}
	return report, nil
}

// RenderYAML marshals v as YAML with two-space indentation.
func RenderYAML(v interface{}, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "-"
	}
	return path
}
