// Package converter is the public entry point of the transcoder. A Service
// parses SWIFT MT or ISO 20022 MX input, resolves the message type, checks
// CBPR+ presence rules and hands the parsed message to the generator
// registered for that type.
package converter

import (
	"fmt"
	"strings"

	"fjacquet/swift-mx/internal/cbpr"
	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/mtgen"
	"fjacquet/swift-mx/internal/mtparser"
	"fjacquet/swift-mx/internal/mxgen"
	"fjacquet/swift-mx/internal/mxparser"
	"fjacquet/swift-mx/internal/parsererror"
)

// Conversion directions, used in errors and log fields.
const (
	DirectionMtToMx = "MT->MX"
	DirectionMxToMt = "MX->MT"
)

// Format is the notation of an input document.
type Format string

const (
	FormatMT      Format = "MT"
	FormatMX      Format = "MX"
	FormatUnknown Format = "Unknown"
)

// Result is the outcome of one conversion. Advisories are the CBPR+ and
// parser findings; they never prevent Output from being produced.
type Result struct {
	Output     string   `json:"output" yaml:"output"`
	SourceType string   `json:"sourceType" yaml:"source_type"`
	TargetType string   `json:"targetType" yaml:"target_type"`
	Advisories []string `json:"advisories,omitempty" yaml:"advisories,omitempty"`
}

type mxRoute struct {
	generator mxgen.Generator
	target    string
}

type mtRoute struct {
	generator mtgen.Generator
	target    string
}

// Service converts messages in both directions. It holds no per-call state
// and is safe for concurrent use.
type Service struct {
	logger            logging.Logger
	mtParser          *mtparser.Parser
	mxParser          *mxparser.Parser
	mxRoutes          map[string]mxRoute
	mtRoutes          map[string]mtRoute
	surfaceAdvisories bool
}

// Option configures a Service.
type Option func(*Service)

// WithAdvisoryLogging controls whether ConvertMtToMx and ConvertMxToMt log
// advisories at warn level. It is enabled by default.
func WithAdvisoryLogging(enabled bool) Option {
	return func(s *Service) {
		s.surfaceAdvisories = enabled
	}
}

// NewService creates a Service with every generator registered. If logger is
// nil a default logger is used.
func NewService(logger logging.Logger, opts ...Option) *Service {
	logger = logging.OrDefault(logger)
	s := &Service{
		logger:   logger,
		mtParser: mtparser.New(logger),
		mxParser: mxparser.New(logger),
		mxRoutes: map[string]mxRoute{
			"103":    {mxgen.NewPacs008Generator(logger), models.Pacs008Type},
			"102":    {mxgen.NewMt102Generator(logger), models.Pacs008Type},
			"202":    {mxgen.NewPacs009Generator(logger), models.Pacs009Type},
			"202COV": {mxgen.NewPacs009CovGenerator(logger), models.Pacs009Type},
			"940":    {mxgen.NewCamt053Generator(logger), models.Camt053Type},
		},
		mtRoutes: map[string]mtRoute{
			models.Pacs008Family: {mtgen.NewMt103Generator(logger), "103"},
			models.Pacs009Family: {mtgen.NewMt202Generator(logger), "202"},
			models.Camt053Family: {mtgen.NewMt940Generator(logger), "940"},
		},
		surfaceAdvisories: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SupportedMtTypes lists the MT type codes accepted by MtToMx.
func (s *Service) SupportedMtTypes() []string {
	return []string{"102", "103", "202", "202COV", "940"}
}

// SupportedMxFamilies lists the MX families accepted by MxToMt.
func (s *Service) SupportedMxFamilies() []string {
	return []string{models.Camt053Family, models.Pacs008Family, models.Pacs009Family}
}

// ConvertMtToMx converts MT text to MX XML. A non-blank typeHint ("103",
// "MT103", "mt202cov") overrides the type read from block 2.
func (s *Service) ConvertMtToMx(mtText, typeHint string) (string, error) {
	result, err := s.MtToMx(mtText, typeHint)
	if err != nil {
		return "", err
	}
	s.logAdvisories(DirectionMtToMx, result)
	return result.Output, nil
}

// ConvertMxToMt converts MX XML to MT text. A non-blank typeHint
// ("pacs.008.001.08") overrides the type resolved from the namespaces.
func (s *Service) ConvertMxToMt(mxText, typeHint string) (string, error) {
	result, err := s.MxToMt(mxText, typeHint)
	if err != nil {
		return "", err
	}
	s.logAdvisories(DirectionMxToMt, result)
	return result.Output, nil
}

// MtToMx converts MT text and returns the output with its advisories.
func (s *Service) MtToMx(mtText, typeHint string) (*Result, error) {
	msg, advisories := s.mtParser.Parse(mtText)
	if hint := NormalizeMtType(typeHint); hint != "" {
		msg.Type = hint
	}

	route, ok := s.mxRoutes[msg.Type]
	if !ok || !route.generator.Supports(msg.Type) {
		return nil, &parsererror.UnsupportedTypeError{Direction: DirectionMtToMx, Type: knownType(msg.Type)}
	}
	if target, ok := cbpr.TargetFor(msg.Type); ok {
		advisories = append(advisories, cbpr.Validate(target, msg)...)
	}

	out, err := route.generator.Generate(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to convert MT%s to %s: %w", msg.Type, route.target, err)
	}

	s.logger.Debug("Converted MT to MX",
		logging.Field{Key: logging.FieldMessageType, Value: msg.Type},
		logging.Field{Key: logging.FieldTargetType, Value: route.target},
		logging.Field{Key: logging.FieldCount, Value: len(advisories)})
	return &Result{
		Output:     out,
		SourceType: "MT" + msg.Type,
		TargetType: route.target,
		Advisories: advisories,
	}, nil
}

// MxToMt converts MX XML and returns the output. MX to MT conversion raises
// no advisories.
func (s *Service) MxToMt(mxText, typeHint string) (*Result, error) {
	msg := s.mxParser.Parse(mxText)
	if hint := strings.TrimSpace(typeHint); hint != "" {
		msg.MessageType = hint
	}

	route, ok := s.mtRoutes[Family(msg.MessageType)]
	if !ok || !route.generator.Supports(msg.MessageType) {
		return nil, &parsererror.UnsupportedTypeError{Direction: DirectionMxToMt, Type: knownType(msg.MessageType)}
	}

	out, err := route.generator.Generate(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to MT%s: %w", msg.MessageType, route.target, err)
	}

	s.logger.Debug("Converted MX to MT",
		logging.Field{Key: logging.FieldMessageType, Value: msg.MessageType},
		logging.Field{Key: logging.FieldTargetType, Value: "MT" + route.target})
	return &Result{
		Output:     out,
		SourceType: msg.MessageType,
		TargetType: "MT" + route.target,
	}, nil
}

// Convert detects the notation of content and converts it to the other one.
func (s *Service) Convert(content, typeHint string) (*Result, error) {
	switch DetectFormat(content) {
	case FormatMT:
		return s.MtToMx(content, typeHint)
	case FormatMX:
		return s.MxToMt(content, typeHint)
	default:
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: "SWIFT MT or ISO 20022 XML",
			Msg:            "content is neither MT nor MX",
		}
	}
}

// ParseMt exposes the MT parser, returning the message and its advisories.
func (s *Service) ParseMt(mtText string) (*models.MtMessage, []string) {
	msg, advisories := s.mtParser.Parse(mtText)
	if target, ok := cbpr.TargetFor(msg.Type); ok {
		advisories = append(advisories, cbpr.Validate(target, msg)...)
	}
	return msg, advisories
}

// ParseMx exposes the MX parser.
func (s *Service) ParseMx(mxText string) *models.MxMessage {
	return s.mxParser.Parse(mxText)
}

func (s *Service) logAdvisories(direction string, result *Result) {
	if !s.surfaceAdvisories {
		return
	}
	logging.LogAdvisories(s.logger.WithField(logging.FieldDirection, direction), result.SourceType, result.Advisories)
}

// NormalizeMtType turns a hint such as "MT103" or "mt202cov" into the type
// code used by the MT parser ("103", "202COV").
func NormalizeMtType(hint string) string {
	code := strings.ToUpper(strings.TrimSpace(hint))
	return strings.TrimPrefix(code, "MT")
}

// Family reduces an MX type ("pacs.008.001.08") to its family ("pacs.008").
func Family(mxType string) string {
	parts := strings.SplitN(strings.TrimSpace(mxType), ".", 3)
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower(parts[0] + "." + parts[1])
}

// DetectFormat classifies content as MT or MX. XML is recognized by its
// leading angle bracket; MT by a block header or a tag on the first line.
func DetectFormat(content string) Format {
	trimmed := strings.TrimSpace(strings.TrimPrefix(content, "\ufeff"))
	switch {
	case trimmed == "":
		return FormatUnknown
	case strings.HasPrefix(trimmed, "<"):
		return FormatMX
	case strings.HasPrefix(trimmed, "{1:"), strings.HasPrefix(trimmed, "{2:"), strings.HasPrefix(trimmed, "{4:"):
		return FormatMT
	case strings.HasPrefix(trimmed, ":20:"):
		return FormatMT
	default:
		return FormatUnknown
	}
}

func knownType(t string) string {
	if t == models.UnknownType {
		return ""
	}
	return t
}
