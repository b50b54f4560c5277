// Package mtparser turns raw SWIFT MT (FIN) text into a models.MtMessage.
//
// The parser never fails: empty or unrecognised input yields a message of
// type models.UnknownType. Missing mandatory tags for the supported types are
// reported as advisory strings next to the parsed message.
package mtparser

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/models"
)

// CoverIndicator is the block 3 field that turns an MT202 into an MT202COV.
const CoverIndicator = "{119:COV}"

var (
	basicHeaderRe   = regexp.MustCompile(`\{1:[A-Z]\d{2}([A-Z0-9]{12})`)
	appTypeRe       = regexp.MustCompile(`\{2:[OI](\d{3})`)
	appOutputRe     = regexp.MustCompile(`\{2:O\d{3}\d{10}([A-Z0-9]{12})`)
	appInputRe      = regexp.MustCompile(`\{2:I\d{3}([A-Z0-9]{12})`)
	userHeaderRe    = regexp.MustCompile(`\{3:((?:\{[^}]*\})*)\}`)
	userHeaderTagRe = regexp.MustCompile(`\{(\d{3}):([^}]*)\}`)
	textBlockRe     = regexp.MustCompile(`\{4:([\s\S]*?)-\}`)
	tagRe           = regexp.MustCompile(`:(\d{2}[A-Z]?):`)
)

// Parser extracts headers and tags from MT text.
type Parser struct {
	logger logging.Logger
}

// New creates a Parser. A nil logger selects the default adapter.
func New(logger logging.Logger) *Parser {
	return &Parser{logger: logging.OrDefault(logger)}
}

// Parse reads content and returns the parsed message together with the
// advisories raised for missing mandatory tags.
func (p *Parser) Parse(content string) (*models.MtMessage, []string) {
	content = normalize(content)
	if strings.TrimSpace(content) == "" {
		return models.NewMtMessage(models.UnknownType), nil
	}

	msg := models.NewMtMessage(detectType(content))
	msg.Sender = senderBIC(content)
	msg.Receiver = receiverBIC(content)

	for key, value := range userHeaderTags(content) {
		msg.Tags[key] = value
	}
	for key, value := range textBlockTags(textBlock(content)) {
		if _, exists := msg.Tags[key]; !exists {
			msg.Tags[key] = value
		}
	}

	advisories := Advisories(msg)
	for _, advisory := range advisories {
		p.logger.Debug("MT advisory",
			logging.Field{Key: logging.FieldMessageType, Value: msg.Type},
			logging.Field{Key: logging.FieldAdvisory, Value: advisory})
	}
	p.logger.Debug("Parsed MT message",
		logging.Field{Key: logging.FieldMessageType, Value: msg.Type},
		logging.Field{Key: logging.FieldCount, Value: len(msg.Tags)})

	return msg, advisories
}

func normalize(content string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

func detectType(content string) string {
	msgType := models.UnknownType
	if m := appTypeRe.FindStringSubmatch(content); m != nil {
		msgType = m[1]
	} else if strings.Contains(content, "103") {
		msgType = "103"
	}
	if msgType == "202" && strings.Contains(content, CoverIndicator) {
		msgType = "202COV"
	}
	return msgType
}

// logicalTerminalBIC reduces a 12-character logical terminal address
// (BIC8 + terminal code + branch) to the 8-character BIC.
func logicalTerminalBIC(lt string) string {
	if len(lt) < 8 {
		return lt
	}
	return lt[:8]
}

func senderBIC(content string) string {
	if m := basicHeaderRe.FindStringSubmatch(content); m != nil {
		return logicalTerminalBIC(m[1])
	}
	return ""
}

func receiverBIC(content string) string {
	if m := appOutputRe.FindStringSubmatch(content); m != nil {
		return logicalTerminalBIC(m[1])
	}
	if m := appInputRe.FindStringSubmatch(content); m != nil {
		return logicalTerminalBIC(m[1])
	}
	return ""
}

func userHeaderTags(content string) map[string]string {
	tags := make(map[string]string)
	m := userHeaderRe.FindStringSubmatch(content)
	if m == nil {
		return tags
	}
	for _, pair := range userHeaderTagRe.FindAllStringSubmatch(m[1], -1) {
		if _, exists := tags[pair[1]]; !exists {
			tags[pair[1]] = strings.TrimSpace(pair[2])
		}
	}
	return tags
}

// textBlock returns the body of block 4. A message without a block 4 marker
// is treated as a bare block 4.
func textBlock(content string) string {
	if m := textBlockRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if idx := strings.Index(content, "{4:"); idx >= 0 {
		return content[idx+len("{4:"):]
	}
	return content
}

// textBlockTags splits block 4 on tag delimiters. A delimiter only counts at
// the start of the block or after whitespace, so colons inside values such
// as "/ACC:12:34" are left alone.
func textBlockTags(block string) map[string]string {
	tags := make(map[string]string)

	type delimiter struct {
		tag        string
		start, end int
	}
	var delimiters []delimiter
	for _, loc := range tagRe.FindAllStringSubmatchIndex(block, -1) {
		if loc[0] > 0 && !isSpace(block[loc[0]-1]) {
			continue
		}
		delimiters = append(delimiters, delimiter{tag: block[loc[2]:loc[3]], start: loc[0], end: loc[1]})
	}

	for i, d := range delimiters {
		valueEnd := len(block)
		if i+1 < len(delimiters) {
			valueEnd = delimiters[i+1].start
		}
		if _, exists := tags[d.tag]; exists {
			continue
		}
		tags[d.tag] = strings.TrimSpace(block[d.end:valueEnd])
	}
	return tags
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t'
}

// Advisories lists the mandatory tags missing from msg for its type. Types
// without a rule set produce no advisories.
func Advisories(msg *models.MtMessage) []string {
	if msg == nil {
		return nil
	}
	var advisories []string
	missing := func(tag, label string) {
		advisories = append(advisories,
			fmt.Sprintf("MT%s Advisory: Missing mandatory tag %s (%s)", msg.Type, tag, label))
	}

	switch msg.Type {
	case "103":
		if !msg.HasTag("20") {
			missing(":20:", "Transaction Reference Number")
		}
		if !msg.HasTag("32A") {
			missing(":32A:", "Value Date, Currency Code, Amount")
		}
		if !msg.HasTag("71A") {
			missing(":71A:", "Details of Charges")
		}
		if !hasTagPrefix(msg, "50") {
			missing(":50a:", "Ordering Customer")
		}
		if !hasTagPrefix(msg, "59") {
			missing(":59a:", "Beneficiary Customer")
		}
	case "202", "202COV":
		if !msg.HasTag("20") {
			missing(":20:", "Transaction Reference Number")
		}
		if !msg.HasTag("21") {
			missing(":21:", "Related Reference")
		}
		if !msg.HasTag("32A") {
			missing(":32A:", "Value Date, Currency Code, Amount")
		}
		if !msg.HasTag("58A") && !msg.HasTag("58D") {
			missing(":58a:", "Beneficiary Institution")
		}
	case "940":
		if !msg.HasTag("20") {
			missing(":20:", "Transaction Reference Number")
		}
		if !msg.HasTag("25") {
			missing(":25:", "Account Identification")
		}
		if !msg.HasTag("28C") {
			missing(":28C:", "Statement Number/Sequence")
		}
		if !msg.HasTag("60F") && !msg.HasTag("60M") {
			missing(":60F: or :60M:", "Opening Balance")
		}
		if !msg.HasTag("62F") && !msg.HasTag("62M") {
			missing(":62F: or :62M:", "Closing Balance")
		}
	}
	return advisories
}

func hasTagPrefix(msg *models.MtMessage, base string) bool {
	for key, value := range msg.Tags {
		if strings.HasPrefix(key, base) && strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}
