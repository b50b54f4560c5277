// Package party reads the free-text party blocks of MT fields (50K, 59,
// 52D, 58D, …) into a structured models.ParsedParty.
//
// The reading is heuristic and follows common SWIFT formatting: an optional
// "/account" first line, then the name, then address lines with the ISO
// country code at the end of the last one. It is implemented as a small
// state machine over an immutable slice of lines; every state consumes a
// prefix of the remaining lines and names the state that follows.
package party

import (
	"regexp"
	"strings"

	"fjacquet/swift-mx/internal/models"
	"fjacquet/swift-mx/internal/textutils"
)

type state int

const (
	expectBicScan state = iota
	expectAccountOrName
	expectName
	collectAddress
	extractCountry
	done
)

// trailingCountry matches the two uppercase letters closing an address line.
// They are read as the country code whether or not a separator precedes them.
var trailingCountry = regexp.MustCompile(`[A-Z]{2}$`)

type machine struct {
	lines []string
	party models.ParsedParty
}

// Parse reads text into a ParsedParty. Blank input yields an empty party.
func Parse(text string) models.ParsedParty {
	m := &machine{lines: splitLines(text)}
	for st := expectBicScan; st != done; {
		switch st {
		case expectBicScan:
			st = m.scanBIC()
		case expectAccountOrName:
			st = m.accountOrName()
		case expectName:
			st = m.name()
		case collectAddress:
			st = m.address()
		case extractCountry:
			st = m.country()
		}
	}
	return m.party
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(raw); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// scanBIC takes the first BIC-shaped token from any line. A line holding
// only the BIC is dropped; otherwise the token is cut out of its line.
func (m *machine) scanBIC() state {
	if len(m.lines) == 0 {
		return done
	}
	for i, line := range m.lines {
		bic := textutils.BICPattern.FindString(line)
		if bic == "" {
			continue
		}
		m.party.BIC = bic

		rest := make([]string, 0, len(m.lines))
		rest = append(rest, m.lines[:i]...)
		if !textutils.IsBIC(line) {
			stripped := strings.Join(strings.Fields(strings.Replace(line, bic, "", 1)), " ")
			if stripped != "" {
				rest = append(rest, stripped)
			}
		}
		rest = append(rest, m.lines[i+1:]...)
		m.lines = rest
		break
	}

	if len(m.lines) == 0 {
		m.party.Name = m.party.BIC
		return done
	}
	return expectAccountOrName
}

// accountOrName consumes a leading "/account" line. When the line also
// carries text after a space, that text is the name.
func (m *machine) accountOrName() state {
	first := m.lines[0]
	if !strings.HasPrefix(first, "/") {
		return expectName
	}
	remainder := strings.TrimSpace(first[1:])
	if idx := strings.IndexByte(remainder, ' '); idx > 0 {
		m.party.Account = remainder[:idx]
		m.party.Name = strings.TrimSpace(remainder[idx:])
	} else {
		m.party.Account = remainder
	}
	m.lines = m.lines[1:]
	return expectName
}

func (m *machine) name() state {
	if m.party.Name == "" && len(m.lines) > 0 {
		m.party.Name = m.lines[0]
		m.lines = m.lines[1:]
	}
	return collectAddress
}

func (m *machine) address() state {
	if len(m.lines) == 0 {
		return done
	}
	m.party.AddressLines = append([]string(nil), m.lines...)
	m.lines = nil
	return extractCountry
}

func (m *machine) country() state {
	last := len(m.party.AddressLines) - 1
	match := trailingCountry.FindStringIndex(m.party.AddressLines[last])
	if match == nil {
		return done
	}
	line := m.party.AddressLines[last]
	m.party.Country = line[match[0]:match[1]]
	remainder := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[:match[0]]), ","))
	if remainder == "" {
		m.party.AddressLines = m.party.AddressLines[:last]
	} else {
		m.party.AddressLines[last] = remainder
	}
	return done
}
