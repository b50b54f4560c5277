// Package cbpr checks an MT message for the tags CBPR+ makes mandatory in
// the MX message it is about to become. Findings are advisories: they are
// returned as data and never stop a conversion.
package cbpr

import (
	"strings"

	"fjacquet/swift-mx/internal/models"
)

// Target names the MX message the MT input is being converted into.
type Target string

const (
	Pacs008     Target = "pacs.008"
	Pacs008Bulk Target = "pacs.008.bulk"
	Pacs009     Target = "pacs.009"
	Pacs009Cov  Target = "pacs.009.COV"
)

// Option letters accepted by an any-of tag group such as 50a.
var groupSuffixes = []string{"A", "B", "D", "F", "K", "C"}

// rule inspects msg and returns an advisory, or "" when satisfied.
type rule func(msg *models.MtMessage) string

func requireTag(tag, label string) rule {
	return func(msg *models.MtMessage) string {
		if msg.HasTag(tag) {
			return ""
		}
		return "Missing mandatory tag: " + label
	}
}

func requireGroup(base, label string) rule {
	return func(msg *models.MtMessage) string {
		if msg.HasAnyVariant(base, groupSuffixes...) {
			return ""
		}
		return "Missing mandatory tag group: " + label
	}
}

func requireSender(msg *models.MtMessage) string {
	if strings.TrimSpace(msg.Sender) != "" {
		return ""
	}
	return "Missing Sender BIC (Instructing Agent)"
}

func requireReceiver(msg *models.MtMessage) string {
	if strings.TrimSpace(msg.Receiver) != "" {
		return ""
	}
	return "Missing Receiver BIC (Instructed Agent)"
}

func requireCoverIndicator(msg *models.MtMessage) string {
	if strings.Contains(msg.Tag("119"), "COV") {
		return ""
	}
	return "Missing {119:COV} indicator for pacs.009.COV"
}

func requireTransactionReference(msg *models.MtMessage) string {
	if msg.HasTag("21") {
		return ""
	}
	return "Missing at least one Transaction Reference (:21:)"
}

var (
	reference   = requireTag("20", "Transaction Reference Number (:20:)")
	settlement  = requireTag("32A", "Value Date/Currency/Interbank Settled Amount (:32A:)")
	debtor      = requireGroup("50", "Ordering Customer (Debtor) (:50a:)")
	creditor    = requireGroup("59", "Beneficiary Customer (Creditor) (:59a:)")
	agentsKnown = []rule{requireSender, requireReceiver}
)

var rules = map[Target][]rule{
	Pacs008: append([]rule{reference, settlement, debtor, creditor}, agentsKnown...),
	Pacs008Bulk: append([]rule{
		requireTag("20", "Sender's Reference (:20:)"),
		requireTag("32A", "Total Amount (:32A:)"),
		requireTransactionReference,
		debtor,
		creditor,
	}, agentsKnown...),
	Pacs009: append([]rule{reference, settlement}, agentsKnown...),
	Pacs009Cov: append(append([]rule{reference, settlement}, agentsKnown...),
		requireCoverIndicator,
		requireGroup("50", "Underlying Debtor (:50a:)"),
		requireGroup("59", "Underlying Creditor (:59a:)"),
		requireTag("33B", "Underlying Instructed Amount (:33B:)"),
	),
}

// Validate returns the advisories raised by msg for target. Unknown targets
// and nil messages produce none.
func Validate(target Target, msg *models.MtMessage) []string {
	if msg == nil {
		return nil
	}
	var advisories []string
	for _, check := range rules[target] {
		if advisory := check(msg); advisory != "" {
			advisories = append(advisories, advisory)
		}
	}
	return advisories
}

// TargetFor returns the rule set that applies when an MT message of mtType
// is converted, and false for types without CBPR+ rules.
func TargetFor(mtType string) (Target, bool) {
	switch mtType {
	case "103":
		return Pacs008, true
	case "102":
		return Pacs008Bulk, true
	case "202":
		return Pacs009, true
	case "202COV":
		return Pacs009Cov, true
	}
	return "", false
}
