// Package models provides the data structures shared by the parsers and
// generators: the parsed MT and MX messages, the party record derived from
// free-text MT fields, monetary amounts and the ISO 20022 document types the
// MX generators marshal.
package models

import "strings"

// UnknownType is the message type assigned when a parser cannot classify its
// input.
const UnknownType = "Unknown"

// MtMessage is a SWIFT MT (FIN) message reduced to its header BICs and a
// flat map of tag to raw value. Block 3 tags ("108", "119", "121") live in
// the same map as block 4 tags ("20", "32A", "50K").
type MtMessage struct {
	Type     string            `json:"type" yaml:"type"`
	Sender   string            `json:"sender,omitempty" yaml:"sender,omitempty"`
	Receiver string            `json:"receiver,omitempty" yaml:"receiver,omitempty"`
	Tags     map[string]string `json:"tags" yaml:"tags"`
}

// NewMtMessage returns an empty message of the given type.
func NewMtMessage(msgType string) *MtMessage {
	return &MtMessage{Type: msgType, Tags: make(map[string]string)}
}

// Tag returns the value of tag, or "" when absent.
func (m *MtMessage) Tag(tag string) string {
	if m == nil {
		return ""
	}
	return m.Tags[tag]
}

// HasTag reports whether tag is present with a non-blank value.
func (m *MtMessage) HasTag(tag string) bool {
	return strings.TrimSpace(m.Tag(tag)) != ""
}

// FirstTag returns the first of tags that is present, along with its value.
func (m *MtMessage) FirstTag(tags ...string) (string, string, bool) {
	for _, tag := range tags {
		if m.HasTag(tag) {
			return tag, m.Tag(tag), true
		}
	}
	return "", "", false
}

// HasAnyVariant reports whether base or base followed by one of the option
// letters is present, e.g. HasAnyVariant("50", "A", "K", "F") matches
// 50, 50A, 50K or 50F.
func (m *MtMessage) HasAnyVariant(base string, options ...string) bool {
	if m.HasTag(base) {
		return true
	}
	for _, option := range options {
		if m.HasTag(base + option) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether parsing produced no tags at all.
func (m *MtMessage) IsEmpty() bool {
	return m == nil || len(m.Tags) == 0
}
