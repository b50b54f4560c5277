package models

import "strings"

// MxMessage is an ISO 20022 document reduced to its header identifiers and
// a flat map over a fixed vocabulary of semantic keys (see the Field*
// constants). A missing key means the source document lacked the element.
type MxMessage struct {
	MessageType         string            `json:"messageType" yaml:"message_type"`
	BusinessMessageID   string            `json:"businessMessageId,omitempty" yaml:"business_message_id,omitempty"`
	MessageDefinitionID string            `json:"messageDefinitionId,omitempty" yaml:"message_definition_id,omitempty"`
	SenderBIC           string            `json:"senderBic,omitempty" yaml:"sender_bic,omitempty"`
	ReceiverBIC         string            `json:"receiverBic,omitempty" yaml:"receiver_bic,omitempty"`
	CreationDateTime    string            `json:"creationDateTime,omitempty" yaml:"creation_date_time,omitempty"`
	Fields              map[string]string `json:"fields" yaml:"fields"`
	RawXML              string            `json:"-" yaml:"-"`
}

// Field keys populated by the MX parser.
const (
	FieldBizMsgIdr   = "BizMsgIdr"
	FieldMsgDefIdr   = "MsgDefIdr"
	FieldCreDt       = "CreDt"
	FieldSenderBIC   = "SenderBIC"
	FieldReceiverBIC = "ReceiverBIC"

	FieldMsgID          = "MsgId"
	FieldCreDtTm        = "CreDtTm"
	FieldNbOfTxs        = "NbOfTxs"
	FieldInstrID        = "InstrId"
	FieldEndToEndID     = "EndToEndId"
	FieldTxID           = "TxId"
	FieldUETR           = "UETR"
	FieldAmount         = "Amount"
	FieldCurrency       = "Currency"
	FieldIntrBkSttlmDt  = "IntrBkSttlmDt"
	FieldInstdAmount    = "InstdAmount"
	FieldInstdCurrency  = "InstdCurrency"
	FieldDbtrName       = "DbtrName"
	FieldDbtrAcct       = "DbtrAcct"
	FieldDbtrCtry       = "DbtrCtry"
	FieldDbtrBIC        = "DbtrBIC"
	FieldDbtrAgtBIC     = "DbtrAgtBIC"
	FieldCdtrName       = "CdtrName"
	FieldCdtrAcct       = "CdtrAcct"
	FieldCdtrCtry       = "CdtrCtry"
	FieldCdtrBIC        = "CdtrBIC"
	FieldCdtrAgtBIC     = "CdtrAgtBIC"
	FieldRemittanceInfo = "RemittanceInfo"
	FieldChrgBr         = "ChrgBr"

	FieldStmtID           = "StmtId"
	FieldStmtSeqNb        = "StmtSeqNb"
	FieldAccountID        = "AccountId"
	FieldOpeningBalance   = "OpeningBalance"
	FieldOpeningCurrency  = "OpeningCurrency"
	FieldOpeningIndicator = "OpeningIndicator"
	FieldOpeningDate      = "OpeningDate"
	FieldClosingBalance   = "ClosingBalance"
	FieldClosingCurrency  = "ClosingCurrency"
	FieldClosingIndicator = "ClosingIndicator"
	FieldClosingDate      = "ClosingDate"
	FieldEntryCount       = "EntryCount"
	FieldEntryAmount      = "EntryAmount"
	FieldEntryCurrency    = "EntryCurrency"
	FieldEntryIndicator   = "EntryIndicator"
	FieldEntryValueDate   = "EntryValueDate"
	FieldEntryBookingDate = "EntryBookingDate"
	FieldEntryReference   = "EntryReference"
	FieldEntryInfo        = "EntryInfo"
)

// NewMxMessage returns an empty message of the given type.
func NewMxMessage(msgType string) *MxMessage {
	return &MxMessage{MessageType: msgType, Fields: make(map[string]string)}
}

// Field returns the value stored under key, or "".
func (m *MxMessage) Field(key string) string {
	if m == nil {
		return ""
	}
	return m.Fields[key]
}

// HasField reports whether key is present with a non-blank value.
func (m *MxMessage) HasField(key string) bool {
	return strings.TrimSpace(m.Field(key)) != ""
}

// FirstField returns the value of the first present key.
func (m *MxMessage) FirstField(keys ...string) string {
	for _, key := range keys {
		if m.HasField(key) {
			return m.Field(key)
		}
	}
	return ""
}

// SetField stores value under key when value is not blank.
func (m *MxMessage) SetField(key, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if m.Fields == nil {
		m.Fields = make(map[string]string)
	}
	m.Fields[key] = value
}

// IsEmpty reports whether the parser extracted no fields.
func (m *MxMessage) IsEmpty() bool {
	return m == nil || len(m.Fields) == 0
}
