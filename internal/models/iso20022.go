package models

import "encoding/xml"

// Namespace prefixes and identifiers for the ISO 20022 messages produced by
// the MX generators.
const (
	ISO20022NamespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

	AppHdrType  = "head.001.001.01"
	Pacs008Type = "pacs.008.001.08"
	Pacs009Type = "pacs.009.001.08"
	Camt053Type = "camt.053.001.08"
)

// Message families, the version-independent prefixes of the types above.
const (
	Pacs008Family = "pacs.008"
	Pacs009Family = "pacs.009"
	Camt053Family = "camt.053"
)

// Namespace returns the target namespace for an ISO 20022 message type.
func Namespace(msgType string) string {
	return ISO20022NamespacePrefix + msgType
}

// RequestPayload is the envelope written by the MX generators: a business
// application header followed by the message document.
type RequestPayload struct {
	XMLName  xml.Name `xml:"RequestPayload"`
	AppHdr   AppHdr
	Document Document
}

// AppHdr is the head.001.001.01 business application header.
type AppHdr struct {
	XMLName   xml.Name    `xml:"AppHdr"`
	Xmlns     string      `xml:"xmlns,attr"`
	CharSet   string      `xml:"CharSet,omitempty"`
	Fr        HeaderParty `xml:"Fr"`
	To        HeaderParty `xml:"To"`
	BizMsgIdr string      `xml:"BizMsgIdr"`
	MsgDefIdr string      `xml:"MsgDefIdr"`
	CreDt     string      `xml:"CreDt"`
}

// HeaderParty identifies the sending or receiving institution in AppHdr.
type HeaderParty struct {
	FIId Agent `xml:"FIId"`
}

// Document is the ISO 20022 message body. Exactly one of the message
// components is set.
type Document struct {
	XMLName           xml.Name                      `xml:"Document"`
	Xmlns             string                        `xml:"xmlns,attr"`
	FIToFICstmrCdtTrf *FIToFICustomerCreditTransfer `xml:"FIToFICstmrCdtTrf,omitempty"`
	FICdtTrf          *FICreditTransfer             `xml:"FICdtTrf,omitempty"`
	BkToCstmrStmt     *BankToCustomerStatement      `xml:"BkToCstmrStmt,omitempty"`
}

// GroupHeader is shared by pacs and camt messages; camt.053 leaves the
// settlement elements empty.
type GroupHeader struct {
	MsgId    string                 `xml:"MsgId"`
	CreDtTm  string                 `xml:"CreDtTm"`
	NbOfTxs  string                 `xml:"NbOfTxs,omitempty"`
	SttlmInf *SettlementInstruction `xml:"SttlmInf,omitempty"`
}

// SettlementInstruction carries the settlement method (INDA, CLRG).
type SettlementInstruction struct {
	SttlmMtd string `xml:"SttlmMtd"`
}

// ActiveAmount is an amount with its currency attribute.
type ActiveAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

// NewActiveAmount converts Money to its XML form.
func NewActiveAmount(m Money) ActiveAmount {
	return ActiveAmount{Ccy: m.Currency, Value: m.MX()}
}

// PaymentIdentification identifies a transaction end to end.
type PaymentIdentification struct {
	InstrId    string `xml:"InstrId,omitempty"`
	EndToEndId string `xml:"EndToEndId"`
	TxId       string `xml:"TxId,omitempty"`
	UETR       string `xml:"UETR,omitempty"`
}

// PaymentTypeInformation carries priority, service level and category purpose.
type PaymentTypeInformation struct {
	InstrPrty string       `xml:"InstrPrty,omitempty"`
	SvcLvl    *CodeElement `xml:"SvcLvl,omitempty"`
	CtgyPurp  *CodeElement `xml:"CtgyPurp,omitempty"`
}

// CodeElement is a choice element reduced to its Cd branch.
type CodeElement struct {
	Cd string `xml:"Cd"`
}

// Agent is a BranchAndFinancialInstitutionIdentification.
type Agent struct {
	FinInstnId FinancialInstitution `xml:"FinInstnId"`
}

// FinancialInstitution identifies an institution by BIC or by name and address.
type FinancialInstitution struct {
	BICFI   string         `xml:"BICFI,omitempty"`
	Nm      string         `xml:"Nm,omitempty"`
	PstlAdr *PostalAddress `xml:"PstlAdr,omitempty"`
}

// PartyIdentification is a customer party (debtor, creditor).
type PartyIdentification struct {
	Nm      string         `xml:"Nm,omitempty"`
	PstlAdr *PostalAddress `xml:"PstlAdr,omitempty"`
	Id      *PartyID       `xml:"Id,omitempty"`
}

// PartyID identifies an organisation party by BIC.
type PartyID struct {
	OrgId OrganisationIdentification `xml:"OrgId"`
}

// OrganisationIdentification holds an organisation's BIC.
type OrganisationIdentification struct {
	AnyBIC string `xml:"AnyBIC"`
}

// PostalAddress holds unstructured address lines and the country code.
type PostalAddress struct {
	Ctry    string   `xml:"Ctry,omitempty"`
	AdrLine []string `xml:"AdrLine,omitempty"`
}

// CashAccount identifies an account by IBAN or by a proprietary identifier.
type CashAccount struct {
	Id AccountIdentification `xml:"Id"`
}

// AccountIdentification is the IBAN / Othr choice.
type AccountIdentification struct {
	IBAN string                 `xml:"IBAN,omitempty"`
	Othr *GenericIdentification `xml:"Othr,omitempty"`
}

// GenericIdentification is a proprietary identifier.
type GenericIdentification struct {
	Id string `xml:"Id"`
}

// InstructionForNextAgent is one line of sender-to-receiver information.
type InstructionForNextAgent struct {
	InstrInf string `xml:"InstrInf"`
}

// RemittanceInformation carries unstructured remittance text.
type RemittanceInformation struct {
	Ustrd []string `xml:"Ustrd"`
}

// FIToFICustomerCreditTransfer is the pacs.008 message component.
type FIToFICustomerCreditTransfer struct {
	GrpHdr      GroupHeader                 `xml:"GrpHdr"`
	CdtTrfTxInf []CustomerCreditTransaction `xml:"CdtTrfTxInf"`
}

// CustomerCreditTransaction is one pacs.008 CdtTrfTxInf.
type CustomerCreditTransaction struct {
	PmtId          PaymentIdentification     `xml:"PmtId"`
	PmtTpInf       *PaymentTypeInformation   `xml:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt ActiveAmount              `xml:"IntrBkSttlmAmt"`
	IntrBkSttlmDt  string                    `xml:"IntrBkSttlmDt,omitempty"`
	InstdAmt       *ActiveAmount             `xml:"InstdAmt,omitempty"`
	XchgRate       string                    `xml:"XchgRate,omitempty"`
	ChrgBr         string                    `xml:"ChrgBr,omitempty"`
	InstgAgt       *Agent                    `xml:"InstgAgt,omitempty"`
	InstdAgt       *Agent                    `xml:"InstdAgt,omitempty"`
	IntrmyAgt1     *Agent                    `xml:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct *CashAccount              `xml:"IntrmyAgt1Acct,omitempty"`
	IntrmyAgt2     *Agent                    `xml:"IntrmyAgt2,omitempty"`
	IntrmyAgt2Acct *CashAccount              `xml:"IntrmyAgt2Acct,omitempty"`
	Dbtr           *PartyIdentification      `xml:"Dbtr,omitempty"`
	DbtrAcct       *CashAccount              `xml:"DbtrAcct,omitempty"`
	DbtrAgt        *Agent                    `xml:"DbtrAgt,omitempty"`
	DbtrAgtAcct    *CashAccount              `xml:"DbtrAgtAcct,omitempty"`
	CdtrAgt        *Agent                    `xml:"CdtrAgt,omitempty"`
	CdtrAgtAcct    *CashAccount              `xml:"CdtrAgtAcct,omitempty"`
	Cdtr           *PartyIdentification      `xml:"Cdtr,omitempty"`
	CdtrAcct       *CashAccount              `xml:"CdtrAcct,omitempty"`
	InstrForNxtAgt []InstructionForNextAgent `xml:"InstrForNxtAgt,omitempty"`
	RmtInf         *RemittanceInformation    `xml:"RmtInf,omitempty"`
}

// FICreditTransfer is the pacs.009 message component.
type FICreditTransfer struct {
	GrpHdr      GroupHeader                    `xml:"GrpHdr"`
	CdtTrfTxInf []InstitutionCreditTransaction `xml:"CdtTrfTxInf"`
}

// InstitutionCreditTransaction is one pacs.009 CdtTrfTxInf. Debtor and
// creditor are financial institutions; the cover variant adds the
// underlying customer transfer.
type InstitutionCreditTransaction struct {
	PmtId              PaymentIdentification             `xml:"PmtId"`
	PmtTpInf           *PaymentTypeInformation           `xml:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt     ActiveAmount                      `xml:"IntrBkSttlmAmt"`
	IntrBkSttlmDt      string                            `xml:"IntrBkSttlmDt,omitempty"`
	InstgAgt           *Agent                            `xml:"InstgAgt,omitempty"`
	InstdAgt           *Agent                            `xml:"InstdAgt,omitempty"`
	IntrmyAgt1         *Agent                            `xml:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct     *CashAccount                      `xml:"IntrmyAgt1Acct,omitempty"`
	IntrmyAgt2         *Agent                            `xml:"IntrmyAgt2,omitempty"`
	IntrmyAgt2Acct     *CashAccount                      `xml:"IntrmyAgt2Acct,omitempty"`
	Dbtr               *Agent                            `xml:"Dbtr,omitempty"`
	DbtrAcct           *CashAccount                      `xml:"DbtrAcct,omitempty"`
	DbtrAgt            *Agent                            `xml:"DbtrAgt,omitempty"`
	DbtrAgtAcct        *CashAccount                      `xml:"DbtrAgtAcct,omitempty"`
	CdtrAgt            *Agent                            `xml:"CdtrAgt,omitempty"`
	CdtrAgtAcct        *CashAccount                      `xml:"CdtrAgtAcct,omitempty"`
	Cdtr               *Agent                            `xml:"Cdtr,omitempty"`
	CdtrAcct           *CashAccount                      `xml:"CdtrAcct,omitempty"`
	InstrForNxtAgt     []InstructionForNextAgent         `xml:"InstrForNxtAgt,omitempty"`
	RmtInf             *RemittanceInformation            `xml:"RmtInf,omitempty"`
	UndrlygCstmrCdtTrf *UnderlyingCustomerCreditTransfer `xml:"UndrlygCstmrCdtTrf,omitempty"`
}

// UnderlyingCustomerCreditTransfer is sequence B of a cover payment.
type UnderlyingCustomerCreditTransfer struct {
	Dbtr     *PartyIdentification   `xml:"Dbtr,omitempty"`
	DbtrAcct *CashAccount           `xml:"DbtrAcct,omitempty"`
	Cdtr     *PartyIdentification   `xml:"Cdtr,omitempty"`
	CdtrAcct *CashAccount           `xml:"CdtrAcct,omitempty"`
	RmtInf   *RemittanceInformation `xml:"RmtInf,omitempty"`
	InstdAmt *ActiveAmount          `xml:"InstdAmt,omitempty"`
}

// BankToCustomerStatement is the camt.053 message component.
type BankToCustomerStatement struct {
	GrpHdr GroupHeader `xml:"GrpHdr"`
	Stmt   Statement   `xml:"Stmt"`
}

// Statement is one camt.053 account statement.
type Statement struct {
	Id           string           `xml:"Id"`
	ElctrncSeqNb string           `xml:"ElctrncSeqNb,omitempty"`
	CreDtTm      string           `xml:"CreDtTm"`
	Acct         StatementAccount `xml:"Acct"`
	Bal          []Balance        `xml:"Bal"`
	Ntry         []Entry          `xml:"Ntry,omitempty"`
}

// StatementAccount identifies the reported account.
type StatementAccount struct {
	Id AccountIdentification `xml:"Id"`
}

// Balance is an opening (OPBD) or closing (CLBD) booked balance.
type Balance struct {
	Tp        BalanceType  `xml:"Tp"`
	Amt       ActiveAmount `xml:"Amt"`
	CdtDbtInd string       `xml:"CdtDbtInd"`
	Dt        DateChoice   `xml:"Dt"`
}

// BalanceType wraps the balance type code.
type BalanceType struct {
	CdOrPrtry CodeElement `xml:"CdOrPrtry"`
}

// DateChoice is the Dt branch of DateAndDateTime2Choice.
type DateChoice struct {
	Dt string `xml:"Dt"`
}

// Entry is a statement entry.
type Entry struct {
	NtryRef   string        `xml:"NtryRef,omitempty"`
	Amt       ActiveAmount  `xml:"Amt"`
	CdtDbtInd string        `xml:"CdtDbtInd"`
	Sts       CodeElement   `xml:"Sts"`
	BookgDt   *DateChoice   `xml:"BookgDt,omitempty"`
	ValDt     *DateChoice   `xml:"ValDt,omitempty"`
	BkTxCd    *BankTxCode   `xml:"BkTxCd,omitempty"`
	NtryDtls  *EntryDetails `xml:"NtryDtls,omitempty"`
}

// BankTxCode carries the proprietary transaction type taken from field 61.
type BankTxCode struct {
	Prtry CodeElement `xml:"Prtry"`
}

// EntryDetails holds the transaction details of an entry.
type EntryDetails struct {
	TxDtls []TransactionDetails `xml:"TxDtls"`
}

// TransactionDetails holds the remittance text of an entry.
type TransactionDetails struct {
	RmtInf *RemittanceInformation `xml:"RmtInf,omitempty"`
}
