package xmlutils

import "gopkg.in/xmlpath.v2"

// AppHdrPaths holds the business application header expressions.
type AppHdrPaths struct {
	BizMsgIdr   *xmlpath.Path
	MsgDefIdr   *xmlpath.Path
	CreDt       *xmlpath.Path
	SenderBIC   *xmlpath.Path
	ReceiverBIC *xmlpath.Path
}

// PaymentPaths holds the pacs.008 / pacs.009 expressions. Transaction paths
// are relative to a CdtTrfTxInf node.
type PaymentPaths struct {
	MsgID       *xmlpath.Path
	CreDtTm     *xmlpath.Path
	NbOfTxs     *xmlpath.Path
	Transaction *xmlpath.Path

	InstrID        *xmlpath.Path
	EndToEndID     *xmlpath.Path
	TxID           *xmlpath.Path
	UETR           *xmlpath.Path
	Amount         *xmlpath.Path
	Currency       *xmlpath.Path
	SettlementDate *xmlpath.Path
	InstdAmount    *xmlpath.Path
	InstdCurrency  *xmlpath.Path
	ChargeBearer   *xmlpath.Path
	Remittance     *xmlpath.Path

	DebtorName     *xmlpath.Path
	DebtorIBAN     *xmlpath.Path
	DebtorOther    *xmlpath.Path
	DebtorCountry  *xmlpath.Path
	DebtorBIC      []*xmlpath.Path
	DebtorAgentBIC []*xmlpath.Path

	CreditorName     *xmlpath.Path
	CreditorIBAN     *xmlpath.Path
	CreditorOther    *xmlpath.Path
	CreditorCountry  *xmlpath.Path
	CreditorBIC      []*xmlpath.Path
	CreditorAgentBIC []*xmlpath.Path
}

// StatementPaths holds the camt.053 expressions. Balance paths are relative
// to a Bal node and entry paths to an Ntry node.
type StatementPaths struct {
	MsgID        *xmlpath.Path
	CreDtTm      *xmlpath.Path
	StmtID       *xmlpath.Path
	ElctrncSeqNb *xmlpath.Path
	AccountIBAN  *xmlpath.Path
	AccountOther *xmlpath.Path

	Balance          *xmlpath.Path
	BalanceType      *xmlpath.Path
	BalanceAmount    *xmlpath.Path
	BalanceCurrency  *xmlpath.Path
	BalanceIndicator *xmlpath.Path
	BalanceDate      *xmlpath.Path
	BalanceDateTime  *xmlpath.Path

	Entry          *xmlpath.Path
	EntryAmount    *xmlpath.Path
	EntryCurrency  *xmlpath.Path
	EntryIndicator *xmlpath.Path
	EntryValueDate *xmlpath.Path
	EntryBookDate  *xmlpath.Path
	EntryReference *xmlpath.Path
	EntryInfo      []*xmlpath.Path
}

// DefaultAppHdrXPaths returns the AppHdr expressions.
func DefaultAppHdrXPaths() AppHdrPaths {
	return AppHdrPaths{
		BizMsgIdr:   xmlpath.MustCompile("//AppHdr/BizMsgIdr"),
		MsgDefIdr:   xmlpath.MustCompile("//AppHdr/MsgDefIdr"),
		CreDt:       xmlpath.MustCompile("//AppHdr/CreDt"),
		SenderBIC:   xmlpath.MustCompile("//AppHdr/Fr/FIId/FinInstnId/BICFI"),
		ReceiverBIC: xmlpath.MustCompile("//AppHdr/To/FIId/FinInstnId/BICFI"),
	}
}

// MsgDefIdrXPath finds a MsgDefIdr anywhere, used to classify documents
// without a recognisable namespace.
var MsgDefIdrXPath = xmlpath.MustCompile("//MsgDefIdr")

// DefaultPaymentXPaths returns the pacs.008 / pacs.009 expressions.
func DefaultPaymentXPaths() PaymentPaths {
	return PaymentPaths{
		MsgID:       xmlpath.MustCompile("//GrpHdr/MsgId"),
		CreDtTm:     xmlpath.MustCompile("//GrpHdr/CreDtTm"),
		NbOfTxs:     xmlpath.MustCompile("//GrpHdr/NbOfTxs"),
		Transaction: xmlpath.MustCompile("//CdtTrfTxInf"),

		InstrID:        xmlpath.MustCompile("PmtId/InstrId"),
		EndToEndID:     xmlpath.MustCompile("PmtId/EndToEndId"),
		TxID:           xmlpath.MustCompile("PmtId/TxId"),
		UETR:           xmlpath.MustCompile("PmtId/UETR"),
		Amount:         xmlpath.MustCompile("IntrBkSttlmAmt"),
		Currency:       xmlpath.MustCompile("IntrBkSttlmAmt/@Ccy"),
		SettlementDate: xmlpath.MustCompile("IntrBkSttlmDt"),
		InstdAmount:    xmlpath.MustCompile("InstdAmt"),
		InstdCurrency:  xmlpath.MustCompile("InstdAmt/@Ccy"),
		ChargeBearer:   xmlpath.MustCompile("ChrgBr"),
		Remittance:     xmlpath.MustCompile("RmtInf/Ustrd"),

		DebtorName:    xmlpath.MustCompile("Dbtr/Nm"),
		DebtorIBAN:    xmlpath.MustCompile("DbtrAcct/Id/IBAN"),
		DebtorOther:   xmlpath.MustCompile("DbtrAcct/Id/Othr/Id"),
		DebtorCountry: xmlpath.MustCompile("Dbtr/PstlAdr/Ctry"),
		DebtorBIC: []*xmlpath.Path{
			xmlpath.MustCompile("Dbtr/FinInstnId/BICFI"),
			xmlpath.MustCompile("Dbtr/Id/OrgId/AnyBIC"),
		},
		DebtorAgentBIC: []*xmlpath.Path{
			xmlpath.MustCompile("DbtrAgt/FinInstnId/BICFI"),
			xmlpath.MustCompile("DbtrAgt/FinInstnId/BIC"),
		},

		CreditorName:    xmlpath.MustCompile("Cdtr/Nm"),
		CreditorIBAN:    xmlpath.MustCompile("CdtrAcct/Id/IBAN"),
		CreditorOther:   xmlpath.MustCompile("CdtrAcct/Id/Othr/Id"),
		CreditorCountry: xmlpath.MustCompile("Cdtr/PstlAdr/Ctry"),
		CreditorBIC: []*xmlpath.Path{
			xmlpath.MustCompile("Cdtr/FinInstnId/BICFI"),
			xmlpath.MustCompile("Cdtr/Id/OrgId/AnyBIC"),
		},
		CreditorAgentBIC: []*xmlpath.Path{
			xmlpath.MustCompile("CdtrAgt/FinInstnId/BICFI"),
			xmlpath.MustCompile("CdtrAgt/FinInstnId/BIC"),
		},
	}
}

// DefaultCamt053XPaths returns the camt.053 expressions.
func DefaultCamt053XPaths() StatementPaths {
	return StatementPaths{
		MsgID:        xmlpath.MustCompile("//BkToCstmrStmt/GrpHdr/MsgId"),
		CreDtTm:      xmlpath.MustCompile("//BkToCstmrStmt/GrpHdr/CreDtTm"),
		StmtID:       xmlpath.MustCompile("//Stmt/Id"),
		ElctrncSeqNb: xmlpath.MustCompile("//Stmt/ElctrncSeqNb"),
		AccountIBAN:  xmlpath.MustCompile("//Stmt/Acct/Id/IBAN"),
		AccountOther: xmlpath.MustCompile("//Stmt/Acct/Id/Othr/Id"),

		Balance:          xmlpath.MustCompile("//Stmt/Bal"),
		BalanceType:      xmlpath.MustCompile("Tp/CdOrPrtry/Cd"),
		BalanceAmount:    xmlpath.MustCompile("Amt"),
		BalanceCurrency:  xmlpath.MustCompile("Amt/@Ccy"),
		BalanceIndicator: xmlpath.MustCompile("CdtDbtInd"),
		BalanceDate:      xmlpath.MustCompile("Dt/Dt"),
		BalanceDateTime:  xmlpath.MustCompile("Dt/DtTm"),

		Entry:          xmlpath.MustCompile("//Stmt/Ntry"),
		EntryAmount:    xmlpath.MustCompile("Amt"),
		EntryCurrency:  xmlpath.MustCompile("Amt/@Ccy"),
		EntryIndicator: xmlpath.MustCompile("CdtDbtInd"),
		EntryValueDate: xmlpath.MustCompile("ValDt/Dt"),
		EntryBookDate:  xmlpath.MustCompile("BookgDt/Dt"),
		EntryReference: xmlpath.MustCompile("NtryRef"),
		EntryInfo: []*xmlpath.Path{
			xmlpath.MustCompile("NtryDtls/TxDtls/RmtInf/Ustrd"),
			xmlpath.MustCompile("AddtlNtryInf"),
		},
	}
}
