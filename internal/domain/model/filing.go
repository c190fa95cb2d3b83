package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filing kinds, used in suggested filenames.
const (
	KindInsolvency   = "insolvencia"
	KindConciliation = "conciliacion"
)

// FilingRecord is the complete, immutable input of a generation call: the
// debtor's insolvency petition or conciliation request as finalised by the
// ingestion boundary. The core reads it and never mutates it.
type FilingRecord struct {
	ID        uuid.UUID
	Kind      string // KindInsolvency or KindConciliation
	CreatedAt time.Time

	Debtor     Debtor
	Venue      Venue
	Creditors  []Creditor
	Movables   []MovableAsset
	Immovables []ImmovableAsset
	Disclosure FinancialDisclosure
	Proposal   *PaymentProposal

	Attachments []Attachment

	// SignatureImage holds already-decoded PNG bytes for the signature block
	// of the DOCX output. Optional.
	SignatureImage []byte
}

// Debtor identifies the requesting party.
type Debtor struct {
	FirstNames       string
	Surnames         string
	DocumentType     string
	DocumentNumber   string
	DocumentIssuedIn string
	Domicile         string
	Address          string
	Phone            string
	Email            string

	MaritalStatus             string
	HasPatrimonialPartnership bool
	PartnerName               string
	PartnerDocument           string
}

// FullName joins the debtor's name parts.
func (d Debtor) FullName() string {
	if d.FirstNames == "" {
		return d.Surnames
	}
	if d.Surnames == "" {
		return d.FirstNames
	}
	return d.FirstNames + " " + d.Surnames
}

// Venue is the judicial or administrative body receiving the filing.
type Venue struct {
	Entity     string
	Seat       string
	City       string
	Department string
}

// Creditor is one claim against the debtor. Capital is the basis for every
// percentage and distribution computation; the ingestion boundary guarantees
// that undefined or malformed amounts arrive here as zero.
type Creditor struct {
	Name           string
	DocumentType   string
	DocumentNumber string
	Address        string
	Phone          string
	Email          string

	Capital         decimal.Decimal
	CurrentInterest decimal.Decimal
	DefaultInterest decimal.Decimal

	CreditNature           string
	InDefault              bool // more than 90 days past due
	PaidByPayrollDeduction bool

	OriginatedOn *time.Time
	MaturesOn    *time.Time
}

// MovableAsset is one item of the debtor's movable estate.
type MovableAsset struct {
	Description    string
	Location       string
	AppraisedValue decimal.Decimal
}

// ImmovableAsset is one item of the debtor's immovable estate.
type ImmovableAsset struct {
	Description    string
	Registration   string // folio de matrícula inmobiliaria
	Address        string
	Lien           string
	AppraisedValue decimal.Decimal
}

// JudicialProcess is an ongoing process involving the debtor.
type JudicialProcess struct {
	Court       string
	ProcessType string
	Docket      string // radicado
	Counterpart string
	Status      string
}

// SupportObligation is a recurring family-support duty of the debtor.
type SupportObligation struct {
	Beneficiary   string
	Relationship  string
	MonthlyAmount decimal.Decimal
}

// FinancialDisclosure gathers the debtor's income, subsistence expenses,
// processes, and support obligations.
type FinancialDisclosure struct {
	MonthlyIncome decimal.Decimal
	OtherIncome   decimal.Decimal
	IncomeSource  string

	// SubsistenceExpenses is keyed by category code; only recognised,
	// non-zero categories are rendered. See compose.ExpenseCategories.
	SubsistenceExpenses map[string]decimal.Decimal

	JudicialProcesses  []JudicialProcess
	SupportObligations []SupportObligation
}

// TotalMonthlyIncome sums regular and other income.
func (d FinancialDisclosure) TotalMonthlyIncome() decimal.Decimal {
	return d.MonthlyIncome.Add(d.OtherIncome)
}

// PaymentProposal is the debtor's proposed payment plan.
type PaymentProposal struct {
	// ClassDistribution indicates whether the monthly-projection plan applies
	// per legal class.
	ClassDistribution bool

	TermMonths                 int
	EffectiveAnnualRatePercent decimal.Decimal
	PaymentStartDate           *time.Time
	PaymentDayOfMonth          int    // 1–31
	PaymentForm                string // free text; "cuota fija" when empty
}

// Attachment is an opaque reference to an annexed file. The core lists
// attachments by name and description but never opens their bytes.
type Attachment struct {
	DisplayName string
	StoredPath  string
	Description string
	SizeBytes   int64
}
