// Package dto defines the JSON payloads of the ingestion boundary. Every
// money and date field is tolerant: malformed values degrade to zero or to
// the absent date instead of rejecting the filing.
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/concursalia/filingdocs/internal/domain/model"
)

// FilingPayload is the wire form of a complete filing.
type FilingPayload struct {
	Kind string `json:"kind"`

	Debtor     DebtorPayload           `json:"debtor"`
	Venue      VenuePayload            `json:"venue"`
	Creditors  []CreditorPayload       `json:"creditors"`
	Movables   []MovableAssetPayload   `json:"movable_assets"`
	Immovables []ImmovableAssetPayload `json:"immovable_assets"`
	Disclosure DisclosurePayload       `json:"financial_disclosure"`
	Proposal   *ProposalPayload        `json:"payment_proposal"`

	Attachments []AttachmentPayload `json:"attachments"`

	// SignatureImage is base64-encoded PNG bytes.
	SignatureImage []byte `json:"signature_image,omitempty"`
}

type DebtorPayload struct {
	FirstNames       string `json:"first_names"`
	Surnames         string `json:"surnames"`
	DocumentType     string `json:"document_type"`
	DocumentNumber   string `json:"document_number"`
	DocumentIssuedIn string `json:"document_issued_in"`
	Domicile         string `json:"domicile"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`

	MaritalStatus             string `json:"marital_status"`
	HasPatrimonialPartnership bool   `json:"has_patrimonial_partnership"`
	PartnerName               string `json:"partner_name"`
	PartnerDocument           string `json:"partner_document"`
}

type VenuePayload struct {
	Entity     string `json:"entity"`
	Seat       string `json:"seat"`
	City       string `json:"city"`
	Department string `json:"department"`
}

type CreditorPayload struct {
	Name           string `json:"name"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`

	Capital         Amount `json:"capital"`
	CurrentInterest Amount `json:"current_interest"`
	DefaultInterest Amount `json:"default_interest"`

	CreditNature           string `json:"credit_nature"`
	InDefault              bool   `json:"in_default"`
	PaidByPayrollDeduction bool   `json:"paid_by_payroll_deduction"`

	OriginatedOn Date `json:"originated_on"`
	MaturesOn    Date `json:"matures_on"`
}

type MovableAssetPayload struct {
	Description    string `json:"description"`
	Location       string `json:"location"`
	AppraisedValue Amount `json:"appraised_value"`
}

type ImmovableAssetPayload struct {
	Description    string `json:"description"`
	Registration   string `json:"registration"`
	Address        string `json:"address"`
	Lien           string `json:"lien"`
	AppraisedValue Amount `json:"appraised_value"`
}

type JudicialProcessPayload struct {
	Court       string `json:"court"`
	ProcessType string `json:"process_type"`
	Docket      string `json:"docket"`
	Counterpart string `json:"counterpart"`
	Status      string `json:"status"`
}

type SupportObligationPayload struct {
	Beneficiary   string `json:"beneficiary"`
	Relationship  string `json:"relationship"`
	MonthlyAmount Amount `json:"monthly_amount"`
}

type DisclosurePayload struct {
	MonthlyIncome Amount `json:"monthly_income"`
	OtherIncome   Amount `json:"other_income"`
	IncomeSource  string `json:"income_source"`

	SubsistenceExpenses map[string]Amount `json:"subsistence_expenses"`

	JudicialProcesses  []JudicialProcessPayload   `json:"judicial_processes"`
	SupportObligations []SupportObligationPayload `json:"support_obligations"`
}

type ProposalPayload struct {
	ClassDistribution          bool   `json:"class_distribution"`
	TermMonths                 int    `json:"term_months"`
	EffectiveAnnualRatePercent Amount `json:"effective_annual_rate_percent"`
	PaymentStartDate           Date   `json:"payment_start_date"`
	PaymentDayOfMonth          int    `json:"payment_day_of_month"`
	PaymentForm                string `json:"payment_form"`
}

type AttachmentPayload struct {
	DisplayName string `json:"display_name"`
	StoredPath  string `json:"stored_path"`
	Description string `json:"description"`
	SizeBytes   int64  `json:"size_bytes"`
}

// Validate checks the few fields the document core cannot degrade around.
func (p FilingPayload) Validate() error {
	switch strings.ToLower(strings.TrimSpace(p.Kind)) {
	case model.KindInsolvency, model.KindConciliation:
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("unknown filing kind %q", p.Kind)
	}
	if strings.TrimSpace(p.Debtor.FirstNames) == "" && strings.TrimSpace(p.Debtor.Surnames) == "" {
		return fmt.Errorf("debtor name is required")
	}
	return nil
}

// ToModel converts the payload into the immutable domain record, assigning
// it a fresh identity and the given received stamp.
func (p FilingPayload) ToModel(id uuid.UUID, receivedAt time.Time) model.FilingRecord {
	rec := model.FilingRecord{
		ID:        id,
		Kind:      strings.ToLower(strings.TrimSpace(p.Kind)),
		CreatedAt: receivedAt,
		Debtor: model.Debtor{
			FirstNames:       p.Debtor.FirstNames,
			Surnames:         p.Debtor.Surnames,
			DocumentType:     p.Debtor.DocumentType,
			DocumentNumber:   p.Debtor.DocumentNumber,
			DocumentIssuedIn: p.Debtor.DocumentIssuedIn,
			Domicile:         p.Debtor.Domicile,
			Address:          p.Debtor.Address,
			Phone:            p.Debtor.Phone,
			Email:            p.Debtor.Email,

			MaritalStatus:             p.Debtor.MaritalStatus,
			HasPatrimonialPartnership: p.Debtor.HasPatrimonialPartnership,
			PartnerName:               p.Debtor.PartnerName,
			PartnerDocument:           p.Debtor.PartnerDocument,
		},
		Venue: model.Venue{
			Entity:     p.Venue.Entity,
			Seat:       p.Venue.Seat,
			City:       p.Venue.City,
			Department: p.Venue.Department,
		},
		SignatureImage: p.SignatureImage,
	}

	for _, c := range p.Creditors {
		rec.Creditors = append(rec.Creditors, model.Creditor{
			Name:           c.Name,
			DocumentType:   c.DocumentType,
			DocumentNumber: c.DocumentNumber,
			Address:        c.Address,
			Phone:          c.Phone,
			Email:          c.Email,

			Capital:         c.Capital.Decimal,
			CurrentInterest: c.CurrentInterest.Decimal,
			DefaultInterest: c.DefaultInterest.Decimal,

			CreditNature:           c.CreditNature,
			InDefault:              c.InDefault,
			PaidByPayrollDeduction: c.PaidByPayrollDeduction,

			OriginatedOn: c.OriginatedOn.Time,
			MaturesOn:    c.MaturesOn.Time,
		})
	}
	for _, m := range p.Movables {
		rec.Movables = append(rec.Movables, model.MovableAsset{
			Description:    m.Description,
			Location:       m.Location,
			AppraisedValue: m.AppraisedValue.Decimal,
		})
	}
	for _, im := range p.Immovables {
		rec.Immovables = append(rec.Immovables, model.ImmovableAsset{
			Description:    im.Description,
			Registration:   im.Registration,
			Address:        im.Address,
			Lien:           im.Lien,
			AppraisedValue: im.AppraisedValue.Decimal,
		})
	}

	rec.Disclosure = model.FinancialDisclosure{
		MonthlyIncome: p.Disclosure.MonthlyIncome.Decimal,
		OtherIncome:   p.Disclosure.OtherIncome.Decimal,
		IncomeSource:  p.Disclosure.IncomeSource,
	}
	if len(p.Disclosure.SubsistenceExpenses) > 0 {
		rec.Disclosure.SubsistenceExpenses = make(map[string]decimal.Decimal, len(p.Disclosure.SubsistenceExpenses))
		for category, amount := range p.Disclosure.SubsistenceExpenses {
			rec.Disclosure.SubsistenceExpenses[category] = amount.Decimal
		}
	}
	for _, jp := range p.Disclosure.JudicialProcesses {
		rec.Disclosure.JudicialProcesses = append(rec.Disclosure.JudicialProcesses, model.JudicialProcess{
			Court:       jp.Court,
			ProcessType: jp.ProcessType,
			Docket:      jp.Docket,
			Counterpart: jp.Counterpart,
			Status:      jp.Status,
		})
	}
	for _, so := range p.Disclosure.SupportObligations {
		rec.Disclosure.SupportObligations = append(rec.Disclosure.SupportObligations, model.SupportObligation{
			Beneficiary:   so.Beneficiary,
			Relationship:  so.Relationship,
			MonthlyAmount: so.MonthlyAmount.Decimal,
		})
	}

	if p.Proposal != nil {
		rec.Proposal = &model.PaymentProposal{
			ClassDistribution:          p.Proposal.ClassDistribution,
			TermMonths:                 p.Proposal.TermMonths,
			EffectiveAnnualRatePercent: p.Proposal.EffectiveAnnualRatePercent.Decimal,
			PaymentStartDate:           p.Proposal.PaymentStartDate.Time,
			PaymentDayOfMonth:          p.Proposal.PaymentDayOfMonth,
			PaymentForm:                p.Proposal.PaymentForm,
		}
	}

	for _, a := range p.Attachments {
		rec.Attachments = append(rec.Attachments, model.Attachment{
			DisplayName: a.DisplayName,
			StoredPath:  a.StoredPath,
			Description: a.Description,
			SizeBytes:   a.SizeBytes,
		})
	}
	return rec
}
