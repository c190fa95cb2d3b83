// Package compose walks a finalised filing record and builds the ordered,
// backend-agnostic document tree that both renderers consume. It is the
// single source of truth for every value that appears in the output: the
// renderers only transcribe what the builder computed here.
package compose

import (
	"fmt"

	"github.com/concursalia/filingdocs/internal/doctree"
	"github.com/concursalia/filingdocs/internal/domain/model"
	"github.com/concursalia/filingdocs/internal/domain/service"
	"github.com/concursalia/filingdocs/pkg/format"
)

// Builder maps FilingRecord × aggregates × schedules onto a document tree.
// It is stateless; one Builder may serve concurrent generation calls.
type Builder struct {
	aggregator *service.CreditorAggregator
}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{aggregator: service.NewCreditorAggregator()}
}

// Build produces a fresh document tree for the record. The mapping is total:
// absent optional data renders as the documented sentinel paragraphs, never
// as an error.
func (b *Builder) Build(rec model.FilingRecord) *doctree.Document {
	agg := b.aggregator.Aggregate(rec.Creditors)

	doc := &doctree.Document{
		Title:      titleFor(rec.Kind),
		CreatedAt:  rec.CreatedAt,
		HeaderText: fmt.Sprintf("%s — %s", titleFor(rec.Kind), format.OrDefault(rec.Debtor.FullName())),
		FooterText: "Página {page} de {pages}",
	}

	b.addressee(doc, rec)
	b.reference(doc, rec)
	b.narrative(doc, rec, agg)
	b.creditorSummary(doc, agg)

	doc.PageBreak()
	b.creditorDetails(doc, rec.Creditors)

	b.movableAssets(doc, rec.Movables)
	b.immovableAssets(doc, rec.Immovables)
	b.judicialProcesses(doc, rec.Disclosure.JudicialProcesses)
	b.supportObligations(doc, rec.Disclosure.SupportObligations)
	b.subsistenceExpenses(doc, rec.Disclosure.SubsistenceExpenses)
	b.incomeSummary(doc, rec.Disclosure)
	b.maritalBlock(doc, rec.Debtor)

	doc.PageBreak()
	b.paymentProposal(doc, rec, agg)

	b.legalBasis(doc)
	b.attachments(doc, rec.Attachments)
	b.notifications(doc, rec.Debtor)
	b.signature(doc, rec)

	return doc
}

func titleFor(kind string) string {
	if kind == model.KindConciliation {
		return "Solicitud de conciliación"
	}
	return "Solicitud de insolvencia de persona natural no comerciante"
}

func (b *Builder) addressee(doc *doctree.Document, rec model.FilingRecord) {
	doc.Paragraph(doctree.AlignLeft, doctree.T("Señores"))
	doc.Paragraph(doctree.AlignLeft, doctree.B(format.OrDefault(rec.Venue.Entity)))
	doc.Paragraph(doctree.AlignLeft, doctree.T(format.OrDefault(rec.Venue.Seat)))
	doc.Paragraph(doctree.AlignLeft, doctree.T(fmt.Sprintf("%s (%s)",
		format.OrDefault(rec.Venue.City), format.OrDefault(rec.Venue.Department))))
	doc.Paragraph(doctree.AlignLeft, doctree.T("E. S. D."))
	doc.Spacer(6)
}

func (b *Builder) reference(doc *doctree.Document, rec model.FilingRecord) {
	doc.Paragraph(doctree.AlignLeft,
		doctree.B("REFERENCIA: "),
		doctree.T(titleFor(rec.Kind)),
	)
	doc.Paragraph(doctree.AlignLeft,
		doctree.B("SOLICITANTE: "),
		doctree.T(fmt.Sprintf("%s, identificado(a) con %s No. %s de %s",
			format.OrDefault(rec.Debtor.FullName()),
			format.OrDefaultWith(rec.Debtor.DocumentType, "C.C."),
			format.OrDefault(rec.Debtor.DocumentNumber),
			format.OrDefault(rec.Debtor.DocumentIssuedIn))),
	)
	doc.Spacer(6)
}

func (b *Builder) narrative(doc *doctree.Document, rec model.FilingRecord, agg service.AggregationResult) {
	total := agg.CreditorCount
	inDefault := agg.InDefaultCount

	doc.Paragraph(doctree.AlignJustify, doctree.T(fmt.Sprintf(
		"%s, mayor de edad, domiciliado(a) en %s, identificado(a) como aparece al pie de mi firma, "+
			"actuando en nombre propio, manifiesto bajo la gravedad de juramento que me encuentro en "+
			"cesación de pagos en los términos de la ley, y en consecuencia solicito la apertura del "+
			"trámite de la referencia, con fundamento en los hechos que a continuación expongo.",
		format.OrDefault(rec.Debtor.FullName()),
		format.OrDefault(rec.Debtor.Domicile))))

	doc.Spacer(4)

	doc.Paragraph(doctree.AlignJustify, doctree.T(fmt.Sprintf(
		"A la fecha cuento con %s (%d) acreedores, de los cuales %s (%d) se encuentran en mora por "+
			"más de noventa (90) días, sobre obligaciones cuyo capital asciende a la suma de %s.",
		format.Cardinal(total), total,
		format.Cardinal(inDefault), inDefault,
		format.Currency(agg.GrandCapital))))

	doc.Spacer(6)
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
