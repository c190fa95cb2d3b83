package compose

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/concursalia/filingdocs/internal/doctree"
	"github.com/concursalia/filingdocs/internal/domain/model"
	"github.com/concursalia/filingdocs/internal/domain/service"
	"github.com/concursalia/filingdocs/pkg/format"
)

const (
	noProposal      = "El deudor no presenta propuesta de pago con proyección mensual."
	noClassProposal = "Sin propuesta de pago proyectada para esta clase."
)

// paymentProposal renders the proposal detail followed by one block per
// legal class: the proportional distribution of the fixed installment and
// the full period-by-period projection. A malformed proposal degrades to the
// explicit "no proposal" paragraphs rather than aborting generation.
func (b *Builder) paymentProposal(doc *doctree.Document, rec model.FilingRecord, agg service.AggregationResult) {
	doc.Heading(2, "PROPUESTA DE PAGO")

	proposal := rec.Proposal
	if proposal == nil {
		doc.Paragraph(doctree.AlignJustify, doctree.T(noProposal))
		doc.Spacer(6)
		return
	}

	b.proposalDetail(doc, proposal)

	if !proposal.ClassDistribution {
		doc.Paragraph(doctree.AlignJustify, doctree.T(
			"La propuesta no contempla distribución por clases con proyección mensual de cuotas."))
		doc.Spacer(6)
		return
	}

	for _, class := range agg.Classes {
		doc.Paragraph(doctree.AlignLeft,
			doctree.B(fmt.Sprintf("Clase: %s — capital %s",
				class.Class.Label(), format.Currency(class.TotalCapital))))

		schedule := model.ProjectSchedule(class.TotalCapital, proposal)
		if schedule == nil {
			doc.Paragraph(doctree.AlignJustify, doctree.T(noClassProposal))
			doc.Spacer(4)
			continue
		}

		b.distributionTable(doc, class, schedule[0].Installment, proposal)
		b.projectionTable(doc, schedule)
	}
}

func (b *Builder) proposalDetail(doc *doctree.Document, proposal *model.PaymentProposal) {
	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 40, Align: doctree.AlignLeft},
			{WidthPct: 60, Align: doctree.AlignLeft},
		},
	}
	rows := [][2]string{
		{"Plazo", fmt.Sprintf("%d meses", proposal.TermMonths)},
		{"Tasa efectiva anual", format.Percent(proposal.EffectiveAnnualRatePercent)},
		{"Fecha de inicio de pagos", format.LongDatePtr(proposal.PaymentStartDate)},
		{"Día de pago", strconv.Itoa(proposal.PaymentDayOfMonth)},
		{"Forma de pago", format.OrDefaultWith(proposal.PaymentForm, "Cuota fija")},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.B(r[0])}, Span: 1},
			{Runs: []doctree.Run{doctree.T(r[1])}, Span: 1},
		}})
	}
	doc.AppendTable(table)
	doc.Spacer(6)
}

func (b *Builder) distributionTable(
	doc *doctree.Document,
	class service.ClassAggregate,
	installment decimal.Decimal,
	proposal *model.PaymentProposal,
) {
	lines := model.DistributeInstallment(class.TotalCapital, installment, class.Creditors)

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 40, Align: doctree.AlignLeft},
			{WidthPct: 22, Align: doctree.AlignRight},
			{WidthPct: 16, Align: doctree.AlignRight},
			{WidthPct: 22, Align: doctree.AlignRight},
		},
	}
	table.Rows = append(table.Rows, doctree.HeaderRow(
		"Acreedor", "Capital actualizado", "Participación", "Cuota distribuida"))

	for _, l := range lines {
		table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.T(format.OrDefault(l.CreditorName))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.Currency(l.UpdatedCapital))}, Span: 1, Align: doctree.AlignRight},
			{Runs: []doctree.Run{doctree.T(format.Percent(l.SharePercent))}, Span: 1, Align: doctree.AlignRight},
			{Runs: []doctree.Run{doctree.T(format.Currency(l.Installment))}, Span: 1, Align: doctree.AlignRight},
		}})
	}
	table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
		{Runs: []doctree.Run{doctree.B(fmt.Sprintf("Cuota fija mensual (%s)",
			format.OrDefaultWith(proposal.PaymentForm, "Cuota fija")))}, Span: 3, Fill: true},
		{Runs: []doctree.Run{doctree.B(format.Currency(installment))}, Span: 1, Align: doctree.AlignRight, Fill: true},
	}})

	doc.AppendTable(table)
	doc.Spacer(4)
}

func (b *Builder) projectionTable(doc *doctree.Document, schedule []model.PaymentPeriod) {
	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 8, Align: doctree.AlignCenter},
			{WidthPct: 17, Align: doctree.AlignLeft},
			{WidthPct: 17, Align: doctree.AlignRight},
			{WidthPct: 15, Align: doctree.AlignRight},
			{WidthPct: 13, Align: doctree.AlignRight},
			{WidthPct: 15, Align: doctree.AlignRight},
			{WidthPct: 15, Align: doctree.AlignRight},
		},
	}
	table.Rows = append(table.Rows, doctree.HeaderRow(
		"No.", "Fecha de pago", "Saldo inicial", "Capital", "Interés", "Cuota", "Saldo final"))

	for _, p := range schedule {
		table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.T(strconv.Itoa(p.Period))}, Span: 1, Align: doctree.AlignCenter},
			{Runs: []doctree.Run{doctree.T(format.LongDate(p.DueDate))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.Currency(p.OpeningBalance))}, Span: 1, Align: doctree.AlignRight},
			{Runs: []doctree.Run{doctree.T(format.Currency(p.Principal))}, Span: 1, Align: doctree.AlignRight},
			{Runs: []doctree.Run{doctree.T(format.Currency(p.Interest))}, Span: 1, Align: doctree.AlignRight},
			{Runs: []doctree.Run{doctree.T(format.Currency(p.Installment))}, Span: 1, Align: doctree.AlignRight},
			{Runs: []doctree.Run{doctree.T(format.Currency(p.ClosingBalance))}, Span: 1, Align: doctree.AlignRight},
		}})
	}

	doc.AppendTable(table)
	doc.Spacer(6)
}
