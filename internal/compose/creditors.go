package compose

import (
	"fmt"

	"github.com/concursalia/filingdocs/internal/doctree"
	"github.com/concursalia/filingdocs/internal/domain/model"
	"github.com/concursalia/filingdocs/internal/domain/service"
	"github.com/concursalia/filingdocs/pkg/format"
)

// creditorSummary renders the class-grouped summary table: one merged band
// per legal class, creditor rows, class subtotal with its share of the grand
// total, the grand total, and the in-default capital row.
func (b *Builder) creditorSummary(doc *doctree.Document, agg service.AggregationResult) {
	doc.Heading(2, "RELACIÓN DE ACREEDORES POR CLASE")

	if agg.CreditorCount == 0 {
		doc.Paragraph(doctree.AlignJustify, doctree.T("No se relacionan acreedores."))
		doc.Spacer(6)
		return
	}

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 32, Align: doctree.AlignLeft},
			{WidthPct: 20, Align: doctree.AlignLeft},
			{WidthPct: 16, Align: doctree.AlignRight},
			{WidthPct: 16, Align: doctree.AlignRight},
			{WidthPct: 16, Align: doctree.AlignRight},
		},
	}
	table.Rows = append(table.Rows, doctree.HeaderRow(
		"Acreedor", "Naturaleza", "Capital", "Interés corriente", "Interés de mora"))

	for _, class := range agg.Classes {
		table.Rows = append(table.Rows, doctree.Row{
			Cells: []doctree.Cell{{
				Runs:  []doctree.Run{doctree.B(class.Class.Label())},
				Span:  5,
				Align: doctree.AlignLeft,
				Fill:  true,
			}},
		})

		for _, c := range class.Creditors {
			table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
				{Runs: []doctree.Run{doctree.T(format.OrDefault(c.Name))}, Span: 1},
				{Runs: []doctree.Run{doctree.T(format.OrDefault(c.CreditNature))}, Span: 1},
				{Runs: []doctree.Run{doctree.T(format.Currency(c.Capital))}, Span: 1, Align: doctree.AlignRight},
				{Runs: []doctree.Run{doctree.T(format.Currency(c.CurrentInterest))}, Span: 1, Align: doctree.AlignRight},
				{Runs: []doctree.Run{doctree.T(format.Currency(c.DefaultInterest))}, Span: 1, Align: doctree.AlignRight},
			}})
		}

		table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.B(fmt.Sprintf("Subtotal %s (%s)",
				class.Class.Label(), format.Percent(class.CapitalSharePercent)))}, Span: 2},
			{Runs: []doctree.Run{doctree.B(format.Currency(class.TotalCapital))}, Span: 1, Align: doctree.AlignRight},
			{Runs: []doctree.Run{doctree.B(format.Currency(class.TotalCurrentInterest))}, Span: 1, Align: doctree.AlignRight},
			{Runs: []doctree.Run{doctree.B(format.Currency(class.TotalDefaultInterest))}, Span: 1, Align: doctree.AlignRight},
		}})
	}

	table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
		{Runs: []doctree.Run{doctree.B("TOTAL GENERAL")}, Span: 2, Fill: true},
		{Runs: []doctree.Run{doctree.B(format.Currency(agg.GrandCapital))}, Span: 1, Align: doctree.AlignRight, Fill: true},
		{Runs: []doctree.Run{doctree.B(format.Currency(agg.GrandCurrentInterest))}, Span: 1, Align: doctree.AlignRight, Fill: true},
		{Runs: []doctree.Run{doctree.B(format.Currency(agg.GrandDefaultInterest))}, Span: 1, Align: doctree.AlignRight, Fill: true},
	}})

	table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
		{Runs: []doctree.Run{doctree.B(fmt.Sprintf("Capital en mora mayor a 90 días (%s)",
			format.Percent(agg.InDefaultSharePercent)))}, Span: 2},
		{Runs: []doctree.Run{doctree.B(format.Currency(agg.InDefaultCapital))}, Span: 1, Align: doctree.AlignRight},
		{Runs: []doctree.Run{doctree.T("")}, Span: 2},
	}})

	doc.AppendTable(table)
	doc.Spacer(6)
}

// creditorDetails renders one label/value table per creditor.
func (b *Builder) creditorDetails(doc *doctree.Document, creditors []model.Creditor) {
	doc.Heading(2, "DETALLE DE ACREEDORES")

	if len(creditors) == 0 {
		doc.Paragraph(doctree.AlignJustify, doctree.T("No se relacionan acreedores."))
		doc.Spacer(6)
		return
	}

	for i, c := range creditors {
		doc.Paragraph(doctree.AlignLeft,
			doctree.B(fmt.Sprintf("Acreedor %d: %s", i+1, format.OrDefault(c.Name))))

		table := &doctree.Table{
			Columns: []doctree.Column{
				{WidthPct: 35, Align: doctree.AlignLeft},
				{WidthPct: 65, Align: doctree.AlignLeft},
			},
		}
		rows := [][2]string{
			{"Tipo y número de documento", fmt.Sprintf("%s %s",
				format.OrDefaultWith(c.DocumentType, "NIT"), format.OrDefault(c.DocumentNumber))},
			{"Dirección", format.OrDefault(c.Address)},
			{"Teléfono", format.OrDefault(c.Phone)},
			{"Correo electrónico", format.OrDefault(c.Email)},
			{"Naturaleza del crédito", format.OrDefault(c.CreditNature)},
			{"Capital", format.Currency(c.Capital)},
			{"Interés corriente", format.Currency(c.CurrentInterest)},
			{"Interés de mora", format.Currency(c.DefaultInterest)},
			{"Fecha de origen", format.LongDatePtr(c.OriginatedOn)},
			{"Fecha de vencimiento", format.LongDatePtr(c.MaturesOn)},
			{"En mora mayor a 90 días", yesNo(c.InDefault)},
			{"Pago por libranza", yesNo(c.PaidByPayrollDeduction)},
		}
		for _, r := range rows {
			table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
				{Runs: []doctree.Run{doctree.B(r[0])}, Span: 1},
				{Runs: []doctree.Run{doctree.T(r[1])}, Span: 1},
			}})
		}
		doc.AppendTable(table)
		doc.Spacer(4)
	}
	doc.Spacer(2)
}
