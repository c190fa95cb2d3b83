package compose

import (
	"github.com/shopspring/decimal"

	"github.com/concursalia/filingdocs/internal/doctree"
	"github.com/concursalia/filingdocs/internal/domain/model"
	"github.com/concursalia/filingdocs/pkg/format"
)

// Fixed sentences for empty list sections.
const (
	noMovableAssets   = "El deudor declara que no posee bienes muebles."
	noImmovableAssets = "El deudor declara que no posee bienes inmuebles."
	noProcesses       = "No existen procesos judiciales en curso en contra del deudor."
	noObligations     = "El deudor no tiene obligaciones alimentarias a su cargo."
	noExpenses        = "No reporta gastos de subsistencia."
)

// ExpenseCategory maps a disclosure category code to its display label.
type ExpenseCategory struct {
	Code  string
	Label string
}

// ExpenseCategories is the fixed label dictionary for subsistence expenses,
// in rendering order. Unrecognised codes are not rendered.
var ExpenseCategories = []ExpenseCategory{
	{"alimentacion", "Alimentación"},
	{"vivienda", "Vivienda y arriendo"},
	{"servicios", "Servicios públicos"},
	{"transporte", "Transporte"},
	{"salud", "Salud"},
	{"educacion", "Educación"},
	{"vestuario", "Vestuario"},
	{"recreacion", "Recreación"},
	{"otros", "Otros gastos"},
}

func (b *Builder) movableAssets(doc *doctree.Document, assets []model.MovableAsset) {
	doc.Heading(2, "BIENES MUEBLES")

	if len(assets) == 0 {
		doc.Paragraph(doctree.AlignJustify, doctree.T(noMovableAssets))
		doc.Spacer(6)
		return
	}

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 45, Align: doctree.AlignLeft},
			{WidthPct: 30, Align: doctree.AlignLeft},
			{WidthPct: 25, Align: doctree.AlignRight},
		},
	}
	table.Rows = append(table.Rows, doctree.HeaderRow("Descripción", "Ubicación", "Avalúo"))

	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.AppraisedValue)
		table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.T(format.OrDefault(a.Description))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.OrDefault(a.Location))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.Currency(a.AppraisedValue))}, Span: 1, Align: doctree.AlignRight},
		}})
	}
	table.Rows = append(table.Rows, totalRow(3, total))

	doc.AppendTable(table)
	doc.Spacer(6)
}

func (b *Builder) immovableAssets(doc *doctree.Document, assets []model.ImmovableAsset) {
	doc.Heading(2, "BIENES INMUEBLES")

	if len(assets) == 0 {
		doc.Paragraph(doctree.AlignJustify, doctree.T(noImmovableAssets))
		doc.Spacer(6)
		return
	}

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 30, Align: doctree.AlignLeft},
			{WidthPct: 18, Align: doctree.AlignLeft},
			{WidthPct: 22, Align: doctree.AlignLeft},
			{WidthPct: 12, Align: doctree.AlignLeft},
			{WidthPct: 18, Align: doctree.AlignRight},
		},
	}
	table.Rows = append(table.Rows, doctree.HeaderRow(
		"Descripción", "Matrícula", "Dirección", "Gravamen", "Avalúo"))

	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.AppraisedValue)
		table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.T(format.OrDefault(a.Description))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.OrDefault(a.Registration))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.OrDefault(a.Address))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.OrDefaultWith(a.Lien, "Ninguno"))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.Currency(a.AppraisedValue))}, Span: 1, Align: doctree.AlignRight},
		}})
	}
	table.Rows = append(table.Rows, totalRow(5, total))

	doc.AppendTable(table)
	doc.Spacer(6)
}

func (b *Builder) judicialProcesses(doc *doctree.Document, processes []model.JudicialProcess) {
	doc.Heading(2, "PROCESOS JUDICIALES EN CURSO")

	if len(processes) == 0 {
		doc.Paragraph(doctree.AlignJustify, doctree.T(noProcesses))
		doc.Spacer(6)
		return
	}

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 26, Align: doctree.AlignLeft},
			{WidthPct: 20, Align: doctree.AlignLeft},
			{WidthPct: 18, Align: doctree.AlignLeft},
			{WidthPct: 20, Align: doctree.AlignLeft},
			{WidthPct: 16, Align: doctree.AlignLeft},
		},
	}
	table.Rows = append(table.Rows, doctree.HeaderRow(
		"Despacho", "Tipo de proceso", "Radicado", "Contraparte", "Estado"))

	for _, p := range processes {
		table.Rows = append(table.Rows, doctree.TextRow(
			format.OrDefault(p.Court),
			format.OrDefault(p.ProcessType),
			format.OrDefault(p.Docket),
			format.OrDefault(p.Counterpart),
			format.OrDefault(p.Status),
		))
	}

	doc.AppendTable(table)
	doc.Spacer(6)
}

func (b *Builder) supportObligations(doc *doctree.Document, obligations []model.SupportObligation) {
	doc.Heading(2, "OBLIGACIONES ALIMENTARIAS")

	if len(obligations) == 0 {
		doc.Paragraph(doctree.AlignJustify, doctree.T(noObligations))
		doc.Spacer(6)
		return
	}

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 40, Align: doctree.AlignLeft},
			{WidthPct: 30, Align: doctree.AlignLeft},
			{WidthPct: 30, Align: doctree.AlignRight},
		},
	}
	table.Rows = append(table.Rows, doctree.HeaderRow("Beneficiario", "Parentesco", "Cuota mensual"))

	total := decimal.Zero
	for _, o := range obligations {
		total = total.Add(o.MonthlyAmount)
		table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.T(format.OrDefault(o.Beneficiary))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.OrDefault(o.Relationship))}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.Currency(o.MonthlyAmount))}, Span: 1, Align: doctree.AlignRight},
		}})
	}
	table.Rows = append(table.Rows, totalRow(3, total))

	doc.AppendTable(table)
	doc.Spacer(6)
}

func (b *Builder) subsistenceExpenses(doc *doctree.Document, expenses map[string]decimal.Decimal) {
	doc.Heading(2, "GASTOS DE SUBSISTENCIA")

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 60, Align: doctree.AlignLeft},
			{WidthPct: 40, Align: doctree.AlignRight},
		},
	}
	table.Rows = append(table.Rows, doctree.HeaderRow("Concepto", "Valor mensual"))

	total := decimal.Zero
	rendered := 0
	for _, cat := range ExpenseCategories {
		amount, ok := expenses[cat.Code]
		if !ok || !amount.IsPositive() {
			continue
		}
		rendered++
		total = total.Add(amount)
		table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.T(cat.Label)}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.Currency(amount))}, Span: 1, Align: doctree.AlignRight},
		}})
	}

	if rendered == 0 {
		doc.Paragraph(doctree.AlignJustify, doctree.T(noExpenses))
		doc.Spacer(6)
		return
	}

	table.Rows = append(table.Rows, totalRow(2, total))
	doc.AppendTable(table)
	doc.Spacer(6)
}

func (b *Builder) incomeSummary(doc *doctree.Document, disclosure model.FinancialDisclosure) {
	doc.Heading(2, "INGRESOS")

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 60, Align: doctree.AlignLeft},
			{WidthPct: 40, Align: doctree.AlignRight},
		},
	}
	table.Rows = append(table.Rows,
		doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.B("Ingreso mensual")}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.Currency(disclosure.MonthlyIncome))}, Span: 1, Align: doctree.AlignRight},
		}},
		doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.B("Otros ingresos")}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.Currency(disclosure.OtherIncome))}, Span: 1, Align: doctree.AlignRight},
		}},
		doctree.Row{Cells: []doctree.Cell{
			{Runs: []doctree.Run{doctree.B("Fuente de los ingresos")}, Span: 1},
			{Runs: []doctree.Run{doctree.T(format.OrDefault(disclosure.IncomeSource))}, Span: 1},
		}},
		totalRow(2, disclosure.TotalMonthlyIncome()),
	)

	doc.AppendTable(table)
	doc.Spacer(6)
}

func (b *Builder) maritalBlock(doc *doctree.Document, debtor model.Debtor) {
	doc.Heading(2, "SOCIEDAD CONYUGAL O PATRIMONIAL")

	if !debtor.HasPatrimonialPartnership {
		doc.Paragraph(doctree.AlignJustify, doctree.T(
			"El deudor, de estado civil "+format.OrDefault(debtor.MaritalStatus)+
				", manifiesta que no tiene sociedad conyugal o patrimonial vigente."))
		doc.Spacer(6)
		return
	}

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 40, Align: doctree.AlignLeft},
			{WidthPct: 60, Align: doctree.AlignLeft},
		},
	}
	rows := [][2]string{
		{"Estado civil", format.OrDefault(debtor.MaritalStatus)},
		{"Sociedad vigente", "Sí"},
		{"Cónyuge o compañero(a)", format.OrDefault(debtor.PartnerName)},
		{"Documento del cónyuge", format.OrDefault(debtor.PartnerDocument)},
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

// totalRow builds a bold total row whose label spans all but the last column.
func totalRow(columns int, total decimal.Decimal) doctree.Row {
	return doctree.Row{Cells: []doctree.Cell{
		{Runs: []doctree.Run{doctree.B("Total")}, Span: columns - 1, Fill: true},
		{Runs: []doctree.Run{doctree.B(format.Currency(total))}, Span: 1, Align: doctree.AlignRight, Fill: true},
	}}
}
