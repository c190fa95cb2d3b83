// Package doctree defines the backend-agnostic content description that both
// renderers consume. The builder produces a fresh Document per generation
// call; renderers walk it in order and never mutate it.
package doctree

import "time"

// Alignment of a paragraph or table cell.
type Alignment string

const (
	AlignLeft    Alignment = "L"
	AlignCenter  Alignment = "C"
	AlignRight   Alignment = "R"
	AlignJustify Alignment = "J"
)

// Block kinds.
const (
	KindHeading   = "heading"
	KindParagraph = "paragraph"
	KindTable     = "table"
	KindPageBreak = "pagebreak"
	KindSpacer    = "spacer"
	KindImage     = "image"
)

// Run is a span of text with uniform styling inside a paragraph or cell.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
}

// Block is a single element of the document flow. Kind determines which of
// the other fields are relevant.
type Block struct {
	Kind string

	// Heading / paragraph content.
	Runs  []Run
	Level int // heading level 1-3
	Align Alignment

	// Table content.
	Table *Table

	// Spacer height in millimetres.
	Height float64

	// Image holds already-decoded PNG bytes. Only the flow-document backend
	// embeds images; the page-layout backend skips them.
	Image []byte
}

// Table is an ordered grid with proportional column widths.
type Table struct {
	Columns []Column
	Rows    []Row
}

// Column defines the width share and default alignment of one table column.
type Column struct {
	WidthPct float64 // share of the usable page width, all columns sum to 100
	Align    Alignment
}

// Row is one table row.
type Row struct {
	Cells []Cell
	// Header rows repeat bold with a fill in both backends.
	Header bool
}

// Cell is one table cell. Span > 1 merges the cell across that many columns.
type Cell struct {
	Runs  []Run
	Span  int
	Align Alignment
	Fill  bool
}

// Document is the complete backend-agnostic description of one filing.
type Document struct {
	Title string

	// CreatedAt is the filing's own received stamp; it is the only date the
	// renderers may embed, keeping repeated renders byte-identical.
	CreatedAt time.Time

	// HeaderText repeats at the top of every page. FooterText supports the
	// {page} and {pages} placeholders.
	HeaderText string
	FooterText string

	Blocks []Block
}

// --- construction helpers used by the builder ---

// T creates a plain run.
func T(text string) Run { return Run{Text: text} }

// B creates a bold run.
func B(text string) Run { return Run{Text: text, Bold: true} }

// Heading appends a heading block.
func (d *Document) Heading(level int, text string) {
	d.Blocks = append(d.Blocks, Block{
		Kind:  KindHeading,
		Level: level,
		Align: AlignCenter,
		Runs:  []Run{{Text: text, Bold: true}},
	})
}

// Paragraph appends a paragraph block with the given alignment.
func (d *Document) Paragraph(align Alignment, runs ...Run) {
	d.Blocks = append(d.Blocks, Block{Kind: KindParagraph, Align: align, Runs: runs})
}

// AppendTable appends a table block.
func (d *Document) AppendTable(t *Table) {
	d.Blocks = append(d.Blocks, Block{Kind: KindTable, Table: t})
}

// PageBreak appends an explicit page break.
func (d *Document) PageBreak() {
	d.Blocks = append(d.Blocks, Block{Kind: KindPageBreak})
}

// Spacer appends vertical whitespace of the given height in millimetres.
func (d *Document) Spacer(height float64) {
	d.Blocks = append(d.Blocks, Block{Kind: KindSpacer, Height: height})
}

// InlineImage appends an image block with already-decoded PNG bytes.
func (d *Document) InlineImage(png []byte) {
	d.Blocks = append(d.Blocks, Block{Kind: KindImage, Image: png})
}

// HeaderRow builds a header row of single-span filled cells.
func HeaderRow(labels ...string) Row {
	cells := make([]Cell, 0, len(labels))
	for _, l := range labels {
		cells = append(cells, Cell{
			Runs:  []Run{{Text: l, Bold: true}},
			Span:  1,
			Align: AlignCenter,
			Fill:  true,
		})
	}
	return Row{Cells: cells, Header: true}
}

// TextRow builds a plain row of single-span cells.
func TextRow(values ...string) Row {
	cells := make([]Cell, 0, len(values))
	for _, v := range values {
		cells = append(cells, Cell{Runs: []Run{{Text: v}}, Span: 1})
	}
	return Row{Cells: cells}
}
