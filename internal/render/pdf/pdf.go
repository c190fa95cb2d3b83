// Package pdf serialises a document tree into a paginated PDF using the
// gofpdf page-layout engine.
package pdf

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/concursalia/filingdocs/internal/doctree"
	"github.com/concursalia/filingdocs/internal/domain/valueobject"
	"github.com/concursalia/filingdocs/internal/render"
)

// Page geometry: legal size with wide top and bottom margins so the repeated
// header and the "page X of Y" footer never collide with body content.
const (
	marginLeft   = 25.0
	marginTop    = 40.0
	marginRight  = 20.0
	marginBottom = 35.0

	bodyLineHeight  = 5.5
	tableLineHeight = 5.0
)

// Renderer emits PDF bytes from a document tree.
type Renderer struct {
	fonts  render.FontConfig
	logger *slog.Logger
}

// New creates a PDF renderer with the process-wide font configuration.
func New(fonts render.FontConfig, logger *slog.Logger) *Renderer {
	return &Renderer{fonts: fonts, logger: logger}
}

// Render walks the tree in order and returns the PDF bytes. A missing font
// asset degrades to the built-in core fonts; any other failure is returned
// as a render.Error tagged with the PDF format.
func (r *Renderer) Render(doc *doctree.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Legal", "")
	// Without catalog sorting gofpdf writes font objects in map-iteration
	// order, which varies between renders of the same tree.
	pdf.SetCatalogSort(true)
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)

	// Repeated renders of the same record must be byte-identical: the only
	// embedded date is the filing's own received stamp.
	created := doc.CreatedAt
	if created.IsZero() {
		created = time.Unix(0, 0).UTC()
	}
	pdf.SetCreationDate(created)

	family, tr := r.selectFont(pdf)

	pdf.SetHeaderFunc(func() {
		pdf.SetY(15)
		pdf.SetFont(family, "I", 8)
		pdf.SetTextColor(96, 96, 96)
		pdf.CellFormat(0, 5, tr(doc.HeaderText), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetY(marginTop)
	})

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-25)
		pdf.SetFont(family, "I", 8)
		pdf.SetTextColor(96, 96, 96)
		footer := strings.ReplaceAll(doc.FooterText, "{page}", strconv.Itoa(pdf.PageNo()))
		footer = strings.ReplaceAll(footer, "{pages}", "{nb}")
		pdf.CellFormat(0, 5, tr(footer), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	w := &walker{pdf: pdf, family: family, tr: tr}
	for _, block := range doc.Blocks {
		w.block(block)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &render.Error{Format: valueobject.FormatPDF, Err: err}
	}
	return buf.Bytes(), nil
}

// selectFont registers the configured TTF when present, otherwise falls back
// to the Helvetica core font with a UTF-8 to cp1252 translator. The fallback
// is logged and never fatal.
func (r *Renderer) selectFont(pdf *gofpdf.Fpdf) (string, func(string) string) {
	if r.fonts.Available() {
		for _, style := range []string{"", "B", "I", "BI"} {
			pdf.AddUTF8Font(r.fonts.Family, style, r.fonts.TTFPath())
		}
		if !pdf.Err() {
			return r.fonts.Family, func(s string) string { return s }
		}
		// Registration failed: clear the error state and degrade.
		pdf.ClearError()
	}
	if r.fonts.Dir != "" {
		r.logger.Warn("pdf font asset unavailable, using core font fallback",
			"path", r.fonts.TTFPath())
	}
	return "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
}

type walker struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

func (w *walker) usableWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	return pageW - marginLeft - marginRight
}

func (w *walker) block(b doctree.Block) {
	switch b.Kind {
	case doctree.KindHeading:
		w.heading(b)
	case doctree.KindParagraph:
		w.paragraph(b)
	case doctree.KindTable:
		w.table(b.Table)
	case doctree.KindPageBreak:
		w.pdf.AddPage()
	case doctree.KindSpacer:
		w.pdf.Ln(b.Height)
	case doctree.KindImage:
		// Signature images are embedded in the flow-document output only.
	}
}

func headingSize(level int) float64 {
	switch level {
	case 1:
		return 14
	case 2:
		return 12
	default:
		return 11
	}
}

func (w *walker) heading(b doctree.Block) {
	w.pdf.SetFont(w.family, "B", headingSize(b.Level))
	w.pdf.MultiCell(w.usableWidth(), 7, w.tr(runText(b.Runs)), "", alignStr(b.Align), false)
	w.pdf.Ln(2)
}

func (w *walker) paragraph(b doctree.Block) {
	if len(b.Runs) == 1 {
		run := b.Runs[0]
		w.pdf.SetFont(w.family, runStyle(run), 10)
		w.pdf.MultiCell(w.usableWidth(), bodyLineHeight, w.tr(run.Text), "", alignStr(b.Align), false)
		return
	}

	// Mixed-style paragraphs flow run by run; gofpdf's Write only supports
	// left alignment, which is what the builder uses for them.
	for _, run := range b.Runs {
		w.pdf.SetFont(w.family, runStyle(run), 10)
		w.pdf.Write(bodyLineHeight, w.tr(run.Text))
	}
	w.pdf.Ln(bodyLineHeight)
}

func (w *walker) table(t *doctree.Table) {
	if t == nil || len(t.Rows) == 0 {
		return
	}

	usable := w.usableWidth()
	colW := make([]float64, len(t.Columns))
	for i, c := range t.Columns {
		colW[i] = usable * c.WidthPct / 100
	}

	_, pageH := w.pdf.GetPageSize()
	trigger := pageH - marginBottom

	for _, row := range t.Rows {
		widths, styles, texts, aligns, fills := w.rowLayout(t, row, colW)

		// Row height from the tallest wrapped cell.
		rowH := tableLineHeight
		for i := range texts {
			w.pdf.SetFont(w.family, styles[i], 9)
			lines := w.pdf.SplitLines([]byte(texts[i]), widths[i]-2)
			if h := float64(len(lines)) * tableLineHeight; h > rowH {
				rowH = h
			}
		}

		if w.pdf.GetY()+rowH > trigger {
			w.pdf.AddPage()
		}

		x := marginLeft
		y := w.pdf.GetY()
		for i := range texts {
			if fills[i] {
				w.pdf.SetFillColor(229, 229, 229)
				w.pdf.Rect(x, y, widths[i], rowH, "FD")
			} else {
				w.pdf.Rect(x, y, widths[i], rowH, "D")
			}
			w.pdf.SetFont(w.family, styles[i], 9)
			w.pdf.SetXY(x+1, y+1)
			w.pdf.MultiCell(widths[i]-2, tableLineHeight, texts[i], "", aligns[i], false)
			x += widths[i]
		}
		w.pdf.SetXY(marginLeft, y+rowH)
	}
	w.pdf.Ln(2)
}

// rowLayout resolves spans, styles, translated text, alignment, and fill for
// every cell of a row.
func (w *walker) rowLayout(t *doctree.Table, row doctree.Row, colW []float64) (
	widths []float64, styles, texts, aligns []string, fills []bool,
) {
	col := 0
	for _, cell := range row.Cells {
		span := cell.Span
		if span < 1 {
			span = 1
		}
		width := 0.0
		for i := 0; i < span && col+i < len(colW); i++ {
			width += colW[col+i]
		}

		align := cell.Align
		if align == "" && col < len(t.Columns) {
			align = t.Columns[col].Align
		}

		widths = append(widths, width)
		styles = append(styles, runStyle(firstRun(cell.Runs)))
		texts = append(texts, w.tr(runText(cell.Runs)))
		aligns = append(aligns, alignStr(align))
		fills = append(fills, cell.Fill || row.Header)

		col += span
	}
	return widths, styles, texts, aligns, fills
}

func runText(runs []doctree.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func firstRun(runs []doctree.Run) doctree.Run {
	if len(runs) == 0 {
		return doctree.Run{}
	}
	return runs[0]
}

func runStyle(r doctree.Run) string {
	style := ""
	if r.Bold {
		style += "B"
	}
	if r.Italic {
		style += "I"
	}
	if r.Underline {
		style += "U"
	}
	return style
}

func alignStr(a doctree.Alignment) string {
	if a == "" {
		return "L"
	}
	return string(a)
}
