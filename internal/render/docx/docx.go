// Package docx serialises a document tree into an OOXML flow document. The
// parts are assembled by hand and zipped with fixed entry metadata so the
// same tree always yields identical bytes.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"image/png"
	"log/slog"
	"strings"
	"time"

	"github.com/concursalia/filingdocs/internal/doctree"
	"github.com/concursalia/filingdocs/internal/domain/valueobject"
	"github.com/concursalia/filingdocs/internal/render"
)

// Letter page in twentieths of a point, with margins mirroring the PDF
// layout's proportions.
const (
	pageWidthTwips   = 12240
	pageHeightTwips  = 15840
	marginTopTwips   = 1700
	marginBotTwips   = 1700
	marginLeftTwips  = 1417
	marginRightTwips = 1133

	usableWidthTwips = pageWidthTwips - marginLeftTwips - marginRightTwips

	twipsPerMillimetre = 56.7
	emusPerPixel       = 9525    // 96 dpi
	maxImageWidthEMU   = 1800000 // 50 mm
)

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

// Renderer emits DOCX bytes from a document tree.
type Renderer struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render assembles the OOXML package. An undecodable signature image is
// skipped with a warning; archive failures come back as a render.Error.
func (r *Renderer) Render(doc *doctree.Document) ([]byte, error) {
	img := r.signatureImage(doc)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypes(img != nil)},
		{"_rels/.rels", packageRels},
		{"word/document.xml", r.documentXML(doc, img)},
		{"word/styles.xml", stylesXML},
		{"word/_rels/document.xml.rels", documentRels(img != nil)},
		{"word/header1.xml", headerXML(doc.HeaderText)},
		{"word/footer1.xml", footerXML(doc.FooterText)},
	}

	stamp := doc.CreatedAt
	if stamp.IsZero() {
		stamp = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	write := func(name string, body []byte) error {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: stamp,
		})
		if err != nil {
			return fmt.Errorf("create archive entry %s: %w", name, err)
		}
		if _, err := w.Write(body); err != nil {
			return fmt.Errorf("write archive entry %s: %w", name, err)
		}
		return nil
	}

	for _, p := range parts {
		if err := write(p.name, []byte(p.body)); err != nil {
			return nil, &render.Error{Format: valueobject.FormatDOCX, Err: err}
		}
	}
	if img != nil {
		if err := write("word/media/image1.png", img.data); err != nil {
			return nil, &render.Error{Format: valueobject.FormatDOCX, Err: err}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &render.Error{Format: valueobject.FormatDOCX, Err: fmt.Errorf("close archive: %w", err)}
	}
	return buf.Bytes(), nil
}

type inlineImage struct {
	data      []byte
	widthEMU  int
	heightEMU int
}

// signatureImage decodes the first image block, scaling its display size to
// at most 50 mm wide. Undecodable bytes drop the image from the output.
func (r *Renderer) signatureImage(doc *doctree.Document) *inlineImage {
	for _, b := range doc.Blocks {
		if b.Kind != doctree.KindImage || len(b.Image) == 0 {
			continue
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(b.Image))
		if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
			r.logger.Warn("signature image is not a decodable PNG, omitting it", "error", err)
			return nil
		}
		w := cfg.Width * emusPerPixel
		h := cfg.Height * emusPerPixel
		if w > maxImageWidthEMU {
			h = h * maxImageWidthEMU / w
			w = maxImageWidthEMU
		}
		return &inlineImage{data: b.Image, widthEMU: w, heightEMU: h}
	}
	return nil
}

func (r *Renderer) documentXML(doc *doctree.Document, img *inlineImage) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document ` + wordNS +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">`)
	sb.WriteString(`<w:body>`)

	for _, block := range doc.Blocks {
		switch block.Kind {
		case doctree.KindHeading:
			writeHeading(&sb, block)
		case doctree.KindParagraph:
			writeParagraph(&sb, block)
		case doctree.KindTable:
			writeTable(&sb, block.Table)
		case doctree.KindPageBreak:
			sb.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
		case doctree.KindSpacer:
			fmt.Fprintf(&sb, `<w:p><w:pPr><w:spacing w:after="%d"/></w:pPr></w:p>`,
				int(block.Height*twipsPerMillimetre))
		case doctree.KindImage:
			if img != nil {
				writeInlineImage(&sb, img)
			}
		}
	}

	fmt.Fprintf(&sb, `<w:sectPr>`+
		`<w:headerReference w:type="default" r:id="rId2"/>`+
		`<w:footerReference w:type="default" r:id="rId3"/>`+
		`<w:pgSz w:w="%d" w:h="%d"/>`+
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="708" w:footer="708" w:gutter="0"/>`+
		`</w:sectPr>`,
		pageWidthTwips, pageHeightTwips,
		marginTopTwips, marginRightTwips, marginBotTwips, marginLeftTwips)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeHeading(sb *strings.Builder, b doctree.Block) {
	level := b.Level
	if level < 1 || level > 3 {
		level = 3
	}
	fmt.Fprintf(sb, `<w:p><w:pPr><w:pStyle w:val="Heading%d"/>%s</w:pPr>`, level, justification(b.Align))
	writeRuns(sb, b.Runs)
	sb.WriteString(`</w:p>`)
}

func writeParagraph(sb *strings.Builder, b doctree.Block) {
	sb.WriteString(`<w:p>`)
	if j := justification(b.Align); j != "" {
		sb.WriteString(`<w:pPr>` + j + `</w:pPr>`)
	}
	writeRuns(sb, b.Runs)
	sb.WriteString(`</w:p>`)
}

func writeRuns(sb *strings.Builder, runs []doctree.Run) {
	for _, run := range runs {
		sb.WriteString(`<w:r>`)
		if props := runProps(run); props != "" {
			sb.WriteString(`<w:rPr>` + props + `</w:rPr>`)
		}
		sb.WriteString(`<w:t xml:space="preserve">`)
		sb.WriteString(escape(run.Text))
		sb.WriteString(`</w:t></w:r>`)
	}
}

func runProps(r doctree.Run) string {
	var sb strings.Builder
	if r.Bold {
		sb.WriteString(`<w:b/>`)
	}
	if r.Italic {
		sb.WriteString(`<w:i/>`)
	}
	if r.Underline {
		sb.WriteString(`<w:u w:val="single"/>`)
	}
	return sb.String()
}

func justification(a doctree.Alignment) string {
	switch a {
	case doctree.AlignCenter:
		return `<w:jc w:val="center"/>`
	case doctree.AlignRight:
		return `<w:jc w:val="right"/>`
	case doctree.AlignJustify:
		return `<w:jc w:val="both"/>`
	default:
		return ""
	}
}

func writeTable(sb *strings.Builder, t *doctree.Table) {
	if t == nil || len(t.Rows) == 0 {
		return
	}

	sb.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="5000" w:type="pct"/>` + tableBorders + `</w:tblPr>`)
	sb.WriteString(`<w:tblGrid>`)
	for _, col := range t.Columns {
		fmt.Fprintf(sb, `<w:gridCol w:w="%d"/>`, int(float64(usableWidthTwips)*col.WidthPct/100))
	}
	sb.WriteString(`</w:tblGrid>`)

	for _, row := range t.Rows {
		sb.WriteString(`<w:tr>`)
		if row.Header {
			sb.WriteString(`<w:trPr><w:tblHeader/></w:trPr>`)
		}
		col := 0
		for _, cell := range row.Cells {
			span := cell.Span
			if span < 1 {
				span = 1
			}
			pct := 0.0
			for i := 0; i < span && col+i < len(t.Columns); i++ {
				pct += t.Columns[col+i].WidthPct
			}
			align := cell.Align
			if align == "" && col < len(t.Columns) {
				align = t.Columns[col].Align
			}

			fmt.Fprintf(sb, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="pct"/>`, int(pct*50))
			if span > 1 {
				fmt.Fprintf(sb, `<w:gridSpan w:val="%d"/>`, span)
			}
			if cell.Fill || row.Header {
				sb.WriteString(`<w:shd w:val="clear" w:color="auto" w:fill="E5E5E5"/>`)
			}
			sb.WriteString(`</w:tcPr><w:p>`)
			if j := justification(align); j != "" {
				sb.WriteString(`<w:pPr>` + j + `</w:pPr>`)
			}
			writeRuns(sb, cell.Runs)
			sb.WriteString(`</w:p></w:tc>`)

			col += span
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
}

func writeInlineImage(sb *strings.Builder, img *inlineImage) {
	fmt.Fprintf(sb, `<w:p><w:r><w:drawing>`+
		`<wp:inline distT="0" distB="0" distL="0" distR="0">`+
		`<wp:extent cx="%d" cy="%d"/>`+
		`<wp:docPr id="1" name="Firma"/>`+
		`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">`+
		`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:nvPicPr><pic:cNvPr id="1" name="Firma"/><pic:cNvPicPr/></pic:nvPicPr>`+
		`<pic:blipFill><a:blip r:embed="rId4"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
		`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`,
		img.widthEMU, img.heightEMU, img.widthEMU, img.heightEMU)
}

// --- fixed package parts ---

const tableBorders = `<w:tblBorders>` +
	`<w:top w:val="single" w:sz="4" w:color="808080"/>` +
	`<w:left w:val="single" w:sz="4" w:color="808080"/>` +
	`<w:bottom w:val="single" w:sz="4" w:color="808080"/>` +
	`<w:right w:val="single" w:sz="4" w:color="808080"/>` +
	`<w:insideH w:val="single" w:sz="4" w:color="808080"/>` +
	`<w:insideV w:val="single" w:sz="4" w:color="808080"/>` +
	`</w:tblBorders>`

const packageRels = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

func contentTypes(hasImage bool) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	if hasImage {
		sb.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	}
	sb.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	sb.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	sb.WriteString(`<Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>`)
	sb.WriteString(`<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>`)
	sb.WriteString(`</Types>`)
	return sb.String()
}

func documentRels(hasImage bool) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	sb.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>`)
	sb.WriteString(`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>`)
	if hasImage {
		sb.WriteString(`<Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>`)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

const stylesXML = xml.Header +
	`<w:styles ` + wordNS + `>` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Carlito" w:hAnsi="Carlito" w:cs="Carlito"/>` +
	`<w:sz w:val="20"/><w:lang w:val="es-CO"/>` +
	`</w:rPr></w:rPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:spacing w:before="200" w:after="100"/></w:pPr><w:rPr><w:b/><w:sz w:val="24"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:spacing w:before="160" w:after="80"/></w:pPr><w:rPr><w:b/><w:sz w:val="22"/></w:rPr></w:style>` +
	`</w:styles>`

func headerXML(text string) string {
	return xml.Header +
		`<w:hdr ` + wordNS + `>` +
		`<w:p><w:pPr><w:jc w:val="center"/></w:pPr>` +
		`<w:r><w:rPr><w:i/><w:sz w:val="16"/></w:rPr>` +
		`<w:t xml:space="preserve">` + escape(text) + `</w:t></w:r></w:p></w:hdr>`
}

// footerXML expands the {page} and {pages} placeholders into live Word
// field codes.
func footerXML(text string) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:ftr ` + wordNS + `>`)
	sb.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr>`)

	literal := func(s string) {
		if s == "" {
			return
		}
		sb.WriteString(`<w:r><w:rPr><w:i/><w:sz w:val="16"/></w:rPr>` +
			`<w:t xml:space="preserve">` + escape(s) + `</w:t></w:r>`)
	}
	field := func(instr string) {
		sb.WriteString(`<w:fldSimple w:instr="` + instr + `">` +
			`<w:r><w:rPr><w:i/><w:sz w:val="16"/></w:rPr><w:t>1</w:t></w:r></w:fldSimple>`)
	}

	rest := text
	for rest != "" {
		pageIdx := strings.Index(rest, "{page}")
		pagesIdx := strings.Index(rest, "{pages}")
		switch {
		// "{page}" is a prefix of "{pages}", so the longer placeholder
		// wins on a tie.
		case pagesIdx >= 0 && (pageIdx < 0 || pagesIdx <= pageIdx):
			literal(rest[:pagesIdx])
			field(" NUMPAGES ")
			rest = rest[pagesIdx+len("{pages}"):]
		case pageIdx >= 0:
			literal(rest[:pageIdx])
			field(" PAGE ")
			rest = rest[pageIdx+len("{page}"):]
		default:
			literal(rest)
			rest = ""
		}
	}

	sb.WriteString(`</w:p></w:ftr>`)
	return sb.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string { return escaper.Replace(s) }
