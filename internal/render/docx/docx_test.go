package docx

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concursalia/filingdocs/internal/doctree"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleDocument() *doctree.Document {
	doc := &doctree.Document{
		Title:      "Solicitud de insolvencia",
		CreatedAt:  time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		HeaderText: "Solicitud de insolvencia de persona natural no comerciante",
		FooterText: "Página {page} de {pages}",
	}
	doc.Heading(1, "Señores")
	doc.Paragraph(doctree.AlignJustify,
		doctree.T("Relación de acreencias de "),
		doctree.B("María & José"),
		doctree.T("."))

	table := &doctree.Table{
		Columns: []doctree.Column{
			{WidthPct: 50, Align: doctree.AlignLeft},
			{WidthPct: 25, Align: doctree.AlignRight},
			{WidthPct: 25, Align: doctree.AlignRight},
		},
	}
	table.Rows = append(table.Rows, doctree.HeaderRow("Acreedor", "Capital", "Intereses"))
	table.Rows = append(table.Rows, doctree.TextRow("Banco Nacional S.A.", "$ 1.000.000,00", "$ 50.000,00"))
	table.Rows = append(table.Rows, doctree.Row{Cells: []doctree.Cell{
		{Runs: []doctree.Run{doctree.B("TOTAL GENERAL")}, Span: 2, Fill: true},
		{Runs: []doctree.Run{doctree.B("$ 1.050.000,00")}, Align: doctree.AlignRight, Fill: true},
	}})
	doc.AppendTable(table)

	doc.PageBreak()
	doc.Paragraph(doctree.AlignLeft, doctree.T("Atentamente,"))
	return doc
}

// unpack returns every part of the archive keyed by name.
func unpack(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err, "output must be a readable zip archive")

	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		parts[f.Name] = string(body)
	}
	return parts
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRenderPackageStructure(t *testing.T) {
	out, err := New(discardLogger()).Render(sampleDocument())
	require.NoError(t, err)

	parts := unpack(t, out)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/_rels/document.xml.rels",
		"word/header1.xml",
		"word/footer1.xml",
	} {
		assert.Contains(t, parts, name)
	}
	assert.NotContains(t, parts, "word/media/image1.png")

	assert.Contains(t, parts["[Content_Types].xml"], "wordprocessingml.document.main+xml")
	assert.Contains(t, parts["_rels/.rels"], `Target="word/document.xml"`)
}

func TestRenderDocumentBody(t *testing.T) {
	out, err := New(discardLogger()).Render(sampleDocument())
	require.NoError(t, err)
	body := unpack(t, out)["word/document.xml"]

	assert.Contains(t, body, `<w:pStyle w:val="Heading1"/>`)
	assert.Contains(t, body, `<w:jc w:val="both"/>`)
	assert.Contains(t, body, "María &amp; José", "ampersands must be escaped")
	assert.Contains(t, body, `<w:gridSpan w:val="2"/>`)
	assert.Contains(t, body, `<w:shd w:val="clear" w:color="auto" w:fill="E5E5E5"/>`)
	assert.Contains(t, body, `<w:br w:type="page"/>`)
	assert.Contains(t, body, `<w:pgSz w:w="12240" w:h="15840"/>`)
	assert.Contains(t, body, `<w:tblHeader/>`)
}

func TestRenderFooterFields(t *testing.T) {
	out, err := New(discardLogger()).Render(sampleDocument())
	require.NoError(t, err)
	footer := unpack(t, out)["word/footer1.xml"]

	assert.Contains(t, footer, `<w:fldSimple w:instr=" PAGE ">`)
	assert.Contains(t, footer, `<w:fldSimple w:instr=" NUMPAGES ">`)
	assert.Contains(t, footer, "Página ")
	assert.Contains(t, footer, " de ")
}

func TestRenderIsDeterministic(t *testing.T) {
	doc := sampleDocument()
	r := New(discardLogger())

	first, err := r.Render(doc)
	require.NoError(t, err)
	second, err := r.Render(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same tree must yield identical bytes")
}

func TestRenderEmbedsSignatureImage(t *testing.T) {
	doc := sampleDocument()
	doc.InlineImage(tinyPNG(t))

	out, err := New(discardLogger()).Render(doc)
	require.NoError(t, err)
	parts := unpack(t, out)

	assert.Contains(t, parts, "word/media/image1.png")
	assert.Contains(t, parts["[Content_Types].xml"], `Extension="png"`)
	assert.Contains(t, parts["word/_rels/document.xml.rels"], `Target="media/image1.png"`)
	assert.Contains(t, parts["word/document.xml"], `r:embed="rId4"`)
}

func TestRenderOmitsUndecodableImage(t *testing.T) {
	doc := sampleDocument()
	doc.InlineImage([]byte("definitely not a png"))

	out, err := New(discardLogger()).Render(doc)
	require.NoError(t, err, "a bad signature image must not fail the render")
	parts := unpack(t, out)

	assert.NotContains(t, parts, "word/media/image1.png")
	assert.NotContains(t, parts["word/document.xml"], "w:drawing")
}
