package compose

import (
	"fmt"

	"github.com/concursalia/filingdocs/internal/doctree"
	"github.com/concursalia/filingdocs/internal/domain/model"
	"github.com/concursalia/filingdocs/pkg/format"
)

const noAttachments = "No se aportan anexos."

const legalBasisText = "Fundamento la presente solicitud en los artículos 531 y siguientes del " +
	"Código General del Proceso (Ley 1564 de 2012), el Decreto 2677 de 2012 y las normas que los " +
	"modifiquen o complementen, que regulan el trámite de insolvencia de la persona natural no " +
	"comerciante, así como en los hechos y documentos relacionados en esta solicitud."

func (b *Builder) legalBasis(doc *doctree.Document) {
	doc.Heading(2, "FUNDAMENTOS DE DERECHO")
	doc.Paragraph(doctree.AlignJustify, doctree.T(legalBasisText))
	doc.Spacer(6)
}

func (b *Builder) attachments(doc *doctree.Document, attachments []model.Attachment) {
	doc.Heading(2, "ANEXOS")

	if len(attachments) == 0 {
		doc.Paragraph(doctree.AlignJustify, doctree.T(noAttachments))
		doc.Spacer(6)
		return
	}

	for i, a := range attachments {
		line := fmt.Sprintf("%d. %s", i+1, format.OrDefault(a.DisplayName))
		if desc := format.OrDefaultWith(a.Description, ""); desc != "" {
			line += " — " + desc
		}
		doc.Paragraph(doctree.AlignLeft, doctree.T(line))
	}
	doc.Spacer(6)
}

func (b *Builder) notifications(doc *doctree.Document, debtor model.Debtor) {
	doc.Heading(2, "NOTIFICACIONES")
	doc.Paragraph(doctree.AlignJustify, doctree.T(fmt.Sprintf(
		"El solicitante recibirá notificaciones en la dirección %s, teléfono %s, "+
			"correo electrónico %s.",
		format.OrDefault(debtor.Address),
		format.OrDefault(debtor.Phone),
		format.OrDefault(debtor.Email))))
	doc.Spacer(6)
}

func (b *Builder) signature(doc *doctree.Document, rec model.FilingRecord) {
	doc.Paragraph(doctree.AlignLeft, doctree.T(fmt.Sprintf("%s, %s.",
		format.OrDefault(rec.Venue.City), format.LongDate(rec.CreatedAt))))
	doc.Spacer(8)
	doc.Paragraph(doctree.AlignLeft, doctree.T("Atentamente,"))
	doc.Spacer(10)

	if len(rec.SignatureImage) > 0 {
		doc.InlineImage(rec.SignatureImage)
	}

	doc.Paragraph(doctree.AlignLeft, doctree.B(format.OrDefault(rec.Debtor.FullName())))
	doc.Paragraph(doctree.AlignLeft, doctree.T(fmt.Sprintf("%s No. %s de %s",
		format.OrDefaultWith(rec.Debtor.DocumentType, "C.C."),
		format.OrDefault(rec.Debtor.DocumentNumber),
		format.OrDefault(rec.Debtor.DocumentIssuedIn))))
}
