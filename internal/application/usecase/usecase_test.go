package usecase_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concursalia/filingdocs/internal/application/dto"
	"github.com/concursalia/filingdocs/internal/application/usecase"
	"github.com/concursalia/filingdocs/internal/compose"
	"github.com/concursalia/filingdocs/internal/domain/port"
	"github.com/concursalia/filingdocs/internal/domain/valueobject"
	"github.com/concursalia/filingdocs/internal/infrastructure/memory"
	"github.com/concursalia/filingdocs/internal/render"
	"github.com/concursalia/filingdocs/internal/render/docx"
	"github.com/concursalia/filingdocs/internal/render/pdf"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPayload() dto.FilingPayload {
	return dto.FilingPayload{
		Kind: "insolvencia",
		Debtor: dto.DebtorPayload{
			FirstNames:     "María Camila",
			Surnames:       "Rojas Peña",
			DocumentType:   "CC",
			DocumentNumber: "52.123.456",
			Domicile:       "Bogotá",
		},
		Venue: dto.VenuePayload{
			Entity: "Centro de Conciliación de la Cámara de Comercio",
			City:   "Bogotá",
		},
		Creditors: []dto.CreditorPayload{
			{Name: "Banco Nacional S.A.", CreditNature: "crédito hipotecario", InDefault: true},
		},
	}
}

func newGenerator(repo port.FilingRepository) *usecase.GenerateDocument {
	renderers := map[string]render.Renderer{
		valueobject.FormatPDF.String():  pdf.New(render.FontConfig{}, testLogger()),
		valueobject.FormatDOCX.String(): docx.New(testLogger()),
	}
	return usecase.NewGenerateDocument(repo, compose.NewBuilder(), renderers, testLogger())
}

func TestCreateFilingAssignsIdentity(t *testing.T) {
	repo := memory.NewFilingRepository()
	create := usecase.NewCreateFiling(repo, testLogger())

	id, err := create.Execute(context.Background(), testPayload())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	rec, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "insolvencia", rec.Kind)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestCreateFilingRejectsInvalidPayload(t *testing.T) {
	repo := memory.NewFilingRepository()
	create := usecase.NewCreateFiling(repo, testLogger())

	_, err := create.Execute(context.Background(), dto.FilingPayload{Kind: "insolvencia"})
	assert.ErrorIs(t, err, usecase.ErrInvalidPayload)
}

func TestGenerateDocumentPDF(t *testing.T) {
	repo := memory.NewFilingRepository()
	create := usecase.NewCreateFiling(repo, testLogger())
	id, err := create.Execute(context.Background(), testPayload())
	require.NoError(t, err)

	out, err := newGenerator(repo).Execute(context.Background(), id, valueobject.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "insolvencia-"+id.String()+".pdf", out.FileName)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.True(t, bytes.HasPrefix(out.Data, []byte("%PDF")))
}

func TestGenerateDocumentDOCX(t *testing.T) {
	repo := memory.NewFilingRepository()
	create := usecase.NewCreateFiling(repo, testLogger())
	id, err := create.Execute(context.Background(), testPayload())
	require.NoError(t, err)

	out, err := newGenerator(repo).Execute(context.Background(), id, valueobject.FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, "insolvencia-"+id.String()+".docx", out.FileName)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		out.ContentType)
	assert.True(t, bytes.HasPrefix(out.Data, []byte("PK")), "DOCX output must be a zip archive")
}

func TestGenerateDocumentUnknownFiling(t *testing.T) {
	repo := memory.NewFilingRepository()

	_, err := newGenerator(repo).Execute(context.Background(), uuid.New(), valueobject.FormatPDF)
	assert.ErrorIs(t, err, port.ErrFilingNotFound)
}

func TestGenerateDocumentUnregisteredFormat(t *testing.T) {
	repo := memory.NewFilingRepository()
	gen := usecase.NewGenerateDocument(repo, compose.NewBuilder(),
		map[string]render.Renderer{}, testLogger())

	_, err := gen.Execute(context.Background(), uuid.New(), valueobject.FormatPDF)
	assert.ErrorContains(t, err, "no renderer registered")
}
