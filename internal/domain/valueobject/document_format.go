package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// DocumentFormat – immutable value object
// ---------------------------------------------------------------------------

// DocumentFormat identifies one of the two supported output backends along
// with the transport metadata the caller must set on the response.
type DocumentFormat struct {
	value string
	mime  string
	ext   string
}

const (
	formatPDF  = "pdf"
	formatDOCX = "docx"
)

var (
	FormatPDF = DocumentFormat{
		value: formatPDF,
		mime:  "application/pdf",
		ext:   "pdf",
	}
	FormatDOCX = DocumentFormat{
		value: formatDOCX,
		mime:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		ext:   "docx",
	}
)

var validDocumentFormats = map[string]DocumentFormat{
	formatPDF:  FormatPDF,
	formatDOCX: FormatDOCX,
}

// NewDocumentFormat creates a DocumentFormat from a raw string.
func NewDocumentFormat(s string) (DocumentFormat, error) {
	v, ok := validDocumentFormats[s]
	if !ok {
		return DocumentFormat{}, fmt.Errorf("unsupported document format: %q", s)
	}
	return v, nil
}

// String returns the format identifier ("pdf" or "docx").
func (f DocumentFormat) String() string { return f.value }

// MIME returns the content type the caller must set on the transport boundary.
func (f DocumentFormat) MIME() string { return f.mime }

// Extension returns the suggested filename extension.
func (f DocumentFormat) Extension() string { return f.ext }

// IsZero returns true if the format has not been initialised.
func (f DocumentFormat) IsZero() bool { return f.value == "" }

// Equal returns true when both formats carry the same value.
func (f DocumentFormat) Equal(other DocumentFormat) bool { return f.value == other.value }
