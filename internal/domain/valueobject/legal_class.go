package valueobject

import "strings"

// ---------------------------------------------------------------------------
// LegalClass – immutable value object
// ---------------------------------------------------------------------------

// LegalClass is one of the five creditor-priority ranks of the Colombian
// civil-code order of payments. It is derived from the free-text credit
// nature of each claim and never stored.
type LegalClass struct {
	value string
	rank  int
	label string
}

const (
	legalClassFirst  = "PRIMERA_CLASE"
	legalClassSecond = "SEGUNDA_CLASE"
	legalClassThird  = "TERCERA_CLASE"
	legalClassFourth = "CUARTA_CLASE"
	legalClassFifth  = "QUINTA_CLASE"
)

var (
	LegalClassFirst  = LegalClass{value: legalClassFirst, rank: 1, label: "Primera clase"}
	LegalClassSecond = LegalClass{value: legalClassSecond, rank: 2, label: "Segunda clase"}
	LegalClassThird  = LegalClass{value: legalClassThird, rank: 3, label: "Tercera clase"}
	LegalClassFourth = LegalClass{value: legalClassFourth, rank: 4, label: "Cuarta clase"}
	LegalClassFifth  = LegalClass{value: legalClassFifth, rank: 5, label: "Quinta clase"}
)

// AllLegalClasses returns the five classes in payment-priority order.
func AllLegalClasses() []LegalClass {
	return []LegalClass{
		LegalClassFirst, LegalClassSecond, LegalClassThird,
		LegalClassFourth, LegalClassFifth,
	}
}

// String returns the stable identifier of the class.
func (c LegalClass) String() string { return c.value }

// Rank returns the 1-based priority rank (1 = highest priority).
func (c LegalClass) Rank() int { return c.rank }

// Label returns the Spanish display label used in generated documents.
func (c LegalClass) Label() string { return c.label }

// IsZero returns true if the class has not been initialised.
func (c LegalClass) IsZero() bool { return c.value == "" }

// Equal returns true when both classes carry the same value.
func (c LegalClass) Equal(other LegalClass) bool { return c.value == other.value }

// ---------------------------------------------------------------------------
// Classification
// ---------------------------------------------------------------------------

// Keyword sets checked in priority order; the first match wins. Stems are
// matched as case-insensitive substrings so declensions like "hipotecario"
// and "hipoteca" both land in the third class.
var classKeywords = []struct {
	class    LegalClass
	keywords []string
}{
	{LegalClassFirst, []string{"primera", "laboral", "salari", "alimento", "fiscal", "tributar"}},
	{LegalClassSecond, []string{"segunda", "prend", "garantía mobiliaria", "garantia mobiliaria"}},
	{LegalClassThird, []string{"tercera", "hipotec"}},
	{LegalClassFourth, []string{"cuarta", "proveedor", "suminist"}},
	{LegalClassFifth, []string{"quinta", "quirograf", "consumo", "libre inversión", "libre inversion"}},
}

// ClassifyCreditNature derives the legal class from the free-text nature of a
// credit. The function is total: unrecognised or empty text defaults to the
// fifth class and no input can make it fail.
func ClassifyCreditNature(nature string) LegalClass {
	lowered := strings.ToLower(nature)
	for _, set := range classKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lowered, kw) {
				return set.class
			}
		}
	}
	return LegalClassFifth
}
