// Package format holds the locale-aware formatting primitives shared by the
// document builder. Every value printed into a generated filing goes through
// one of these functions so that absent or malformed data renders as a
// documented sentinel instead of a raw zero value.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Sentinel strings rendered in place of absent data.
const (
	NotReported = "No reporta"
	UnknownDate = "Sin fecha"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Currency renders a monetary amount as Colombian pesos with two fraction
// digits and es-CO digit grouping, e.g. "$ 1.234.567,89".
func Currency(d decimal.Decimal) string {
	return printer.Sprintf("$ %.2f", d.InexactFloat64())
}

// CurrencyPtr renders an optional monetary amount; nil renders as zero pesos.
func CurrencyPtr(d *decimal.Decimal) string {
	if d == nil {
		return Currency(decimal.Zero)
	}
	return Currency(*d)
}

// Percent renders a percentage value with two fraction digits and the es-CO
// decimal separator, e.g. "25,00%". The value is expected to already be on
// the 0–100 scale.
func Percent(d decimal.Decimal) string {
	return printer.Sprintf("%.2f%%", d.InexactFloat64())
}

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate renders a date as day / long month / year, e.g. "2 de enero de 2026".
// The zero time renders as the unknown-date sentinel.
func LongDate(t time.Time) string {
	if t.IsZero() {
		return UnknownDate
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// LongDatePtr renders an optional date; nil renders as the unknown-date sentinel.
func LongDatePtr(t *time.Time) string {
	if t == nil {
		return UnknownDate
	}
	return LongDate(*t)
}

// OrDefault returns the trimmed value, or the "No reporta" sentinel when the
// value is empty or whitespace-only.
func OrDefault(s string) string {
	return OrDefaultWith(s, NotReported)
}

// OrDefaultWith returns the trimmed value, or fallback when the value is
// empty or whitespace-only.
func OrDefaultWith(s, fallback string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
