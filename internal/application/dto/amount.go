package dto

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a tolerant money field. Intake forms deliver amounts as JSON
// numbers, plain numeric strings, or locale-formatted strings like
// "$ 1.234.567,89"; anything unparseable collapses to zero rather than
// rejecting the whole filing.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	raw := string(data)
	if raw[0] == '"' {
		raw = strings.Trim(raw, `"`)
	}

	if d, ok := parseAmount(raw); ok {
		a.Decimal = d
	} else {
		a.Decimal = decimal.Zero
	}
	return nil
}

func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}

	// Locale-formatted strings use "." for thousands and "," for decimals.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
