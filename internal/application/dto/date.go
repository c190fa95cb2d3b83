package dto

import (
	"bytes"
	"strings"
	"time"
)

// dateLayouts lists the formats intake forms actually send, most specific
// first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
}

// Date is a tolerant date field: empty, null, or unparseable values become
// the absent date, which the composer renders with its own sentinel.
type Date struct {
	Time *time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.Time = nil
		return nil
	}

	raw := strings.Trim(string(data), `"`)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = nil
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			d.Time = &t
			return nil
		}
	}
	d.Time = nil
	return nil
}
