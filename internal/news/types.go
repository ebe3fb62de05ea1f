// Package news defines raw and display-ready news records and the providers
// that supply raw records.
package news

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abelbrown/noticias/internal/format"
)

// ID identifies a news record. Providers may send it as a number or a string;
// both decode to the same textual form.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Timestamp is the raw fecha of a record: either a concrete time or text that
// still needs parsing.
type Timestamp struct {
	Time time.Time
	Text string
}

// At wraps a concrete time.
func At(t time.Time) Timestamp { return Timestamp{Time: t} }

// Text wraps a textual time to be parsed on Resolve.
func Text(s string) Timestamp { return Timestamp{Text: s} }

// Resolve returns the point in time, parsing Text when Time is unset.
func (ts Timestamp) Resolve() (time.Time, error) {
	if !ts.Time.IsZero() {
		return ts.Time, nil
	}
	return format.ParseTime(ts.Text)
}

// UnmarshalJSON accepts a string, a number of Unix milliseconds, or null.
// Any other value is kept verbatim as Text and fails on Resolve.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*ts = Timestamp{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*ts = Text(s)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		// Kept as text so Resolve fails for this record alone.
		*ts = Text(string(data))
		return nil
	}
	*ts = At(time.UnixMilli(ms))
	return nil
}

// MarshalJSON writes the concrete time as RFC3339, or the raw text.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.Time.IsZero() {
		return json.Marshal(ts.Time.Format(time.RFC3339Nano))
	}
	return json.Marshal(ts.Text)
}

// RawRecord is a news item exactly as a provider supplies it.
type RawRecord struct {
	ID          ID        `json:"id"`
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion"`
	Fecha       Timestamp `json:"fecha"`
	EsPremium   bool      `json:"esPremium"`
	Imagen      string    `json:"imagen"`
}

// Record is a display-ready news item.
type Record struct {
	ID               ID
	Titulo           string
	Descripcion      string
	DescripcionCorta string
	Fecha            string // relative, e.g. "Hace 3 minutos"
	EsPremium        bool
	Imagen           string
}
