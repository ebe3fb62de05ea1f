// Package normalize turns raw news records into display-ready records.
package normalize

import (
	"errors"
	"fmt"
	"time"

	"github.com/abelbrown/noticias/internal/config"
	"github.com/abelbrown/noticias/internal/format"
	"github.com/abelbrown/noticias/internal/news"
)

// UnknownDate replaces the relative fecha of a record whose date could not be
// parsed.
const UnknownDate = "Fecha desconocida"

// RecordError reports a record that was normalized with a sentinel value.
type RecordError struct {
	Index int
	ID    news.ID
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (id %s): %v", e.Index, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Normalizer formats raw records. The zero value uses the wall clock and the
// default short-description length.
type Normalizer struct {
	Now         func() time.Time
	ShortLength int
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.Now = now }
}

// WithShortLength sets how many characters DescripcionCorta keeps.
func WithShortLength(length int) Option {
	return func(n *Normalizer) { n.ShortLength = length }
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{Now: time.Now, ShortLength: config.DefaultShortLength}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns one record per raw record, in order. A record whose fecha
// cannot be resolved is still returned, with UnknownDate, and reported in the
// joined error as a *RecordError. The records are valid even when err != nil.
func (n *Normalizer) Normalize(raw []news.RawRecord) ([]news.Record, error) {
	now := n.now()
	out := make([]news.Record, len(raw))
	var errs []error

	for i, r := range raw {
		rec, err := n.record(r, now)
		if err != nil {
			errs = append(errs, &RecordError{Index: i, ID: r.ID, Err: err})
		}
		out[i] = rec
	}
	return out, errors.Join(errs...)
}

func (n *Normalizer) record(r news.RawRecord, now time.Time) (news.Record, error) {
	rec := news.Record{
		ID:               r.ID,
		Titulo:           format.TitleCase(r.Titulo),
		Descripcion:      r.Descripcion,
		DescripcionCorta: format.Truncate(r.Descripcion, n.shortLength()),
		EsPremium:        r.EsPremium,
		Imagen:           r.Imagen,
	}

	t, err := r.Fecha.Resolve()
	if err != nil {
		rec.Fecha = UnknownDate
		return rec, err
	}
	rec.Fecha = format.RelativeMinutes(format.ElapsedMinutes(now, t))
	return rec, nil
}

func (n *Normalizer) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

func (n *Normalizer) shortLength() int {
	if n.ShortLength <= 0 {
		return config.DefaultShortLength
	}
	return n.ShortLength
}
