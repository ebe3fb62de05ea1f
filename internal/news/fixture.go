package news

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"
)

//go:embed noticias.json
var fixtureJSON []byte

// FixtureRecords decodes the embedded Springfield news fixture.
func FixtureRecords() ([]RawRecord, error) {
	var records []RawRecord
	if err := json.Unmarshal(fixtureJSON, &records); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return records, nil
}

// FixtureProvider serves the embedded fixture, optionally after a simulated
// network delay.
type FixtureProvider struct {
	Delay time.Duration

	// Relative shifts every parseable fecha so the newest record is Now(),
	// keeping the gaps between records.
	Relative bool
	Now      func() time.Time
}

// Fetch implements Provider.
func (p *FixtureProvider) Fetch(ctx context.Context) ([]RawRecord, error) {
	if err := sleep(ctx, p.Delay); err != nil {
		return nil, err
	}
	records, err := FixtureRecords()
	if err != nil {
		return nil, err
	}
	if p.Relative {
		now := time.Now
		if p.Now != nil {
			now = p.Now
		}
		shiftToNow(records, now())
	}
	return records, nil
}

func shiftToNow(records []RawRecord, now time.Time) {
	var newest time.Time
	for _, r := range records {
		if t, err := r.Fecha.Resolve(); err == nil && t.After(newest) {
			newest = t
		}
	}
	if newest.IsZero() {
		return
	}
	shift := now.Sub(newest)
	for i := range records {
		if t, err := records[i].Fecha.Resolve(); err == nil {
			records[i].Fecha = At(t.Add(shift))
		}
	}
}
