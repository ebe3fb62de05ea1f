package news

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// FileProvider reads a JSON array of raw records from disk.
type FileProvider struct {
	Path  string
	Delay time.Duration
}

// Fetch implements Provider.
func (p *FileProvider) Fetch(ctx context.Context) ([]RawRecord, error) {
	if err := sleep(ctx, p.Delay); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.Path, err)
	}
	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.Path, err)
	}
	return records, nil
}
