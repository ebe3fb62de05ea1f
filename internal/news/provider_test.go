package news

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abelbrown/noticias/internal/config"
)

func TestFixtureRecords(t *testing.T) {
	records, err := FixtureRecords()
	if err != nil {
		t.Fatalf("FixtureRecords() error: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("fixture should not be empty")
	}

	seen := make(map[ID]bool)
	for _, r := range records {
		if seen[r.ID] {
			t.Errorf("duplicate id %q", r.ID)
		}
		seen[r.ID] = true
		if _, err := r.Fecha.Resolve(); err != nil {
			t.Errorf("record %s has unparseable fecha: %v", r.ID, err)
		}
	}
}

func TestFixtureProviderRelative(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	p := &FixtureProvider{Relative: true, Now: func() time.Time { return now }}

	records, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	original, _ := FixtureRecords()

	// The newest record lands on now; gaps between records are preserved.
	newest, _ := records[0].Fecha.Resolve()
	if !newest.Equal(now) {
		t.Errorf("newest fecha = %v, want %v", newest, now)
	}
	for i := 1; i < len(records); i++ {
		a, _ := records[i].Fecha.Resolve()
		b, _ := original[i].Fecha.Resolve()
		a0, _ := original[0].Fecha.Resolve()
		if gotGap, wantGap := newest.Sub(a), a0.Sub(b); gotGap != wantGap {
			t.Errorf("record %d gap = %v, want %v", i, gotGap, wantGap)
		}
	}
}

func TestFixtureProviderHonorsCancel(t *testing.T) {
	p := &FixtureProvider{Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() err = %v, want context.Canceled", err)
	}
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noticias.json")
	body := `[{"id": 7, "titulo": "x", "descripcion": "y", "fecha": "2024-03-05", "esPremium": false, "imagen": "z"}]`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := (&FileProvider{Path: path}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "7" {
		t.Errorf("records = %+v", records)
	}
}

func TestFileProviderKeepsMalformedFecha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noticias.json")
	body := `[
		{"id": 1, "titulo": "a", "descripcion": "b", "fecha": "2024-03-05T13:30:00Z"},
		{"id": 2, "titulo": "c", "descripcion": "d", "fecha": 1709645400000.0}
	]`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := (&FileProvider{Path: path}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if _, err := records[0].Fecha.Resolve(); err != nil {
		t.Errorf("record 1 Resolve error: %v", err)
	}
	if _, err := records[1].Fecha.Resolve(); err == nil {
		t.Error("record 2 with a float fecha should fail to resolve")
	}
}

func TestFileProviderErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := (&FileProvider{Path: filepath.Join(dir, "missing.json")}).Fetch(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"id": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (&FileProvider{Path: bad}).Fetch(context.Background()); err == nil {
		t.Error("non-array JSON should fail")
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ProviderConfig
		want    any
		wantErr bool
	}{
		{"default is fixture", config.ProviderConfig{}, &FixtureProvider{}, false},
		{"fixture", config.ProviderConfig{Kind: config.ProviderFixture}, &FixtureProvider{}, false},
		{"file", config.ProviderConfig{Kind: config.ProviderFile, Path: "a.json"}, &FileProvider{}, false},
		{"file without path", config.ProviderConfig{Kind: config.ProviderFile}, nil, true},
		{"rss", config.ProviderConfig{Kind: config.ProviderRSS, FeedURL: "http://x"}, &FeedProvider{}, false},
		{"rss without url", config.ProviderConfig{Kind: config.ProviderRSS}, nil, true},
		{"unknown", config.ProviderConfig{Kind: "carrier-pigeon"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewProvider() = %T, want error", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider() error: %v", err)
			}
			switch tt.want.(type) {
			case *FixtureProvider:
				if _, ok := p.(*FixtureProvider); !ok {
					t.Errorf("got %T, want *FixtureProvider", p)
				}
			case *FileProvider:
				if _, ok := p.(*FileProvider); !ok {
					t.Errorf("got %T, want *FileProvider", p)
				}
			case *FeedProvider:
				if _, ok := p.(*FeedProvider); !ok {
					t.Errorf("got %T, want *FeedProvider", p)
				}
			}
		})
	}

	if _, err := NewProvider(config.ProviderConfig{Kind: "x"}); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("unknown kind err = %v, want ErrUnknownProvider", err)
	}
}

func TestProviderFunc(t *testing.T) {
	called := false
	var p Provider = ProviderFunc(func(ctx context.Context) ([]RawRecord, error) {
		called = true
		return []RawRecord{{ID: "1"}}, nil
	})
	records, err := p.Fetch(context.Background())
	if err != nil || !called || len(records) != 1 {
		t.Errorf("ProviderFunc.Fetch() = %v, %v (called=%v)", records, err, called)
	}
}
