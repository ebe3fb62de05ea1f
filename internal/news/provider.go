package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abelbrown/noticias/internal/config"
)

// ErrUnknownProvider is returned by NewProvider for an unrecognized kind.
var ErrUnknownProvider = errors.New("unknown provider")

// Provider supplies raw news records. Fetch is called once per load; it takes
// no parameters beyond ctx and returns records in display order.
type Provider interface {
	Fetch(ctx context.Context) ([]RawRecord, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) ([]RawRecord, error)

// Fetch calls f.
func (f ProviderFunc) Fetch(ctx context.Context) ([]RawRecord, error) {
	return f(ctx)
}

// NewProvider builds the provider selected by cfg.Kind.
func NewProvider(cfg config.ProviderConfig) (Provider, error) {
	delay := time.Duration(cfg.DelayMs) * time.Millisecond

	switch cfg.Kind {
	case "", config.ProviderFixture:
		return &FixtureProvider{Delay: delay, Relative: cfg.RelativeDates}, nil
	case config.ProviderFile:
		if cfg.Path == "" {
			return nil, fmt.Errorf("file provider: path is required")
		}
		return &FileProvider{Path: cfg.Path, Delay: delay}, nil
	case config.ProviderRSS:
		if cfg.FeedURL == "" {
			return nil, fmt.Errorf("rss provider: feed url is required")
		}
		timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
		return NewFeedProvider(cfg.FeedURL, timeout), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Kind)
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
