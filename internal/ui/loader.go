package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/abelbrown/noticias/internal/news"
	"github.com/abelbrown/noticias/internal/normalize"
)

// ErrFetch wraps provider failures returned by a LoadFunc. Any other error
// from a LoadFunc describes individual records and comes with a full list.
var ErrFetch = errors.New("fetch news")

// LoadFunc fetches and normalizes one batch of records.
type LoadFunc func(ctx context.Context) ([]news.Record, error)

// NewsLoader fetches from p and runs every record through n.
func NewsLoader(p news.Provider, n *normalize.Normalizer) LoadFunc {
	return func(ctx context.Context) ([]news.Record, error) {
		raw, err := p.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		return n.Normalize(raw)
	}
}
