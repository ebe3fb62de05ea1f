package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

// FeedProvider reads raw records from an RSS or Atom feed.
type FeedProvider struct {
	URL    string
	client *http.Client
}

// NewFeedProvider creates a FeedProvider with the given HTTP client timeout.
func NewFeedProvider(url string, timeout time.Duration) *FeedProvider {
	return &FeedProvider{
		URL: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch implements Provider. It does not retry.
func (p *FeedProvider) Fetch(ctx context.Context) ([]RawRecord, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "noticias/0.1")

	client := p.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	records := make([]RawRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		records = append(records, convertFeedItem(item))
	}
	return records, nil
}

// convertFeedItem maps a feed entry onto the raw record shape.
func convertFeedItem(item *gofeed.Item) RawRecord {
	fecha := Text(item.Published)
	switch {
	case item.PublishedParsed != nil:
		fecha = At(*item.PublishedParsed)
	case item.UpdatedParsed != nil:
		fecha = At(*item.UpdatedParsed)
	case item.Published == "":
		fecha = Text(item.Updated)
	}

	descripcion := item.Description
	if descripcion == "" {
		descripcion = item.Content
	}

	return RawRecord{
		ID:          feedItemID(item),
		Titulo:      item.Title,
		Descripcion: descripcion,
		Fecha:       fecha,
		EsPremium:   hasPremiumCategory(item.Categories),
		Imagen:      feedItemImage(item),
	}
}

// feedItemID prefers the GUID, then a name-based UUID of the link so the id
// is stable across fetches.
func feedItemID(item *gofeed.Item) ID {
	if item.GUID != "" {
		return ID(item.GUID)
	}
	key := item.Link
	if key == "" {
		key = item.Title + "|" + item.Published
	}
	return ID(uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String())
}

func feedItemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

func hasPremiumCategory(categories []string) bool {
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c), "premium") {
			return true
		}
	}
	return false
}
