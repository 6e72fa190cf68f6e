package feed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"digital-canvas/models"
)

// Source supplies raw feed records. FetchBySlug returns (nil, nil) when no
// record matches.
type Source interface {
	Name() string
	FetchAll(ctx context.Context) ([]models.FeedItem, error)
	FetchBySlug(ctx context.Context, slug string) (*models.FeedItem, error)
}

//go:embed staticdata/feed.json
var staticFeedJSON []byte

// StaticSource serves the dataset bundled with the binary.
type StaticSource struct {
	items []models.FeedItem
}

// NewStaticSource decodes the embedded dataset.
func NewStaticSource() (*StaticSource, error) {
	var items []models.FeedItem
	if err := json.Unmarshal(staticFeedJSON, &items); err != nil {
		return nil, fmt.Errorf("decode bundled feed data: %w", err)
	}
	return NewStaticSourceFromItems(items), nil
}

func NewStaticSourceFromItems(items []models.FeedItem) *StaticSource {
	return &StaticSource{items: append([]models.FeedItem(nil), items...)}
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) FetchAll(ctx context.Context) ([]models.FeedItem, error) {
	return append([]models.FeedItem(nil), s.items...), nil
}

func (s *StaticSource) FetchBySlug(ctx context.Context, slug string) (*models.FeedItem, error) {
	for i := range s.items {
		if s.items[i].Slug == slug {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, nil
}
