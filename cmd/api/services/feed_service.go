package services

import (
	"context"
	"time"

	"digital-canvas/feed"
	"digital-canvas/models"
)

// FeedService decides what the API serves: live data through the cached
// gateway first, then the bundled dataset.
type FeedService struct {
	live     *feed.Gateway
	fallback *feed.Fallback
	now      func() time.Time
}

func NewFeedService(live *feed.Gateway, static *feed.Gateway) *FeedService {
	return &FeedService{
		live:     live,
		fallback: feed.NewFallback(live, static),
		now:      time.Now,
	}
}

type FeedListOutput struct {
	Items     []models.TransformedFeedItem
	Source    string
	Timestamp time.Time
}

type FeedItemOutput struct {
	Item      models.TransformedFeedItem
	Source    string
	Timestamp time.Time
}

func (s *FeedService) List(ctx context.Context, fresh bool) (FeedListOutput, error) {
	res, err := s.fallback.GetFeedItems(ctx, fresh)
	if err != nil {
		return FeedListOutput{}, err
	}
	return FeedListOutput{Items: res.Items, Source: res.Source, Timestamp: s.now()}, nil
}

// Get returns feed.ErrNotFound when neither live nor bundled data has the slug.
func (s *FeedService) Get(ctx context.Context, slug string, fresh bool) (FeedItemOutput, error) {
	res, err := s.fallback.GetFeedItemBySlug(ctx, slug, fresh)
	if err != nil {
		return FeedItemOutput{}, err
	}
	return FeedItemOutput{Item: *res.Item, Source: res.Source, Timestamp: s.now()}, nil
}

// ClearCache drops the live cache only; bundled data never goes stale.
func (s *FeedService) ClearCache() {
	s.live.ClearFeedCache()
}

// WithClock replaces the clock used for response timestamps.
func (s *FeedService) WithClock(now func() time.Time) *FeedService {
	s.now = now
	return s
}

func (s *FeedService) Now() time.Time { return s.now() }

func (s *FeedService) CacheStats() feed.CacheStats {
	return s.live.CacheStats()
}
