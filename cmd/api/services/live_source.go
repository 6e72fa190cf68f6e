package services

import (
	"context"
	"errors"
	"fmt"

	"digital-canvas/cmd/api/clients/contentclient"
	"digital-canvas/feed"
	"digital-canvas/models"
)

// LiveSource adapts the content API client to feed.Source.
type LiveSource struct {
	client *contentclient.Client
}

var _ feed.Source = (*LiveSource)(nil)

func NewLiveSource(client *contentclient.Client) *LiveSource {
	return &LiveSource{client: client}
}

func (s *LiveSource) Name() string { return "live" }

func (s *LiveSource) FetchAll(ctx context.Context) ([]models.FeedItem, error) {
	items, err := s.client.ListFeedItems(ctx)
	if err != nil {
		return nil, mapClientError(err)
	}
	return items, nil
}

func (s *LiveSource) FetchBySlug(ctx context.Context, slug string) (*models.FeedItem, error) {
	item, err := s.client.GetFeedItemBySlug(ctx, slug)
	if errors.Is(err, contentclient.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapClientError(err)
	}
	return &item, nil
}

func mapClientError(err error) error {
	if errors.Is(err, contentclient.ErrNotConfigured) {
		return fmt.Errorf("%w: %v", feed.ErrSourceUnavailable, err)
	}
	return err
}
