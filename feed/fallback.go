package feed

import (
	"context"
	"errors"

	"digital-canvas/internal/logger"
	"digital-canvas/models"
)

// Fallback asks its readers in order and returns the first usable answer.
// Errors and empty results move on to the next reader.
type Fallback struct {
	readers []Reader
}

func NewFallback(readers ...Reader) *Fallback {
	return &Fallback{readers: readers}
}

type ListResult struct {
	Items  []models.TransformedFeedItem
	Source string
}

type ItemResult struct {
	Item   *models.TransformedFeedItem
	Source string
}

// GetFeedItems returns ErrEmptyFeed when every reader failed or was empty.
func (f *Fallback) GetFeedItems(ctx context.Context, forceFresh bool) (ListResult, error) {
	var errs []error
	for _, r := range f.readers {
		items, err := r.GetFeedItems(ctx, forceFresh)
		if err == nil && len(items) > 0 {
			return ListResult{Items: items, Source: r.Name()}, nil
		}
		if err == nil {
			err = ErrEmptyFeed
		}
		errs = append(errs, err)
		logger.WarnWithFields("feed reader unusable, falling back", logger.Fields{
			"source": r.Name(),
			"error":  err.Error(),
		})
	}
	return ListResult{}, errors.Join(append([]error{ErrEmptyFeed}, errs...)...)
}

// GetFeedItemBySlug returns ErrNotFound when no reader has the slug.
func (f *Fallback) GetFeedItemBySlug(ctx context.Context, slug string, forceFresh bool) (ItemResult, error) {
	for _, r := range f.readers {
		item, err := r.GetFeedItemBySlug(ctx, slug, forceFresh)
		if errors.Is(err, ErrInvalidSlug) {
			return ItemResult{}, err
		}
		if err == nil && item != nil {
			return ItemResult{Item: item, Source: r.Name()}, nil
		}
		if err != nil {
			logger.WarnWithFields("feed reader unusable, falling back", logger.Fields{
				"source": r.Name(),
				"slug":   slug,
				"error":  err.Error(),
			})
		}
	}
	return ItemResult{}, ErrNotFound
}
