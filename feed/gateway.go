package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"digital-canvas/internal/logger"
	"digital-canvas/models"
)

var (
	ErrEmptyFeed         = errors.New("feed source returned no items")
	ErrNotFound          = errors.New("feed item not found")
	ErrInvalidSlug       = errors.New("slug must not be empty")
	ErrSourceUnavailable = errors.New("feed source unavailable")
)

// Reader is read access to the transformed feed.
type Reader interface {
	Name() string
	GetFeedItems(ctx context.Context, forceFresh bool) ([]models.TransformedFeedItem, error)
	GetFeedItemBySlug(ctx context.Context, slug string, forceFresh bool) (*models.TransformedFeedItem, error)
}

// Gateway reads a Source through a Cache. Concurrent cache misses share a
// single fetch; forced refreshes always run their own.
type Gateway struct {
	source Source
	cache  *Cache
	group  singleflight.Group

	// seq orders fetches by start; storedSeq is the newest fetch in the cache.
	mu        sync.Mutex
	seq       uint64
	storedSeq uint64
}

var _ Reader = (*Gateway)(nil)

func NewGateway(source Source, cache *Cache) *Gateway {
	return &Gateway{source: source, cache: cache}
}

func (g *Gateway) Name() string { return g.source.Name() }

// GetFeedItems returns the feed newest first. forceFresh clears the cache and
// always refetches. A failed fetch leaves the cache as it was and returns the
// error; an empty result returns ErrEmptyFeed and is not cached.
func (g *Gateway) GetFeedItems(ctx context.Context, forceFresh bool) ([]models.TransformedFeedItem, error) {
	if forceFresh {
		// 진행 중인 일반 refresh 에 합류하면 요청 이전 시점의 데이터를 받게 된다.
		g.cache.Clear()
		return g.refresh(ctx)
	}
	if items, ok := g.cache.Get(); ok {
		return items, nil
	}

	v, err, shared := g.group.Do("all", func() (any, error) {
		// 대기 중에 다른 요청이 이미 채웠을 수 있다.
		if items, ok := g.cache.Get(); ok {
			return items, nil
		}
		return g.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.DebugWithFields("feed refresh shared", logger.Fields{"source": g.Name()})
	}
	return v.([]models.TransformedFeedItem), nil
}

func (g *Gateway) refresh(ctx context.Context) ([]models.TransformedFeedItem, error) {
	g.mu.Lock()
	g.seq++
	seq := g.seq
	g.mu.Unlock()

	raw, err := g.source.FetchAll(ctx)
	if err != nil {
		logger.ErrorWithFields("feed fetch failed", logger.Fields{
			"source": g.Name(),
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%s feed: %w", g.Name(), err)
	}

	items := TransformAll(raw)
	if len(items) == 0 {
		logger.WarnWithFields("feed source returned no items", logger.Fields{
			"source":  g.Name(),
			"records": len(raw),
		})
		return nil, fmt.Errorf("%s feed: %w", g.Name(), ErrEmptyFeed)
	}

	g.store(seq, items)
	return items, nil
}

// store writes items unless a fetch that started later already did.
func (g *Gateway) store(seq uint64, items []models.TransformedFeedItem) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seq < g.storedSeq {
		logger.DebugWithFields("stale feed refresh discarded", logger.Fields{
			"source": g.Name(),
			"items":  len(items),
		})
		return
	}
	g.storedSeq = seq
	g.cache.Set(items)
	logger.InfoWithFields("feed cache refreshed", logger.Fields{
		"source": g.Name(),
		"items":  len(items),
	})
}

// GetFeedItemBySlug serves the item from a fresh cache when possible and
// otherwise fetches it directly. A miss is (nil, nil).
func (g *Gateway) GetFeedItemBySlug(ctx context.Context, slug string, forceFresh bool) (*models.TransformedFeedItem, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	if forceFresh {
		g.cache.Clear()
		return g.fetchOne(ctx, slug)
	}
	if items, ok := g.cache.Get(); ok {
		for i := range items {
			if items[i].Slug == slug {
				item := items[i]
				return &item, nil
			}
		}
	}

	v, err, _ := g.group.Do("slug:"+slug, func() (any, error) {
		return g.fetchOne(context.WithoutCancel(ctx), slug)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.TransformedFeedItem), nil
}

func (g *Gateway) fetchOne(ctx context.Context, slug string) (*models.TransformedFeedItem, error) {
	raw, err := g.source.FetchBySlug(ctx, slug)
	if err != nil {
		logger.ErrorWithFields("feed item fetch failed", logger.Fields{
			"source": g.Name(),
			"slug":   slug,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%s feed item %q: %w", g.Name(), slug, err)
	}
	if raw == nil {
		return nil, nil
	}

	item, err := Transform(*raw)
	if err != nil {
		logger.WarnWithFields("feed item rejected", logger.Fields{
			"source": g.Name(),
			"slug":   slug,
			"error":  err.Error(),
		})
		return nil, nil
	}
	return &item, nil
}

func (g *Gateway) ClearFeedCache() {
	g.cache.Clear()
}

func (g *Gateway) CacheStats() CacheStats {
	return g.cache.Stats()
}
