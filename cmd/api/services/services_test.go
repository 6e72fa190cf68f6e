package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-canvas/cmd/api/clients/contentclient"
	"digital-canvas/feed"
	"digital-canvas/models"
)

// contentAPI 는 테스트용 content API 로, 응답 레코드를 교체할 수 있다.
type contentAPI struct {
	records atomic.Value
	calls   atomic.Int32
	status  atomic.Int32
}

func newContentAPI(t *testing.T, records []models.FeedItem) (*contentAPI, *contentclient.Client) {
	t.Helper()
	api := &contentAPI{}
	api.records.Store(records)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)
		if code := api.status.Load(); code != 0 {
			http.Error(w, "unavailable", int(code))
			return
		}

		all := api.records.Load().([]models.FeedItem)
		var data any = all
		if slug := r.URL.Query().Get("slug"); slug != "" {
			data = nil
			for _, rec := range all {
				if rec.Slug == slug {
					data = rec
				}
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}))
	t.Cleanup(srv.Close)

	return api, contentclient.New(contentclient.Options{BaseURL: srv.URL, APIKey: "k"})
}

func liveRecords() []models.FeedItem {
	return []models.FeedItem{
		{ID: "r1", Slug: "older", Title: "Older", Type: "article", Date: "2024-01-10"},
		{ID: "r2", Slug: "newer", Title: "Newer", Type: "video", Date: "2024-06-01"},
	}
}

func staticRecords() []models.FeedItem {
	return []models.FeedItem{
		{ID: "s1", Slug: "bundled", Title: "Bundled", Type: "podcast", Date: "2023-12-01"},
	}
}

func newTestService(t *testing.T, records []models.FeedItem) (*contentAPI, *FeedService) {
	t.Helper()
	api, client := newContentAPI(t, records)
	live := feed.NewGateway(NewLiveSource(client), feed.NewCache(5*time.Minute))
	static := feed.NewGateway(feed.NewStaticSourceFromItems(staticRecords()), feed.NewCache(0))
	return api, NewFeedService(live, static)
}

func TestFeedServiceListServesLiveNewestFirst(t *testing.T) {
	fixed := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	_, svc := newTestService(t, liveRecords())
	svc.WithClock(func() time.Time { return fixed })

	out, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "live", out.Source)
	assert.Equal(t, fixed, out.Timestamp)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "newer", out.Items[0].Slug)
	assert.Equal(t, "older", out.Items[1].Slug)
}

func TestFeedServiceListUsesCache(t *testing.T) {
	api, svc := newTestService(t, liveRecords())

	_, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int32(1), api.calls.Load())

	_, err = svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), api.calls.Load())
}

func TestFeedServiceListFallsBackToStatic(t *testing.T) {
	t.Run("empty live feed", func(t *testing.T) {
		_, svc := newTestService(t, []models.FeedItem{})

		out, err := svc.List(context.Background(), false)
		require.NoError(t, err)
		assert.Equal(t, "static", out.Source)
		require.Len(t, out.Items, 1)
		assert.Equal(t, "bundled", out.Items[0].Slug)
	})

	t.Run("live error", func(t *testing.T) {
		api, svc := newTestService(t, liveRecords())
		api.status.Store(http.StatusBadGateway)

		out, err := svc.List(context.Background(), false)
		require.NoError(t, err)
		assert.Equal(t, "static", out.Source)
	})

	t.Run("not configured", func(t *testing.T) {
		live := feed.NewGateway(NewLiveSource(contentclient.New(contentclient.Options{})), feed.NewCache(time.Minute))
		static := feed.NewGateway(feed.NewStaticSourceFromItems(staticRecords()), feed.NewCache(0))
		svc := NewFeedService(live, static)

		out, err := svc.List(context.Background(), false)
		require.NoError(t, err)
		assert.Equal(t, "static", out.Source)
	})
}

func TestFeedServiceGet(t *testing.T) {
	_, svc := newTestService(t, liveRecords())

	out, err := svc.Get(context.Background(), "older", false)
	require.NoError(t, err)
	assert.Equal(t, "live", out.Source)
	assert.Equal(t, "Older", out.Item.Title)

	out, err = svc.Get(context.Background(), "bundled", false)
	require.NoError(t, err)
	assert.Equal(t, "static", out.Source)

	_, err = svc.Get(context.Background(), "missing", false)
	assert.ErrorIs(t, err, feed.ErrNotFound)

	_, err = svc.Get(context.Background(), "  ", false)
	assert.ErrorIs(t, err, feed.ErrInvalidSlug)
}

func TestFeedServiceClearCache(t *testing.T) {
	api, svc := newTestService(t, liveRecords())

	_, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, svc.CacheStats().Populated)

	svc.ClearCache()
	assert.False(t, svc.CacheStats().Populated)

	_, err = svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int32(2), api.calls.Load())
}

func TestLiveSourceMapsClientErrors(t *testing.T) {
	src := NewLiveSource(contentclient.New(contentclient.Options{}))

	_, err := src.FetchAll(context.Background())
	assert.ErrorIs(t, err, feed.ErrSourceUnavailable)

	_, client := newContentAPI(t, liveRecords())
	src = NewLiveSource(client)

	item, err := src.FetchBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, item)

	item, err = src.FetchBySlug(context.Background(), "newer")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "r2", item.ID)
}
