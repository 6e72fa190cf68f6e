package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-canvas/cmd/api/services"
	"digital-canvas/config"
	"digital-canvas/feed"
	"digital-canvas/models"
)

func newTestEngine(adminKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	bundled := []models.FeedItem{
		{ID: "b1", Slug: "bundled-post", Title: "Bundled", Type: "article", Date: "2024-01-01"},
	}
	svc := services.NewFeedService(
		feed.NewGateway(feed.NewStaticSourceFromItems(nil), feed.NewCache(time.Minute)),
		feed.NewGateway(feed.NewStaticSourceFromItems(bundled), feed.NewCache(0)),
	)

	var cfg config.AppConfig
	cfg.Server.AdminAPIKey = adminKey
	return New(cfg, svc)
}

func TestRoutes(t *testing.T) {
	r := newTestEngine("secret")

	testCases := []struct {
		name   string
		method string
		target string
		header map[string]string
		want   int
	}{
		{name: "health", method: http.MethodGet, target: "/health", want: http.StatusOK},
		{name: "feed list", method: http.MethodGet, target: "/api/feed", want: http.StatusOK},
		{name: "feed item", method: http.MethodGet, target: "/api/feed/bundled-post", want: http.StatusOK},
		{name: "feed item miss", method: http.MethodGet, target: "/api/feed/unknown", want: http.StatusNotFound},
		{name: "cache clear without key", method: http.MethodPost, target: "/api/feed/cache/clear", want: http.StatusUnauthorized},
		{
			name:   "cache clear with key",
			method: http.MethodPost,
			target: "/api/feed/cache/clear",
			header: map[string]string{"X-API-Key": "secret"},
			want:   http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		})
	}
}

func TestCacheClearDisabledWithoutAdminKey(t *testing.T) {
	r := newTestEngine("")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/feed/cache/clear", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
