package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-canvas/cmd/api/trace"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestTraceGeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(RequestTrace())

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = trace.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, seen, 32)
	assert.Equal(t, seen, w.Header().Get(headerRequestID))
	assert.Equal(t, "0", w.Header().Get(headerSpanID))
}

func TestRequestTraceKeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(RequestTrace())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(headerRequestID, "abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc123", w.Header().Get(headerRequestID))
}

func TestAdminAPIKey(t *testing.T) {
	r := gin.New()
	r.POST("/admin", AdminAPIKey("secret"), func(c *gin.Context) { c.Status(http.StatusOK) })

	testCases := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{name: "missing", want: http.StatusUnauthorized},
		{name: "header key", header: map[string]string{HeaderAPIKey: "secret"}, want: http.StatusOK},
		{name: "bearer", header: map[string]string{"Authorization": "Bearer secret"}, want: http.StatusOK},
		{name: "wrong key", header: map[string]string{HeaderAPIKey: "nope"}, want: http.StatusUnauthorized},
		{name: "basic scheme", header: map[string]string{"Authorization": "Basic secret"}, want: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://digitalcanvas.community"}))
	r.GET("/api/feed", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
		req.Header.Set("Origin", "https://digitalcanvas.community")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://digitalcanvas.community", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/feed", nil)
		req.Header.Set("Origin", "https://digitalcanvas.community")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	})
}
