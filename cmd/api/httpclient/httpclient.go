package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"digital-canvas/cmd/api/trace"
	"digital-canvas/internal/logger"
)

const defaultTimeout = 10 * time.Second

// Config는 HTTP 클라이언트 공통 설정이다.
// Headers 는 모든 요청에 설정되는 고정 헤더(API 키, Origin 등)다.
type Config struct {
	Timeout   time.Duration
	Headers   map[string]string
	Transport http.RoundTripper
}

// loggingRoundTripper는 모든 아웃바운드 호출을 로깅하고 X-Request-Id 를 전파한다.
type loggingRoundTripper struct {
	inner   http.RoundTripper
	headers map[string]string
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// RoundTripper 는 원본 요청을 변경하면 안 되므로 복제한다.
	req = req.Clone(req.Context())
	for k, v := range l.headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	requestID, spanID := trace.NextSpanID(req.Context())
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	fields := logger.Fields{
		"method":     req.Method,
		"host":       req.URL.Host,
		"path":       req.URL.Path,
		"query":      req.URL.RawQuery,
		"request_id": requestID,
		"span_id":    spanID,
	}

	resp, err := l.inner.RoundTrip(req)
	fields["duration"] = time.Since(start).String()
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	if resp.StatusCode >= http.StatusBadRequest {
		logger.WarnWithFields("httpclient request returned error status", fields)
	} else {
		logger.DebugWithFields("httpclient request success", fields)
	}
	return resp, nil
}

// BaseClient는 공통 HTTP 클라이언트와 baseURL을 묶어 요청 생성을 돕는다.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewBaseClient(baseURL string, cfg Config) *BaseClient {
	return &BaseClient{
		HTTPClient: New(cfg),
		BaseURL:    baseURL,
	}
}

// NewRequest는 baseURL과 상대 경로, 쿼리로 새 요청을 만든다.
// relPath 에 쿼리(?)를 넣으면 path.Join 이 손상시키므로 에러를 반환한다.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}
	if query != nil {
		q := base.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		base.RawQuery = q.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// New는 주어진 설정으로 http.Client를 생성한다. Timeout 이 0이면 10초.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: transport, headers: cfg.Headers},
	}
}
