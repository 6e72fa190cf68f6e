package contentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"digital-canvas/cmd/api/httpclient"
	"digital-canvas/models"
)

// Client는 Airtable 을 감싼 content API 를 호출하는 얇은 클라이언트다.
//
// 요청 형식: GET <base>?table=THEFEED[&slug=<slug>]
// 응답 형식: {"success": bool, "data": FeedItem | FeedItem[]}
type Client struct {
	base       *httpclient.BaseClient
	table      string
	configured bool
}

var (
	ErrNotFound      = errors.New("resource not found")
	ErrNotConfigured = errors.New("content api is not configured")
)

const (
	HeaderAPIKey = "X-Api-Key"
	DefaultTable = "THEFEED"
)

type Options struct {
	BaseURL string
	APIKey  string
	// Origin 은 content API 의 CORS 검증을 통과하기 위해 함께 전송된다.
	Origin    string
	Table     string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// New는 Options 로 클라이언트를 만든다. BaseURL 이나 APIKey 가 비어 있으면
// 모든 호출이 ErrNotConfigured 를 반환한다.
func New(opts Options) *Client {
	table := opts.Table
	if table == "" {
		table = DefaultTable
	}

	headers := map[string]string{
		"Accept":     "application/json",
		HeaderAPIKey: opts.APIKey,
	}
	if opts.Origin != "" {
		headers["Origin"] = opts.Origin
	}

	return &Client{
		base: httpclient.NewBaseClient(opts.BaseURL, httpclient.Config{
			Timeout:   opts.Timeout,
			Headers:   headers,
			Transport: opts.Transport,
		}),
		table:      table,
		configured: opts.BaseURL != "" && opts.APIKey != "",
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.configured
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// ListFeedItems는 피드 테이블의 모든 레코드를 조회한다. 정렬은 보장되지 않는다.
func (c *Client) ListFeedItems(ctx context.Context) ([]models.FeedItem, error) {
	data, err := c.get(ctx, url.Values{"table": {c.table}}, "ListFeedItems")
	if err != nil {
		return nil, err
	}
	if isNull(data) {
		return []models.FeedItem{}, nil
	}

	var items []models.FeedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("content-api ListFeedItems: decode data: %w", err)
	}
	return items, nil
}

// GetFeedItemBySlug는 slug 필터로 단건을 조회한다.
// 일치하는 레코드가 없으면 ErrNotFound 를 반환한다.
func (c *Client) GetFeedItemBySlug(ctx context.Context, slug string) (models.FeedItem, error) {
	data, err := c.get(ctx, url.Values{"table": {c.table}, "slug": {slug}}, "GetFeedItemBySlug")
	if err != nil {
		return models.FeedItem{}, err
	}
	if isNull(data) {
		return models.FeedItem{}, ErrNotFound
	}

	// 필터 요청에도 배열로 응답하는 경우가 있어 두 형태를 모두 받는다.
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var items []models.FeedItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return models.FeedItem{}, fmt.Errorf("content-api GetFeedItemBySlug: decode data: %w", err)
		}
		for _, item := range items {
			if item.Slug == slug {
				return item, nil
			}
		}
		return models.FeedItem{}, ErrNotFound
	}

	var item models.FeedItem
	if err := json.Unmarshal(data, &item); err != nil {
		return models.FeedItem{}, fmt.Errorf("content-api GetFeedItemBySlug: decode data: %w", err)
	}
	if item.Slug != slug {
		return models.FeedItem{}, ErrNotFound
	}
	return item, nil
}

func (c *Client) get(ctx context.Context, query url.Values, op string) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	req, err := c.base.NewRequest(ctx, http.MethodGet, "", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content-api %s: %w", op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("content-api %s: status=%d body=%s", op, resp.StatusCode, string(body))
	}

	var out envelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("content-api %s: decode envelope: %w", op, err)
	}
	if !out.Success {
		return nil, fmt.Errorf("content-api %s: unsuccessful response: %s", op, out.Error)
	}
	return out.Data, nil
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
