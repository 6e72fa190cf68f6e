package dto

import (
	"time"

	"digital-canvas/models"
)

// FeedListResponseDTO is the envelope of GET /api/feed.
type FeedListResponseDTO struct {
	Success bool                         `json:"success" example:"true"`
	Data    []models.TransformedFeedItem `json:"data"`
	// Cached is false when the caller asked for fresh data.
	Cached    bool      `json:"cached" example:"true"`
	Source    string    `json:"source" example:"live"`
	Timestamp time.Time `json:"timestamp"`
}

// FeedItemResponseDTO is the envelope of GET /api/feed/{slug}.
type FeedItemResponseDTO struct {
	Success   bool                       `json:"success" example:"true"`
	Data      models.TransformedFeedItem `json:"data"`
	Cached    bool                       `json:"cached" example:"true"`
	Source    string                     `json:"source" example:"live"`
	Timestamp time.Time                  `json:"timestamp"`
}

type CacheStatusDTO struct {
	Populated  bool       `json:"populated"`
	Fresh      bool       `json:"fresh"`
	StoredAt   *time.Time `json:"stored_at,omitempty"`
	Items      int        `json:"items"`
	TTLSeconds int        `json:"ttl_seconds"`
}

type HealthResponseDTO struct {
	Status          string         `json:"status" example:"ok"`
	ContentAPIReady bool           `json:"content_api_configured"`
	Timestamp       time.Time      `json:"timestamp"`
	Cache           CacheStatusDTO `json:"cache"`
}
