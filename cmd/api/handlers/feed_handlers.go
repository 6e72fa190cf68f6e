package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"digital-canvas/cmd/api/dto"
	"digital-canvas/cmd/api/services"
	"digital-canvas/feed"
	"digital-canvas/internal/logger"
)

const (
	cacheControlShared = "public, s-maxage=60, stale-while-revalidate=120"
	cacheControlFresh  = "no-cache, no-store, must-revalidate"
)

// parseFresh 는 잘못된 값을 false 로 취급한다.
func parseFresh(c *gin.Context) bool {
	fresh, err := strconv.ParseBool(c.DefaultQuery("fresh", "false"))
	if err != nil {
		return false
	}
	return fresh
}

func setCacheHeaders(c *gin.Context, fresh bool) {
	if fresh {
		c.Header("Cache-Control", cacheControlFresh)
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		return
	}
	c.Header("Cache-Control", cacheControlShared)
}

// @Summary List feed items
// @Description Returns every feed item, newest first. Live content is served from a short-lived cache and falls back to the bundled dataset.
// @Tags feed
// @Produce json
// @Param fresh query bool false "Bypass the cache" default(false)
// @Success 200 {object} dto.FeedListResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/feed [get]
func ListFeedHandler(svc *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fresh := parseFresh(c)

		out, err := svc.List(c.Request.Context(), fresh)
		if err != nil {
			logger.ErrorWithFields("failed to list feed items", logger.Fields{"error": err.Error(), "fresh": fresh})
			c.Header("Cache-Control", cacheControlFresh)
			c.JSON(http.StatusInternalServerError, dto.NewError("Failed to fetch feed items"))
			return
		}

		setCacheHeaders(c, fresh)
		c.JSON(http.StatusOK, dto.FeedListResponseDTO{
			Success:   true,
			Data:      out.Items,
			Cached:    !fresh,
			Source:    out.Source,
			Timestamp: out.Timestamp,
		})
	}
}

// @Summary Get a feed item
// @Description Returns a single feed item by slug.
// @Tags feed
// @Produce json
// @Param slug path string true "Feed item slug"
// @Param fresh query bool false "Bypass the cache" default(false)
// @Success 200 {object} dto.FeedItemResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/feed/{slug} [get]
func GetFeedItemHandler(svc *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fresh := parseFresh(c)
		slug := c.Param("slug")

		out, err := svc.Get(c.Request.Context(), slug, fresh)
		if err != nil {
			c.Header("Cache-Control", cacheControlFresh)
			switch {
			case errors.Is(err, feed.ErrInvalidSlug):
				c.JSON(http.StatusBadRequest, dto.NewError("Invalid slug"))
			case errors.Is(err, feed.ErrNotFound):
				c.JSON(http.StatusNotFound, dto.NewError("Feed item not found"))
			default:
				logger.ErrorWithFields("failed to get feed item", logger.Fields{"slug": slug, "error": err.Error()})
				c.JSON(http.StatusInternalServerError, dto.NewError("Failed to fetch feed item"))
			}
			return
		}

		setCacheHeaders(c, fresh)
		c.JSON(http.StatusOK, dto.FeedItemResponseDTO{
			Success:   true,
			Data:      out.Item,
			Cached:    !fresh,
			Source:    out.Source,
			Timestamp: out.Timestamp,
		})
	}
}

// @Summary Clear the feed cache
// @Description Drops the cached live feed so the next request refetches it.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 401 {object} dto.ErrorResponseDTO
// @Router /api/feed/cache/clear [post]
func ClearFeedCacheHandler(svc *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.ClearCache()
		logger.InfoWithFields("feed cache cleared", logger.Fields{"client_ip": c.ClientIP()})
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Success: true, Message: "feed cache cleared"})
	}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponseDTO
// @Router /health [get]
func HealthHandler(svc *services.FeedService, contentAPIConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := svc.CacheStats()

		cache := dto.CacheStatusDTO{
			Populated:  stats.Populated,
			Fresh:      stats.Fresh,
			Items:      stats.Items,
			TTLSeconds: int(stats.TTL.Seconds()),
		}
		if stats.Populated {
			storedAt := stats.StoredAt
			cache.StoredAt = &storedAt
		}

		c.JSON(http.StatusOK, dto.HealthResponseDTO{
			Status:          "ok",
			ContentAPIReady: contentAPIConfigured,
			Timestamp:       svc.Now(),
			Cache:           cache,
		})
	}
}
