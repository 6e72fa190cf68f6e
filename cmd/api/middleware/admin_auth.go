package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"digital-canvas/cmd/api/dto"
	"digital-canvas/internal/logger"
)

const HeaderAPIKey = "X-API-Key"

// AdminAPIKey 는 X-API-Key 또는 Authorization: Bearer <key> 헤더가 설정된
// 관리자 키와 일치하는지 확인한다.
func AdminAPIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(HeaderAPIKey)
		if provided == "" {
			parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				provided = strings.TrimSpace(parts[1])
			}
		}

		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("API key required"))
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			logger.WarnWithFields("invalid admin api key", logger.Fields{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("Invalid API key"))
			return
		}

		c.Next()
	}
}
