package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"digital-canvas/cmd/api/trace"
	"digital-canvas/internal/logger"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
)

// RequestTrace는 모든 inbound 요청에 Request ID를 보장하고 컨텍스트/응답 헤더에
// 저장한 뒤, 요청 완료 시 접근 로그를 남긴다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		// inbound 는 span 0, content API 호출은 1,2,3,... 로 증가한다.
		ctx := trace.WithRequestAndSpan(c.Request.Context(), requestID, 0)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, trace.CurrentSpanID(ctx))

		c.Next()

		fields := logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"query":      c.Request.URL.RawQuery,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"client_ip":  c.ClientIP(),
			"request_id": requestID,
			"span_id":    trace.CurrentSpanID(c.Request.Context()),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.InfoWithFields("completed request", fields)
	}
}
