package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS 는 rs/cors 를 gin 미들웨어로 감싼다. allowedOrigins 가 비어 있으면 모든 Origin 을 허용한다.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	origins := allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", HeaderAPIKey, headerRequestID},
		ExposedHeaders: []string{headerRequestID},
		MaxAge:         600,
	})

	return func(c *gin.Context) {
		handler.HandlerFunc(c.Writer, c.Request)

		// preflight 응답은 rs/cors 가 이미 작성했다.
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.Abort()
			return
		}
		c.Next()
	}
}
