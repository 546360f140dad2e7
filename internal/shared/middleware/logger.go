package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Logger emits one structured line per request. For authenticated
// routes it includes the user id set by AuthMiddleware, so booking and
// review activity can be traced per account.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency_ms", latency).
			Str("ip", c.ClientIP())

		if userID, ok := UserIDFromContext(c); ok && userID != uuid.Nil {
			event = event.Str("user_id", userID.String())
		}

		event.Msg("HTTP Request")
	}
}
