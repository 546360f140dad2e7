package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"karzone-backend/pkg/logger"
)

// CORS allows the storefront origins configured for this deployment.
// Unknown origins are rejected in production and allowed (with a log line)
// in development.
func CORS(allowedOrigins []string, environment string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" {
			if allowed[origin] {
				c.Header("Access-Control-Allow-Origin", origin)
			} else if environment != "production" {
				logger.Warn("CORS allowed (dev) unknown origin", map[string]interface{}{
					"origin": origin,
				})
				c.Header("Access-Control-Allow-Origin", origin)
			} else {
				logger.Warn("CORS rejected origin", map[string]interface{}{
					"origin": origin,
				})
				c.AbortWithStatus(http.StatusForbidden)
				return
			}

			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
