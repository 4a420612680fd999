package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"intern-portal/internal/shared/server/respond"
)

// CORS admits cross-origin requests from exactly one origin. Requests that
// carry any other Origin are rejected with 403; requests without an Origin
// header (same-origin, curl) pass through untouched.
func CORS(allowedOrigin string) gin.HandlerFunc {
	allowed := strings.TrimRight(strings.TrimSpace(allowedOrigin), "/")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if allowed == "" || origin != allowed {
				respond.Message(c, http.StatusForbidden, "Origin not allowed")
				return
			}
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
			h.Set("Access-Control-Expose-Headers", "X-Request-Id")
			h.Set("Access-Control-Max-Age", "600")
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}

		c.Next()
	}
}
