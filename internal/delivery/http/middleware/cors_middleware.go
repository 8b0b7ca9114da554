package middleware

import (
	"net/http"

	"portfolio-backend/config"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers so the Vite front end can call the API
// from its own origin. Only the configured frontend origin is allowed in
// production; localhost dev servers are additionally allowed in development.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := map[string]bool{
		cfg.FrontendURL: true,
	}
	if cfg.IsDevelopment() {
		allowed["http://localhost:5173"] = true
		allowed["http://127.0.0.1:5173"] = true
		allowed["http://localhost:3000"] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Same-origin requests carry no Origin header - allow
		isAllowed := origin == "" || allowed[origin]

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}

		// Ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
