package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers so the Next.js frontend (port 3000) can
// talk to this backend. Origins are strictly whitelisted: production
// domains always, localhost only outside release mode.
func CORSMiddleware() gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	productionOrigins := map[string]bool{
		"https://www.talentai.app": true,
		"https://talentai.app":     true,
	}
	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:3001": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		isAllowed := productionOrigins[origin]
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}
		// Same-origin requests carry no Origin header
		if origin == "" {
			isAllowed = true
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Header("Access-Control-Max-Age", "86400")
		}
		// If not allowed, no CORS headers are sent - the browser blocks it

		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
