// Package requestid tags HTTP requests with an identifier that shows up in
// the response headers and in the access log.
package requestid

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

// Header carries the request ID in both directions
const Header = "X-Request-ID"

const contextKey = "requestid"

// maxLen bounds inbound IDs we're willing to echo back
const maxLen = 128

// New generates a new random request ID.
func New() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("could not generate random bytes for request ID: %v", err)
	}
	return hex.EncodeToString(bytes)
}

// Middleware reuses a sane inbound [Header] or generates a new ID, then
// exposes it to handlers, the response, and slog-gin's access log line.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var id = c.GetHeader(Header)
		if id == "" || len(id) > maxLen {
			id = New()
		}
		c.Set(contextKey, id)
		c.Header(Header, id)
		sloggin.AddCustomAttributes(c, slog.String("request.id", id))
		c.Next()
	}
}

// Get returns the request ID set by [Middleware], or "" if there is none
func Get(c *gin.Context) string {
	return c.GetString(contextKey)
}
