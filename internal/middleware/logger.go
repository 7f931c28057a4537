package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key under which the request id is stored.
// Handlers read it back through this constant when reporting server-side
// failures, so the middleware and handler layers agree on one name.
const RequestIDKey = "request_id"

// RequestIDHeader is the wire header carrying the request id.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, minting one when the client did
// not send its own, and echoes it back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger writes one line per request: id, method, path, status and
// latency. Analysis requests can take minutes waiting on the upstream model,
// so latency is rounded to keep the lines scannable.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("[%s] %s %s %d %s",
			c.GetString(RequestIDKey),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
		)
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
