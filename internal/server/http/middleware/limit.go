package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitBody caps the raw request body at limit bytes. Reads past the cap
// fail with *http.MaxBytesError; limit <= 0 disables the cap.
func LimitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
