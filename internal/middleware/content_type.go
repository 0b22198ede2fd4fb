package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// RequireContentType rejects requests whose Content-Type media type is not
// mediaType. Parameters such as charset are ignored.
func RequireContentType(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Content-Type") == "" {
			_ = c.Error(fmt.Errorf("%w: Content-Type must be %s", ErrUnsupportedMediaType, mediaType))
			c.Abort()
			return
		}

		if got := c.ContentType(); got != mediaType {
			_ = c.Error(fmt.Errorf("%w: Content-Type must be %s, got %s", ErrUnsupportedMediaType, mediaType, got))
			c.Abort()
			return
		}

		c.Next()
	}
}
