// structured request logging with a correlation id

package middlewares

import (
	"time"

	"github.com/Abdulwakil1/Creatorverse/global"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger tags every request with an id (reusing an incoming
// X-Request-ID) and logs method, path, status and duration once it is done.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // kept before handlers can rewrite it

		id := c.GetHeader(global.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(global.CtxRequestIDKey, id)
		c.Header(global.HeaderRequestID, id)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// RequestID returns the id RequestLogger stored on c, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(global.CtxRequestIDKey)
}
