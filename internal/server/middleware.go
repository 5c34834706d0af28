package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogMiddleware logs one line per request.
func requestLogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client", c.ClientIP())
	}
}

// recoveryMiddleware turns panics into 500 envelopes instead of dropped
// connections.
func recoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("handler panic", "panic", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(500, Response{
					Code:    CodeServerError,
					Message: "internal server error",
				})
			}
		}()
		c.Next()
	}
}
