package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery logs a panic and lets onPanic write the error response.
func Recovery(logger *zap.Logger, onPanic gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("requestID", c.GetString(RequestIDKey)),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Stack("stack"))
				onPanic(c)
			}
		}()
		c.Next()
	}
}
