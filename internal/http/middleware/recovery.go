package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/FutureNHS/futurenhs-platform/common/logger"
)

// Recovery turns a handler panic into an opaque 500. The stack goes to the
// log with the operation and requester already on the context.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
				Component: "http.recovery",
			})
			attrs := []any{
				"panic", rec,
				"route", c.FullPath(),
				"stack", string(debug.Stack()),
			}
			if authID := logger.GetLogFields(ctx).AuthID; authID != nil {
				attrs = append(attrs, "requester", *authID)
			}
			slog.ErrorContext(ctx, "handler panicked", attrs...)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "internal server error",
			})
		}()
		c.Next()
	}
}
