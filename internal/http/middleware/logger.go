package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FutureNHS/futurenhs-platform/common/id"
	"github.com/FutureNHS/futurenhs-platform/common/logger"
)

// Logger tags the request context with the workspace and target user named in
// the route, then writes one record per request: error for 5xx, warn for 4xx.
// Malformed ids are left for the handler to reject.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var fields logger.LogFields
		if wsID, err := id.Parse(c.Param("id")); err == nil {
			fields.WorkspaceID = &wsID
		}
		if userID, err := id.Parse(c.Param("userId")); err == nil {
			fields.TargetUserID = &userID
		}
		if fields != (logger.LogFields{}) {
			c.Request = c.Request.WithContext(logger.WithLogFields(c.Request.Context(), fields))
		}

		c.Next()

		status := c.Writer.Status()
		// RequireIdentity runs later in the chain and swaps the request, so
		// the requester is read back after the handlers finish.
		ctx := c.Request.Context()

		attrs := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if authID := logger.GetLogFields(ctx).AuthID; authID != nil {
			attrs = append(attrs, "requester", *authID)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.ErrorContext(ctx, "request failed", attrs...)
		case status >= 400:
			slog.WarnContext(ctx, "request rejected", attrs...)
		default:
			slog.InfoContext(ctx, "request served", attrs...)
		}
	}
}
