package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FutureNHS/futurenhs-platform/common/logger"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
)

type contextKey string

const authIDContextKey contextKey = "auth_id"

// RequireIdentity reads the requester's auth id from header, which the
// gateway in front of this service sets after authenticating the caller.
// Requests without a valid id are rejected with 401.
func RequireIdentity(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(header)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + header + " header"})
			return
		}
		authID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid " + header + " header"})
			return
		}

		ctx := WithAuthID(c.Request.Context(), authID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{AuthID: logger.Ptr(authID.String())})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func WithAuthID(ctx context.Context, authID model.AuthID) context.Context {
	return context.WithValue(ctx, authIDContextKey, authID)
}

// GetAuthID returns the requester set by RequireIdentity.
func GetAuthID(ctx context.Context) (model.AuthID, bool) {
	authID, ok := ctx.Value(authIDContextKey).(model.AuthID)
	return authID, ok
}
