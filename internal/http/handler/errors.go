package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FutureNHS/futurenhs-platform/common/id"
	"github.com/FutureNHS/futurenhs-platform/internal/http/middleware"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/FutureNHS/futurenhs-platform/internal/service"
)

// respondError maps service errors to statuses. Caller errors carry their
// message; anything else is logged and answered with fallback only.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidOperation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// pathID parses the snowflake id in the named path parameter, answering 400
// when it is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	v, err := id.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

// requester returns the identity RequireIdentity stored on the request.
func requester(c *gin.Context) (model.AuthID, bool) {
	authID, ok := middleware.GetAuthID(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing requester identity"})
	}
	return authID, ok
}
