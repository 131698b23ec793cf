package router

import (
	"github.com/gin-gonic/gin"

	"github.com/FutureNHS/futurenhs-platform/internal/http/handler"
)

// WorkspaceRouter sets up workspace routes. Creating a workspace and changing
// membership act on behalf of the requester and need an identity.
func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler, identity gin.HandlerFunc) {
	rg.POST("", identity, h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/:id/members", h.Members)
	rg.PUT("/:id/members/:userId", identity, h.ChangeMembership)
	rg.GET("/:id/admins/:userId", h.IsAdmin)
}
