package router

import (
	"github.com/gin-gonic/gin"

	"github.com/FutureNHS/futurenhs-platform/internal/http/handler"
	"github.com/FutureNHS/futurenhs-platform/internal/http/middleware"
	"github.com/FutureNHS/futurenhs-platform/internal/service"
)

type RouterConfig struct {
	// IdentityHeader carries the requester's auth id, set by the gateway.
	IdentityHeader string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	identity := middleware.RequireIdentity(cfg.IdentityHeader)

	v1 := router.Group("/api/v1")
	{
		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
		WorkspaceRouter(v1.Group("/workspaces"), workspaceHandler, identity)

		userHandler := handler.NewUserHandler(services.Users())
		UserRouter(v1.Group("/users"), userHandler, identity)

		EventRouter(v1.Group("/events"), handler.NewEventHandler())
	}
}
