package router

import (
	"github.com/gin-gonic/gin"

	"github.com/FutureNHS/futurenhs-platform/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler, identity gin.HandlerFunc) {
	rg.Use(identity)
	{
		rg.POST("", h.Create)
		rg.GET("/me", h.Me)
		rg.PUT("/:authId/platform-admin", h.SetPlatformAdmin)
	}
}
