package router

import (
	"github.com/gin-gonic/gin"

	"github.com/FutureNHS/futurenhs-platform/internal/http/handler"
)

func EventRouter(rg *gin.RouterGroup, h *handler.EventHandler) {
	rg.GET("/schemas", h.Schemas)
	rg.GET("/schemas/:type", h.Schema)
}
