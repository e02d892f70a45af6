package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/pricing")

	authed := group.Group("")
	authed.Use(authMiddleware)
	{
		authed.POST("/quote", h.Quote)

		admin := authed.Group("/rules")
		admin.Use(adminMiddleware)
		{
			admin.GET("", h.ListRules)
			admin.POST("", h.CreateRule)
		}
	}
}
