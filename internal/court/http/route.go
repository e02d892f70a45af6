package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/courts")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Authenticated Routes ===
	authed := group.Group("")
	authed.Use(authMiddleware)
	{
		authed.GET("/mine", h.ListMine)

		// Listing management requires an owner or admin account.
		managed := authed.Group("")
		managed.Use(ownerMiddleware)
		{
			managed.POST("", h.Create)
			managed.PUT("/:id", h.Update)
			managed.DELETE("/:id", h.Delete)
		}
	}
}
