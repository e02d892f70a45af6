package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// Free-slot listing is public; it lives under the courts resource.
	g.GET("/courts/:id/availability", h.CourtAvailability)

	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("/my", h.ListMine)
		group.GET("/:id", h.Get)
		group.POST("/:id/cancel", h.Cancel)
	}
}
