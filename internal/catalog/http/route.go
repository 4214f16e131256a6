package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the read-only catalog routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/catalog")

	group.GET("/services", h.ListServices)
	group.GET("/dates", h.ListDates)
	group.GET("/time-slots", h.ListTimeSlots)
}
