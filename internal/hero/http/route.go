package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the hero carousel routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/hero")

	group.GET("", h.Current)
	group.POST("/next", h.Next)
	group.POST("/prev", h.Prev)
}
