package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the site preference routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/preferences")

	group.GET("/theme", h.GetTheme)
	group.PUT("/theme", h.UpdateTheme)
}
