package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the product gallery routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/products")

	group.GET("", h.List)
	group.GET("/categories", h.ListCategories)
}
