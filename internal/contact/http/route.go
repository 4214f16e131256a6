package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public form routes behind a per-IP limiter.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, limiter gin.HandlerFunc) {
	g.POST("/contact", limiter, h.SubmitMessage)
	g.POST("/newsletter", limiter, h.SubscribeNewsletter)
}
