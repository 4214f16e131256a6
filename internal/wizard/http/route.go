package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the booking wizard session routes.
// createLimiter throttles session creation per client IP.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, createLimiter gin.HandlerFunc) {
	group := g.Group("/booking-sessions")

	group.POST("", createLimiter, h.Create) // Start a wizard session
	group.GET("/:id", h.Get)                // Current state
	group.POST("/:id/service", h.SelectService)
	group.POST("/:id/date", h.SelectDate)
	group.POST("/:id/time", h.SelectTime)
	group.POST("/:id/back", h.GoBack)
	group.PATCH("/:id/details", h.UpdateField)
	group.POST("/:id/submit", h.Submit)
	group.POST("/:id/reset", h.Reset)
}
