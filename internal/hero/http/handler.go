package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/probikes/probikes-backend/internal/hero"
)

type Handler struct {
	rotator *hero.Rotator
}

func NewHandler(rotator *hero.Rotator) *Handler {
	return &Handler{rotator: rotator}
}

func (h *Handler) Current(c *gin.Context) {
	slide, idx := h.rotator.Current()
	c.JSON(http.StatusOK, NewSlideResponse(slide, idx, h.rotator.Len()))
}

func (h *Handler) Next(c *gin.Context) {
	slide, idx := h.rotator.Next()
	c.JSON(http.StatusOK, NewSlideResponse(slide, idx, h.rotator.Len()))
}

func (h *Handler) Prev(c *gin.Context) {
	slide, idx := h.rotator.Prev()
	c.JSON(http.StatusOK, NewSlideResponse(slide, idx, h.rotator.Len()))
}
