package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/probikes/probikes-backend/internal/pkg/response"
	"github.com/probikes/probikes-backend/internal/preference"
)

type Handler struct {
	service *preference.Service
}

func NewHandler(service *preference.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetTheme(c *gin.Context) {
	prefs := h.service.Current()
	c.JSON(http.StatusOK, ThemeResponse{DarkMode: prefs.DarkMode})
}

func (h *Handler) UpdateTheme(c *gin.Context) {
	var body UpdateThemeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	prefs, err := h.service.SetDarkMode(*body.DarkMode)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{DarkMode: prefs.DarkMode})
}
