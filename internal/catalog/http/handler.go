package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/probikes/probikes-backend/internal/catalog"
)

type Handler struct {
	provider *catalog.Provider
}

func NewHandler(provider *catalog.Provider) *Handler {
	return &Handler{provider: provider}
}

func (h *Handler) ListServices(c *gin.Context) {
	services := h.provider.Services()

	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}

	c.JSON(http.StatusOK, ListServicesResponse{Services: items})
}

func (h *Handler) ListDates(c *gin.Context) {
	dates := h.provider.AvailableDates()

	items := make([]DateResponse, len(dates))
	for i, d := range dates {
		items[i] = NewDateResponse(d)
	}

	c.JSON(http.StatusOK, ListDatesResponse{Dates: items})
}

func (h *Handler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, ListTimeSlotsResponse{Slots: h.provider.TimeSlots()})
}
