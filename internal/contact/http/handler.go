package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/probikes/probikes-backend/internal/contact"
)

type Handler struct {
	service *contact.Service
}

func NewHandler(service *contact.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SubmitMessage(c *gin.Context) {
	var body ContactRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	h.service.AcceptMessage(contact.Message{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Body:    body.Body,
	})

	c.JSON(http.StatusAccepted, AcceptedResponse{Status: "accepted"})
}

func (h *Handler) SubscribeNewsletter(c *gin.Context) {
	var body NewsletterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	h.service.AcceptNewsletterSignup(body.Email)

	c.JSON(http.StatusAccepted, AcceptedResponse{Status: "subscribed"})
}
