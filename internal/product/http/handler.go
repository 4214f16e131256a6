package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/probikes/probikes-backend/internal/product"
)

type Handler struct {
	service *product.Service
}

func NewHandler(service *product.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	products := h.service.List(req.Category)

	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = NewProductResponse(p)
	}

	c.JSON(http.StatusOK, ListProductsResponse{Products: items})
}

func (h *Handler) ListCategories(c *gin.Context) {
	cats := h.service.Categories()

	items := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		items[i] = CategoryResponse{ID: cat.ID, Name: cat.Name}
	}

	c.JSON(http.StatusOK, ListCategoriesResponse{Categories: items})
}
