package http

import (
	"github.com/probikes/probikes-backend/internal/product"
)

// ListProductsRequest defines query parameters for the gallery.
type ListProductsRequest struct {
	Category string `form:"category"`
}

type ProductResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Price         int    `json:"price"`
	DiscountPrice *int   `json:"discount_price,omitempty"`
	ImageURL      string `json:"image_url"`
	Description   string `json:"description"`
	InStock       bool   `json:"in_stock"`
}

func NewProductResponse(p product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		ImageURL:      p.ImageURL,
		Description:   p.Description,
		InStock:       p.InStock,
	}
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
