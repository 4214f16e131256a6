package http

import (
	"github.com/probikes/probikes-backend/internal/product"
)

type SlideResponse struct {
	Index    int    `json:"index"`
	Count    int    `json:"count"`
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	ImageURL string `json:"image_url"`
	Tagline  string `json:"tagline"`
}

func NewSlideResponse(p product.Product, index, count int) SlideResponse {
	return SlideResponse{
		Index:    index,
		Count:    count,
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Tagline:  p.Description,
	}
}
