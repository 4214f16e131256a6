package http

import (
	"github.com/probikes/probikes-backend/internal/catalog"
)

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration"`
	Price       int    `json:"price"`
}

func NewServiceResponse(s catalog.ServiceOffering) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
	}
}

type DateResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func NewDateResponse(d catalog.DateOption) DateResponse {
	return DateResponse{
		Value: d.Date.Format("2006-01-02"),
		Label: d.Label,
	}
}

type ListServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

type ListDatesResponse struct {
	Dates []DateResponse `json:"dates"`
}

type ListTimeSlotsResponse struct {
	Slots []string `json:"slots"`
}
