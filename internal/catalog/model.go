package catalog

import "time"

// ServiceOffering is a bookable workshop service.
type ServiceOffering struct {
	ID          string
	Name        string
	Description string
	Duration    string
	Price       int
}

// DateOption is a selectable appointment date with its display label.
type DateOption struct {
	Date  time.Time
	Label string
}
