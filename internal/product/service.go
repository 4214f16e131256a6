package product

// CategoryAll is the pseudo-category matching every product.
const CategoryAll = "all"

var categories = []Category{
	{ID: CategoryAll, Name: "All Bikes"},
	{ID: "road", Name: "Road Bikes"},
	{ID: "mountain", Name: "Mountain Bikes"},
	{ID: "electric", Name: "Electric Bikes"},
	{ID: "hybrid", Name: "Hybrid Bikes"},
	{ID: "accessories", Name: "Accessories"},
}

func intPtr(v int) *int { return &v }

var products = []Product{
	{
		ID:            1,
		Name:          "Alpine Explorer Pro",
		Category:      "mountain",
		Price:         1899,
		DiscountPrice: intPtr(1699),
		ImageURL:      "https://images.unsplash.com/photo-1511994298241-608e28f14fde?auto=format&fit=crop&w=1000&q=80",
		Description:   "Premium mountain bike with advanced suspension system for the most challenging trails.",
		InStock:       true,
		Featured:      true,
	},
	{
		ID:          2,
		Name:        "Urban Glide 7",
		Category:    "hybrid",
		Price:       899,
		ImageURL:    "https://images.unsplash.com/photo-1532298229144-0ec0c57515c7?auto=format&fit=crop&w=1000&q=80",
		Description: "Perfect city commuter with comfortable riding position and reliable components.",
		InStock:     true,
		Featured:    true,
	},
	{
		ID:            3,
		Name:          "Velocity Carbon Elite",
		Category:      "road",
		Price:         2499,
		DiscountPrice: intPtr(2299),
		ImageURL:      "https://images.unsplash.com/photo-1485965120184-e220f721d03e?auto=format&fit=crop&w=1000&q=80",
		Description:   "Lightweight carbon frame road bike designed for speed and performance.",
		InStock:       false,
		Featured:      true,
	},
	{
		ID:          4,
		Name:        "E-Power Cruiser",
		Category:    "electric",
		Price:       2899,
		ImageURL:    "https://images.unsplash.com/photo-1571068316344-75bc76f77890?auto=format&fit=crop&w=1000&q=80",
		Description: "Powerful electric bike with extended range battery and smooth motor assistance.",
		InStock:     true,
		Featured:    true,
	},
}

// Service serves the fixed storefront inventory.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Categories returns the filter tabs in display order.
func (s *Service) Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// List returns products for a category. The "all" category (or an empty
// string) matches everything; an unknown category matches nothing.
func (s *Service) List(category string) []Product {
	if category == "" || category == CategoryAll {
		out := make([]Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the hero rotation items.
func (s *Service) Featured() []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
