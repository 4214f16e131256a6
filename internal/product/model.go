package product

// Category is a storefront filter tab.
type Category struct {
	ID   string
	Name string
}

// Product is a storefront item. DiscountPrice is nil when not on sale.
type Product struct {
	ID            int
	Name          string
	Category      string
	Price         int
	DiscountPrice *int
	ImageURL      string
	Description   string
	InStock       bool
	Featured      bool
}
