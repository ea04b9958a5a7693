package domain

// Badge values a product can carry on the storefront. Presentational,
// but "Bestseller" and "New" also drive the featured/newest sorts.
const (
	BadgeBestseller = "Bestseller"
	BadgeHot        = "Hot"
	BadgeNew        = "New"
	BadgeSale       = "Sale"
	BadgePopular    = "Popular"
	BadgeBundle     = "Bundle"
)

// ValidBadge reports whether b is one of the known badge labels.
// The empty string means "no badge" and is valid.
func ValidBadge(b string) bool {
	switch b {
	case "", BadgeBestseller, BadgeHot, BadgeNew, BadgeSale, BadgePopular, BadgeBundle:
		return true
	}
	return false
}

type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Brand         string `json:"brand"`
	Category      string `json:"category"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"originalPrice,omitempty"`
	Image         string `json:"image"`
	Badge         string `json:"badge,omitempty"`
	InStock       bool   `json:"inStock"`
}

// Summary returns the displayable subset carried on a cart line.
func (p Product) Summary() ItemSummary {
	return ItemSummary{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}
