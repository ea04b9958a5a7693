package catalog

import (
	"sort"
	"strings"

	"g2-storefront/internal/domain"
)

// AllFilter is the sentinel meaning "no category/brand filter".
const AllFilter = "All"

// Sort orders accepted by the store listing.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
)

// Criteria holds the user-selected search/filter/sort inputs for the
// store listing. The zero value plus AllFilter sentinels means
// "everything, featured first".
type Criteria struct {
	Query    string
	Category string
	Brand    string
	Sort     string
}

// DefaultCriteria returns the listing's initial state.
func DefaultCriteria() Criteria {
	return Criteria{Category: AllFilter, Brand: AllFilter, Sort: SortFeatured}
}

// Apply filters and orders the product list for display. It is a pure
// function: the input slice is not modified.
//
// Search matches the query case-insensitively against name, description
// and brand; any hit keeps the product. Category and brand filters are
// exact matches unless set to AllFilter. The sort is stable, so ties
// keep their catalog order.
func Apply(products []domain.Product, c Criteria) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(c.Query))

	for _, p := range products {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if c.Category != "" && c.Category != AllFilter && p.Category != c.Category {
			continue
		}
		if c.Brand != "" && c.Brand != AllFilter && p.Brand != c.Brand {
			continue
		}
		filtered = append(filtered, p)
	}

	switch c.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortNewest:
		sortBadgeFirst(filtered, domain.BadgeNew)
	default:
		sortBadgeFirst(filtered, domain.BadgeBestseller)
	}

	return filtered
}

func matchesQuery(p domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Brand), query)
}

// sortBadgeFirst floats products carrying the given badge ahead of all
// others, keeping relative order within each group.
func sortBadgeFirst(products []domain.Product, badge string) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Badge == badge && products[j].Badge != badge
	})
}
