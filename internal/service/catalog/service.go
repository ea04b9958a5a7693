package catalog

import (
	"context"

	"g2-storefront/internal/domain"
	productrepo "g2-storefront/internal/repository/product"
)

const relatedLimit = 4

// Service answers catalog reads for the storefront: the filtered store
// listing, product detail pages, and the derived collections the
// marketing sections render.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the products matching the criteria, ordered for display.
func (s *Service) List(ctx context.Context, c Criteria) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(products, c), nil
}

// Get returns a single product, or domain.ErrNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Related picks products sharing a category or brand with the given
// product, excluding the product itself, capped at a handful for the
// "you may also like" strip.
func (s *Service) Related(ctx context.Context, id string) ([]domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	related := make([]domain.Product, 0, relatedLimit)
	for _, candidate := range products {
		if candidate.ID == p.ID {
			continue
		}
		if candidate.Category != p.Category && candidate.Brand != p.Brand {
			continue
		}
		related = append(related, candidate)
		if len(related) == relatedLimit {
			break
		}
	}
	return related, nil
}

// BestSellers returns the badged products the home page features, in
// catalog order.
func (s *Service) BestSellers(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Product
	for _, p := range products {
		switch p.Badge {
		case domain.BadgeBestseller, domain.BadgeHot, domain.BadgePopular, domain.BadgeBundle:
			out = append(out, p)
		}
	}
	return out, nil
}

// FacetCount is a filter chip: a category or brand with how many
// products carry it.
type FacetCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Categories lists distinct categories with product counts, in first-
// appearance order.
func (s *Service) Categories(ctx context.Context) ([]FacetCount, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return countFacet(products, func(p domain.Product) string { return p.Category }), nil
}

// Brands lists distinct brands with product counts, in first-appearance
// order.
func (s *Service) Brands(ctx context.Context) ([]FacetCount, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return countFacet(products, func(p domain.Product) string { return p.Brand }), nil
}

func countFacet(products []domain.Product, key func(domain.Product) string) []FacetCount {
	index := make(map[string]int)
	var out []FacetCount
	for _, p := range products {
		k := key(p)
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, FacetCount{Name: k, Count: 1})
	}
	return out
}
