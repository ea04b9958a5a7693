package product

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"g2-storefront/internal/domain"
)

//go:embed products.json
var catalogJSON []byte

// staticRepo serves the catalog embedded in the binary. This is the
// default source: the storefront carries a small, static product list
// and needs no database to run.
type staticRepo struct {
	products []domain.Product
	byID     map[string]int
}

func NewStatic() (Repository, error) {
	var products []domain.Product
	if err := json.Unmarshal(catalogJSON, &products); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("embedded catalog: product %d has no id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("embedded catalog: duplicate product id %q", p.ID)
		}
		if !domain.ValidBadge(p.Badge) {
			return nil, fmt.Errorf("embedded catalog: product %q has unknown badge %q", p.ID, p.Badge)
		}
		byID[p.ID] = i
	}

	return &staticRepo{products: products, byID: byID}, nil
}

// List returns a copy so callers can sort freely without touching the
// embedded catalog.
func (r *staticRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *staticRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.products[i]
	return &p, nil
}
