package product

import (
	"context"

	"g2-storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Writer is implemented by repositories that accept catalog updates
// (seeding, CSV import). The static catalog is read-only.
type Writer interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
