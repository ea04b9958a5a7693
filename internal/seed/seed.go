package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	productrepo "g2-storefront/internal/repository/product"
)

// Apply loads the embedded catalog and upserts it into Postgres so a
// fresh database serves the same products the embedded mode does. It is
// idempotent via the repository upsert.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) (int, error) {
	static, err := productrepo.NewStatic()
	if err != nil {
		return 0, fmt.Errorf("load embedded catalog: %w", err)
	}
	products, err := static.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list embedded catalog: %w", err)
	}

	writer := productrepo.NewPostgres(pool, logger).(productrepo.Writer)

	var count int
	for _, p := range products {
		if _, err := writer.Upsert(ctx, p); err != nil {
			return count, fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
		count++
	}
	return count, nil
}
