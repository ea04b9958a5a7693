package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"g2-storefront/internal/domain"
	"g2-storefront/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTable(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE products`); err != nil {
		t.Fatalf("truncate products: %v", err)
	}
}

func TestPostgresUpsertListGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTable(ctx, t, pool)

	repo := NewPostgres(pool, nil).(interface {
		Repository
		Writer
	})

	_, err := repo.Upsert(ctx, domain.Product{
		ID:       "test-cam",
		Name:     "Test Cam",
		Brand:    "TestBrand",
		Category: "Action Cameras",
		Price:    9990,
		Image:    "/images/test-cam.jpg",
		Badge:    domain.BadgeNew,
		InStock:  true,
	})
	if err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}

	// Upsert on the same id updates in place.
	_, err = repo.Upsert(ctx, domain.Product{
		ID:            "test-cam",
		Name:          "Test Cam v2",
		Description:   "updated",
		Brand:         "TestBrand",
		Category:      "Action Cameras",
		Price:         8990,
		OriginalPrice: 9990,
		Image:         "/images/test-cam.jpg",
		Badge:         domain.BadgeSale,
		InStock:       true,
	})
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 product, got %d", len(list))
	}

	got, err := repo.GetByID(ctx, "test-cam")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Test Cam v2" || got.Price != 8990 || got.OriginalPrice != 9990 || got.Badge != domain.BadgeSale {
		t.Fatalf("unexpected product after update: %+v", got)
	}

	if _, err := repo.GetByID(ctx, "absent"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTable(ctx, t, pool)

	repo := NewPostgres(pool, nil).(interface {
		Repository
		Writer
	})

	for _, id := range []string{"c-third", "a-first", "b-second"} {
		if _, err := repo.Upsert(ctx, domain.Product{
			ID: id, Name: id, Brand: "B", Category: "C", Price: 100, Image: "/i.jpg", InStock: true,
		}); err != nil {
			t.Fatalf("Upsert %s: %v", id, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"c-third", "a-first", "b-second"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, list[i].ID)
		}
	}
}
