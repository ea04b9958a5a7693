package catalog

import (
	"context"
	"errors"
	"testing"

	"g2-storefront/internal/domain"
	"github.com/google/go-cmp/cmp"
)

type stubRepo struct {
	products []domain.Product
	listErr  error
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: "hero12", Name: "GoPro Hero 12 Black", Brand: "GoPro", Category: "Action Cameras", Price: 32990, Badge: domain.BadgeBestseller},
		{ID: "om6", Name: "DJI Osmo Mobile 6", Brand: "DJI", Category: "Gimbals", Price: 12990, Badge: domain.BadgeBestseller},
		{ID: "rs4", Name: "DJI RS 4", Brand: "DJI", Category: "Gimbals", Price: 45999, Badge: domain.BadgeHot},
		{ID: "hero11", Name: "GoPro Hero 11 Black", Brand: "GoPro", Category: "Action Cameras", Price: 27990, Badge: domain.BadgeSale},
		{ID: "mini4", Name: "DJI Mini 4 Pro", Brand: "DJI", Category: "Drones", Price: 76990, Badge: domain.BadgeNew},
		{ID: "vk20", Name: "SmallRig VK-20", Brand: "SmallRig", Category: "Accessories", Price: 4990},
	}
}

func TestServiceGetUnknownID(t *testing.T) {
	svc := New(&stubRepo{products: catalogFixture()})
	_, err := svc.Get(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceListPropagatesRepoError(t *testing.T) {
	svc := New(&stubRepo{listErr: errors.New("boom")})
	if _, err := svc.List(context.Background(), DefaultCriteria()); err == nil {
		t.Fatalf("expected repo error")
	}
}

func TestServiceRelatedSharesCategoryOrBrand(t *testing.T) {
	svc := New(&stubRepo{products: catalogFixture()})

	got, err := svc.Related(context.Background(), "rs4")
	if err != nil {
		t.Fatalf("Related: %v", err)
	}

	// om6 shares the category, mini4 the brand; hero12/hero11/vk20 share
	// neither. The product itself is excluded.
	want := []string{"om6", "mini4"}
	var gotIDs []string
	for _, p := range got {
		gotIDs = append(gotIDs, p.ID)
	}
	if diff := cmp.Diff(want, gotIDs); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestServiceRelatedCapsResults(t *testing.T) {
	products := catalogFixture()
	for _, id := range []string{"g1", "g2", "g3", "g4"} {
		products = append(products, domain.Product{ID: id, Name: id, Brand: "Other", Category: "Gimbals", Price: 100})
	}
	svc := New(&stubRepo{products: products})

	got, err := svc.Related(context.Background(), "rs4")
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(got) != relatedLimit {
		t.Fatalf("expected %d related products, got %d", relatedLimit, len(got))
	}
}

func TestServiceRelatedUnknownID(t *testing.T) {
	svc := New(&stubRepo{products: catalogFixture()})
	if _, err := svc.Related(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceBestSellers(t *testing.T) {
	svc := New(&stubRepo{products: catalogFixture()})

	got, err := svc.BestSellers(context.Background())
	if err != nil {
		t.Fatalf("BestSellers: %v", err)
	}
	var gotIDs []string
	for _, p := range got {
		gotIDs = append(gotIDs, p.ID)
	}
	// Sale, New and unbadged products stay off the home strip.
	if diff := cmp.Diff([]string{"hero12", "om6", "rs4"}, gotIDs); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestServiceCategoriesAndBrands(t *testing.T) {
	svc := New(&stubRepo{products: catalogFixture()})

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	wantCategories := []FacetCount{
		{Name: "Action Cameras", Count: 2},
		{Name: "Gimbals", Count: 2},
		{Name: "Drones", Count: 1},
		{Name: "Accessories", Count: 1},
	}
	if diff := cmp.Diff(wantCategories, categories); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}

	brands, err := svc.Brands(context.Background())
	if err != nil {
		t.Fatalf("Brands: %v", err)
	}
	wantBrands := []FacetCount{
		{Name: "GoPro", Count: 2},
		{Name: "DJI", Count: 3},
		{Name: "SmallRig", Count: 1},
	}
	if diff := cmp.Diff(wantBrands, brands); diff != "" {
		t.Fatalf("brands (-want +got):\n%s", diff)
	}
}
