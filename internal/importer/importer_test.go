package importer

import (
	"context"
	"strings"
	"testing"

	"g2-storefront/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,name,description,brand,category,price,originalPrice,image,badge,inStock
tripod-01,Carbon Tripod,Lightweight travel tripod,SmallRig,Accessories,8990,10990,https://example.com/tripod.jpg,Sale,true
mic-01,Shotgun Mic,,RODE,Microphones,14990,,https://example.com/mic.jpg,,false
`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}

	first := repo.items[0]
	if first.ID != "tripod-01" || first.Price != 8990 || first.OriginalPrice != 10990 {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if first.Badge != domain.BadgeSale || !first.InStock {
		t.Fatalf("expected Sale badge in stock, got %+v", first)
	}

	second := repo.items[1]
	if second.OriginalPrice != 0 || second.Badge != "" || second.InStock {
		t.Fatalf("expected bare out-of-stock product, got %+v", second)
	}
}

func TestCSVImporter_SkipsBlankRows(t *testing.T) {
	csvData := `id,name,description,brand,category,price,originalPrice,image,badge,inStock
tripod-01,Carbon Tripod,,SmallRig,Accessories,8990,,,,true
,,,,,,,,,
`

	repo := &stubProductRepo{}
	count, err := NewCSVImporter(strings.NewReader(csvData), repo).Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 product imported, got %d", count)
	}
}

func TestCSVImporter_RejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"unknown badge", `tripod-01,Carbon Tripod,,SmallRig,Accessories,8990,,,Shiny,true`},
		{"discount below price", `tripod-01,Carbon Tripod,,SmallRig,Accessories,8990,4990,,,true`},
		{"zero price", `tripod-01,Carbon Tripod,,SmallRig,Accessories,0,,,,true`},
		{"missing brand", `tripod-01,Carbon Tripod,,,Accessories,8990,,,,true`},
		{"bad inStock", `tripod-01,Carbon Tripod,,SmallRig,Accessories,8990,,,,maybe`},
	}

	header := "id,name,description,brand,category,price,originalPrice,image,badge,inStock\n"
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubProductRepo{}
			_, err := NewCSVImporter(strings.NewReader(header+tc.row), repo).Run(context.Background())
			if err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}
