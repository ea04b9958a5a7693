package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"g2-storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts one product per row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var imported int
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if p == nil {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, *p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.ID, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	id := pick(record, index, "id")
	if id == "" {
		// Blank lines and trailing separators are skipped.
		if strings.Join(record, "") == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("row without id: %v", record)
	}

	p := domain.Product{
		ID:          id,
		Name:        pick(record, index, "name"),
		Description: pick(record, index, "description"),
		Brand:       pick(record, index, "brand"),
		Category:    pick(record, index, "category"),
		Image:       pick(record, index, "image"),
		Badge:       pick(record, index, "badge"),
	}

	price, err := pickInt(record, index, "price")
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", id, err)
	}
	p.Price = price

	original, err := pickInt(record, index, "originalPrice")
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", id, err)
	}
	p.OriginalPrice = original

	switch strings.ToLower(pick(record, index, "inStock")) {
	case "", "true", "yes", "1":
		p.InStock = true
	case "false", "no", "0":
		p.InStock = false
	default:
		return nil, fmt.Errorf("product %q: invalid inStock value", id)
	}

	if err := validate(p); err != nil {
		return nil, fmt.Errorf("product %q: %w", id, err)
	}
	return &p, nil
}

func validate(p domain.Product) error {
	if p.Name == "" || p.Brand == "" || p.Category == "" {
		return errors.New("missing required fields")
	}
	if p.Price <= 0 {
		return errors.New("price must be positive")
	}
	if p.OriginalPrice != 0 && p.OriginalPrice < p.Price {
		return errors.New("originalPrice below price")
	}
	if !domain.ValidBadge(p.Badge) {
		return fmt.Errorf("unknown badge %q", p.Badge)
	}
	return nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func pickInt(record []string, index map[string]int, key string) (int64, error) {
	raw := pick(record, index, key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}
