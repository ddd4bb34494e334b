package product

import (
	"context"
	"time"

	"ring-shop-backend/internal/catalog"
	"ring-shop-backend/internal/goldprice"
)

// Service runs the pricing pipeline: read catalog, fetch gold price,
// derive products, filter.
type Service struct {
	catalog catalog.Repository
	gold    goldprice.Source
}

func NewService(repo catalog.Repository, gold goldprice.Source) *Service {
	return &Service{catalog: repo, gold: gold}
}

// Listing is the response body shared by both product routes.
type Listing struct {
	Products  []Product `json:"products"`
	GoldPrice float64   `json:"goldPrice"`
	Timestamp string    `json:"timestamp"`
}

// List prices the catalog against the current gold quote and applies
// the optional filter. The catalog read fails open (a broken source is
// an empty catalog), the gold price does not: on goldprice.ErrUnavailable
// the whole call fails with no partial results.
func (s *Service) List(ctx context.Context, filter *Filter) (Listing, error) {
	entries := s.catalog.ReadAll()

	quote, err := s.gold.PricePerGram(ctx)
	if err != nil {
		return Listing{}, err
	}

	products := make([]Product, 0, len(entries))
	for _, e := range entries {
		p := Price(e, quote.PerGram)
		if !filter.Match(p) {
			continue
		}
		products = append(products, p)
	}

	return Listing{
		Products:  products,
		GoldPrice: quote.PerGram,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
