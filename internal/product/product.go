package product

import (
	"ring-shop-backend/internal/catalog"
	"ring-shop-backend/internal/money"
)

// Product is a catalog entry enriched with its computed price and a
// 5-point popularity rating. Both derived fields are pure functions of
// the entry and the gold price snapshot.
type Product struct {
	catalog.Entry
	Price      float64 `json:"price"`
	Popularity float64 `json:"popularity"`
}

// Price derives a Product from a catalog entry and the current gold
// price in USD per gram.
//
// price = round2((popularityScore + 1) * weight * goldPerGram); the +1
// keeps the price positive even at a zero popularity score.
// popularity = round1(popularityScore * 5).
func Price(e catalog.Entry, goldPerGram float64) Product {
	return Product{
		Entry:      e,
		Price:      money.Round2((e.PopularityScore + 1) * e.Weight * goldPerGram),
		Popularity: money.Round1(e.PopularityScore * 5),
	}
}

// Filter holds optional inclusive bounds over the derived fields. A
// nil bound imposes no constraint; min above max legitimately matches
// nothing. JSON tags shape the `filters` echo on the filtered route.
type Filter struct {
	MinPrice      *float64 `json:"minPrice,omitempty"`
	MaxPrice      *float64 `json:"maxPrice,omitempty"`
	MinPopularity *float64 `json:"minPopularity,omitempty"`
	MaxPopularity *float64 `json:"maxPopularity,omitempty"`
}

// Match reports whether p satisfies every provided bound. Bounds apply
// to the already-derived price and popularity, never to raw inputs.
func (f *Filter) Match(p Product) bool {
	if f == nil {
		return true
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinPopularity != nil && p.Popularity < *f.MinPopularity {
		return false
	}
	if f.MaxPopularity != nil && p.Popularity > *f.MaxPopularity {
		return false
	}
	return true
}
