// Package goldprice fetches the current gold spot price used to
// compute catalog prices.
package goldprice

import (
	"context"
	"errors"
	"time"
)

// GramsPerTroyOunce converts the upstream per-ounce quote to grams.
const GramsPerTroyOunce = 31.1035

// ErrUnavailable is the single failure mode exposed to callers. The
// wrapped detail is for logs only and never reaches API responses.
var ErrUnavailable = errors.New("gold price unavailable")

// Quote is a gold price snapshot, valid for one request unless a
// caching Source extends its lifetime.
type Quote struct {
	// PerGram is USD per gram, rounded to 2 decimal places.
	PerGram float64
	// PerOunce is the raw USD per troy ounce value from upstream.
	PerOunce  float64
	FetchedAt time.Time
}

// Source provides the current gold price.
type Source interface {
	PricePerGram(ctx context.Context) (Quote, error)
}
