package goldprice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ring-shop-backend/internal/logging"
	"ring-shop-backend/internal/money"
)

// MetalpriceClient fetches the gold spot price from MetalpriceAPI.
// https://metalpriceapi.com/documentation
// Every call performs a fresh request; wrap in a CachedSource to
// bound the upstream rate.
type MetalpriceClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *logging.Logger
}

type metalpriceResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
	Error   interface{}        `json:"error,omitempty"`
}

// goldRateKey is MetalpriceAPI's symbol for USD per troy ounce of gold.
const goldRateKey = "USDXAU"

func NewMetalpriceClient(apiKey, baseURL string, timeout time.Duration, log *logging.Logger) *MetalpriceClient {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &MetalpriceClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// PricePerGram fetches the current USD-per-gram gold price. All
// failures collapse into ErrUnavailable; the returned error never
// contains the request URL or the API key.
func (c *MetalpriceClient) PricePerGram(ctx context.Context) (Quote, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("base", "USD")
	q.Set("currencies", "XAU")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: building request", ErrUnavailable)
	}
	req.Header.Set("User-Agent", "ring-shop-backend/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		// err may embed the request URL (and with it the key), so it
		// stays out of the wrapped error.
		c.log.Warn("gold price request failed", "error", redact(err))
		return Quote{}, fmt.Errorf("%w: request failed", ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	var data metalpriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Quote{}, fmt.Errorf("%w: failed to decode response", ErrUnavailable)
	}

	if !data.Success {
		return Quote{}, fmt.Errorf("%w: api reported failure", ErrUnavailable)
	}

	perOunce, ok := data.Rates[goldRateKey]
	if !ok {
		return Quote{}, fmt.Errorf("%w: rate %s missing from response", ErrUnavailable, goldRateKey)
	}
	if perOunce <= 0 {
		return Quote{}, fmt.Errorf("%w: non-positive rate %v", ErrUnavailable, perOunce)
	}

	perGram := money.Round2(perOunce / GramsPerTroyOunce)
	c.log.Info("fetched gold price",
		"usd_per_ounce", money.Round2(perOunce),
		"usd_per_gram", perGram,
	)

	return Quote{
		PerGram:   perGram,
		PerOunce:  perOunce,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// redact strips the URL from transport errors so the API key cannot
// leak into log output.
func redact(err error) string {
	if ue, ok := err.(*url.Error); ok {
		return ue.Err.Error()
	}
	return err.Error()
}
