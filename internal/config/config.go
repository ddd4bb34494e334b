package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr string

	// Gold price lookup.
	MetalpriceAPIKey string
	MetalpriceAPIURL string
	GoldPriceTimeout time.Duration
	// GoldCacheTTL of zero disables caching: every request performs a
	// fresh upstream call.
	GoldCacheTTL time.Duration

	// Catalog source: "file" or "postgres".
	CatalogSource string
	CatalogPath   string
	DatabaseURL   string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:             getEnv("RING_SHOP_ADDR", ":8080"),
		MetalpriceAPIKey: os.Getenv("METALPRICE_API_KEY"),
		MetalpriceAPIURL: getEnv("METALPRICE_API_URL", "https://api.metalpriceapi.com/v1/latest"),
		GoldPriceTimeout: getDuration("GOLD_PRICE_TIMEOUT", 8*time.Second),
		GoldCacheTTL:     getDuration("GOLD_CACHE_TTL", 0),
		CatalogSource:    getEnv("CATALOG_SOURCE", "file"),
		CatalogPath:      getEnv("CATALOG_PATH", "./products.json"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration accepts either a time.Duration string ("8s", "500ms") or
// a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
