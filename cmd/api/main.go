package main

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"ring-shop-backend/internal/catalog"
	"ring-shop-backend/internal/config"
	"ring-shop-backend/internal/goldprice"
	"ring-shop-backend/internal/logging"
	"ring-shop-backend/internal/product"
)

// main wires dependencies and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.Init(cfg.LogLevel, cfg.LogFormat)

	if cfg.MetalpriceAPIKey == "" {
		log.Fatal("METALPRICE_API_KEY is not set")
	}

	var repo catalog.Repository
	switch cfg.CatalogSource {
	case "postgres":
		db := mustOpenDB(cfg.DatabaseURL, log)
		defer db.Close()
		repo = catalog.NewPostgresRepository(db, log)
	default:
		repo = catalog.NewFileRepository(cfg.CatalogPath, log)
	}

	var gold goldprice.Source = goldprice.NewMetalpriceClient(
		cfg.MetalpriceAPIKey, cfg.MetalpriceAPIURL, cfg.GoldPriceTimeout, log)
	if cfg.GoldCacheTTL > 0 {
		gold = goldprice.NewCachedSource(gold, cfg.GoldCacheTTL)
	}

	app := fiber.New()
	setupCORS(app)

	handler := product.NewHandler(product.NewService(repo, gold))
	handler.RegisterPublicRoutes(app)

	log.Info("starting server",
		"addr", cfg.Addr,
		"catalog_source", cfg.CatalogSource,
		"gold_cache_ttl", cfg.GoldCacheTTL.String(),
	)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal("server stopped", "error", err.Error())
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(dbURL string, log *logging.Logger) *sql.DB {
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set but CATALOG_SOURCE=postgres")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatal("failed to open database", "error", err.Error())
	}
	if err := db.Ping(); err != nil {
		log.Fatal("failed to ping database", "error", err.Error())
	}
	return db
}
