package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ring-shop-backend/internal/goldprice"
)

// oracleDownMessage is the single stable message shown when the gold
// price cannot be fetched. It deliberately carries no transport detail.
const oracleDownMessage = "unable to fetch current gold price"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/filtered", h.getFilteredProducts)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	listing, err := h.service.List(c.Context(), nil)
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(listing)
}

// filteredResponse is Listing plus an echo of the applied filters, as
// the reference filtered route returns.
type filteredResponse struct {
	Listing
	Filters Filter `json:"filters"`
}

func (h *Handler) getFilteredProducts(c *fiber.Ctx) error {
	filter, ves := parseFilter(c)
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	listing, err := h.service.List(c.Context(), filter)
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(filteredResponse{Listing: listing, Filters: *filter})
}

// parseFilter reads the four optional bounds from the query string.
// Malformed values are rejected up front with all violations reported
// together, rather than silently matching nothing.
func parseFilter(c *fiber.Ctx) (*Filter, map[string]string) {
	f := &Filter{}
	ves := map[string]string{}

	fields := []struct {
		name string
		dst  **float64
	}{
		{"minPrice", &f.MinPrice},
		{"maxPrice", &f.MaxPrice},
		{"minPopularity", &f.MinPopularity},
		{"maxPopularity", &f.MaxPopularity},
	}
	for _, field := range fields {
		raw := c.Query(field.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			ves[field.name] = field.name + " must be a number"
			continue
		}
		*field.dst = &v
	}

	return f, ves
}

func respondListError(c *fiber.Ctx, err error) error {
	if errors.Is(err, goldprice.ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": oracleDownMessage})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
