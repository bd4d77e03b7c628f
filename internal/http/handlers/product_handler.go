package handlers

import (
	"lamsa/internal/services"
	"lamsa/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type ProductHandler struct {
	Catalog   *services.CatalogService
	Purchases *services.PurchaseService
}

// GET /product/:id. Unknown ids go back to the listing rather than a 404.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Redirect("/")
	}
	p, err := h.Catalog.GetProduct(id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Redirect("/")
	}
	if err != nil {
		return err
	}
	related, err := h.Catalog.Related(p)
	if err != nil {
		return err
	}
	stats, err := h.Purchases.Stats(p.ID)
	if err != nil {
		return err
	}
	return render(c, "product", fiber.Map{
		"P":         p,
		"Related":   related,
		"TotalSold": stats.TotalSold,
		"Orders":    stats.Orders,
	})
}
