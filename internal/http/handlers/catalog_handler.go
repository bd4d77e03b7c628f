package handlers

import (
	"lamsa/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// GET /
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	products, err := h.Catalog.ListAll()
	if err != nil {
		return err
	}
	cats, err := h.Catalog.Categories()
	if err != nil {
		return err
	}
	return render(c, "index", fiber.Map{"Products": products, "Categories": cats, "ActiveCat": "all"})
}

// GET /category/:cat
func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	cat := c.Params("cat")
	products, err := h.Catalog.ListByCategory(cat)
	if err != nil {
		return err
	}
	cats, err := h.Catalog.Categories()
	if err != nil {
		return err
	}
	return render(c, "index", fiber.Map{"Products": products, "Categories": cats, "ActiveCat": cat})
}
