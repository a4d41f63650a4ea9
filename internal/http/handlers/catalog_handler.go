package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yizer/internal/log"
	"yizer/internal/services"
	"yizer/internal/validate"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		return err
	}
	return render(c, "home", fiber.Map{"Products": products})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	return render(c, "product", fiber.Map{"P": p})
}
