package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"yizer/internal/cart"
	"yizer/internal/domain"
	"yizer/internal/log"
	"yizer/internal/services"
	"yizer/internal/validate"
)

// CustomizeHandler drives the personalization wizard screens: pick a base
// product, edit the draft with a live preview, confirm into the cart or
// go back and start over.
type CustomizeHandler struct {
	Customize *services.CustomizeService
	Catalog   *services.CatalogService
}

// Choose lists the base products available for personalization. If a
// draft is already in progress it renders the editor instead.
func (h *CustomizeHandler) Choose(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if d, ok := h.Customize.Current(sid); ok {
		return h.renderEditor(c, d)
	}
	products, err := h.Catalog.ListProducts()
	if err != nil {
		return err
	}
	return render(c, "customize_choose", fiber.Map{"Products": products})
}

// Start selects a base product, resetting the draft to its defaults.
func (h *CustomizeHandler) Start(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	d, err := h.Customize.Start(sid, id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	return h.renderEditor(c, d)
}

// Update applies one field edit to the draft and re-renders the editor.
func (h *CustomizeHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	key := c.FormValue("key")
	value, ok := validate.OptionValue(c.FormValue("value"))
	if !validate.OptionKey(key) || !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "option", "key": key})
		return c.Status(fiber.StatusBadRequest).SendString("invalid option")
	}
	d, err := h.Customize.Update(sid, key, value)
	if err != nil {
		if errors.Is(err, services.ErrNoDraft) {
			return c.Redirect("/customize")
		}
		log.Security(c, "customize.option.reject", map[string]any{"key": key, "value": value})
		return c.Status(fiber.StatusBadRequest).SendString("option not available")
	}
	return h.renderEditor(c, d)
}

// Confirm turns the draft into a cart line and shows the pending purchase.
func (h *CustomizeHandler) Confirm(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Customize.Confirm(sid); err != nil {
		if errors.Is(err, services.ErrNoDraft) {
			return c.Redirect("/customize")
		}
		log.Error(c, "customize.confirm", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("Could not confirm customization")
	}
	log.Info(c, "customize.confirm", nil)
	return c.Redirect("/orders")
}

// Abandon discards the draft and returns to product selection.
func (h *CustomizeHandler) Abandon(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Customize.Abandon(sid)
	return c.Redirect("/customize")
}

func (h *CustomizeHandler) renderEditor(c *fiber.Ctx, d cart.Draft) error {
	w, hgt := domain.PrintDimensions(d.Options.PrintSize)
	return render(c, "customize", fiber.Map{
		"P":          d.Product,
		"O":          d.Options,
		"PreviewURL": domain.PreviewImageURL(d.Product, d.Options.Color),
		"PrintW":     w,
		"PrintH":     hgt,
		"Positions":  domain.PrintPositions(),
		"PrintSizes": domain.PrintSizes(),
	})
}
