package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yizer/internal/log"
	"yizer/internal/services"
	"yizer/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// Add puts a plain catalog product in the cart and lands on "Mi Compra",
// where the pending purchase is shown.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty, ok := validate.Qty(c.FormValue("qty"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "qty"})
		return c.Status(fiber.StatusBadRequest).SendString("quantity must be a positive number")
	}
	if err := h.Cart.Add(sid, productID, qty); err != nil {
		log.Error(c, "cart.add", err, map[string]any{"product": productID})
		return c.Status(fiber.StatusBadRequest).SendString("Could not add to cart")
	}
	log.Info(c, "cart.add", map[string]any{"product": productID, "qty": qty})
	return c.Redirect("/orders")
}

// Remove drops one cart line. Removing a line that is already gone is a
// no-op, so the redirect is unconditional.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	lineID, ok := validate.ID(c.FormValue("lineId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "lineId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing lineId")
	}
	h.Cart.Remove(sid, lineID)
	return c.Redirect("/orders")
}
