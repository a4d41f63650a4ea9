package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"yizer/internal/cart"
	"yizer/internal/log"
	"yizer/internal/services"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
}

// Purchases renders "Mi Compra": the pending cart lines, the running
// total, and the history of confirmed orders underneath.
func (h *OrderHandler) Purchases(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		log.Error(c, "purchases.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "No se pudo cargar tu compra"})
	}
	return render(c, "orders", fiber.Map{
		"Cart":      cv,
		"Orders":    h.Order.History(sid),
		"Placed":    c.Query("placed"),
		"EmptyCart": c.Query("empty") == "1",
	})
}

// Place confirms the pending purchase. An empty cart is a user-visible
// notice, not an error page.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)
	o, err := h.Order.Place(sid)
	if err != nil {
		if errors.Is(err, cart.ErrEmptyCart) {
			log.Info(c, "order.place.empty", nil)
			return c.Redirect("/orders?empty=1")
		}
		log.Error(c, "order.place", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("No se pudo confirmar la compra")
	}
	log.Audit(c, "order.place", map[string]any{"order_id": o.ID, "total": o.Total.String()})
	return c.Redirect("/orders?placed=" + o.ID)
}
