package cart

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"yizer/internal/domain"
)

var (
	// ErrEmptyCart is returned by Checkout when there is nothing to confirm.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidQuantity is returned by Add for non-positive quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidPrice is wrapped when a catalog price fails decimal parsing.
	ErrInvalidPrice = errors.New("invalid price")
)

// Customization is the set of user-chosen attributes applied to a base
// product. PrintImage is carried on the line but never takes part in
// merge/remove equality.
type Customization struct {
	Size          string
	Color         string
	PrintPosition domain.PrintPosition
	PrintSize     domain.PrintSize
	PrintImage    string
}

func (c *Customization) equal(o *Customization) bool {
	if c == nil || o == nil {
		return c == nil && o == nil
	}
	return c.Size == o.Size &&
		c.Color == o.Color &&
		c.PrintPosition == o.PrintPosition &&
		c.PrintSize == o.PrintSize
}

// Line is one product (optionally customized) plus quantity in the cart.
type Line struct {
	ID            string
	Product       domain.Product
	Quantity      int
	Customization *Customization
}

func (l Line) clone() Line {
	l.Product.AvailableSizes = slices.Clone(l.Product.AvailableSizes)
	l.Product.AvailableColors = slices.Clone(l.Product.AvailableColors)
	if l.Customization != nil {
		cu := *l.Customization
		l.Customization = &cu
	}
	return l
}

// UnitPrice parses the product's decimal price text.
func (l Line) UnitPrice() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(l.Product.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q for product %s", ErrInvalidPrice, l.Product.Price, l.Product.ID)
	}
	return d, nil
}

// Subtotal is unit price times quantity.
func (l Line) Subtotal() (decimal.Decimal, error) {
	unit, err := l.UnitPrice()
	if err != nil {
		return decimal.Zero, err
	}
	return unit.Mul(decimal.NewFromInt(int64(l.Quantity))), nil
}

// Cart is the pre-checkout working set of lines, in insertion order.
// Operations return a new value and never mutate the receiver; the caller
// owns the live reference and replaces it wholesale.
type Cart []Line

// Add merges qty into an existing line with the same product id and
// structurally equal customization, or appends a new line. Customized lines
// get a fresh identifier so repeated customizations of the same product
// never collide; plain lines use the product id.
func (c Cart) Add(p domain.Product, qty int, cu *Customization) (Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := (Line{Product: p}).UnitPrice(); err != nil {
		return nil, err
	}

	next := slices.Clone(c)
	for i, l := range next {
		if l.Product.ID == p.ID && l.Customization.equal(cu) {
			// Merge in place: identifier, customization and position stay.
			next[i].Quantity = l.Quantity + qty
			return next, nil
		}
	}

	id := p.ID
	if cu != nil {
		id = p.ID + "-" + uuid.NewString()
	}
	return append(next, Line{ID: id, Product: p, Quantity: qty, Customization: cu}), nil
}

// Remove drops every line matching the target's product id and
// customization. At most one line ever matches because Add maintains
// uniqueness; removing an absent line is a no-op.
func (c Cart) Remove(target Line) Cart {
	next := make(Cart, 0, len(c))
	for _, l := range c {
		if l.Product.ID == target.Product.ID && l.Customization.equal(target.Customization) {
			continue
		}
		next = append(next, l)
	}
	return next
}

// Find returns the line with the given identifier, if present.
func (c Cart) Find(lineID string) (Line, bool) {
	for _, l := range c {
		if l.ID == lineID {
			return l, true
		}
	}
	return Line{}, false
}

// Total sums unit price times quantity over all lines. An empty cart
// totals zero; a non-numeric catalog price fails the whole computation.
func (c Cart) Total() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range c {
		sub, err := l.Subtotal()
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(sub)
	}
	return total, nil
}

// StatusConfirmed is the only order status modeled: checkout confirms.
const StatusConfirmed = "Confirmado"

const deliveryLeadTime = 7 * 24 * time.Hour

// Order is an immutable record of a completed checkout.
type Order struct {
	ID                string
	Items             []Line
	OrderDate         time.Time
	Status            string
	EstimatedDelivery time.Time
	Total             decimal.Decimal
}

// History is the append-only sequence of confirmed orders for a session.
type History []Order

// Checkout converts the cart into a confirmed Order appended to the
// history and returns the emptied cart. The order snapshots the lines by
// value, so later cart mutations cannot reach into it. On ErrEmptyCart
// nothing changes.
func Checkout(c Cart, h History) (Order, Cart, History, error) {
	if len(c) == 0 {
		return Order{}, c, h, ErrEmptyCart
	}
	total, err := c.Total()
	if err != nil {
		return Order{}, c, h, err
	}

	now := time.Now()
	items := make([]Line, len(c))
	for i, l := range c {
		items[i] = l.clone()
	}
	o := Order{
		ID:                "ORD-" + uuid.NewString(),
		Items:             items,
		OrderDate:         now,
		Status:            StatusConfirmed,
		EstimatedDelivery: now.Add(deliveryLeadTime),
		Total:             total,
	}
	return o, Cart{}, append(slices.Clone(h), o), nil
}
