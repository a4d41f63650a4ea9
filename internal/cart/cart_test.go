package cart_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"yizer/internal/cart"
	"yizer/internal/domain"
)

func sudadera() domain.Product {
	return domain.Product{
		ID:              "1",
		Name:            "Sudadera Grande",
		Price:           "250",
		AvailableSizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
		AvailableColors: []string{"Rojo", "Negro", "Blanco", "Gris"},
	}
}

func camiseta() domain.Product {
	return domain.Product{
		ID:              "3",
		Name:            "Camiseta Básica",
		Price:           "180",
		AvailableSizes:  []string{"XS", "S", "M", "L", "XL"},
		AvailableColors: []string{"Blanco", "Negro", "Azul Claro", "Rosa"},
	}
}

func custom(size, color string) *cart.Customization {
	return &cart.Customization{
		Size:          size,
		Color:         color,
		PrintPosition: domain.PrintCenterFront,
		PrintSize:     domain.PrintMedium,
		PrintImage:    domain.DefaultPrintImage,
	}
}

func TestAddMergesSameCustomization(t *testing.T) {
	c, err := cart.Cart{}.Add(sudadera(), 1, custom("M", "Rojo"))
	if err != nil {
		t.Fatal(err)
	}
	firstID := c[0].ID

	c, err = c.Add(sudadera(), 2, custom("M", "Rojo"))
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 1 {
		t.Fatalf("want 1 merged line, got %d", len(c))
	}
	if c[0].Quantity != 3 {
		t.Fatalf("want quantity 3, got %d", c[0].Quantity)
	}
	if c[0].ID != firstID {
		t.Fatalf("merge must keep the existing line id, got %s", c[0].ID)
	}
}

func TestAddMergeIgnoresPrintImage(t *testing.T) {
	cu := custom("M", "Rojo")
	c, err := cart.Cart{}.Add(sudadera(), 1, cu)
	if err != nil {
		t.Fatal(err)
	}
	other := custom("M", "Rojo")
	other.PrintImage = "https://placehold.co/100x100/000/fff?text=Otro"
	c, err = c.Add(sudadera(), 1, other)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 1 || c[0].Quantity != 2 {
		t.Fatalf("print image must not split lines: %+v", c)
	}
}

func TestAddDistinctCustomizations(t *testing.T) {
	c, err := cart.Cart{}.Add(sudadera(), 1, custom("M", "Rojo"))
	if err != nil {
		t.Fatal(err)
	}
	c, err = c.Add(sudadera(), 1, custom("L", "Negro"))
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 2 {
		t.Fatalf("want 2 lines, got %d", len(c))
	}
	if c[0].ID == c[1].ID {
		t.Fatalf("customized lines must get distinct ids, both %s", c[0].ID)
	}
}

func TestAddPlainUsesProductID(t *testing.T) {
	c, err := cart.Cart{}.Add(sudadera(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c[0].ID != "1" {
		t.Fatalf("plain line id should equal product id, got %s", c[0].ID)
	}
	c, err = c.Add(sudadera(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 1 || c[0].Quantity != 2 {
		t.Fatalf("plain lines of the same product must merge: %+v", c)
	}
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	for _, qty := range []int{0, -1} {
		if _, err := (cart.Cart{}).Add(sudadera(), qty, nil); !errors.Is(err, cart.ErrInvalidQuantity) {
			t.Fatalf("qty=%d: want ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestAddRejectsBadPrice(t *testing.T) {
	p := sudadera()
	p.Price = "dosciencuenta"
	if _, err := (cart.Cart{}).Add(p, 1, nil); !errors.Is(err, cart.ErrInvalidPrice) {
		t.Fatalf("want ErrInvalidPrice, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	c, err := cart.Cart{}.Add(sudadera(), 2, custom("M", "Rojo"))
	if err != nil {
		t.Fatal(err)
	}
	c, err = c.Add(camiseta(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}

	target := c[0]
	c = c.Remove(target)
	if len(c) != 1 || c[0].Product.ID != "3" {
		t.Fatalf("remove left wrong cart: %+v", c)
	}
	// Removing again, and removing something that was never there, is a no-op.
	c = c.Remove(target)
	c = c.Remove(cart.Line{Product: sudadera(), Customization: custom("XL", "Gris")})
	if len(c) != 1 {
		t.Fatalf("remove must be idempotent: %+v", c)
	}
}

func TestRemoveMatchesPlainLines(t *testing.T) {
	c, err := cart.Cart{}.Add(sudadera(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	c = c.Remove(c[0])
	if len(c) != 0 {
		t.Fatalf("plain line was not removed: %+v", c)
	}
}

func TestTotal(t *testing.T) {
	empty := cart.Cart{}
	total, err := empty.Total()
	if err != nil {
		t.Fatal(err)
	}
	if !total.IsZero() {
		t.Fatalf("empty cart total should be 0, got %s", total)
	}

	c, err := empty.Add(sudadera(), 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	total, err = c.Total()
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("want total 500, got %s", total)
	}

	c, err = c.Add(camiseta(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	total, err = c.Total()
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(decimal.NewFromInt(680)) {
		t.Fatalf("want total 680, got %s", total)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	var hist cart.History
	_, c, hist2, err := cart.Checkout(cart.Cart{}, hist)
	if !errors.Is(err, cart.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
	if len(c) != 0 || len(hist2) != 0 {
		t.Fatal("failed checkout must not change state")
	}
}

func TestCheckout(t *testing.T) {
	c, err := cart.Cart{}.Add(sudadera(), 2, nil)
	if err != nil {
		t.Fatal(err)
	}

	o, emptied, hist, err := cart.Checkout(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(emptied) != 0 {
		t.Fatalf("cart must be empty after checkout, got %d lines", len(emptied))
	}
	if len(hist) != 1 || hist[0].ID != o.ID {
		t.Fatalf("history must gain exactly the new order: %+v", hist)
	}
	if o.Status != cart.StatusConfirmed {
		t.Fatalf("want status %q, got %q", cart.StatusConfirmed, o.Status)
	}
	if !o.Total.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("want frozen total 500, got %s", o.Total)
	}
	if got := o.EstimatedDelivery.Sub(o.OrderDate); got != 7*24*time.Hour {
		t.Fatalf("estimated delivery must be order date + 7 days, got %s", got)
	}
	if len(o.Items) != 1 || o.Items[0].Quantity != 2 || o.Items[0].Product.ID != "1" {
		t.Fatalf("order snapshot mismatch: %+v", o.Items)
	}
}

func TestCheckoutSnapshotsByValue(t *testing.T) {
	c, err := cart.Cart{}.Add(sudadera(), 2, custom("M", "Rojo"))
	if err != nil {
		t.Fatal(err)
	}

	o, _, _, err := cart.Checkout(c, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Mutate the old cart value; the stored order must not notice.
	c[0].Quantity = 99
	c[0].Customization.Size = "XXL"
	c[0].Product.AvailableSizes[0] = "mutated"

	if o.Items[0].Quantity != 2 {
		t.Fatalf("order aliased cart quantity: %d", o.Items[0].Quantity)
	}
	if o.Items[0].Customization.Size != "M" {
		t.Fatalf("order aliased cart customization: %s", o.Items[0].Customization.Size)
	}
	if o.Items[0].Product.AvailableSizes[0] != "XS" {
		t.Fatalf("order aliased product slices: %v", o.Items[0].Product.AvailableSizes)
	}
}

func TestCheckoutHistoryAppendOnly(t *testing.T) {
	var hist cart.History

	c, err := cart.Cart{}.Add(sudadera(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	first, _, hist, err := cart.Checkout(c, hist)
	if err != nil {
		t.Fatal(err)
	}

	c, err = cart.Cart{}.Add(camiseta(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, _, hist, err := cart.Checkout(c, hist)
	if err != nil {
		t.Fatal(err)
	}

	if len(hist) != 2 || hist[0].ID != first.ID || hist[1].ID != second.ID {
		t.Fatalf("history must grow in order: %+v", hist)
	}
	if first.ID == second.ID {
		t.Fatal("order ids must be unique")
	}
}
