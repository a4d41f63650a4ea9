package cart

import (
	"strconv"

	"yizer/internal/domain"
)

// Options is the working customization draft edited by the wizard before a
// line is added to the cart. It is a plain value; Set returns a new one.
type Options struct {
	Size          string
	Color         string
	Quantity      int
	PrintPosition domain.PrintPosition
	PrintSize     domain.PrintSize
	PrintImage    string
}

// Set returns a copy of o with the named field replaced. Unknown keys and
// unparsable quantities leave the draft unchanged; quantity never drops
// below one (the wizard's "-" button bottoms out there).
func (o Options) Set(key, value string) Options {
	switch key {
	case "size":
		o.Size = value
	case "color":
		o.Color = value
	case "quantity":
		if n, err := strconv.Atoi(value); err == nil {
			o.Quantity = max(1, n)
		}
	case "printPosition":
		o.PrintPosition = domain.PrintPosition(value)
	case "printSize":
		o.PrintSize = domain.PrintSize(value)
	case "printImage":
		o.PrintImage = value
	}
	return o
}

// Draft pairs a base product with its in-progress options. Selecting a new
// base product always starts a fresh draft; nothing carries over.
type Draft struct {
	Product domain.Product
	Options Options
}

// NewDraft resets the options to the product's first available size and
// color and the default print position, size and placeholder image.
func NewDraft(p domain.Product) Draft {
	o := Options{
		Size:          "M",
		Color:         "Blanco",
		Quantity:      1,
		PrintPosition: domain.PrintCenterFront,
		PrintSize:     domain.PrintMedium,
		PrintImage:    domain.DefaultPrintImage,
	}
	if len(p.AvailableSizes) > 0 {
		o.Size = p.AvailableSizes[0]
	}
	if len(p.AvailableColors) > 0 {
		o.Color = p.AvailableColors[0]
	}
	return Draft{Product: p, Options: o}
}

// Customization materializes the draft's options as a cart-line value.
func (d Draft) Customization() *Customization {
	return &Customization{
		Size:          d.Options.Size,
		Color:         d.Options.Color,
		PrintPosition: d.Options.PrintPosition,
		PrintSize:     d.Options.PrintSize,
		PrintImage:    d.Options.PrintImage,
	}
}
