package domain

import "strings"

// colorHex maps catalog color names to placeholder hex codes for the
// personalization preview.
var colorHex = map[string]string{
	"Rojo":       "B12A2A",
	"Negro":      "000000",
	"Blanco":     "FFFFFF",
	"Gris":       "808080",
	"Azul":       "0000FF",
	"Verde":      "008000",
	"Azul Claro": "ADD8E6",
	"Rosa":       "FFC0CB",
}

// PreviewImageURL builds the placeholder image for a product rendered in the
// chosen color. Unknown colors fall back to the house red.
func PreviewImageURL(p Product, color string) string {
	hex, ok := colorHex[color]
	if !ok {
		hex = "B12A2A"
	}
	label := "Producto"
	if p.Name != "" {
		label = strings.SplitN(p.Name, " ", 2)[0]
	}
	return "https://placehold.co/300x300/" + hex + "/FFFFFF?text=" + label
}

// PrintDimensions returns the preview pixel box for a print size.
func PrintDimensions(s PrintSize) (w, h int) {
	switch s {
	case PrintSmall:
		return 50, 50
	case PrintLarge:
		return 120, 120
	default:
		return 80, 80
	}
}
