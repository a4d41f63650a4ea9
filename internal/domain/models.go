package domain

// Product is an immutable catalog record. Price is decimal text, parsed at
// aggregation time (see the cart package).
type Product struct {
	ID              string   `db:"id"`
	Name            string   `db:"name"`
	Price           string   `db:"price"`
	Image           string   `db:"image"`
	Description     string   `db:"description"`
	AvailableSizes  []string `db:"-"`
	AvailableColors []string `db:"-"`
}

type PrintPosition string

const (
	PrintCenterFront PrintPosition = "Centro Frontal"
	PrintTopLeft     PrintPosition = "Superior Izquierdo"
	PrintTopRight    PrintPosition = "Superior Derecho"
	PrintBackCenter  PrintPosition = "Espalda Centro"
)

type PrintSize string

const (
	PrintSmall  PrintSize = "Pequeño"
	PrintMedium PrintSize = "Mediano"
	PrintLarge  PrintSize = "Grande"
)

// PrintPositions returns the selectable positions in display order.
func PrintPositions() []PrintPosition {
	return []PrintPosition{PrintCenterFront, PrintTopLeft, PrintTopRight, PrintBackCenter}
}

// PrintSizes returns the selectable print sizes in display order.
func PrintSizes() []PrintSize {
	return []PrintSize{PrintSmall, PrintMedium, PrintLarge}
}

func ValidPrintPosition(s string) bool {
	for _, p := range PrintPositions() {
		if string(p) == s {
			return true
		}
	}
	return false
}

func ValidPrintSize(s string) bool {
	for _, p := range PrintSizes() {
		if string(p) == s {
			return true
		}
	}
	return false
}

// DefaultPrintImage is the placeholder print applied to a fresh draft.
const DefaultPrintImage = "https://placehold.co/100x100/FFD700/000?text=Estampado"
