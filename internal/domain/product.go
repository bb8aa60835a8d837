package domain

import "github.com/shopspring/decimal"

// PlaceholderImage is shown for products created without an image.
const PlaceholderImage = "assets/placeholder.png"

// Category is the main/sub/type path of a product. The values are expected,
// but not required, to match a path in the Hierarchy.
type Category struct {
	Main string `json:"main"`
	Sub  string `json:"sub"`
	Type string `json:"type"`
}

// Field returns the value stored for f. ok is false for unknown fields.
func (c Category) Field(f CategoryField) (value string, ok bool) {
	switch f {
	case CategoryFieldMain:
		return c.Main, true
	case CategoryFieldSub:
		return c.Sub, true
	case CategoryFieldType:
		return c.Type, true
	default:
		return "", false
	}
}

type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Image       string          `json:"image"`
}

// NewProduct carries the caller-supplied fields of a product; the id is
// assigned by the catalog store.
type NewProduct struct {
	Title       string
	Price       decimal.Decimal
	Description string
	Main        string
	Sub         string
	Type        string
	Image       string // Optional, PlaceholderImage when empty
}

// ImageOrPlaceholder returns the image reference to display.
func (p Product) ImageOrPlaceholder() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}
