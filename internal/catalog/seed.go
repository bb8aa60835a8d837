package catalog

import (
	"skateshop/storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultInventory is added, in order, to a store that starts without data.
func DefaultInventory() []domain.NewProduct {
	return []domain.NewProduct{
		{
			Title:       "Logo Tee",
			Price:       decimal.NewFromInt(299),
			Description: "Heavyweight cotton tee with the shop logo on the chest.",
			Main:        "Herr",
			Sub:         "Tröjor",
			Type:        "Graphic Tees",
		},
		{
			Title:       "Classic Hoodie",
			Price:       decimal.NewFromInt(699),
			Description: "Brushed fleece hoodie with kangaroo pocket.",
			Main:        "Dam",
			Sub:         "Tröjor",
			Type:        "Hoodies & Sweatshirts",
		},
		{
			Title:       "Baggy Jeans",
			Price:       decimal.NewFromInt(899),
			Description: "Loose fit denim that survives the bowl.",
			Main:        "Herr",
			Sub:         "Byxor",
			Type:        "Jeans",
		},
		{
			Title:       "Canvas Skate Shoe",
			Price:       decimal.NewFromInt(999),
			Description: "Vulcanized sole and suede toe cap.",
			Main:        "Dam",
			Sub:         "Skor",
			Type:        "Skate skor",
		},
		{
			Title:       "Crew Socks",
			Price:       decimal.NewFromInt(99),
			Description: "Ribbed crew socks, three pack.",
			Main:        "Unisex",
			Sub:         "Accessories",
			Type:        "Socks",
		},
		{
			Title:       "Pro Deck 8.25",
			Price:       decimal.NewFromInt(749),
			Description: "Seven ply canadian maple, medium concave.",
			Main:        "Skate tillbehör",
			Sub:         "Decks",
			Type:        "Decks",
		},
		{
			Title:       "Street Wheels 52mm",
			Price:       decimal.NewFromInt(449),
			Description: "99A urethane wheels for street and park.",
			Main:        "Skate tillbehör",
			Sub:         "Wheels & Bearings",
			Type:        "Wheels & Bearings",
		},
	}
}
