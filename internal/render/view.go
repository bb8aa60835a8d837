package render

import (
	"fmt"
	"net/url"

	"skateshop/storefront/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	EmptyMessage            = "Inga produkter hittades."
	MainCategoryPlaceholder = "Välj Kategori"
	SubCategoryPlaceholder  = "Välj Underkategori"
	PriceSuffix             = " kr"
	AllProductsLabel        = "Alla"
)

// CardView is everything a product card displays.
type CardView struct {
	ID            string
	Image         string
	Type          string
	Title         string
	CategoryLabel string
	Price         string
	RemoveAction  string
}

// ListView is the display model of a product listing.
type ListView struct {
	Empty        bool
	EmptyMessage string
	Cards        []CardView
}

type OptionView struct {
	Value string
	Label string
}

// SelectView is the content of a category selector.
type SelectView struct {
	Placeholder string
	Options     []OptionView
}

// FilterLink points the storefront at one category; Subs are only set on
// top-level links.
type FilterLink struct {
	Label string
	Href  string
	Subs  []FilterLink
}

// FilterView is the storefront's category navigation.
type FilterView struct {
	AllLabel string
	AllHref  string
	Mains    []FilterLink
}

func FormatPrice(price decimal.Decimal) string {
	return price.String() + PriceSuffix
}

// RemoveAction is the form target removing the product with id.
func RemoveAction(id string) string {
	return fmt.Sprintf("/products/%s/remove", url.PathEscape(id))
}

func BuildListView(products []domain.Product) ListView {
	if len(products) == 0 {
		return ListView{Empty: true, EmptyMessage: EmptyMessage}
	}

	cards := make([]CardView, 0, len(products))
	for _, p := range products {
		cards = append(cards, CardView{
			ID:            p.ID,
			Image:         p.ImageOrPlaceholder(),
			Type:          p.Category.Type,
			Title:         p.Title,
			CategoryLabel: p.Category.Main + " / " + p.Category.Sub,
			Price:         FormatPrice(p.Price),
			RemoveAction:  RemoveAction(p.ID),
		})
	}
	return ListView{Cards: cards}
}

func BuildSelectView(placeholder string, values []string) SelectView {
	options := make([]OptionView, 0, len(values))
	for _, v := range values {
		options = append(options, OptionView{Value: v, Label: v})
	}
	return SelectView{Placeholder: placeholder, Options: options}
}

// FilterHref is the storefront URL listing the products whose field equals
// value.
func FilterHref(field domain.CategoryField, value string) string {
	return "/?" + url.Values{
		"field": {string(field)},
		"value": {value},
	}.Encode()
}

func BuildFilterView(hierarchy domain.Hierarchy) FilterView {
	mains := make([]FilterLink, 0, len(hierarchy))
	for _, m := range hierarchy {
		subs := make([]FilterLink, 0, len(m.Subs))
		for _, sub := range m.Subs {
			subs = append(subs, FilterLink{Label: sub.Name, Href: FilterHref(domain.CategoryFieldSub, sub.Name)})
		}
		mains = append(mains, FilterLink{
			Label: m.Name,
			Href:  FilterHref(domain.CategoryFieldMain, m.Name),
			Subs:  subs,
		})
	}
	return FilterView{AllLabel: AllProductsLabel, AllHref: "/", Mains: mains}
}
