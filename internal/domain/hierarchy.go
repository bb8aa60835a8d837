package domain

import (
	"errors"
	"fmt"
)

// SubCategory is the second level of the hierarchy with its ordered leaf types.
type SubCategory struct {
	Name  string   `json:"name"`
	Types []string `json:"types"` // May be empty, e.g. "Jackor"
}

// MainCategory is a top-level entry of the hierarchy.
type MainCategory struct {
	Name string        `json:"name"`
	Subs []SubCategory `json:"subs"`
}

// Hierarchy is the fixed main → sub → type tree. It is a slice rather than a
// map so that selectors list the categories in declaration order.
type Hierarchy []MainCategory

var (
	ErrEmptyCategoryName     = errors.New("empty category name")
	ErrDuplicateCategoryName = errors.New("duplicate category name")
)

// Validate checks that names are non-empty and unique on each level.
func (h Hierarchy) Validate() error {
	mains := make(map[string]struct{}, len(h))
	for i, main := range h {
		if main.Name == "" {
			return fmt.Errorf("main category #%d: %w", i, ErrEmptyCategoryName)
		}
		if _, ok := mains[main.Name]; ok {
			return fmt.Errorf("main category %q: %w", main.Name, ErrDuplicateCategoryName)
		}
		mains[main.Name] = struct{}{}

		subs := make(map[string]struct{}, len(main.Subs))
		for j, sub := range main.Subs {
			if sub.Name == "" {
				return fmt.Errorf("subcategory #%d of %q: %w", j, main.Name, ErrEmptyCategoryName)
			}
			if _, ok := subs[sub.Name]; ok {
				return fmt.Errorf("subcategory %q of %q: %w", sub.Name, main.Name, ErrDuplicateCategoryName)
			}
			subs[sub.Name] = struct{}{}
		}
	}
	return nil
}

// MainNames returns the top-level keys in order.
func (h Hierarchy) MainNames() []string {
	names := make([]string, 0, len(h))
	for _, main := range h {
		names = append(names, main.Name)
	}
	return names
}

// SubNames returns the subcategory keys under main. ok is false when main is
// not part of the hierarchy.
func (h Hierarchy) SubNames(main string) (names []string, ok bool) {
	for _, m := range h {
		if m.Name != main {
			continue
		}
		names = make([]string, 0, len(m.Subs))
		for _, sub := range m.Subs {
			names = append(names, sub.Name)
		}
		return names, true
	}
	return nil, false
}

func clothing() []SubCategory {
	return []SubCategory{
		{Name: "Tröjor", Types: []string{"Graphic Tees", "Hoodies & Sweatshirts"}},
		{Name: "Byxor", Types: []string{"Jeans", "Andra byxor"}},
		{Name: "Skor", Types: []string{"Skate skor", "Slides"}},
		{Name: "Jackor", Types: []string{}},
	}
}

// SkateHierarchy is the category tree of the shop.
var SkateHierarchy = Hierarchy{
	{Name: "Herr", Subs: clothing()},
	{Name: "Dam", Subs: clothing()},
	{Name: "Unisex", Subs: []SubCategory{
		{Name: "Accessories", Types: []string{"Väskor", "Headwear", "Socks", "Stickers, Keychains, etc"}},
	}},
	{Name: "Skate tillbehör", Subs: []SubCategory{
		{Name: "Decks", Types: []string{}},
		{Name: "Trucks", Types: []string{}},
		{Name: "Wheels & Bearings", Types: []string{}},
		{Name: "Färdiga brädor", Types: []string{}},
	}},
}
