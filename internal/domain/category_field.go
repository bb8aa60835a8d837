package domain

// CategoryField names one level of a product's category path.
type CategoryField string

const (
	CategoryFieldMain CategoryField = "main" // Herr, Dam, Unisex, ...
	CategoryFieldSub  CategoryField = "sub"  // Tröjor, Byxor, Decks, ...
	CategoryFieldType CategoryField = "type" // Graphic Tees, Headwear, ...
)

// ParseCategoryField reports whether s is one of the known category levels.
// The match is case sensitive.
func ParseCategoryField(s string) (CategoryField, bool) {
	switch f := CategoryField(s); f {
	case CategoryFieldMain, CategoryFieldSub, CategoryFieldType:
		return f, true
	default:
		return "", false
	}
}
