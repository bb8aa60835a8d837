package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var fragments = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ListHTML renders the cards, or the empty placeholder, of a listing.
func ListHTML(view ListView) (string, error) {
	name := "cards"
	if view.Empty {
		name = "empty"
	}
	return execute(name, view)
}

// OptionsHTML renders the option elements of a selector.
func OptionsHTML(view SelectView) (string, error) {
	return execute("options", view)
}

// FiltersHTML renders the category navigation links.
func FiltersHTML(view FilterView) (string, error) {
	return execute("filters", view)
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
