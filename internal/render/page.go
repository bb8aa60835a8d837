package render

import (
	"fmt"
	"strings"

	"skateshop/storefront/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// Mount points looked up in host pages.
const (
	ProductListID        = "product-list-container"
	MainCategorySelectID = "main-category-select"
	SubCategorySelectID  = "sub-category-select"
	CategoryFilterID     = "category-filter"
)

// Page is one host document. Elements missing from the document turn the
// operations that target them into no-ops.
type Page struct {
	doc       *goquery.Document
	hierarchy domain.Hierarchy
	onChange  map[string][]func(value string)
}

// NewPage parses a host document.
func NewPage(html string, hierarchy domain.Hierarchy) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse host page: %w", err)
	}

	return &Page{
		doc:       doc,
		hierarchy: hierarchy,
		onChange:  make(map[string][]func(string)),
	}, nil
}

// Document exposes the parsed document for inspection.
func (p *Page) Document() *goquery.Document {
	return p.doc
}

func (p *Page) element(id string) *goquery.Selection {
	return p.doc.Find("#" + id).First()
}

// Render replaces the listing with one card per product, or with the empty
// placeholder.
func (p *Page) Render(products []domain.Product) error {
	container := p.element(ProductListID)
	if container.Length() == 0 {
		return nil
	}

	html, err := ListHTML(BuildListView(products))
	if err != nil {
		return err
	}

	container.SetHtml(html)
	log.Debugf("Rendered %d products", len(products))
	return nil
}

// PopulateMainCategories fills the selector with the top-level categories.
func (p *Page) PopulateMainCategories(selectID string) error {
	target := p.element(selectID)
	if target.Length() == 0 {
		return nil
	}

	return p.fill(target, BuildSelectView(MainCategoryPlaceholder, p.hierarchy.MainNames()))
}

// PopulateSubCategories fills the selector with the subcategories of main.
// An unknown main category leaves the selector as it is.
func (p *Page) PopulateSubCategories(main, selectID string) error {
	target := p.element(selectID)
	if target.Length() == 0 {
		return nil
	}

	subs, ok := p.hierarchy.SubNames(main)
	if !ok {
		return nil
	}

	return p.fill(target, BuildSelectView(SubCategoryPlaceholder, subs))
}

// PopulateCategoryFilter fills the navigation with one filter link per main
// category and subcategory.
func (p *Page) PopulateCategoryFilter(navID string) error {
	target := p.element(navID)
	if target.Length() == 0 {
		return nil
	}

	html, err := FiltersHTML(BuildFilterView(p.hierarchy))
	if err != nil {
		return err
	}
	target.SetHtml(html)
	return nil
}

func (p *Page) fill(target *goquery.Selection, view SelectView) error {
	html, err := OptionsHTML(view)
	if err != nil {
		return err
	}
	target.SetHtml(html)
	return nil
}

// WireCategorySelectors repopulates subID whenever mainID changes.
func (p *Page) WireCategorySelectors(mainID, subID string) {
	if p.element(mainID).Length() == 0 {
		return
	}

	p.onChange[mainID] = append(p.onChange[mainID], func(value string) {
		if err := p.PopulateSubCategories(value, subID); err != nil {
			log.Errorf("Failed to update %s: %v", subID, err)
		}
	})
}

// Change selects value on the element and runs its change handlers.
func (p *Page) Change(id, value string) {
	target := p.element(id)
	if target.Length() == 0 {
		return
	}

	options := target.Find("option")
	options.RemoveAttr("selected")
	options.FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("value")
		return v == value
	}).First().SetAttr("selected", "selected")

	for _, handler := range p.onChange[id] {
		handler(value)
	}
}

// HTML serializes the whole document.
func (p *Page) HTML() (string, error) {
	html, err := p.doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize page: %w", err)
	}
	return html, nil
}
