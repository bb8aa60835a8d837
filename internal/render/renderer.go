package render

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"skateshop/storefront/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Host pages served by the storefront.
const (
	PageIndex   = "index"
	PageAdmin   = "admin"
	PageContact = "contact"
)

// Renderer keeps the host page sources and the last list the catalog asked
// to display. It implements catalog.Observer.
type Renderer struct {
	hierarchy domain.Hierarchy
	sources   map[string]string

	mu        sync.RWMutex
	displayed []domain.Product
}

// NewRenderer loads every *.html file of pages, keyed by name without
// extension.
func NewRenderer(hierarchy domain.Hierarchy, pages fs.FS) (*Renderer, error) {
	files, err := fs.Glob(pages, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list host pages: %w", err)
	}

	sources := make(map[string]string, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(pages, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read host page %s: %w", file, err)
		}
		sources[strings.TrimSuffix(path.Base(file), ".html")] = string(data)
	}

	log.Infof("✅ Loaded %d host pages", len(sources))
	return &Renderer{
		hierarchy: hierarchy,
		sources:   sources,
		displayed: make([]domain.Product, 0),
	}, nil
}

func (r *Renderer) Repaint(products []domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.displayed = append(make([]domain.Product, 0, len(products)), products...)
}

// Displayed is the list of the latest repaint.
func (r *Renderer) Displayed() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]domain.Product, 0, len(r.displayed)), r.displayed...)
}

// Page returns a freshly parsed host page.
func (r *Renderer) Page(name string) (*Page, error) {
	src, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown host page %q", name)
	}
	return NewPage(src, r.hierarchy)
}

// Compose prepares a host page the way it looks on load: products painted,
// main categories listed and the category selectors wired together.
func (r *Renderer) Compose(name string, products []domain.Product) (*Page, error) {
	page, err := r.Page(name)
	if err != nil {
		return nil, err
	}

	if err := page.Render(products); err != nil {
		return nil, err
	}
	if err := page.PopulateMainCategories(MainCategorySelectID); err != nil {
		return nil, err
	}
	if err := page.PopulateCategoryFilter(CategoryFilterID); err != nil {
		return nil, err
	}
	page.WireCategorySelectors(MainCategorySelectID, SubCategorySelectID)

	return page, nil
}
