// Package catalog provides the filtering and pagination engine that derives
// the visible product view from the loaded catalog and the current filter
// state.
package catalog

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// DefaultPageSize matches the listing page grid.
const DefaultPageSize = 12

// FilterState holds the active keyword and category filter. It changes only
// through explicit filter actions; every change resets pagination to the
// first page.
type FilterState struct {
	Keyword    string
	CategoryID string
}

// PaginationState is the derived paging window over the filtered list.
// CurrentPage is always within [1, max(TotalPages, 1)].
type PaginationState struct {
	CurrentPage int
	PageSize    int
	TotalPages  int
}

// Engine derives a filtered, paginated view over an in-memory product list.
// It owns the filter and pagination state for one page session.
type Engine struct {
	products   []models.Product
	filtered   []models.Product
	categories []models.Category
	byID       map[string]models.Product
	filter     FilterState
	pagination PaginationState
}

// NewEngine creates an engine with an empty catalog. A non-positive pageSize
// falls back to DefaultPageSize.
func NewEngine(pageSize int) *Engine {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	e := &Engine{
		byID:       make(map[string]models.Product),
		filter:     FilterState{CategoryID: models.CategoryAll},
		pagination: PaginationState{CurrentPage: 1, PageSize: pageSize},
	}
	return e
}

// SetProducts replaces the catalog, rebuilds the category aggregates, resets
// filters, and recomputes the view from page one.
func (e *Engine) SetProducts(products []models.Product) {
	e.products = products
	e.byID = make(map[string]models.Product, len(products))
	for _, p := range products {
		e.byID[p.ID] = p
	}
	e.categories = buildCategories(products)
	e.filter = FilterState{CategoryID: models.CategoryAll}
	e.Recompute(true)
}

// Lookup resolves a product id against the loaded catalog.
func (e *Engine) Lookup(id string) (models.Product, bool) {
	p, ok := e.byID[id]
	return p, ok
}

// Products returns the full unfiltered catalog.
func (e *Engine) Products() []models.Product {
	return e.products
}

// Filter returns the current filter state.
func (e *Engine) Filter() FilterState {
	return e.filter
}

// Pagination returns the current pagination state.
func (e *Engine) Pagination() PaginationState {
	return e.pagination
}

// SetKeyword updates the keyword filter and recomputes from page one.
func (e *Engine) SetKeyword(text string) {
	e.filter.Keyword = text
	e.Recompute(true)
}

// SetCategory updates the category filter and recomputes from page one.
func (e *Engine) SetCategory(id string) {
	e.filter.CategoryID = id
	e.Recompute(true)
}

// GotoPage navigates to the given page, clamped into [1, TotalPages]. It
// reports whether the current page actually changed, so callers can skip a
// redundant re-render. Navigation on an empty filtered list is a no-op.
func (e *Engine) GotoPage(page int) bool {
	if e.pagination.TotalPages == 0 {
		return false
	}
	if page < 1 {
		page = 1
	}
	if page > e.pagination.TotalPages {
		page = e.pagination.TotalPages
	}
	if page == e.pagination.CurrentPage {
		return false
	}
	e.pagination.CurrentPage = page
	return true
}

// VisibleItems returns the slice of the filtered list for the current page.
func (e *Engine) VisibleItems() []models.Product {
	if len(e.filtered) == 0 {
		return []models.Product{}
	}
	start := (e.pagination.CurrentPage - 1) * e.pagination.PageSize
	if start >= len(e.filtered) {
		return []models.Product{}
	}
	end := start + e.pagination.PageSize
	if end > len(e.filtered) {
		end = len(e.filtered)
	}
	return e.filtered[start:end]
}

// FilteredCount returns the size of the filtered list across all pages.
func (e *Engine) FilteredCount() int {
	return len(e.filtered)
}

// HasPagination reports whether page controls should render at all. A single
// page, like an empty result, shows no controls.
func (e *Engine) HasPagination() bool {
	return e.pagination.TotalPages > 1
}

// Categories returns the aggregated category list: a synthetic "all" entry
// counting the whole catalog, then the real categories in first-seen order.
func (e *Engine) Categories() []models.Category {
	all := models.Category{
		ID:           models.CategoryAll,
		Label:        "All",
		DisplayLabel: "All",
		Count:        len(e.products),
	}
	return append([]models.Category{all}, e.categories...)
}

// Recompute refilters the catalog and rederives pagination. With resetPage
// the view returns to page one; otherwise the current page is clamped into
// the new bounds.
func (e *Engine) Recompute(resetPage bool) {
	keyword := strings.ToLower(strings.TrimSpace(e.filter.Keyword))

	e.filtered = nil
	for _, p := range e.products {
		if matchesKeyword(p, keyword) && matchesCategory(p, e.filter.CategoryID) {
			e.filtered = append(e.filtered, p)
		}
	}

	total := 0
	if len(e.filtered) > 0 {
		total = (len(e.filtered) + e.pagination.PageSize - 1) / e.pagination.PageSize
	}
	e.pagination.TotalPages = total

	switch {
	case total == 0:
		e.pagination.CurrentPage = 1
	case resetPage:
		e.pagination.CurrentPage = 1
	case e.pagination.CurrentPage > total:
		e.pagination.CurrentPage = total
	case e.pagination.CurrentPage < 1:
		e.pagination.CurrentPage = 1
	}
}

func matchesKeyword(p models.Product, keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), keyword) ||
		strings.Contains(strings.ToLower(p.Description), keyword) ||
		strings.Contains(strings.ToLower(p.Category), keyword)
}

func matchesCategory(p models.Product, categoryID string) bool {
	if categoryID == models.CategoryAll {
		return true
	}
	return effectiveCategoryID(p) == categoryID
}

// effectiveCategoryID buckets products without a category id under the
// synthetic "uncategorized" category, so filtering and aggregation agree.
func effectiveCategoryID(p models.Product) string {
	if p.CategoryID == "" {
		return models.CategoryUncategorized
	}
	return p.CategoryID
}

func buildCategories(products []models.Product) []models.Category {
	index := make(map[string]int)
	var categories []models.Category

	for _, p := range products {
		id := effectiveCategoryID(p)
		if i, seen := index[id]; seen {
			categories[i].Count++
			continue
		}
		label := p.Category
		if label == "" {
			label = id
		}
		index[id] = len(categories)
		categories = append(categories, models.Category{
			ID:           id,
			Label:        label,
			DisplayLabel: fmt.Sprintf("%s (%s)", label, id),
			Count:        1,
		})
	}
	return categories
}
