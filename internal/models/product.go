package models

// Product represents a catalog item. Products are immutable once loaded;
// price is expressed in the smallest currency unit.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	CategoryID  string   `json:"categoryId"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// GalleryImages returns the product gallery, falling back to the single
// main image when no gallery is present.
func (p Product) GalleryImages() []string {
	if len(p.Gallery) > 0 {
		return p.Gallery
	}
	if p.Image == "" {
		return nil
	}
	return []string{p.Image}
}

// Category is an aggregate derived from the product list. It is rebuilt on
// every catalog load and never persisted.
type Category struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	DisplayLabel string `json:"displayLabel"`
	Count        int    `json:"count"`
}

// CategoryAll is the id of the synthetic category matching every product.
const CategoryAll = "all"

// CategoryUncategorized is the bucket for products without a category id.
const CategoryUncategorized = "uncategorized"
