// Package catalog holds the static product catalog. Products are generated
// deterministically from per-category templates so every category has a full
// shelf without hand-writing hundreds of records; the same construction
// always yields the same ids, names and prices.
package catalog

import (
	"fmt"
	"strings"

	"github.com/gitsish/aaishop-ibm-project/internal/domain"
)

const perCategory = 8

// Product aliases the domain record; the catalog is the one place these are
// authored, everything else holds snapshots.
type Product = domain.Product

// Catalog is a read-only product lookup.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New generates the full catalog.
func New() *Catalog {
	c := &Catalog{byID: make(map[string]int)}
	nextID := 1
	for _, cat := range Categories {
		base, ok := templates[cat]
		if !ok {
			base = template{
				category:    cat,
				brand:       "Generic",
				nameBase:    cat + " Item",
				priceCents:  99900,
				description: "Default " + cat + " product.",
				sizes:       []string{"One Size"},
				colors:      []string{"Default"},
				images:      imageSets["default"],
			}
		}
		for i := 0; i < perCategory; i++ {
			p := generate(base, nextID, i)
			c.byID[p.ID] = len(c.products)
			c.products = append(c.products, p)
			nextID++
		}
	}
	return c
}

// GetByID looks a product up by its id string.
func (c *Catalog) GetByID(id string) (*Product, bool) {
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, false
	}
	p := c.products[idx]
	return &p, true
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Category string
	Query    string
}

// List returns products matching the filter, in catalog order.
func (c *Catalog) List(f Filter) []Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	category := strings.TrimSpace(f.Category)
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Len reports the catalog size.
func (c *Catalog) Len() int {
	return len(c.products)
}

func matchesQuery(p Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func generate(base template, id, i int) Product {
	// Small per-item variance keeps shelves from looking copy-pasted:
	// prices step by ₹50, strike-through prices by ₹100.
	price := base.priceCents + int64(i%5)*5000
	var original int64
	discount := 0
	if base.originalPriceCents > 0 {
		original = base.originalPriceCents + int64(i%3)*10000
		discount = base.discountPercent
	}
	images := make([]string, len(base.images))
	for idx, u := range base.images {
		images[idx] = fmt.Sprintf("%s&ixlib=rb-1.2.1&variant=%d-%d", u, i, idx)
	}
	badge := ""
	if i == 0 {
		badge = base.badge
	}
	return Product{
		ID:                 fmt.Sprintf("%d", id),
		Name:               fmt.Sprintf("%s %d", base.nameBase, i+1),
		Brand:              base.brand,
		PriceCents:         price,
		OriginalPriceCents: original,
		DiscountPercent:    discount,
		Rating:             4.0 + float64(i%5)*0.1,
		ReviewCount:        100 + i*10,
		Images:             images,
		Category:           base.category,
		Description:        base.description,
		Sizes:              base.sizes,
		Colors:             base.colors,
		Badge:              badge,
		InStock:            true,
	}
}
