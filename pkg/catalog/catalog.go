// Package catalog holds the synthetic product catalog: deterministic
// generation of per-retailer offers from hand-authored templates, the
// non-deterministic refresh pass, and the local search facade the server
// falls back to when the remote search API is unreachable.
package catalog

import (
	"strings"

	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
)

// Section pairs a category label with its templates and the start of its
// reserved id range.
type Section struct {
	Category  string
	StartID   int
	Templates []Template
}

// Catalog is the in-memory product set, built once at startup.
type Catalog struct {
	products []models.Product
	byID     map[int]int
}

// Build generates every section in order and indexes the result.
func Build(sections []Section) *Catalog {
	c := &Catalog{byID: make(map[int]int)}
	for _, s := range sections {
		for _, p := range Generate(s.Templates, s.Category, s.StartID) {
			c.byID[p.ID] = len(c.products)
			c.products = append(c.products, p)
		}
	}
	return c
}

// All returns every product in catalog order.
func (c *Catalog) All() []models.Product {
	return c.products
}

// Get looks a product up by id.
func (c *Catalog) Get(id int) (models.Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Product{}, models.ErrProductNotFound
	}
	return c.products[idx], nil
}

// Search filters by case-insensitive substring match over name,
// description and category. An empty or whitespace-only query returns
// the whole catalog. No ranking; catalog order is preserved.
func (c *Catalog) Search(query string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return c.products
	}

	var matches []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			matches = append(matches, p)
		}
	}
	return matches
}

// ListByCategory returns the first limit products, optionally filtered
// by exact category equality (case-insensitive). An empty category means
// no filter.
func (c *Catalog) ListByCategory(category string, limit int) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Categories returns the distinct category labels in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Refresh re-jitters every product's offers in place. Not deterministic.
func (c *Catalog) Refresh() {
	for i := range c.products {
		RefreshPrices(&c.products[i])
	}
}
