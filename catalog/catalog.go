// Package catalog supplies the immutable product collection the storefront
// queries. A catalog is built once, validated, and never mutated.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"shopfront/domain"
)

// Catalog is an ordered, immutable product collection with id lookup.
type Catalog struct {
	products []domain.Product
	byID     map[int]int
}

// New builds a catalog from the given products, validating each entry and
// rejecting duplicate ids. The input slice is copied.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		if err := domain.ValidateProduct(p); err != nil {
			return nil, err
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, domain.NewDuplicateProductError(p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// LoadFile reads a product list from a JSON or YAML file, chosen by
// extension.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var products []domain.Product
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &products); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &products); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
	}
	return New(products)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the product list in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID returns the product with the given id.
func (c *Catalog) ByID(id int) (domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, domain.NewProductNotFoundError(id)
	}
	return c.products[i], nil
}
