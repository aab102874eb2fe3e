// Package catalog loads product definitions from YAML.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"printcraft/internal/domain"
)

//go:embed business_cards.yaml
var defaultCatalog []byte

type file struct {
	Products []domain.Product `yaml:"products"`
}

// Catalog is an immutable, validated set of products.
type Catalog struct {
	order    []string
	products map[string]domain.Product
}

var _ domain.Catalog = (*Catalog)(nil)

// Load parses and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("catalog has no products")
	}

	c := &Catalog{products: make(map[string]domain.Product, len(f.Products))}
	for _, p := range f.Products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.products[p.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate product %q", p.Slug)
		}
		c.order = append(c.order, p.Slug)
		c.products[p.Slug] = p
	}
	return c, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in business card catalog.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Product returns the product with the given slug.
func (c *Catalog) Product(ctx context.Context, slug string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	p, ok := c.products[slug]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %q", domain.ErrProductNotFound, slug)
	}
	return p, nil
}

// Products returns every product in file order.
func (c *Catalog) Products(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.products[slug])
	}
	return out, nil
}
