// Package domain contains the core commerce entities, the pricing rules and
// the ports implemented by adapters.
package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrProductNotFound indicates that the catalog has no product with the requested slug.
var ErrProductNotFound = errors.New("product not found")

// Option is one allowed value of an axis together with its price delta in cents.
type Option struct {
	Value      string `json:"value" yaml:"value"`
	Label      string `json:"label" yaml:"label"`
	DeltaCents int64  `json:"deltaCents" yaml:"delta_cents"`
}

// Axis is a configurable dimension of a product (size, paper, finish).
type Axis struct {
	Name    string   `json:"name" yaml:"name"`
	Label   string   `json:"label" yaml:"label"`
	Options []Option `json:"options" yaml:"options"`
}

// Option returns the allowed option with the given value.
func (a Axis) Option(value string) (Option, bool) {
	for _, o := range a.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Product describes a configurable printed product. BasePriceCents is the
// price of ReferenceQuantity units with every zero-delta option selected.
type Product struct {
	Slug              string `json:"slug" yaml:"slug"`
	Name              string `json:"name" yaml:"name"`
	BasePriceCents    int64  `json:"basePriceCents" yaml:"base_price_cents"`
	ReferenceQuantity int    `json:"referenceQuantity" yaml:"reference_quantity"`
	Axes              []Axis `json:"axes" yaml:"axes"`
	Quantities        []int  `json:"quantities" yaml:"quantities"`
}

// Axis returns the axis with the given name.
func (p Product) Axis(name string) (Axis, bool) {
	for _, a := range p.Axes {
		if a.Name == name {
			return a, true
		}
	}
	return Axis{}, false
}

// AllowsQuantity reports whether q may be ordered. Products without an
// explicit quantity list accept any positive quantity.
func (p Product) AllowsQuantity(q int) bool {
	if q < 1 {
		return false
	}
	if len(p.Quantities) == 0 {
		return true
	}
	for _, allowed := range p.Quantities {
		if allowed == q {
			return true
		}
	}
	return false
}

// Default returns the configuration a customer starts from: the first option
// of every axis and the first allowed quantity.
func (p Product) Default() Configuration {
	sel := make(map[string]string, len(p.Axes))
	for _, a := range p.Axes {
		if len(a.Options) > 0 {
			sel[a.Name] = a.Options[0].Value
		}
	}
	qty := p.ReferenceQuantity
	if len(p.Quantities) > 0 {
		qty = p.Quantities[0]
	}
	return Configuration{Selections: sel, Quantity: qty}
}

// Validate checks that the product can be priced for every combination of
// its axes without producing a negative amount.
func (p Product) Validate() error {
	if p.Slug == "" {
		return errors.New("product slug is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %q: name is required", p.Slug)
	}
	if p.ReferenceQuantity < 1 {
		return fmt.Errorf("product %q: reference quantity must be >= 1", p.Slug)
	}
	if p.BasePriceCents < 0 {
		return fmt.Errorf("product %q: base price must be >= 0", p.Slug)
	}

	floor := p.BasePriceCents
	seenAxes := make(map[string]bool, len(p.Axes))
	for _, a := range p.Axes {
		if a.Name == "" {
			return fmt.Errorf("product %q: axis name is required", p.Slug)
		}
		if seenAxes[a.Name] {
			return fmt.Errorf("product %q: duplicate axis %q", p.Slug, a.Name)
		}
		seenAxes[a.Name] = true
		if len(a.Options) == 0 {
			return fmt.Errorf("product %q: axis %q has no options", p.Slug, a.Name)
		}

		minDelta := a.Options[0].DeltaCents
		seenValues := make(map[string]bool, len(a.Options))
		for _, o := range a.Options {
			if o.Value == "" {
				return fmt.Errorf("product %q: axis %q has an option without a value", p.Slug, a.Name)
			}
			if seenValues[o.Value] {
				return fmt.Errorf("product %q: axis %q: duplicate option %q", p.Slug, a.Name, o.Value)
			}
			seenValues[o.Value] = true
			minDelta = min(minDelta, o.DeltaCents)
		}
		floor += minDelta
	}
	if floor < 0 {
		return fmt.Errorf("product %q: cheapest combination is negative (%d)", p.Slug, floor)
	}

	for _, q := range p.Quantities {
		if q < 1 {
			return fmt.Errorf("product %q: quantity %d must be >= 1", p.Slug, q)
		}
	}
	return nil
}

// Catalog is the read-only source of product definitions.
type Catalog interface {
	Product(ctx context.Context, slug string) (Product, error)
	Products(ctx context.Context) ([]Product, error)
}
