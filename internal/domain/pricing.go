package domain

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

// ErrInvalidConfiguration is matched by every ConfigurationError.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigurationError reports an axis value or quantity outside the allowed set.
type ConfigurationError struct {
	Product string
	Axis    string
	Value   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("%s: %s", e.Product, e.Reason)
	}
	return fmt.Sprintf("%s: %s %q: %s", e.Product, e.Axis, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfiguration) hold for every ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// Configuration is the transient set of choices a customer makes while
// customizing a product. Selections maps axis name to option value.
type Configuration struct {
	Selections       map[string]string `json:"selections"`
	Quantity         int               `json:"quantity"`
	PreviewText      []string          `json:"previewText,omitempty"`
	ArtworkReference string            `json:"artworkReference,omitempty"`
}

// Clone returns a copy that shares no mutable state with c.
func (c Configuration) Clone() Configuration {
	out := c
	out.Selections = maps.Clone(c.Selections)
	out.PreviewText = slices.Clone(c.PreviewText)
	return out
}

// Price returns the total price in cents of c for product p:
//
//	round_half_up((base + sum(selected deltas)) * quantity / referenceQuantity)
//
// Rounding happens once, after the deltas are summed and the quantity is
// scaled, so no axis combination accumulates rounding drift.
func Price(p Product, c Configuration) (int64, error) {
	if p.ReferenceQuantity < 1 {
		return 0, &ConfigurationError{Product: p.Slug, Reason: "product has no reference quantity"}
	}
	if !p.AllowsQuantity(c.Quantity) {
		return 0, &ConfigurationError{
			Product: p.Slug,
			Axis:    "quantity",
			Value:   fmt.Sprint(c.Quantity),
			Reason:  "quantity not offered",
		}
	}

	for name, value := range c.Selections {
		if _, ok := p.Axis(name); !ok {
			return 0, &ConfigurationError{Product: p.Slug, Axis: name, Value: value, Reason: "unknown axis"}
		}
	}

	unit := p.BasePriceCents
	for _, a := range p.Axes {
		value, ok := c.Selections[a.Name]
		if !ok {
			return 0, &ConfigurationError{Product: p.Slug, Axis: a.Name, Reason: "no option selected"}
		}
		o, ok := a.Option(value)
		if !ok {
			return 0, &ConfigurationError{Product: p.Slug, Axis: a.Name, Value: value, Reason: "option not offered"}
		}
		unit += o.DeltaCents
	}
	if unit < 0 {
		return 0, &ConfigurationError{Product: p.Slug, Reason: "configuration prices below zero"}
	}

	ref := int64(p.ReferenceQuantity)
	if unit > 0 && int64(c.Quantity) > (math.MaxInt64-ref)/2/unit {
		return 0, &ConfigurationError{
			Product: p.Slug,
			Axis:    "quantity",
			Value:   fmt.Sprint(c.Quantity),
			Reason:  "quantity too large to price",
		}
	}
	scaled := unit * int64(c.Quantity)
	return (2*scaled + ref) / (2 * ref), nil
}
