package domain

import (
	"errors"
	"maps"
)

var (
	// ErrInvalidLineItem indicates a line item that cannot enter the cart.
	ErrInvalidLineItem = errors.New("invalid line item")
	// ErrCartFull indicates an add to a cart already holding MaxCartLines items.
	ErrCartFull = errors.New("cart is full")
)

// Cart bounds. Together they keep Subtotal and Count far inside int64.
const (
	MaxLineQuantity   = 9999
	MaxUnitPriceCents = 1_000_000_000
	MaxCartLines      = 200
)

// NewLineItem is a priced, configured item before the cart assigns it an id.
type NewLineItem struct {
	ProductID        string            `json:"productId"`
	Name             string            `json:"name"`
	Options          map[string]string `json:"options"`
	Quantity         int               `json:"quantity"`
	UnitPrice        int64             `json:"unitPrice"`
	ArtworkReference string            `json:"artworkReference,omitempty"`
}

// LineItem is one priced, quantified cart entry. UnitPrice is locked in at
// add time and never recomputed.
type LineItem struct {
	ID               string            `json:"id"`
	ProductID        string            `json:"productId"`
	Name             string            `json:"name"`
	Options          map[string]string `json:"options"`
	Quantity         int               `json:"quantity"`
	UnitPrice        int64             `json:"unitPrice"`
	ArtworkReference string            `json:"artworkReference,omitempty"`
}

// Total returns UnitPrice * Quantity.
func (li LineItem) Total() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// Clone returns a copy whose Options map is not shared with li.
func (li LineItem) Clone() LineItem {
	li.Options = maps.Clone(li.Options)
	return li
}

// ClampQuantity returns q limited to [1, MaxLineQuantity].
func ClampQuantity(q int) int {
	return min(max(q, 1), MaxLineQuantity)
}

// ValidUnitPrice reports whether cents may be locked into a line item.
func ValidUnitPrice(cents int64) bool {
	return cents >= 0 && cents <= MaxUnitPriceCents
}

// Cart is the ordered, newest-first collection of line items.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Subtotal returns the sum of unitPrice * quantity over all items.
func (c Cart) Subtotal() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Total()
	}
	return total
}

// Count returns the sum of quantities over all items.
func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Index returns the position of the item with the given id, or -1.
func (c Cart) Index(id string) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of c. The result always has a non-nil Items slice.
func (c Cart) Clone() Cart {
	items := make([]LineItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = it.Clone()
	}
	return Cart{Items: items}
}

// Normalize repairs a cart read from storage: nil items become empty,
// quantities are clamped, items with an out-of-range unit price are dropped
// and the cart is cut to MaxCartLines.
func (c Cart) Normalize() Cart {
	out := Cart{Items: make([]LineItem, 0, min(len(c.Items), MaxCartLines))}
	for _, it := range c.Items {
		if len(out.Items) == MaxCartLines {
			break
		}
		if !ValidUnitPrice(it.UnitPrice) {
			continue
		}
		it = it.Clone()
		it.Quantity = ClampQuantity(it.Quantity)
		out.Items = append(out.Items, it)
	}
	return out
}
