package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrEmptyCart indicates a checkout attempt with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	// ErrInvalidShipping indicates missing shipping details.
	ErrInvalidShipping = errors.New("invalid shipping details")
)

// ShippingDetails is the address collected at checkout.
type ShippingDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// Missing returns the names of the required fields that are blank.
func (d ShippingDetails) Missing() []string {
	var out []string
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"email", d.Email},
		{"address", d.Address},
		{"city", d.City},
		{"postalCode", d.PostalCode},
	} {
		if strings.TrimSpace(f.value) == "" {
			out = append(out, f.name)
		}
	}
	return out
}

// Order is a completed mock checkout.
type Order struct {
	ID       string          `json:"id"`
	Items    []LineItem      `json:"items"`
	Subtotal int64           `json:"subtotal"`
	Count    int             `json:"count"`
	Shipping ShippingDetails `json:"shipping"`
	PlacedAt time.Time       `json:"placedAt"`
}
