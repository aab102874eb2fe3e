package app

import (
	"maps"
	"slices"
	"strconv"

	"printcraft/internal/domain"
)

// QuantityOption is the line item option that records the print-run size.
const QuantityOption = "quantity"

// Configurator tracks one customer's customization of a product. It only
// ever holds a configuration that prices successfully.
type Configurator struct {
	product domain.Product
	cfg     domain.Configuration
	price   int64
}

// NewConfigurator starts from the product's default configuration.
func NewConfigurator(p domain.Product) (*Configurator, error) {
	cfg := p.Default()
	price, err := domain.Price(p, cfg)
	if err != nil {
		return nil, err
	}
	return &Configurator{product: p, cfg: cfg, price: price}, nil
}

// Product returns the product being configured.
func (c *Configurator) Product() domain.Product { return c.product }

// Select chooses value on axis. An invalid choice returns the
// ConfigurationError and leaves configuration and price unchanged.
func (c *Configurator) Select(axis, value string) (int64, error) {
	next := c.cfg.Clone()
	next.Selections[axis] = value
	return c.apply(next)
}

// SetQuantity changes the print-run size under the same rules as Select.
func (c *Configurator) SetQuantity(q int) (int64, error) {
	next := c.cfg.Clone()
	next.Quantity = q
	return c.apply(next)
}

// SetPreviewText replaces the preview text lines.
func (c *Configurator) SetPreviewText(lines ...string) {
	c.cfg.PreviewText = slices.Clone(lines)
}

// AttachArtwork records the reference of an uploaded preview image. An empty
// reference detaches it.
func (c *Configurator) AttachArtwork(ref string) {
	c.cfg.ArtworkReference = ref
}

// Quote returns the price of the current configuration in cents.
func (c *Configurator) Quote() int64 { return c.price }

// Configuration returns a copy of the current configuration.
func (c *Configurator) Configuration() domain.Configuration { return c.cfg.Clone() }

// LineItem returns the cart entry for the current configuration: one unit of
// the configured print run at the quoted price.
func (c *Configurator) LineItem() domain.NewLineItem {
	opts := maps.Clone(c.cfg.Selections)
	opts[QuantityOption] = strconv.Itoa(c.cfg.Quantity)
	return domain.NewLineItem{
		ProductID:        c.product.Slug,
		Name:             c.product.Name,
		Options:          opts,
		Quantity:         1,
		UnitPrice:        c.price,
		ArtworkReference: c.cfg.ArtworkReference,
	}
}

func (c *Configurator) apply(next domain.Configuration) (int64, error) {
	price, err := domain.Price(c.product, next)
	if err != nil {
		return c.price, err
	}
	c.cfg = next
	c.price = price
	return price, nil
}

// Quote prices a configuration against a product without keeping state; the
// HTTP adapter uses it for the live estimate.
func Quote(p domain.Product, cfg domain.Configuration) (domain.NewLineItem, error) {
	c := &Configurator{product: p, cfg: cfg.Clone()}
	if c.cfg.Selections == nil {
		c.cfg.Selections = map[string]string{}
	}
	price, err := domain.Price(p, c.cfg)
	if err != nil {
		return domain.NewLineItem{}, err
	}
	c.price = price
	return c.LineItem(), nil
}
