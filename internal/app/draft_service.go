package app

import (
	"context"
	"sync"

	"printcraft/internal/domain"
)

// Draft is the in-progress customization of one product.
type Draft struct {
	Product       string               `json:"product"`
	Configuration domain.Configuration `json:"configuration"`
	PriceCents    int64                `json:"priceCents"`
}

// DraftChange is a partial update to a draft. Nil fields are left alone;
// a selection is applied only when Axis is set.
type DraftChange struct {
	Axis             string    `json:"axis,omitempty"`
	Value            string    `json:"value,omitempty"`
	Quantity         *int      `json:"quantity,omitempty"`
	PreviewText      *[]string `json:"previewText,omitempty"`
	ArtworkReference *string   `json:"artworkReference,omitempty"`
}

// DraftService keeps one Configurator per product for the storefront's
// single customer, mirroring the live customize page.
type DraftService struct {
	catalog domain.Catalog

	mu     sync.Mutex
	drafts map[string]*Configurator
}

// NewDraftService creates a DraftService over catalog.
func NewDraftService(catalog domain.Catalog) *DraftService {
	return &DraftService{catalog: catalog, drafts: make(map[string]*Configurator)}
}

// Get returns the draft for slug, starting from the product default.
func (s *DraftService) Get(ctx context.Context, slug string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.configurator(ctx, slug)
	if err != nil {
		return Draft{}, err
	}
	return view(c), nil
}

// Apply applies change in order: selection, quantity, preview text, artwork.
// The first ConfigurationError stops the update; the returned draft is then
// the last valid one, which still includes any earlier parts of the change.
func (s *DraftService) Apply(ctx context.Context, slug string, change DraftChange) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.configurator(ctx, slug)
	if err != nil {
		return Draft{}, err
	}

	if change.Axis != "" {
		if _, err := c.Select(change.Axis, change.Value); err != nil {
			return view(c), err
		}
	}
	if change.Quantity != nil {
		if _, err := c.SetQuantity(*change.Quantity); err != nil {
			return view(c), err
		}
	}
	if change.PreviewText != nil {
		c.SetPreviewText(*change.PreviewText...)
	}
	if change.ArtworkReference != nil {
		c.AttachArtwork(*change.ArtworkReference)
	}
	return view(c), nil
}

// Reset discards the draft for slug and returns a fresh default one.
func (s *DraftService) Reset(ctx context.Context, slug string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, slug)
	c, err := s.configurator(ctx, slug)
	if err != nil {
		return Draft{}, err
	}
	return view(c), nil
}

// LineItem returns the cart entry for the current draft of slug.
func (s *DraftService) LineItem(ctx context.Context, slug string) (domain.NewLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.configurator(ctx, slug)
	if err != nil {
		return domain.NewLineItem{}, err
	}
	return c.LineItem(), nil
}

// configurator returns the Configurator for slug, creating it on first use.
// Callers hold s.mu.
func (s *DraftService) configurator(ctx context.Context, slug string) (*Configurator, error) {
	if c, ok := s.drafts[slug]; ok {
		return c, nil
	}
	p, err := s.catalog.Product(ctx, slug)
	if err != nil {
		return nil, err
	}
	c, err := NewConfigurator(p)
	if err != nil {
		return nil, err
	}
	s.drafts[slug] = c
	return c, nil
}

func view(c *Configurator) Draft {
	return Draft{
		Product:       c.Product().Slug,
		Configuration: c.Configuration(),
		PriceCents:    c.Quote(),
	}
}
