// Package app holds the storefront's stateful services: the configurator,
// the cart and session stores, checkout and artwork references.
package app

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"printcraft/internal/domain"
	"printcraft/internal/persist"
)

// CartSlot is the persistence key of the cart snapshot.
const CartSlot = "cart_v1"

// CartStore owns the cart. Every mutation writes the complete post-mutation
// snapshot before it becomes visible; a failed write leaves the cart as it was.
type CartStore struct {
	mu    sync.Mutex
	slot  *persist.Slot[domain.Cart]
	cart  domain.Cart
	newID func() string
	log   *zap.Logger
}

// StoreOption configures CartStore and SessionStore.
type StoreOption func(*storeOptions)

type storeOptions struct {
	newID    func() string
	log      *zap.Logger
	verifier domain.CredentialVerifier
}

// WithIDGenerator overrides the uuid-based id generator.
func WithIDGenerator(fn func() string) StoreOption {
	return func(o *storeOptions) { o.newID = fn }
}

// WithLogger sets the logger used by the store.
func WithLogger(l *zap.Logger) StoreOption {
	return func(o *storeOptions) { o.log = l }
}

// WithCredentialVerifier routes SessionStore sign-ins through v.
func WithCredentialVerifier(v domain.CredentialVerifier) StoreOption {
	return func(o *storeOptions) { o.verifier = v }
}

func applyOptions(opts []StoreOption) storeOptions {
	o := storeOptions{
		newID:    uuid.NewString,
		log:      zap.NewNop(),
		verifier: domain.AcceptAll{},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// NewCartStore creates a CartStore from the persisted snapshot, or an empty
// cart when nothing usable is stored.
func NewCartStore(ctx context.Context, a *persist.Adapter, opts ...StoreOption) *CartStore {
	o := applyOptions(opts)
	s := &CartStore{
		slot:  persist.NewSlot[domain.Cart](a, CartSlot),
		newID: o.newID,
		log:   o.log,
	}
	if cart, ok := s.slot.Load(ctx); ok {
		s.cart = cart.Normalize()
	} else {
		s.cart = domain.Cart{Items: []domain.LineItem{}}
	}
	s.log.Debug("cart loaded", zap.Int("items", len(s.cart.Items)))
	return s
}

// Add assigns a fresh id to item, prepends it and persists the cart.
func (s *CartStore) Add(ctx context.Context, item domain.NewLineItem) (domain.LineItem, error) {
	if item.ProductID == "" {
		return domain.LineItem{}, fmt.Errorf("%w: product id is required", domain.ErrInvalidLineItem)
	}
	if !domain.ValidUnitPrice(item.UnitPrice) {
		return domain.LineItem{}, fmt.Errorf("%w: unit price must be between 0 and %d",
			domain.ErrInvalidLineItem, domain.MaxUnitPriceCents)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart.Items) >= domain.MaxCartLines {
		return domain.LineItem{}, fmt.Errorf("%w: at most %d items", domain.ErrCartFull, domain.MaxCartLines)
	}

	li := domain.LineItem{
		ID:               s.newID(),
		ProductID:        item.ProductID,
		Name:             item.Name,
		Options:          maps.Clone(item.Options),
		Quantity:         domain.ClampQuantity(item.Quantity),
		UnitPrice:        item.UnitPrice,
		ArtworkReference: item.ArtworkReference,
	}
	if li.Options == nil {
		li.Options = map[string]string{}
	}

	next := domain.Cart{Items: make([]domain.LineItem, 0, len(s.cart.Items)+1)}
	next.Items = append(next.Items, li)
	next.Items = append(next.Items, s.cart.Items...)
	if err := s.commit(ctx, next); err != nil {
		return domain.LineItem{}, err
	}
	return li.Clone(), nil
}

// Remove deletes the item with the given id. Unknown ids are a no-op.
func (s *CartStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.cart.Index(id)
	if i < 0 {
		return nil
	}
	next := domain.Cart{Items: make([]domain.LineItem, 0, len(s.cart.Items)-1)}
	next.Items = append(next.Items, s.cart.Items[:i]...)
	next.Items = append(next.Items, s.cart.Items[i+1:]...)
	return s.commit(ctx, next)
}

// SetQuantity sets the quantity of the item with the given id, clamped to
// [1, domain.MaxLineQuantity], keeping its position. Unknown ids are a no-op.
func (s *CartStore) SetQuantity(ctx context.Context, id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.cart.Index(id)
	if i < 0 {
		return nil
	}
	next := domain.Cart{Items: make([]domain.LineItem, len(s.cart.Items))}
	copy(next.Items, s.cart.Items)
	next.Items[i].Quantity = domain.ClampQuantity(qty)
	return s.commit(ctx, next)
}

// Clear empties the cart and persists the empty snapshot.
func (s *CartStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, domain.Cart{Items: []domain.LineItem{}})
}

// Items returns a copy of the line items, newest first.
func (s *CartStore) Items() []domain.LineItem {
	return s.Snapshot().Items
}

// Snapshot returns a deep copy of the cart.
func (s *CartStore) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// Subtotal returns the sum of unitPrice * quantity, recomputed on every call.
func (s *CartStore) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

// Count returns the sum of item quantities, recomputed on every call.
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// commit persists next and makes it current. Callers hold s.mu.
func (s *CartStore) commit(ctx context.Context, next domain.Cart) error {
	if err := s.slot.Save(ctx, next); err != nil {
		s.log.Error("cart write failed", zap.Error(err))
		return err
	}
	s.cart = next
	return nil
}
