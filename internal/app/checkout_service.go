package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"printcraft/internal/domain"
)

// DefaultCheckoutDelay is the simulated payment processing time.
const DefaultCheckoutDelay = 1200 * time.Millisecond

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CheckoutService completes mock checkouts against a CartStore.
type CheckoutService struct {
	cart  *CartStore
	delay time.Duration
	log   *zap.Logger
	now   func() time.Time

	wg     sync.WaitGroup
	mu     sync.Mutex
	orders map[string]domain.Order
}

// CheckoutOption configures a CheckoutService.
type CheckoutOption func(*CheckoutService)

// WithCheckoutLogger sets the logger.
func WithCheckoutLogger(l *zap.Logger) CheckoutOption {
	return func(s *CheckoutService) { s.log = l }
}

// WithClock overrides time.Now for PlacedAt stamps.
func WithClock(now func() time.Time) CheckoutOption {
	return func(s *CheckoutService) { s.now = now }
}

// NewCheckoutService creates a CheckoutService. A negative delay is treated as zero.
func NewCheckoutService(cart *CartStore, delay time.Duration, opts ...CheckoutOption) *CheckoutService {
	s := &CheckoutService{
		cart:   cart,
		delay:  max(delay, 0),
		log:    zap.NewNop(),
		now:    time.Now,
		orders: make(map[string]domain.Order),
	}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

type checkoutResult struct {
	order domain.Order
	err   error
}

// PlaceOrder validates the shipping details, snapshots the cart and, after
// the simulated processing delay, issues an order id and clears the cart.
//
// The completion is detached from ctx: if ctx ends first PlaceOrder returns
// ctx.Err() but the order still completes. Use Wait to drain pending orders.
func (s *CheckoutService) PlaceOrder(ctx context.Context, ship domain.ShippingDetails) (domain.Order, error) {
	if missing := ship.Missing(); len(missing) > 0 {
		return domain.Order{}, fmt.Errorf("%w: missing %s", domain.ErrInvalidShipping, strings.Join(missing, ", "))
	}
	snap := s.cart.Snapshot()
	if len(snap.Items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	done := make(chan checkoutResult, 1)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
		order, err := s.complete(snap, ship)
		done <- checkoutResult{order: order, err: err}
	}()

	select {
	case res := <-done:
		return res.order, res.err
	case <-ctx.Done():
		s.log.Warn("checkout caller gone, order will still complete", zap.Error(ctx.Err()))
		return domain.Order{}, ctx.Err()
	}
}

func (s *CheckoutService) complete(snap domain.Cart, ship domain.ShippingDetails) (domain.Order, error) {
	id, err := newOrderID(rand.Reader)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order id: %w", err)
	}
	order := domain.Order{
		ID:       id,
		Items:    snap.Items,
		Subtotal: snap.Subtotal(),
		Count:    snap.Count(),
		Shipping: ship,
		PlacedAt: s.now().UTC(),
	}

	// The caller may be gone, so the cart write must not inherit its context.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.cart.Clear(ctx); err != nil {
		return domain.Order{}, fmt.Errorf("clear cart: %w", err)
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.mu.Unlock()

	s.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int64("subtotal", order.Subtotal),
		zap.Int("count", order.Count),
	)
	return order, nil
}

// Order returns an order placed by this service.
func (s *CheckoutService) Order(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok
}

// Wait blocks until every scheduled order completion has run.
func (s *CheckoutService) Wait() {
	s.wg.Wait()
}

// newOrderID draws eight uniform characters from orderIDAlphabet.
func newOrderID(r io.Reader) (string, error) {
	n := big.NewInt(int64(len(orderIDAlphabet)))
	b := make([]byte, 8)
	for i := range b {
		v, err := rand.Int(r, n)
		if err != nil {
			return "", err
		}
		b[i] = orderIDAlphabet[v.Int64()]
	}
	return string(b), nil
}
