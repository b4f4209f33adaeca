// Package cart implements the client-side shopping cart: an ordered list of
// line items keyed by product id, persisted to a durable local slot after
// every mutation.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go-storefront/internal/kv"
	"go-storefront/internal/pkg/money"
	"go-storefront/internal/product"
	"go-storefront/internal/toast"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Line is one product's entry in the cart. Price is a snapshot taken when
// the product was first added; Stock is the last-known stock value.
type Line struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Category  string  `json:"category,omitempty"`
	Stock     int     `json:"stock"`
	Quantity  int     `json:"quantity"`
}

type cartState struct {
	Lines []Line `json:"lines"`
}

// Store owns the cart exclusively. Mutations never fail: invalid quantities
// are clamped, and a storage write failure is surfaced as an error
// notification while the in-memory state keeps the mutation.
type Store struct {
	mu     sync.Mutex
	lines  []Line
	slots  kv.Store
	toasts *toast.Channel
	logger *zap.Logger
}

func NewStore(slots kv.Store, toasts *toast.Channel, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		slots:  slots,
		toasts: toasts,
		logger: logger,
	}
}

// Restore loads the persisted cart. Absent or corrupt data means an empty
// cart, never a failure.
func (s *Store) Restore(ctx context.Context) {
	b, err := s.slots.Get(ctx, kv.KeyCart)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn("cart restore failed, starting empty", zap.Error(err))
		}
		return
	}

	var state cartState
	if err := json.Unmarshal(b, &state); err != nil {
		s.logger.Warn("cart slot is corrupt, starting empty", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.lines = state.Lines
	s.mu.Unlock()
}

// AddItem creates a line for the product, or merges into the existing one.
// The resulting quantity is clamped to the product's current stock. A
// product with no stock is rejected silently.
func (s *Store) AddItem(ctx context.Context, p product.Product, qty int) {
	if qty < 1 || p.Stock < 1 {
		return
	}

	s.mu.Lock()
	if line := s.find(p.ID); line != nil {
		line.Quantity = clamp(line.Quantity+qty, 1, p.Stock)
		line.Stock = p.Stock
	} else {
		s.lines = append(s.lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			ImageURL:  p.ImageURL,
			Category:  p.Category,
			Stock:     p.Stock,
			Quantity:  clamp(qty, 1, p.Stock),
		})
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.toasts.Push(toast.KindSuccess, fmt.Sprintf("%s added to cart", p.Name))
}

// UpdateQuantity clamps the new quantity to [0, stock]; 0 removes the line.
// An unknown product id is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, qty int) {
	s.mu.Lock()
	line := s.find(productID)
	if line == nil {
		s.mu.Unlock()
		return
	}

	qty = clamp(qty, 0, line.Stock)
	if qty == 0 {
		s.remove(productID)
	} else {
		line.Quantity = qty
	}
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Store) RemoveItem(ctx context.Context, productID int64) {
	s.mu.Lock()
	line := s.find(productID)
	if line == nil {
		s.mu.Unlock()
		return
	}
	name := line.Name
	s.remove(productID)
	s.mu.Unlock()

	s.persist(ctx)
	s.toasts.Push(toast.KindInfo, fmt.Sprintf("%s removed from cart", name))
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()

	s.persist(ctx)
}

// Total is Σ(price × quantity) rounded to 2 decimal places, computed fresh
// on every call.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := decimal.Zero
	for _, line := range s.lines {
		sum = sum.Add(money.LineTotal(line.Price, line.Quantity))
	}
	return money.Round2(sum)
}

// Count is the total number of units across all lines, the value the cart
// badge displays.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns the cart in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// find and remove require s.mu to be held.

func (s *Store) find(productID int64) *Line {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return &s.lines[i]
		}
	}
	return nil
}

func (s *Store) remove(productID int64) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// persist writes the full cart to its slot. Durability is best-effort: a
// failed write keeps the in-memory mutation and raises an error toast.
func (s *Store) persist(ctx context.Context) {
	s.mu.Lock()
	b, err := json.Marshal(cartState{Lines: s.lines})
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("cart serialize failed", zap.Error(err))
		return
	}

	if err := s.slots.Set(ctx, kv.KeyCart, b); err != nil {
		s.logger.Warn("cart persist failed", zap.Error(err))
		s.toasts.Push(toast.KindError, "Could not save your cart")
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
