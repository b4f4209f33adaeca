// Package checkout simulates payment: after a fixed delay the cart is
// cleared and an order reference is produced. No gateway is involved.
package checkout

import (
	"context"
	"time"

	"go-storefront/internal/cart"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/toast"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Result struct {
	OrderRef string `json:"orderRef"`
	Err      error  `json:"-"`
}

type Service struct {
	cart   *cart.Store
	toasts *toast.Channel
	delay  time.Duration
	logger *zap.Logger
}

func NewService(cartStore *cart.Store, toasts *toast.Channel, delay time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cart:   cartStore,
		toasts: toasts,
		delay:  delay,
		logger: logger,
	}
}

// Start runs the simulated payment as an explicit task. The returned channel
// yields exactly one Result. Cancelling the context before the delay elapses
// aborts the order and leaves the cart untouched.
func (s *Service) Start(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)

	if s.cart.Count() == 0 {
		out <- Result{Err: ErrEmptyCart}
		return out
	}

	go func() {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			out <- Result{Err: apperror.Wrap(ErrCheckoutAborted, ctx.Err())}
			return
		case <-timer.C:
		}

		s.cart.Clear(context.WithoutCancel(ctx))
		ref := uuid.NewString()
		s.logger.Info("simulated order placed", zap.String("order_ref", ref))
		s.toasts.Push(toast.KindSuccess, "Order placed successfully")
		out <- Result{OrderRef: ref}
	}()

	return out
}
