package services

import (
	"context"
	"fmt"
	"time"

	"dispatchsim/internal/core/domain/model/order"
	"dispatchsim/internal/core/ports"
	"dispatchsim/internal/pkg/errs"
)

// Matcher is a domain service that coordinates couriers waiting at the
// pickup point with orders becoming ready.
//
// Key responsibilities:
//   - Blocking a bound courier until its specific order is ready
//   - Handing an unbound courier the first ready order from the queue
//
// Business rules:
//   - Readiness is observed by polling at a fixed interval
//   - Queue claims respect submission order and are exclusive
//   - Waiting has no upper bound; couriers block until their order
//     exists or the run is cancelled
type Matcher struct {
	orders       ports.OrderStore
	pollInterval time.Duration
}

// NewMatcher creates a Matcher polling the given order store.
//
// Parameters:
//   - orders: Store the unbound claim scan runs against
//   - pollInterval: Fixed delay between readiness checks (must be positive)
//
// Returns:
//   - *Matcher: A matcher ready for pickup coordination
//   - error: Validation error if any parameter is invalid
func NewMatcher(orders ports.OrderStore, pollInterval time.Duration) (*Matcher, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if pollInterval <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("poll interval is invalid",
			fmt.Errorf("%s is not greater than 0", pollInterval))
	}

	return &Matcher{
		orders:       orders,
		pollInterval: pollInterval,
	}, nil
}

// AwaitReady blocks until the given order is ready for pickup.
// Readiness is checked immediately and then once per poll interval, so a
// courier arriving after the order is ready returns without sleeping.
//
// Returns ctx.Err() when the context is cancelled before readiness.
func (m *Matcher) AwaitReady(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	for {
		if o.IsReady() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.pollInterval):
		}
	}
}

// ClaimNext blocks until the courier claims a ready order from the queue.
// Each attempt sleeps one poll interval first and then runs the store's
// atomic first-ready claim, so a courier never claims in the same instant
// it arrives.
//
// Returns ctx.Err() when the context is cancelled before a claim succeeds.
func (m *Matcher) ClaimNext(ctx context.Context, courierID int) (*order.Order, error) {
	if courierID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("courier id is invalid",
			fmt.Errorf("%d is not greater than 0", courierID))
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.pollInterval):
		}

		if claimed, ok := m.orders.ClaimFirstReady(ctx, courierID); ok {
			return claimed, nil
		}
	}
}
