package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"dispatchsim/internal/core/domain/model/courier"
	"dispatchsim/internal/core/domain/model/kernel"
	"dispatchsim/internal/core/domain/model/order"
	"dispatchsim/internal/core/ports"
	"dispatchsim/internal/pkg/errs"
)

// DispatchPolicy is a domain service that creates the courier for a newly
// submitted order according to the run's dispatch strategy.
//
// Key responsibilities:
//   - Allocating sequential courier identifiers in submission order
//   - Drawing each courier's travel time from the travel range
//   - Persisting the dispatched courier
//
// Business rules:
//   - Exactly one courier is dispatched per submitted order
//   - Travel times come from a single shared random source, so a fixed
//     seed reproduces the same draws in the same submission order
//   - The matched strategy binds the courier to the submitted order;
//     the fifo strategy leaves the courier unbound
type DispatchPolicy interface {
	// Strategy returns the strategy this policy implements.
	Strategy() Strategy

	// Dispatch creates, persists, and returns the courier for the given order.
	Dispatch(ctx context.Context, o *order.Order) (*courier.Courier, error)
}

// NewDispatchPolicy selects the policy implementation for the given strategy.
//
// Parameters:
//   - strategy: The run's dispatch strategy
//   - couriers: Store that numbers and keeps dispatched couriers
//   - travel: Closed range of travel times in whole time units
//   - timeUnit: Real duration of one simulated time unit
//   - rng: Seeded random source shared by all draws of the run
//
// Returns:
//   - DispatchPolicy: The matched or fifo policy
//   - error: Validation error for an unknown strategy or invalid dependencies
func NewDispatchPolicy(
	strategy Strategy,
	couriers ports.CourierStore,
	travel kernel.Range,
	timeUnit time.Duration,
	rng *rand.Rand,
) (DispatchPolicy, error) {
	switch strategy {
	case StrategyMatched:
		return NewMatchedPolicy(couriers, travel, timeUnit, rng)
	case StrategyFifo:
		return NewFifoPolicy(couriers, travel, timeUnit, rng)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("strategy is invalid",
			fmt.Errorf("%q is not a known dispatch strategy", strategy))
	}
}

// policyCore carries the dependencies both policies share and implements
// the strategy-independent part of dispatching.
type policyCore struct {
	couriers ports.CourierStore
	travel   kernel.Range
	timeUnit time.Duration
	rng      *rand.Rand
	// mu pairs the id allocation with the travel draw, so courier N
	// always receives draw N even if dispatches ever overlap
	mu sync.Mutex
}

func newPolicyCore(
	couriers ports.CourierStore,
	travel kernel.Range,
	timeUnit time.Duration,
	rng *rand.Rand,
) (policyCore, error) {
	if couriers == nil {
		return policyCore{}, errs.NewValueIsRequiredError("couriers")
	}
	if err := travel.Validate(); err != nil {
		return policyCore{}, err
	}
	if timeUnit <= 0 {
		return policyCore{}, errs.NewValueIsInvalidErrorWithCause("time unit is invalid",
			fmt.Errorf("%s is not greater than 0", timeUnit))
	}
	if rng == nil {
		return policyCore{}, errs.NewValueIsRequiredError("rng")
	}

	return policyCore{
		couriers: couriers,
		travel:   travel,
		timeUnit: timeUnit,
		rng:      rng,
	}, nil
}

// dispatch creates and persists one courier for the given order, bound to
// the given order or unbound when bound is nil.
func (p *policyCore) dispatch(ctx context.Context, o *order.Order, bound *order.Order) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	id, units, err := p.allocate(ctx)
	if err != nil {
		return nil, err
	}

	dispatched, err := courier.NewCourier(id, time.Duration(units)*p.timeUnit, bound)
	if err != nil {
		return nil, err
	}

	if err := p.couriers.Add(ctx, dispatched); err != nil {
		return nil, err
	}

	return dispatched, nil
}

// allocate reserves the next courier id and draws its travel time as one step.
func (p *policyCore) allocate(ctx context.Context) (int, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.couriers.NextID(ctx)
	if err != nil {
		return 0, 0, err
	}

	units, err := p.travel.Draw(p.rng)
	if err != nil {
		return 0, 0, err
	}

	return id, units, nil
}
