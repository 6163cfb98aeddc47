package services

import (
	"context"
	"math/rand/v2"
	"time"

	"dispatchsim/internal/core/domain/model/courier"
	"dispatchsim/internal/core/domain/model/kernel"
	"dispatchsim/internal/core/domain/model/order"
	"dispatchsim/internal/core/ports"
)

// FifoPolicy dispatches an unbound courier for every submitted order.
// On arrival the courier claims the first ready order from the shared
// queue, which is not necessarily the order that triggered its dispatch.
type FifoPolicy struct {
	core policyCore
}

// NewFifoPolicy creates the policy for the fifo dispatch strategy.
func NewFifoPolicy(
	couriers ports.CourierStore,
	travel kernel.Range,
	timeUnit time.Duration,
	rng *rand.Rand,
) (*FifoPolicy, error) {
	p := &FifoPolicy{}

	var err error
	p.core, err = newPolicyCore(couriers, travel, timeUnit, rng)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Strategy returns StrategyFifo.
func (p *FifoPolicy) Strategy() Strategy {
	return StrategyFifo
}

// Dispatch creates an unbound courier and persists it. The order only
// triggers the dispatch; the pairing happens later at the pickup point.
func (p *FifoPolicy) Dispatch(ctx context.Context, o *order.Order) (*courier.Courier, error) {
	return p.core.dispatch(ctx, o, nil)
}
