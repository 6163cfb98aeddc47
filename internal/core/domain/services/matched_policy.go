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

// MatchedPolicy dispatches a courier bound to the submitted order.
// The courier travels to the pickup point and waits for that specific
// order, regardless of what else becomes ready in the meantime.
type MatchedPolicy struct {
	core policyCore
}

// NewMatchedPolicy creates the policy for the matched dispatch strategy.
func NewMatchedPolicy(
	couriers ports.CourierStore,
	travel kernel.Range,
	timeUnit time.Duration,
	rng *rand.Rand,
) (*MatchedPolicy, error) {
	p := &MatchedPolicy{}

	var err error
	p.core, err = newPolicyCore(couriers, travel, timeUnit, rng)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Strategy returns StrategyMatched.
func (p *MatchedPolicy) Strategy() Strategy {
	return StrategyMatched
}

// Dispatch creates a courier bound to the given order and persists it.
func (p *MatchedPolicy) Dispatch(ctx context.Context, o *order.Order) (*courier.Courier, error) {
	return p.core.dispatch(ctx, o, o)
}
