package services

import (
	"fmt"

	"dispatchsim/internal/pkg/errs"
)

// Strategy identifies how couriers are paired with orders.
type Strategy string

const (
	// StrategyMatched dispatches a courier bound to the submitted order.
	// The courier picks up exactly that order, waiting for it if needed.
	StrategyMatched Strategy = "matched"

	// StrategyFifo dispatches an unbound courier that picks up the first
	// ready order from the shared queue.
	StrategyFifo Strategy = "fifo"
)

// ParseStrategy converts a configuration value into a Strategy.
//
// Returns a validation error for anything other than the two known
// strategy names. Callers treat that error as unrecoverable because a
// run cannot proceed without a dispatch strategy.
func ParseStrategy(value string) (Strategy, error) {
	switch strategy := Strategy(value); strategy {
	case StrategyMatched, StrategyFifo:
		return strategy, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("strategy is invalid",
			fmt.Errorf("%q is not a known dispatch strategy", value))
	}
}

// Validate checks that the strategy is one of the known dispatch strategies.
func (s Strategy) Validate() error {
	_, err := ParseStrategy(string(s))
	return err
}

// String returns the strategy's configuration name.
func (s Strategy) String() string {
	return string(s)
}
