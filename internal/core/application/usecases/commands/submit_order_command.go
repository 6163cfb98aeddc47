// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, synchronous dispatch,
// and concurrent pairing workflow startup.
package commands

import (
	"errors"
	"time"

	"dispatchsim/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrOrderIDIsRequired     = errors.New("order id is required")
	ErrOrderNameIsRequired   = errors.New("order name is required")
	ErrPrepDurationIsInvalid = errors.New("prep duration must be greater than 0")
)

// SubmitOrderCommand represents a request to submit one order to the
// simulation. Encapsulates the order descriptor taken from the input feed.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("a8cfcb76", "Cheese Pizza", 4*time.Second)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	name         string
	prepDuration time.Duration

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order.
// Validates that the order id and name are not empty and the preparation
// duration is positive. Returns an error if any validation fails.
func NewSubmitOrderCommand(orderID, name string, prepDuration time.Duration) (SubmitOrderCommand, error) {
	orderCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setName(name),
		orderCommand.setPrepDuration(prepDuration),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c SubmitOrderCommand) OrderID() string {
	return c.orderID
}

// Name returns the order's display name.
func (c SubmitOrderCommand) Name() string {
	return c.name
}

// PrepDuration returns how long the order takes to prepare.
func (c SubmitOrderCommand) PrepDuration() time.Duration {
	return c.prepDuration
}

func (c *SubmitOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setName(name string) error {
	if name == "" {
		return ErrOrderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *SubmitOrderCommand) setPrepDuration(prepDuration time.Duration) error {
	if prepDuration <= 0 {
		return ErrPrepDurationIsInvalid
	}

	c.prepDuration = prepDuration
	return nil
}
