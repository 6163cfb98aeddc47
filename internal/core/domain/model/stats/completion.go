package stats

import (
	"errors"
	"fmt"
	"time"

	"dispatchsim/internal/core/domain/model/kernel"
	"dispatchsim/internal/pkg/errs"
	"dispatchsim/internal/pkg/guard"
)

// ErrCompletionIsNotConstructed is returned when using an improperly initialized Completion.
var ErrCompletionIsNotConstructed = errors.New("Completion must be created via NewCompletion constructor")

// ErrWaitSplitIsNotZeroSum is returned when both sides of a wait split are positive.
var ErrWaitSplitIsNotZeroSum = errs.NewValueIsInvalidError("wait split must have at most one non-zero side")

// Completion is an immutable record of a single finished pickup.
// It captures which courier left with which order and how the wait
// time split between the two sides.
//
// Business rules:
//   - Wait durations are never negative
//   - At most one of the two wait durations is non-zero
type Completion struct {
	// id uniquely identifies the completion record
	id kernel.UUID
	// courierID identifies the courier that performed the pickup
	courierID int
	// orderID identifies the picked-up order
	orderID string
	// courierWait is how long the courier waited for the order
	courierWait time.Duration
	// orderWait is how long the order waited for the courier
	orderWait time.Duration
	// recordedAt is the moment the pickup completed
	recordedAt time.Time
	// guard ensures the completion was properly constructed
	guard guard.ConstructorGuard
}

// NewCompletion creates a new Completion record for a finished pickup.
//
// Parameters:
//   - courierID: Identifier of the courier (must be positive)
//   - orderID: Identifier of the picked-up order (must be non-empty)
//   - courierWait: Courier-side wait duration (must not be negative)
//   - orderWait: Order-side wait duration (must not be negative)
//   - recordedAt: Moment the pickup completed (must be non-zero)
//
// Returns:
//   - *Completion: A fully initialized completion record
//   - error: Validation error if any parameter is invalid or the split is not zero-sum
func NewCompletion(
	courierID int,
	orderID string,
	courierWait time.Duration,
	orderWait time.Duration,
	recordedAt time.Time,
) (*Completion, error) {
	completion := &Completion{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completion.setCourierID(courierID),
		completion.setOrderID(orderID),
		completion.setWaits(courierWait, orderWait),
		completion.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	completion.id = kernel.NewUUID()

	return completion, nil
}

// Validate checks if the Completion was properly constructed using the NewCompletion constructor.
// The zero value of Completion is invalid and will fail this validation.
func (c *Completion) Validate() error {
	if c == nil {
		return ErrCompletionIsNotConstructed
	}
	return c.guard.Validate(ErrCompletionIsNotConstructed)
}

// ID returns the unique identifier of the completion record.
func (c *Completion) ID() kernel.UUID {
	return c.id
}

// CourierID returns the identifier of the courier that performed the pickup.
func (c *Completion) CourierID() int {
	return c.courierID
}

// OrderID returns the identifier of the picked-up order.
func (c *Completion) OrderID() string {
	return c.orderID
}

// CourierWait returns how long the courier waited for the order.
func (c *Completion) CourierWait() time.Duration {
	return c.courierWait
}

// OrderWait returns how long the order waited for the courier.
func (c *Completion) OrderWait() time.Duration {
	return c.orderWait
}

// RecordedAt returns the moment the pickup completed.
func (c *Completion) RecordedAt() time.Time {
	return c.recordedAt
}

// IsEqual compares two completions for equality based on their identifiers.
func (c *Completion) IsEqual(other *Completion) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// setCourierID sets the courier identifier with validation.
// This is an internal setter used during completion construction.
func (c *Completion) setCourierID(courierID int) error {
	if courierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id is invalid",
			fmt.Errorf("%d is not greater than 0", courierID))
	}

	c.courierID = courierID
	return nil
}

// setOrderID sets the order identifier with validation.
// This is an internal setter used during completion construction.
func (c *Completion) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

// setWaits sets both wait durations with validation.
// This is an internal setter used during completion construction.
func (c *Completion) setWaits(courierWait, orderWait time.Duration) error {
	if courierWait < 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier wait is invalid",
			fmt.Errorf("%s is negative", courierWait))
	}
	if orderWait < 0 {
		return errs.NewValueIsInvalidErrorWithCause("order wait is invalid",
			fmt.Errorf("%s is negative", orderWait))
	}
	if courierWait > 0 && orderWait > 0 {
		return ErrWaitSplitIsNotZeroSum
	}

	c.courierWait = courierWait
	c.orderWait = orderWait
	return nil
}

// setRecordedAt sets the completion timestamp with validation.
// This is an internal setter used during completion construction.
func (c *Completion) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recorded at")
	}

	c.recordedAt = recordedAt
	return nil
}
