package courier

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"dispatchsim/internal/core/domain/model/order"
	"dispatchsim/internal/pkg/errs"
	"dispatchsim/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrArrivalNotRecorded is returned when computing a wait split before the courier arrived.
	ErrArrivalNotRecorded = errs.NewValueIsRequiredError("arrival time")
	// ErrReadinessNotRecorded is returned when computing a wait split before the order was ready.
	ErrReadinessNotRecorded = errs.NewValueIsRequiredError("order ready time")
)

// Courier represents a dispatched courier in the simulation.
// It is an aggregate root that manages the courier's identity, its single
// drawn travel time, and the pickup lifecycle.
//
// Key responsibilities:
//   - Managing courier identity (sequential integer ID)
//   - Recording arrival at the pickup point exactly once
//   - Tracking the pickup workflow through the Status state machine
//   - Computing the zero-sum wait split against the picked-up order
//
// Business rules:
//   - Courier must have a positive ID and a positive travel time
//   - A courier bound to a specific order picks up that order only
//   - An unbound courier picks up whichever ready order it claims
//   - At most one of courier wait and order wait is non-zero per pickup
//
// Identity fields (id, travelTime, bound) are immutable after construction;
// lifecycle state is guarded by a mutex because reporting queries read it
// while the courier's goroutine advances it.
type Courier struct {
	// id uniquely identifies the courier within a run, assigned in dispatch order
	id int
	// travelTime is the drawn duration of the trip to the pickup point
	travelTime time.Duration
	// bound is the order this courier was dispatched for (nil when the
	// courier serves the shared queue)
	bound *order.Order
	// arrivedAt is the moment the courier reached the pickup point (zero until arrival)
	arrivedAt time.Time
	// pickedUpOrderID identifies the order the courier left with
	pickedUpOrderID string
	// status represents the current state in the pickup lifecycle
	status Status
	// mu guards arrivedAt, pickedUpOrderID, and status
	mu sync.RWMutex
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// This is the only way to create a valid Courier instance.
//
// Parameters:
//   - id: Sequential identifier (must be positive)
//   - travelTime: Drawn travel duration (must be positive)
//   - bound: The order this courier is dispatched for, or nil for a
//     courier that claims from the shared queue
//
// Returns:
//   - *Courier: A fully initialized courier in the EnRoute status
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewCourier(id int, travelTime time.Duration, bound *order.Order) (*Courier, error) {
	courier := &Courier{
		status: EnRoute,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setTravelTime(travelTime),
		courier.setBound(bound),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares two couriers for equality based on their identifiers.
// Two couriers are considered equal if they have the same ID, regardless
// of other attributes.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}

// Validate checks if the Courier was properly constructed using the NewCourier constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the sequential identifier of the courier.
func (c *Courier) ID() int {
	return c.id
}

// TravelTime returns the drawn duration of the trip to the pickup point.
func (c *Courier) TravelTime() time.Duration {
	return c.travelTime
}

// Bound returns the order this courier was dispatched for.
// Returns nil for couriers that claim from the shared queue.
func (c *Courier) Bound() *order.Order {
	return c.bound
}

// IsBound reports whether the courier is bound to a specific order.
func (c *Courier) IsBound() bool {
	return c.bound != nil
}

// Status returns the current status of the courier.
func (c *Courier) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.status
}

// MarkArrived records the courier's arrival at the pickup point.
//
// This method enforces the following business rules:
//   - The arrival time must be provided (non-zero)
//   - The courier must be EnRoute
//   - The arrival timestamp is recorded exactly once
//
// Parameters:
//   - at: The moment travel finished
//
// Returns:
//   - nil on success
//   - error if the time is missing or the courier already arrived
func (c *Courier) MarkArrived(at time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if at.IsZero() {
		return errs.NewValueIsRequiredError("arrival time")
	}

	newStatus, err := c.status.Arrive()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.arrivedAt = at
	return nil
}

// ArrivedAt returns the arrival timestamp and whether it has been recorded.
func (c *Courier) ArrivedAt() (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.arrivedAt, !c.arrivedAt.IsZero()
}

// HasArrived reports whether the courier reached the pickup point.
func (c *Courier) HasArrived() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return !c.arrivedAt.IsZero()
}

// StartWaiting transitions the courier from Arrived to Waiting.
// Couriers wait at the pickup point until their order is available.
func (c *Courier) StartWaiting() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	newStatus, err := c.status.Wait()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// CompletePickup records the order the courier leaves with and transitions
// to the final PickedUp status.
//
// Parameters:
//   - orderID: Identifier of the picked-up order (must be non-empty)
//
// Returns:
//   - nil on success
//   - error if the order id is missing or the courier is not Waiting
func (c *Courier) CompletePickup(orderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	newStatus, err := c.status.PickUp()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.pickedUpOrderID = orderID
	return nil
}

// PickedUpOrderID returns the identifier of the picked-up order and whether
// the pickup has happened.
func (c *Courier) PickedUpOrderID() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pickedUpOrderID, c.pickedUpOrderID != ""
}

// WaitSplit computes the zero-sum wait split between this courier and the
// given order at the moment of pickup.
//
// Exactly one side of a pairing waits:
//   - Courier arrived before the order was ready: the courier waited
//     (readyAt - arrivedAt) and the order waited nothing
//   - Order became ready before the courier arrived: the order waited
//     (arrivedAt - readyAt) and the courier waited nothing
//   - Both events in the same instant: neither waited
//
// Both timestamps must already be recorded; the split is independent of when
// the pickup is observed, so polling latency does not distort the values.
//
// Parameters:
//   - o: The picked-up order (must be valid with a recorded ready time)
//
// Returns:
//   - courierWait: Time the courier spent waiting for the order (never negative)
//   - orderWait: Time the order spent waiting for the courier (never negative)
//   - err: Validation error if either timestamp is missing
func (c *Courier) WaitSplit(o *order.Order) (courierWait time.Duration, orderWait time.Duration, err error) {
	if err := o.Validate(); err != nil {
		return 0, 0, err
	}

	arrivedAt, ok := c.ArrivedAt()
	if !ok {
		return 0, 0, ErrArrivalNotRecorded
	}

	readyAt, ok := o.ReadyAt()
	if !ok {
		return 0, 0, ErrReadinessNotRecorded
	}

	switch {
	case arrivedAt.Before(readyAt):
		return readyAt.Sub(arrivedAt), 0, nil
	case arrivedAt.After(readyAt):
		return 0, arrivedAt.Sub(readyAt), nil
	default:
		return 0, 0, nil
	}
}

// String returns the courier's display label.
// This method implements the fmt.Stringer interface.
//
// Example:
//
//	c, _ := NewCourier(7, 5*time.Second, nil)
//	fmt.Println(c) // Output: Courier #7
func (c *Courier) String() string {
	return fmt.Sprintf("Courier #%d", c.id)
}

// setID sets the courier's identifier with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}

	c.id = id
	return nil
}

// setTravelTime sets the courier's travel time with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setTravelTime(travelTime time.Duration) error {
	if travelTime <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("travel time is invalid",
			fmt.Errorf("%s is not greater than 0", travelTime))
	}

	c.travelTime = travelTime
	return nil
}

// setBound sets the courier's bound order with validation.
// A nil order is valid and means the courier serves the shared queue.
// This is an internal setter used during courier construction.
func (c *Courier) setBound(bound *order.Order) error {
	if bound == nil {
		return nil
	}

	if err := bound.Validate(); err != nil {
		return err
	}

	c.bound = bound
	return nil
}
