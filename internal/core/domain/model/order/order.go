package order

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dispatchsim/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotReady is returned when attempting to claim an order that has not
	// finished preparation.
	ErrOrderIsNotReady = errors.New("order is not ready for pickup")

	// ErrOrderAlreadyClaimed is returned when attempting to claim an order that already
	// belongs to a courier. An order is claimed at most once.
	ErrOrderAlreadyClaimed = errors.New("order is already claimed")
)

// labelPrefixLen is the number of identifier characters shown in the display label.
const labelPrefixLen = 8

// Order represents a single order moving through the simulation. It is the
// aggregate root that manages the order's preparation lifecycle and claim
// bookkeeping.
//
// Order follows these invariants:
//   - Must have a non-empty identifier and name
//   - Preparation duration must be positive
//   - The readiness timestamp is recorded exactly once
//   - At most one courier ever claims the order
//   - Can only be created through the NewOrder constructor
//
// An Order is written by the preparation goroutine (MarkReady) and read and
// claimed by courier goroutines, so all mutable state is guarded by a mutex.
// Identity fields are immutable after construction and safe to read directly.
type Order struct {
	// id is the opaque identifier from the order feed (unique per run)
	id string

	// name is the human-readable dish name
	name string

	// prepDuration is how long the kitchen needs before the order is ready
	prepDuration time.Duration

	// readyAt is the moment preparation finished (zero until MarkReady)
	readyAt time.Time

	// assignedCourierID is the claiming courier's ID (0 if unclaimed)
	assignedCourierID int

	// status represents the current state in the preparation lifecycle
	status Status

	// mu guards readyAt, assignedCourierID, and status
	mu sync.RWMutex

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Opaque identifier for the order (must be non-empty)
//   - name: Human-readable name (must be non-empty)
//   - prepDuration: Preparation duration (must be positive)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The constructor validates all inputs and ensures the order starts in the
// Preparing status, unclaimed.
func NewOrder(id string, name string, prepDuration time.Duration) (*Order, error) {
	order := &Order{
		status:        Preparing,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setName(name),
		order.setPrepDuration(prepDuration),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() string {
	return o.id
}

// Name returns the order's human-readable name.
func (o *Order) Name() string {
	return o.name
}

// PrepDuration returns how long preparation takes for this order.
func (o *Order) PrepDuration() time.Duration {
	return o.prepDuration
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.status
}

// MarkReady records the end of preparation and transitions the order to Ready.
//
// This method enforces the following business rules:
//   - The readiness time must be provided (non-zero)
//   - The order must be in Preparing status
//   - The readiness timestamp is recorded exactly once
//
// Parameters:
//   - at: The moment preparation finished
//
// Returns:
//   - nil on success
//   - error if the time is missing or the order is already Ready
func (o *Order) MarkReady(at time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if at.IsZero() {
		return errs.NewValueIsRequiredError("ready time")
	}

	newStatus, err := o.status.Ready()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.readyAt = at
	return nil
}

// ReadyAt returns the readiness timestamp and whether it has been recorded.
func (o *Order) ReadyAt() (time.Time, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.readyAt, !o.readyAt.IsZero()
}

// IsReady reports whether preparation has finished.
func (o *Order) IsReady() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.status == Ready
}

// Claim assigns the order to the claiming courier.
//
// This method enforces the following business rules:
//   - The courier ID must be positive
//   - The order must be Ready
//   - The order must not already be claimed
//
// Callers that scan multiple orders must serialize their scan-and-claim
// externally; Claim protects the single order's invariants only.
//
// Parameters:
//   - courierID: The ID of the claiming courier
//
// Returns:
//   - nil on successful claim
//   - ErrOrderIsNotReady if preparation has not finished
//   - ErrOrderAlreadyClaimed if another courier got there first
func (o *Order) Claim(courierID int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if courierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id is invalid",
			fmt.Errorf("%d is not greater than 0", courierID))
	}

	if o.status != Ready {
		return ErrOrderIsNotReady
	}

	if o.assignedCourierID != 0 {
		return ErrOrderAlreadyClaimed
	}

	o.assignedCourierID = courierID
	return nil
}

// AssignedCourier returns the claiming courier's ID and whether the order
// has been claimed.
func (o *Order) AssignedCourier() (int, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.assignedCourierID, o.assignedCourierID != 0
}

// IsClaimed reports whether a courier has claimed the order.
func (o *Order) IsClaimed() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.assignedCourierID != 0
}

// String returns the order's display label: a hash sign, the uppercased
// identifier prefix, and the name. This method implements fmt.Stringer.
//
// Example:
//
//	o, _ := NewOrder("a8cfcb76-7f27-4b82-b16f-4c1d8a162f4a", "Banana Split", 4*time.Second)
//	fmt.Println(o) // Output: #A8CFCB76 Banana Split
func (o *Order) String() string {
	label := strings.ToUpper(o.id)
	if len(label) > labelPrefixLen {
		label = label[:labelPrefixLen]
	}
	return "#" + label + " " + o.name
}

// setID validates and sets the order's identifier.
// This is a private method used only during construction.
func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

// setName validates and sets the order's name.
// This is a private method used only during construction.
func (o *Order) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

// setPrepDuration validates and sets the order's preparation duration.
// The duration must be positive.
// This is a private method used only during construction.
func (o *Order) setPrepDuration(prepDuration time.Duration) error {
	if prepDuration <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("prep duration is invalid",
			fmt.Errorf("%s is not greater than 0", prepDuration))
	}
	o.prepDuration = prepDuration
	return nil
}
