package courier

import (
	"fmt"

	"dispatchsim/internal/pkg/errs"
)

// Status represents the travel state of a courier.
// It implements a state machine with defined transitions to ensure
// couriers follow the correct pickup workflow.
//
// State transitions:
//
//	EnRoute ──> Arrived ──> Waiting ──> PickedUp
//
// PickedUp is a final state. Status is a value object that validates
// state transitions and provides string representations for display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// EnRoute is the initial status while the courier travels to the pickup point.
	EnRoute

	// Arrived indicates the courier reached the pickup point.
	Arrived

	// Waiting indicates the courier is at the pickup point waiting for an order.
	Waiting

	// PickedUp indicates the courier left with an order. This is a final state.
	PickedUp
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		EnRoute:  "EnRoute",
		Arrived:  "Arrived",
		Waiting:  "Waiting",
		PickedUp: "PickedUp",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		EnRoute:  "EnRoute",
		Arrived:  "Arrived",
		Waiting:  "Waiting",
		PickedUp: "PickedUp",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: EnRoute, Arrived, Waiting, PickedUp.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It returns "Unknown" for invalid status values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Arrive transitions the status to Arrived.
//
// Valid transitions:
//   - EnRoute -> Arrived (travel finished)
//
// Returns:
//   - (Arrived, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Courier.MarkArrived() to enforce state transitions.
func (s Status) Arrive() (Status, error) {
	if s != EnRoute {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to arrive", s.String()),
		)
	}

	return Arrived, nil
}

// Wait transitions the status to Waiting.
//
// Valid transitions:
//   - Arrived -> Waiting (courier starts waiting at the pickup point)
//
// Returns:
//   - (Waiting, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Courier.StartWaiting() to enforce state transitions.
func (s Status) Wait() (Status, error) {
	if s != Arrived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to wait", s.String()),
		)
	}

	return Waiting, nil
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - Waiting -> PickedUp (courier leaves with an order)
//
// PickedUp is a final state with no further transitions possible.
//
// Returns:
//   - (PickedUp, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Courier.CompletePickup() to enforce state transitions.
func (s Status) PickUp() (Status, error) {
	if s != Waiting {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}

	return PickedUp, nil
}
