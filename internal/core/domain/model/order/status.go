package order

import (
	"fmt"

	"dispatchsim/internal/pkg/errs"
)

// Status represents the preparation state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct preparation workflow.
//
// State transitions:
//
//	Preparing ──> Ready
//
// Ready is a final state: readiness is observed by couriers and never
// revoked. Status is a value object that validates state transitions
// and provides string representations for display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status while the kitchen works on the order.
	// Orders in this status are not yet available for pickup.
	Preparing

	// Ready indicates preparation has finished and the order can be
	// picked up by a courier. This is a final state.
	Ready
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Preparing: "Preparing",
		Ready:     "Ready",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing: "Preparing",
		Ready:     "Ready",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Preparing, Ready.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Preparing" or "Ready" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Ready transitions the status to Ready.
//
// Valid transitions:
//   - Preparing -> Ready (preparation finished)
//
// Invalid transitions:
//   - Ready -> Ready (readiness is recorded exactly once)
//   - Unknown -> Ready (invalid initial state)
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.MarkReady() to enforce state transitions.
func (s Status) Ready() (Status, error) {
	if s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to become ready", s.String()),
		)
	}

	return Ready, nil
}
