package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"dispatchsim/internal/pkg/errs"
	"dispatchsim/internal/pkg/guard"
)

// ErrRangeIsNotConstructed is returned when attempting to use an improperly initialized Range.
// Ranges must be created using the NewRange constructor to ensure validity.
var ErrRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"range must be created via NewRange constructor")

// ErrRandIsRequired is returned by Draw when no random source is supplied.
var ErrRandIsRequired = errs.NewValueIsRequiredError("rand")

// Range represents a closed integer interval [min, max] with validated bounds.
// It is an immutable value object used for quantities that are drawn uniformly
// at random, such as courier travel times in whole time units.
// The zero value of Range is invalid and will fail validation - use NewRange
// to create instances.
//
// Example:
//
//	travel, err := kernel.NewRange(3, 15)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Travel range: %s", travel) // Output: Range(3..15)
type Range struct { //nolint:recvcheck //using for validation
	min   int
	max   int
	guard guard.ConstructorGuard
}

// NewRange creates a new Range with the specified inclusive bounds.
// Both bounds must be positive and max must not be less than min.
//
// Parameters:
//   - min: The lower bound (must be greater than 0)
//   - max: The upper bound (must be greater than 0 and not less than min)
//
// Returns:
//   - Range: A valid range instance
//   - error: Validation error if the bounds are invalid
//
// Example:
//
//	r, err := NewRange(3, 15)
//	if err != nil {
//	    log.Fatal("Invalid bounds:", err)
//	}
func NewRange(min int, max int) (Range, error) {
	r := Range{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setMin(min), r.setMax(max)); err != nil {
		return Range{}, err
	}

	if r.max < r.min {
		return Range{}, errs.NewValueIsInvalidErrorWithCause("max is invalid",
			fmt.Errorf("%d is less than min %d", max, min))
	}

	return r, nil
}

// Validate checks if the Range was properly constructed using the constructor.
// The zero value of Range is invalid and will fail this validation.
//
// Returns:
//   - error: ErrRangeIsNotConstructed if the range was not properly initialized, nil otherwise
func (r Range) Validate() error {
	return r.guard.Validate(ErrRangeIsNotConstructed)
}

// Min returns the inclusive lower bound of the range.
func (r Range) Min() int {
	return r.min
}

// Max returns the inclusive upper bound of the range.
func (r Range) Max() int {
	return r.max
}

// Draw returns a uniformly distributed integer in [min, max], both bounds
// inclusive, using the supplied random source. Passing an explicit source
// keeps draw sequences reproducible for a fixed seed.
//
// Parameters:
//   - rng: The random source to draw from (must not be nil)
//
// Returns:
//   - int: A value n with min <= n <= max
//   - error: Validation error if the range or the source is invalid
//
// Example:
//
//	rng := rand.New(rand.NewPCG(777, 777))
//	r, _ := NewRange(3, 15)
//	n, err := r.Draw(rng)
//	// n is one of 3, 4, ..., 15
func (r Range) Draw(rng *rand.Rand) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if rng == nil {
		return 0, ErrRandIsRequired
	}

	return r.min + rng.IntN(r.max-r.min+1), nil
}

// String returns a human-readable string representation of the Range.
// The format is "Range(min..max)" which is useful for debugging and logging.
// This method implements the fmt.Stringer interface.
func (r Range) String() string {
	return fmt.Sprintf("Range(%d..%d)", r.min, r.max)
}

// IsEqual compares two ranges for equality.
// Two ranges are considered equal if they have the same bounds.
// Both ranges must be properly constructed for the comparison to succeed.
//
// Returns:
//   - bool: true if ranges are equal, false otherwise
//   - error: Validation error if either range is improperly constructed
func (r Range) IsEqual(other Range) (bool, error) {
	if err := errors.Join(r.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return r.min == other.min && r.max == other.max, nil
}

// setMin sets the lower bound with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on these private setters enable self-encapsulated validation
// during object construction.
func (r *Range) setMin(min int) error {
	if min <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("min is invalid",
			fmt.Errorf("%d is not greater than 0", min))
	}

	r.min = min
	return nil
}

// setMax sets the upper bound with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on these private setters enable self-encapsulated validation
// during object construction.
func (r *Range) setMax(max int) error {
	if max <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max is invalid",
			fmt.Errorf("%d is not greater than 0", max))
	}

	r.max = max
	return nil
}
