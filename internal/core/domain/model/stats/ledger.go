package stats

import (
	"errors"
	"sync"
	"time"
)

// ErrNoCompletions is returned when averages are requested before any pickup completed.
var ErrNoCompletions = errors.New("no completions recorded")

// Ledger aggregates completion records for a simulation run.
//
// Pickups complete on independent goroutines, so the ledger serializes
// writes internally and hands out snapshots rather than live slices.
// Averages are derived on demand from the recorded completions.
type Ledger struct {
	// completions holds records in completion order
	completions []*Completion
	// mu guards completions
	mu sync.RWMutex
}

// NewLedger creates an empty completion ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends a completion to the ledger.
//
// Parameters:
//   - completion: The completion record to append (must be constructed via NewCompletion)
//
// Returns:
//   - nil on success
//   - error if the completion is invalid
func (l *Ledger) Record(completion *Completion) error {
	if err := completion.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.completions = append(l.completions, completion)
	return nil
}

// Count returns the number of recorded completions.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.completions)
}

// Completions returns a snapshot of all recorded completions in completion order.
func (l *Ledger) Completions() []*Completion {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make([]*Completion, len(l.completions))
	copy(snapshot, l.completions)
	return snapshot
}

// Averages returns the mean order wait and the mean courier wait across
// all recorded completions, together with the number of completions the
// means were computed over. All three values come from one snapshot, so
// the count always matches the averaged population even while pickups
// are still being recorded.
//
// Returns:
//   - orderWait: Mean time orders spent waiting for their courier
//   - courierWait: Mean time couriers spent waiting for their order
//   - completions: Number of completions the means cover
//   - err: ErrNoCompletions when nothing has been recorded yet
func (l *Ledger) Averages() (orderWait time.Duration, courierWait time.Duration, completions int, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.completions) == 0 {
		return 0, 0, 0, ErrNoCompletions
	}

	var orderTotal, courierTotal time.Duration
	for _, completion := range l.completions {
		orderTotal += completion.OrderWait()
		courierTotal += completion.CourierWait()
	}

	n := time.Duration(len(l.completions))
	return orderTotal / n, courierTotal / n, len(l.completions), nil
}
