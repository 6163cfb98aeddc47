package queries

import (
	"errors"
	"time"

	"dispatchsim/internal/pkg/guard"
)

var (
	ErrGetWaitAveragesQueryIsNotConstructed = errors.New(
		"GetWaitAveragesQuery must be created via NewGetWaitAveragesQuery constructor",
	)
)

// GetWaitAveragesQuery retrieves the run's mean wait times.
// Used for the running progress report and for the final summary after
// every pairing has completed.
type GetWaitAveragesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWaitAveragesQuery creates a query to retrieve the wait averages.
func NewGetWaitAveragesQuery() GetWaitAveragesQuery {
	return GetWaitAveragesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWaitAveragesQueryIsNotConstructed if validation fails.
func (q GetWaitAveragesQuery) Validate() error {
	return q.guard.Validate(ErrGetWaitAveragesQueryIsNotConstructed)
}

// GetWaitAveragesQueryResponse carries the mean wait per side together
// with the population size the means were computed over.
type GetWaitAveragesQueryResponse struct {
	OrderWait   time.Duration
	CourierWait time.Duration
	Completions int
}
