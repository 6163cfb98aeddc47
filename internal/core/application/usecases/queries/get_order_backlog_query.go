package queries

import (
	"errors"

	"dispatchsim/internal/pkg/guard"
)

var (
	ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
		"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
	)
)

// GetOrderBacklogQuery retrieves counts of orders by progress stage.
// Used by the progress report to show how far the run has advanced.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBacklogQuery creates a query to retrieve the order backlog.
func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderBacklogQueryIsNotConstructed if validation fails.
func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// GetOrderBacklogQueryResponse counts submitted orders by progress stage.
// Claimed counts the orders picked from the shared queue, so it stays at
// zero for matched runs.
type GetOrderBacklogQueryResponse struct {
	Submitted int
	Preparing int
	Ready     int
	Claimed   int
}
