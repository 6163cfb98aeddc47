package queries

import (
	"context"

	"dispatchsim/internal/core/domain/model/stats"
)

// GetWaitAveragesQueryHandler reads the mean wait times from the ledger.
// Before the first completion the ledger has no population to average
// over; that condition surfaces as stats.ErrNoCompletions unchanged, and
// callers decide whether it is fatal (final report) or skippable
// (progress report).
type GetWaitAveragesQueryHandler struct {
	ledger *stats.Ledger
}

// NewGetWaitAveragesQueryHandler creates a handler for wait average queries.
func NewGetWaitAveragesQueryHandler(ledger *stats.Ledger) GetWaitAveragesQueryHandler {
	return GetWaitAveragesQueryHandler{ledger: ledger}
}

// Handle executes the query to retrieve the wait averages.
func (h GetWaitAveragesQueryHandler) Handle(
	_ context.Context,
	query GetWaitAveragesQuery,
) (GetWaitAveragesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWaitAveragesQueryResponse{}, err
	}

	orderWait, courierWait, completions, err := h.ledger.Averages()
	if err != nil {
		return GetWaitAveragesQueryResponse{}, err
	}

	return GetWaitAveragesQueryResponse{
		OrderWait:   orderWait,
		CourierWait: courierWait,
		Completions: completions,
	}, nil
}
