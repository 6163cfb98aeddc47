package queries

import (
	"context"

	"dispatchsim/internal/core/domain/model/order"
	"dispatchsim/internal/core/ports"
)

// GetOrderBacklogQueryHandler counts orders by progress stage.
type GetOrderBacklogQueryHandler struct {
	orders ports.OrderStore
}

// NewGetOrderBacklogQueryHandler creates a handler for order backlog queries.
func NewGetOrderBacklogQueryHandler(orders ports.OrderStore) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{orders: orders}
}

// Handle executes the query to retrieve the order backlog.
func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) (GetOrderBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	submitted, err := h.orders.Count(ctx)
	if err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	preparing, err := h.orders.CountByStatus(ctx, order.Preparing)
	if err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	ready, err := h.orders.CountByStatus(ctx, order.Ready)
	if err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	claimed, err := h.orders.CountClaimed(ctx)
	if err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	return GetOrderBacklogQueryResponse{
		Submitted: submitted,
		Preparing: preparing,
		Ready:     ready,
		Claimed:   claimed,
	}, nil
}
