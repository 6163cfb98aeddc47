package queries

import (
	"context"

	"dispatchsim/internal/core/ports"
)

// GetAllCouriersQueryHandler retrieves courier snapshots from the store.
// Reads live aggregates and flattens them into the read model, so callers
// never hold references into state the pairing goroutines still mutate.
type GetAllCouriersQueryHandler struct {
	couriers ports.CourierStore
}

// NewGetAllCouriersQueryHandler creates a handler for courier retrieval queries.
func NewGetAllCouriersQueryHandler(couriers ports.CourierStore) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{couriers: couriers}
}

// Handle executes the query to retrieve all couriers.
// Returns a slice of courier read models in dispatch order.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.couriers.All(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]GetAllCouriersQueryResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		snapshot := GetAllCouriersQueryResponse{
			ID:         aggregate.ID(),
			TravelTime: aggregate.TravelTime(),
			Status:     aggregate.Status(),
		}
		if pickedUpID, ok := aggregate.PickedUpOrderID(); ok {
			snapshot.PickedUpOrderID = pickedUpID
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}
