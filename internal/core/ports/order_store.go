package ports

import (
	"context"

	"dispatchsim/internal/core/domain/model/order"
)

// OrderStore defines the storage contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders, plus
// the atomic claim primitive the shared-queue dispatch strategy needs.
type OrderStore interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and its id must not already exist in the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id string) (*order.Order, error)

	// All retrieves every stored order in submission order.
	All(ctx context.Context) ([]*order.Order, error)

	// Count returns the number of stored orders.
	Count(ctx context.Context) (int, error)

	// CountByStatus returns the number of stored orders in the given status.
	CountByStatus(ctx context.Context, status order.Status) (int, error)

	// CountClaimed returns the number of stored orders already claimed by a courier.
	CountClaimed(ctx context.Context) (int, error)

	// ClaimFirstReady claims the first order in submission order that is
	// ready and unclaimed, recording the given courier as its claimant.
	// The scan and the claim happen atomically with respect to other
	// callers, so no two couriers can claim the same order.
	//
	// Returns the claimed order and true, or nil and false when no order
	// is currently claimable.
	ClaimFirstReady(ctx context.Context, courierID int) (*order.Order, bool)
}
