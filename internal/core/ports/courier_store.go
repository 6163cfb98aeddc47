// Package ports defines store interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatchsim/internal/core/domain/model/courier"
)

// CourierStore defines the storage contract for courier aggregates.
// Provides methods for storing and retrieving couriers together with
// the sequence that numbers them in dispatch order.
type CourierStore interface {
	// NextID reserves and returns the next courier identifier.
	// Identifiers are monotonic and start at 1, so courier numbers
	// reflect dispatch order within a run.
	NextID(ctx context.Context) (int, error)

	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the store.
	Add(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its identifier.
	Get(ctx context.Context, id int) (*courier.Courier, error)

	// All retrieves every stored courier in dispatch order.
	All(ctx context.Context) ([]*courier.Courier, error)

	// Count returns the number of stored couriers.
	Count(ctx context.Context) (int, error)
}
