// Package order provides domain entities and business logic for orders moving
// through the dispatch simulation. It implements the Order aggregate root with
// preparation lifecycle management and claim bookkeeping.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, preparation, and claims
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have an identifier, a name, and a positive preparation duration
//   - Order status follows a defined workflow: Preparing -> Ready
//   - The readiness timestamp is recorded exactly once
//   - An order is claimed by at most one courier, ever
//
// Orders are read and mutated from multiple goroutines during a simulation run,
// so the aggregate guards its mutable state with a mutex.
package order
