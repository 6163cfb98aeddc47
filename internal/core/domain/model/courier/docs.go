// Package courier provides domain entities and business logic for couriers in
// the dispatch simulation. It implements the Courier aggregate root with its
// travel lifecycle and the wait-time split computed at pickup.
//
// The package includes:
//   - Courier: The aggregate root that manages courier identity, travel, and pickup
//   - Status: A state machine that enforces valid courier status transitions
//
// Key business rules:
//   - Couriers must have a positive integer identifier and a positive travel time
//   - Courier status follows a defined workflow: EnRoute -> Arrived -> Waiting -> PickedUp
//   - The arrival timestamp is recorded exactly once
//   - The wait split is zero-sum: at most one side of a pickup waits
//
// A courier's mutable state is driven by its own goroutine but read by
// reporting queries, so the aggregate guards it with a mutex.
package courier
