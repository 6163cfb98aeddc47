// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch simulation. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DispatchPolicy: Strategy-specific courier creation at order submission
//   - Matcher: Readiness and claim coordination between couriers and orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
