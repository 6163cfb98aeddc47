// Package stats contains the domain model for wait-time accounting.
//
// Every pickup produces a Completion record that captures the zero-sum
// wait split between the courier and the order. The Ledger aggregates
// completions for a run and derives the average wait times reported
// while the simulation progresses and after it finishes.
//
// Key components:
//   - Completion: Immutable record of a single pickup
//   - Ledger: Thread-safe collection of completions with running averages
package stats
