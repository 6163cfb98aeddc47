// Package kernel provides core domain primitives and utilities for the dispatch
// simulator. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Range: A value object representing a closed integer interval with uniform draws
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable,
// making them suitable for concurrent use.
package kernel
