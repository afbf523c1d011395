// Package kernel provides core domain primitives and utilities for the picking system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Location: A value object representing a storage cell on the warehouse floor,
//     addressed by zone, aisle and shelf, with optional floor-plan coordinates
//   - Coordinates: An explicit optional X/Y pair used when a warehouse has a measured floor plan
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
