// Package services provides domain services for the picking system.
// It implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - RouteOptimizer: A pure domain service sequencing pick targets to
//     minimize walking distance using greedy heuristics
//
// Domain services here are stateless and purely functional: the same input
// always produces the same output, they hold no cached fields, and they are
// safe to call from any goroutine without locking.
package services
