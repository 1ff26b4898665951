// Package primitives provides the foundational, zero-dependency data
// structures for the event-dispatch engine.
//
// This package and internal/core use ONLY the Go standard library. No
// external dependencies are permitted in the core engine to achieve:
// - Minimal binary size
// - Zero vendor bloat
// - Deterministic builds
// - Sub-microsecond emission paths
//
// Core invariants:
// - Immutability where possible (Event)
// - Validation fails before any state mutation
// - Zero-allocation hot paths
package primitives
