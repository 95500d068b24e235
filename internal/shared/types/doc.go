// Package types provides shared data structures for the scenery loader.
//
// This package defines the catalog vocabulary used across every engine
// component so that the host boundary, the canonicalizer and the toggle
// controller agree on one shape for entries and groups.
//
// Core Types:
//   - Kind: Closed set of catalog entry kinds
//   - Entry: One installed (or loaded) catalog entry as the host reports it
//   - Group: Indexed scenery group with canonical member identifiers
//   - ActivationStats: Per-kind activation counters
//
// Capacities:
//   - Three kinds (small/large scenery, walls) are capped at 2047 entries
//   - Every other kind is capped at 255 entries
//
// Example Usage:
//
//	if types.KindSmallScenery.Capacity() == 2047 {
//	    // ...
//	}
package types
