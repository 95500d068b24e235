// Package collections provides typed insertion-ordered containers.
//
// Set and Map wrap the linked hash containers from emirpasic/gods so the
// engine gets unique keys with deterministic iteration order without
// scattering interface{} conversions through the domain code.
package collections
