// Package main is a command line harness for the scenery group loader.
//
// It starts a session over a fixture-described game (or the built-in demo),
// runs the requested toggles in order, and prints the resulting group rows,
// toggle outcomes and activation statistics as JSON on stdout. Logs go to
// stderr.
//
// Configuration:
//   - Environment variables (SGL_LOG_LEVEL, SGL_LOG_DEV, SGL_FIXTURE, ...)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Demo session, list every group
//	./sgloader
//
//	# Toggle two groups from a fixture and show only matching rows
//	./sgloader -fixture park.yaml -toggle "00000000|PARKSET |00000001" -toggle city -filter "*set*"
//
//	# Development mode (coloured debug logs)
//	./sgloader -dev
package main
