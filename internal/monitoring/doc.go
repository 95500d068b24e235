/*
Package monitoring provides Prometheus metrics for the loader engine.

# Overview

Metrics are registered on an injectable prometheus.Registerer so that every
session (and every test) can own an isolated registry. A nil *Metrics is a
valid receiver: every Record/Set method becomes a no-op, which lets engine
components call them unconditionally.

# Metrics

- toggles by action (load, unload, noop)
- item activations, deactivations and refusals by kind
- active entries by kind
- indexed scenery groups
- surface scan duration and cells visited

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg, "sceneryloader")
	metrics.RecordToggle("load")
*/
package monitoring
