// Package activation tracks which catalog entries are loaded.
//
// The Tracker is the only component allowed to call the host's activation
// primitives. Its active set is kept in lockstep with the host: an identifier
// is recorded as active exactly when the host reports it loaded. Every other
// component asks the Tracker instead of the host.
//
// Operations:
//   - Sync: re-read the host's loaded entries (session bootstrap only)
//   - Activate / ActivateAll: load entries, tolerating refusals
//   - Deactivate: unload entries regardless of prior state
//   - Peek: read a loaded description without changing net activation state
//
// Example Usage:
//
//	tracker := activation.NewTracker(h).WithLogger(logger)
//	tracker.Sync()
//	if tracker.Activate("rct2.scenery_group.scgtrees") {
//	    // loaded
//	}
package activation
