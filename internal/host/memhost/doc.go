// Package memhost implements host.Host and host.Surface in memory.
//
// The host enforces the per-kind capacities from the types package, resolves
// raw aliases to the entry that owns them, and reports scenery group members
// only on loaded groups, mirroring how the game exposes them.
//
// Example Usage:
//
//	h := memhost.New(entries...)
//	grid := memhost.NewGrid(64, 64)
//	grid.Place(3, 4, host.Slot{Kind: types.KindWall, Identifier: "rct2.wall.wc1"})
package memhost
