// Package host defines the boundary between the loader engine and the game
// session that owns the catalog and the placed scenery.
//
// The engine never talks to the game directly. Everything it needs is
// expressed as two small interfaces:
//   - Host: enumerate installed entries and activate/deactivate them
//   - Surface: read the placed-scenery grid
//
// The memhost subpackage provides an in-memory implementation used by tests
// and the command line harness.
package host

import "github.com/GriffinCanCode/sceneryloader/internal/shared/types"

// Host is the catalog and activation API of the game session
type Host interface {
	// Installed lists every installed entry in enumeration order.
	Installed() []types.Entry
	// Active lists the loaded entries of one kind.
	Active(kind types.Kind) []types.Entry
	// Activate loads one entry by identifier or raw alias. Nil means refused.
	Activate(id string) *types.Entry
	// ActivateMany loads several entries, one result per input in input order.
	ActivateMany(ids []string) []*types.Entry
	// Deactivate unloads entries. Unloading an inactive entry is a no-op.
	Deactivate(ids ...string)
}

// Slot is one typed reference held by a surface cell
type Slot struct {
	Kind       types.Kind `json:"kind" yaml:"kind" toml:"kind"`
	Identifier string     `json:"identifier" yaml:"identifier" toml:"identifier"`
}

// Empty reports whether the slot holds no reference
func (s Slot) Empty() bool {
	return s.Identifier == ""
}

// Surface is the placed-scenery grid
type Surface interface {
	Dimensions() (width, height int)
	Cell(x, y int) []Slot
}
