package types

// Kind identifies the class of a catalog entry
type Kind string

const (
	KindUnknown          Kind = ""
	KindSceneryGroup     Kind = "scenery_group"
	KindSmallScenery     Kind = "small_scenery"
	KindLargeScenery     Kind = "large_scenery"
	KindWall             Kind = "wall"
	KindBanner           Kind = "banner"
	KindFootpathAddition Kind = "footpath_addition"
	KindFootpathSurface  Kind = "footpath_surface"
	KindFootpathRailings Kind = "footpath_railings"
)

const (
	// LargeCapacity is the session limit for the densest placement kinds
	LargeCapacity = 2047
	// SmallCapacity is the session limit for every other kind
	SmallCapacity = 255
)

// Kinds lists every known kind in display order
var Kinds = []Kind{
	KindSceneryGroup,
	KindSmallScenery,
	KindLargeScenery,
	KindWall,
	KindBanner,
	KindFootpathAddition,
	KindFootpathSurface,
	KindFootpathRailings,
}

// PlacementKinds lists the kinds a surface cell can reference
var PlacementKinds = []Kind{
	KindSmallScenery,
	KindLargeScenery,
	KindWall,
	KindBanner,
	KindFootpathAddition,
	KindFootpathSurface,
	KindFootpathRailings,
}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Capacity returns the maximum number of simultaneously active entries of this kind.
// Unknown kinds have no capacity.
func (k Kind) Capacity() int {
	switch k {
	case KindSmallScenery, KindLargeScenery, KindWall:
		return LargeCapacity
	case KindUnknown:
		return 0
	}
	if !k.Valid() {
		return 0
	}
	return SmallCapacity
}

func (k Kind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	return string(k)
}
