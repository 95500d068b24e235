// Package usage scans the placed-scenery surface for references to catalog
// entries.
//
// The surface changes between toggles, so nothing here is cached: every call
// walks every cell once. A single reference anywhere is enough to keep an
// item loaded, whatever kind the slot reports, including stale references
// whose kind no longer resolves.
package usage

import (
	"time"

	"github.com/GriffinCanCode/sceneryloader/internal/host"
	"github.com/GriffinCanCode/sceneryloader/internal/logging"
	"github.com/GriffinCanCode/sceneryloader/internal/monitoring"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/collections"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
)

// Canonicalizer maps raw references to tracked identifiers
type Canonicalizer interface {
	Canonicalize(raw string) string
}

// Resolver computes which candidate items the surface still references
type Resolver struct {
	surface host.Surface
	canon   Canonicalizer
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewResolver creates a resolver over a surface
func NewResolver(surface host.Surface, canon Canonicalizer) *Resolver {
	return &Resolver{
		surface: surface,
		canon:   canon,
		logger:  logging.NewNop(),
	}
}

// WithLogger adds logging to the resolver
func (r *Resolver) WithLogger(logger *logging.Logger) *Resolver {
	r.logger = logging.OrNop(logger).Named("usage")
	return r
}

// WithMetrics adds metrics tracking to the resolver
func (r *Resolver) WithMetrics(metrics *monitoring.Metrics) *Resolver {
	r.metrics = metrics
	return r
}

// SafeToDeactivate returns the candidates that nothing on the surface
// references, in candidate order
func (r *Resolver) SafeToDeactivate(candidates []string) *collections.Set[string] {
	remaining := collections.NewSet(candidates...)
	if remaining.Empty() {
		return remaining
	}

	r.scan(func(_ host.Slot, id string) {
		remaining.Remove(id)
	})

	r.logger.Debug("Surface scanned",
		logging.Count("candidates", len(candidates)),
		logging.Count("safe", remaining.Len()))
	return remaining
}

// Referenced returns every identifier the surface references
func (r *Resolver) Referenced() *collections.Set[string] {
	seen := collections.NewSet[string]()
	r.scan(func(_ host.Slot, id string) {
		seen.Add(id)
	})
	return seen
}

// Census groups referenced identifiers by slot kind. Slots whose kind is not
// a known placement kind are left out.
func (r *Resolver) Census() map[types.Kind]*collections.Set[string] {
	census := make(map[types.Kind]*collections.Set[string], len(types.PlacementKinds))
	for _, kind := range types.PlacementKinds {
		census[kind] = collections.NewSet[string]()
	}

	stale := 0
	r.scan(func(slot host.Slot, id string) {
		bucket, ok := census[slot.Kind]
		if !ok {
			stale++
			return
		}
		bucket.Add(id)
	})

	if stale > 0 {
		r.logger.Debug("Stale surface references", logging.Count("slots", stale))
	}
	return census
}

// scan visits every referencing slot once, passing its canonical identifier
func (r *Resolver) scan(visit func(slot host.Slot, id string)) {
	start := time.Now()
	width, height := r.surface.Dimensions()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, slot := range r.surface.Cell(x, y) {
				if slot.Empty() {
					continue
				}
				visit(slot, r.canon.Canonicalize(slot.Identifier))
			}
		}
	}

	r.metrics.RecordScan(width*height, time.Since(start))
}
