// Package canon resolves raw item references to the identifier the host
// actually tracks.
//
// A raw reference has three fixed-width segments, source|name|checksum, each
// eight characters long. The same logical item can be installed by different
// packages under different checksums, so the checksum is dropped and the
// remaining source|name prefix is looked up in an aliasing table built from
// every installed identifier and alias. References that do not follow the
// pattern resolve to themselves.
package canon

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/GriffinCanCode/sceneryloader/internal/logging"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/collections"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"go.uber.org/zap"
)

// SegmentLength is the width of each raw identifier segment
const SegmentLength = 8

var rawPattern = regexp.MustCompile(fmt.Sprintf(`^([^|]{%[1]d}\|[^|]{%[1]d})\|[^|]{%[1]d}$`, SegmentLength))

// Catalog lists installed entries
type Catalog interface {
	Installed() []types.Entry
}

// Prober loads an entry's description without changing net activation state
type Prober interface {
	Peek(id string) (*types.Entry, bool)
}

// ActiveSource lists the identifiers the host currently has loaded
type ActiveSource interface {
	Active() []string
}

// Canonicalizer maps raw references to tracked identifiers
type Canonicalizer struct {
	once    sync.Once
	mu      sync.Mutex
	catalog Catalog
	prober  Prober
	active  ActiveSource
	aliases *collections.Map[string, string] // source|name -> identifier
	probed  *collections.Set[string]
	logger  *logging.Logger
}

// New creates a canonicalizer. The aliasing table is built from catalog on
// first use. prober may be nil, in which case unknown prefixes resolve to
// themselves without asking the host.
func New(catalog Catalog, prober Prober) *Canonicalizer {
	return &Canonicalizer{
		catalog: catalog,
		prober:  prober,
		aliases: collections.NewMap[string, string](),
		probed:  collections.NewSet[string](),
		logger:  logging.NewNop(),
	}
}

// WithActive lets loaded entries claim their prefixes first, so a variant
// the host already tracks wins over other installed checksums. It must be
// set before the first lookup.
func (c *Canonicalizer) WithActive(active ActiveSource) *Canonicalizer {
	c.active = active
	return c
}

// WithLogger adds logging to the canonicalizer
func (c *Canonicalizer) WithLogger(logger *logging.Logger) *Canonicalizer {
	c.logger = logging.OrNop(logger).Named("canon")
	return c
}

// Prefix returns the source|name prefix of a raw identifier
func Prefix(raw string) (string, bool) {
	m := rawPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Canonicalize returns the tracked identifier for raw, or raw itself when
// nothing better is known
func (c *Canonicalizer) Canonicalize(raw string) string {
	c.ensureObserved()

	prefix, ok := Prefix(raw)
	if !ok {
		return raw
	}

	c.mu.Lock()
	if id, found := c.aliases.Get(prefix); found {
		c.mu.Unlock()
		return id
	}
	if c.prober == nil || c.probed.Contains(prefix) {
		c.mu.Unlock()
		return raw
	}
	c.probed.Add(prefix)
	c.mu.Unlock()

	entry, found := c.prober.Peek(raw)
	if !found {
		c.logger.Debug("Unresolved reference", logging.ID(raw))
		return raw
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.recordLocked(prefix, entry.Identifier)
	c.logger.Debug("Resolved reference by probe", logging.ID(raw), zap.String("resolved", id))
	return id
}

// CanonicalizeAll maps every reference, keeping order and duplicates
func (c *Canonicalizer) CanonicalizeAll(raws []string) []string {
	out := make([]string, len(raws))
	for i, raw := range raws {
		out[i] = c.Canonicalize(raw)
	}
	return out
}

// Len returns the number of known prefixes
func (c *Canonicalizer) Len() int {
	c.ensureObserved()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aliases.Len()
}

func (c *Canonicalizer) ensureObserved() {
	c.once.Do(func() {
		if c.catalog == nil {
			return
		}
		var active []string
		if c.active != nil {
			active = c.active.Active()
		}
		c.observe(c.catalog.Installed(), active)
	})
}

// observe builds the aliasing table. Loaded entries claim their prefixes
// first, then installed identifiers, then aliases; every stored value maps
// to itself.
func (c *Canonicalizer) observe(entries []types.Entry, active []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loaded := collections.NewSet(active...)
	for _, id := range active {
		if prefix, ok := Prefix(id); ok {
			c.aliases.PutIfAbsent(prefix, id)
		}
	}
	for _, e := range entries {
		if !loaded.Contains(e.Identifier) {
			continue
		}
		for _, alias := range e.Aliases {
			if prefix, ok := Prefix(alias); ok {
				c.recordLocked(prefix, e.Identifier)
			}
		}
	}

	for _, e := range entries {
		if prefix, ok := Prefix(e.Identifier); ok {
			c.aliases.PutIfAbsent(prefix, e.Identifier)
		}
	}
	for _, e := range entries {
		for _, alias := range e.Aliases {
			if prefix, ok := Prefix(alias); ok {
				c.recordLocked(prefix, e.Identifier)
			}
		}
	}

	c.logger.Debug("Aliasing table built",
		logging.Count("entries", len(entries)),
		logging.Count("loaded", loaded.Len()),
		logging.Count("prefixes", c.aliases.Len()))
}

// recordLocked stores prefix -> identifier (first wins) and returns the
// value now stored; must hold mu
func (c *Canonicalizer) recordLocked(prefix, identifier string) string {
	target := identifier
	if own, ok := Prefix(identifier); ok {
		if settled, found := c.aliases.Get(own); found {
			target = settled
		} else {
			c.aliases.Put(own, identifier)
		}
	}
	c.aliases.PutIfAbsent(prefix, target)

	stored, _ := c.aliases.Get(prefix)
	return stored
}
