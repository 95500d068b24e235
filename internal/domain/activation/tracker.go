package activation

import (
	"sync"

	"github.com/GriffinCanCode/sceneryloader/internal/host"
	"github.com/GriffinCanCode/sceneryloader/internal/logging"
	"github.com/GriffinCanCode/sceneryloader/internal/monitoring"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/collections"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
)

// Tracker maintains the live set of active identifiers
type Tracker struct {
	mu       sync.RWMutex
	host     host.Host
	active   *collections.Map[string, types.Kind] // Protected by mu
	owners   map[string]string                    // alias or identifier -> identifier
	kinds    map[string]types.Kind                // identifier -> kind
	counts   map[types.Kind]int                   // Protected by mu
	refusals int                                  // Protected by mu
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewTracker creates a tracker bound to a host
func NewTracker(h host.Host) *Tracker {
	return &Tracker{
		host:   h,
		active: collections.NewMap[string, types.Kind](),
		owners: make(map[string]string),
		kinds:  make(map[string]types.Kind),
		counts: make(map[types.Kind]int),
		logger: logging.NewNop(),
	}
}

// WithLogger adds logging to the tracker
func (t *Tracker) WithLogger(logger *logging.Logger) *Tracker {
	t.logger = logging.OrNop(logger).Named("activation")
	return t
}

// WithMetrics adds metrics tracking to the tracker
func (t *Tracker) WithMetrics(metrics *monitoring.Metrics) *Tracker {
	t.metrics = metrics
	return t
}

// Sync rebuilds the active set from the host and returns its size.
// Only session bootstrap should call this.
func (t *Tracker) Sync() int {
	installed := t.host.Installed()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.owners = make(map[string]string, len(installed))
	t.kinds = make(map[string]types.Kind, len(installed))
	for _, e := range installed {
		t.claim(e.Identifier, e.Identifier)
		for _, alias := range e.Aliases {
			t.claim(alias, e.Identifier)
		}
		if _, known := t.kinds[e.Identifier]; !known {
			t.kinds[e.Identifier] = e.Kind
		}
	}

	t.active = collections.NewMap[string, types.Kind]()
	t.counts = make(map[types.Kind]int)
	for _, kind := range types.Kinds {
		for _, e := range t.host.Active(kind) {
			if t.active.PutIfAbsent(e.Identifier, kind) {
				t.counts[kind]++
			}
			t.claim(e.Identifier, e.Identifier)
		}
	}
	t.publishLocked()

	t.logger.Info("Synchronized active entries",
		logging.Count("installed", len(installed)),
		logging.Count("active", t.active.Len()))

	return t.active.Len()
}

// claim records the first owner of a name; must hold lock
func (t *Tracker) claim(name, identifier string) {
	if _, taken := t.owners[name]; !taken {
		t.owners[name] = identifier
	}
}

// resolve maps an alias to the identifier that owns it; must hold lock
func (t *Tracker) resolve(id string) string {
	if owner, ok := t.owners[id]; ok {
		return owner
	}
	return id
}

// IsActive reports whether id is currently active
func (t *Tracker) IsActive(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.active.Get(t.resolve(id))
	return ok
}

// Activate loads one entry. It returns false when the entry was already
// active or the host refused it.
func (t *Tracker) Activate(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.active.Get(t.resolve(id)); ok {
		return false
	}

	entry := t.host.Activate(id)
	return t.recordLocked(id, entry)
}

// ActivateAll loads every identifier not yet active in one host call.
// It returns true iff at least one entry was newly activated; callers
// re-check IsActive to learn which ones.
func (t *Tracker) ActivateAll(ids []string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	pending := collections.NewSet[string]()
	for _, id := range ids {
		if _, ok := t.active.Get(t.resolve(id)); !ok {
			pending.Add(id)
		}
	}
	if pending.Empty() {
		return false
	}

	batch := pending.Values()
	results := t.host.ActivateMany(batch)

	activated := false
	for i, id := range batch {
		var entry *types.Entry
		if i < len(results) {
			entry = results[i]
		}
		if t.recordLocked(id, entry) {
			activated = true
		}
	}
	return activated
}

// recordLocked books the host's answer to an activation; must hold lock
func (t *Tracker) recordLocked(requested string, entry *types.Entry) bool {
	if entry == nil {
		kind := t.kinds[t.resolve(requested)]
		t.refusals++
		t.metrics.RecordRefusal(kind)
		t.logger.Warn("Activation refused", logging.ID(requested), logging.Kind(kind))
		return false
	}

	t.claim(requested, entry.Identifier)
	if _, ok := t.active.Get(entry.Identifier); ok {
		return false
	}

	t.active.Put(entry.Identifier, entry.Kind)
	t.counts[entry.Kind]++
	t.metrics.RecordActivation(entry.Kind)
	t.metrics.SetActive(entry.Kind, t.counts[entry.Kind])
	t.logger.Debug("Activated", logging.ID(entry.Identifier), logging.Kind(entry.Kind))
	return true
}

// Deactivate unloads ids through the host and forgets them, whether or not
// they were active
func (t *Tracker) Deactivate(ids ...string) {
	if len(ids) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.host.Deactivate(ids...)

	for _, id := range ids {
		owner := t.resolve(id)
		kind, ok := t.active.Get(owner)
		if !ok {
			continue
		}
		t.active.Remove(owner)
		t.counts[kind]--
		t.metrics.RecordDeactivation(kind)
		t.metrics.SetActive(kind, t.counts[kind])
		t.logger.Debug("Deactivated", logging.ID(owner), logging.Kind(kind))
	}
}

// Peek returns the loaded description of an entry without changing whether
// it is active: an entry that was inactive before the call is inactive after.
func (t *Tracker) Peek(id string) (*types.Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, wasActive := t.active.Get(t.resolve(id))

	entry := t.host.Activate(id)
	if entry == nil {
		t.logger.Debug("Peek refused", logging.ID(id))
		return nil, false
	}
	t.claim(id, entry.Identifier)

	if _, tracked := t.active.Get(entry.Identifier); !wasActive && !tracked {
		t.host.Deactivate(entry.Identifier)
	}
	return entry, true
}

// ActiveCount returns the number of active entries of one kind
func (t *Tracker) ActiveCount(kind types.Kind) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counts[kind]
}

// Capacity returns the maximum number of active entries of one kind
func (t *Tracker) Capacity(kind types.Kind) int {
	return kind.Capacity()
}

// KindOf returns the installed kind of an identifier or alias
func (t *Tracker) KindOf(id string) types.Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.kinds[t.resolve(id)]
}

// Active returns the active identifiers in activation order
func (t *Tracker) Active() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.Keys()
}

// Stats returns tracker statistics
func (t *Tracker) Stats() types.ActivationStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	byKind := make(map[types.Kind]int, len(t.counts))
	for kind, n := range t.counts {
		if n > 0 {
			byKind[kind] = n
		}
	}

	return types.ActivationStats{
		TotalActive: t.active.Len(),
		ByKind:      byKind,
		Refusals:    t.refusals,
	}
}

func (t *Tracker) publishLocked() {
	for _, kind := range types.Kinds {
		t.metrics.SetActive(kind, t.counts[kind])
	}
}
