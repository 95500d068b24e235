package memhost

import (
	"sync"

	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
)

// Host is an in-memory game session
type Host struct {
	mu        sync.RWMutex
	installed []types.Entry
	byID      map[string]int // identifier or alias -> index into installed
	active    map[string]bool
	capacity  map[types.Kind]int
	calls     Calls
}

// Calls counts host primitive invocations
type Calls struct {
	Activate     int
	ActivateMany int
	Deactivate   int
}

// New creates a host with the given installed entries.
// The first entry to claim an identifier or alias owns it.
func New(entries ...types.Entry) *Host {
	h := &Host{
		byID:     make(map[string]int),
		active:   make(map[string]bool),
		capacity: make(map[types.Kind]int),
	}
	for _, e := range entries {
		h.install(e)
	}
	return h
}

func (h *Host) install(e types.Entry) {
	idx := len(h.installed)
	h.installed = append(h.installed, e)
	if _, taken := h.byID[e.Identifier]; !taken {
		h.byID[e.Identifier] = idx
	}
	for _, alias := range e.Aliases {
		if _, taken := h.byID[alias]; !taken {
			h.byID[alias] = idx
		}
	}
}

// WithCapacity overrides the capacity of one kind
func (h *Host) WithCapacity(kind types.Kind, capacity int) *Host {
	h.mu.Lock()
	h.capacity[kind] = capacity
	h.mu.Unlock()
	return h
}

// Installed returns a copy of the installed entries with group members hidden
func (h *Host) Installed() []types.Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]types.Entry, len(h.installed))
	for i, e := range h.installed {
		out[i] = installedView(e)
	}
	return out
}

// Active returns the loaded entries of one kind in installed order
func (h *Host) Active(kind types.Kind) []types.Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []types.Entry
	for _, e := range h.installed {
		if e.Kind == kind && h.active[e.Identifier] {
			out = append(out, loadedView(e))
		}
	}
	return out
}

// Activate loads one entry by identifier or alias
func (h *Host) Activate(id string) *types.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.calls.Activate++
	return h.activate(id)
}

// ActivateMany loads each entry in order
func (h *Host) ActivateMany(ids []string) []*types.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.calls.ActivateMany++
	out := make([]*types.Entry, len(ids))
	for i, id := range ids {
		out[i] = h.activate(id)
	}
	return out
}

// activate must be called with the lock held
func (h *Host) activate(id string) *types.Entry {
	idx, ok := h.byID[id]
	if !ok {
		return nil
	}
	e := h.installed[idx]
	if !h.active[e.Identifier] {
		if h.countLocked(e.Kind) >= h.capacityLocked(e.Kind) {
			return nil
		}
		h.active[e.Identifier] = true
	}
	loaded := loadedView(e)
	return &loaded
}

// Deactivate unloads entries by identifier or alias
func (h *Host) Deactivate(ids ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.calls.Deactivate++
	for _, id := range ids {
		if idx, ok := h.byID[id]; ok {
			delete(h.active, h.installed[idx].Identifier)
		}
	}
}

// IsActive reports the host's own view of an identifier
func (h *Host) IsActive(id string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	idx, ok := h.byID[id]
	return ok && h.active[h.installed[idx].Identifier]
}

// ActiveIdentifiers returns every loaded identifier in installed order
func (h *Host) ActiveIdentifiers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []string
	for _, e := range h.installed {
		if h.active[e.Identifier] {
			out = append(out, e.Identifier)
		}
	}
	return out
}

// Count returns the number of loaded entries of one kind
func (h *Host) Count(kind types.Kind) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.countLocked(kind)
}

// Calls returns a snapshot of the primitive call counters
func (h *Host) Calls() Calls {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.calls
}

func (h *Host) countLocked(kind types.Kind) int {
	n := 0
	for _, e := range h.installed {
		if e.Kind == kind && h.active[e.Identifier] {
			n++
		}
	}
	return n
}

func (h *Host) capacityLocked(kind types.Kind) int {
	if c, ok := h.capacity[kind]; ok {
		return c
	}
	return kind.Capacity()
}

func installedView(e types.Entry) types.Entry {
	e.Authors = append([]string(nil), e.Authors...)
	e.Aliases = append([]string(nil), e.Aliases...)
	e.Items = nil
	return e
}

func loadedView(e types.Entry) types.Entry {
	items := e.Items
	e = installedView(e)
	e.Items = append([]string(nil), items...)
	return e
}
