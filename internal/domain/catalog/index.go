package catalog

import (
	"sync"

	"github.com/GriffinCanCode/sceneryloader/internal/logging"
	"github.com/GriffinCanCode/sceneryloader/internal/monitoring"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
)

// Source lists installed entries
type Source interface {
	Installed() []types.Entry
}

// Prober reads a loaded description without changing net activation state
type Prober interface {
	Peek(id string) (*types.Entry, bool)
}

// Canonicalizer maps raw member references to tracked identifiers
type Canonicalizer interface {
	Canonicalize(raw string) string
}

// Index is the session's static group index
type Index struct {
	once        sync.Once
	mu          sync.Mutex
	source      Source
	prober      Prober
	canon       Canonicalizer
	placeholder string
	groups      []types.Group
	byID        map[string]int
	logger      *logging.Logger
	metrics     *monitoring.Metrics
}

// NewIndex creates an index; nothing is read until Build
func NewIndex(source Source, prober Prober, canon Canonicalizer) *Index {
	return &Index{
		source:      source,
		prober:      prober,
		canon:       canon,
		placeholder: types.AuthorPlaceholder,
		logger:      logging.NewNop(),
	}
}

// WithLogger adds logging to the index
func (i *Index) WithLogger(logger *logging.Logger) *Index {
	i.logger = logging.OrNop(logger).Named("catalog")
	return i
}

// WithMetrics adds metrics tracking to the index
func (i *Index) WithMetrics(metrics *monitoring.Metrics) *Index {
	i.metrics = metrics
	return i
}

// WithAuthorPlaceholder sets the text shown for groups without authors
func (i *Index) WithAuthorPlaceholder(placeholder string) *Index {
	if placeholder != "" {
		i.placeholder = placeholder
	}
	return i
}

// Build indexes every installed scenery group on the first call and returns
// the cached groups on every later call. Groups whose members could not be
// read yet are read again.
func (i *Index) Build() []types.Group {
	i.once.Do(i.build)

	i.mu.Lock()
	defer i.mu.Unlock()
	for n := range i.groups {
		i.readLocked(n)
	}
	return cloneGroups(i.groups)
}

func (i *Index) build() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.byID = make(map[string]int)

	var unread int
	for _, e := range i.source.Installed() {
		if e.Kind != types.KindSceneryGroup {
			continue
		}

		if _, dup := i.byID[e.Identifier]; !dup {
			i.byID[e.Identifier] = len(i.groups)
		}
		i.groups = append(i.groups, types.Group{
			Identifier: e.Identifier,
			Name:       e.Name,
			Authors:    types.JoinAuthors(e.Authors, i.placeholder),
			Unread:     true,
		})
		if !i.readLocked(len(i.groups) - 1) {
			unread++
			i.logger.Warn("Group members unreadable, retrying on next lookup", logging.ID(e.Identifier))
		}
	}

	i.metrics.SetCatalogGroups(len(i.groups))
	i.logger.Info("Catalog indexed",
		logging.Count("groups", len(i.groups)),
		logging.Count("unreadable", unread))
}

// readLocked loads the members of an unread group and reports whether they
// are known; must hold mu
func (i *Index) readLocked(n int) bool {
	g := &i.groups[n]
	if !g.Unread {
		return true
	}

	loaded, ok := i.prober.Peek(g.Identifier)
	if !ok {
		return false
	}
	g.Items = make([]string, len(loaded.Items))
	for k, raw := range loaded.Items {
		g.Items[k] = i.canon.Canonicalize(raw)
	}
	g.Unread = false
	i.logger.Debug("Group members read", logging.ID(g.Identifier), logging.Count("items", len(g.Items)))
	return true
}

// Group returns one indexed group, building the index if needed
func (i *Index) Group(id string) (types.Group, bool) {
	i.once.Do(i.build)

	i.mu.Lock()
	defer i.mu.Unlock()

	n, ok := i.byID[id]
	if !ok {
		return types.Group{}, false
	}
	i.readLocked(n)
	return cloneGroup(i.groups[n]), true
}

// Len returns the number of indexed groups
func (i *Index) Len() int {
	i.once.Do(i.build)

	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.groups)
}

func cloneGroup(g types.Group) types.Group {
	g.Items = append([]string(nil), g.Items...)
	return g
}

func cloneGroups(groups []types.Group) []types.Group {
	out := make([]types.Group, len(groups))
	for n, g := range groups {
		out[n] = cloneGroup(g)
	}
	return out
}
