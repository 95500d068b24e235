package session

import (
	"errors"
	"sync"

	"github.com/GriffinCanCode/sceneryloader/internal/domain/activation"
	"github.com/GriffinCanCode/sceneryloader/internal/domain/canon"
	"github.com/GriffinCanCode/sceneryloader/internal/domain/catalog"
	"github.com/GriffinCanCode/sceneryloader/internal/domain/toggle"
	"github.com/GriffinCanCode/sceneryloader/internal/domain/usage"
	"github.com/GriffinCanCode/sceneryloader/internal/host"
	"github.com/GriffinCanCode/sceneryloader/internal/logging"
	"github.com/GriffinCanCode/sceneryloader/internal/monitoring"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/id"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	// ErrNoHost is returned when a session is started without a host
	ErrNoHost = errors.New("host unavailable")
	// ErrNoSurface is returned when a session is started without a surface
	ErrNoSurface = errors.New("surface unavailable")
)

// DefaultNamespace prefixes metric names when Options.Namespace is empty
const DefaultNamespace = "sceneryloader"

// Options configures a session
type Options struct {
	Logger            *logging.Logger
	Registerer        prometheus.Registerer // nil disables metrics
	Namespace         string
	AuthorPlaceholder string
	Viewers           toggle.ViewerCloser
}

// Session is the engine context for one game session
type Session struct {
	mu         sync.Mutex
	id         id.SessionID
	tracker    *activation.Tracker
	canon      *canon.Canonicalizer
	index      *catalog.Index
	resolver   *usage.Resolver
	controller *toggle.Controller
	logger     *logging.Logger
}

// New starts a session over a host and its surface
func New(h host.Host, surface host.Surface, opts Options) (*Session, error) {
	if h == nil {
		return nil, ErrNoHost
	}
	if surface == nil {
		return nil, ErrNoSurface
	}

	sid := id.NewSessionID()
	logger := logging.OrNop(opts.Logger).With(zap.String("session", sid.String()))
	wrapped := logging.Wrap(logger)

	var metrics *monitoring.Metrics
	if opts.Registerer != nil {
		namespace := opts.Namespace
		if namespace == "" {
			namespace = DefaultNamespace
		}
		metrics = monitoring.NewMetrics(opts.Registerer, namespace)
	}

	tracker := activation.NewTracker(h).WithLogger(wrapped).WithMetrics(metrics)
	c := canon.New(h, tracker).WithActive(tracker).WithLogger(wrapped)
	index := catalog.NewIndex(h, tracker, c).
		WithLogger(wrapped).
		WithMetrics(metrics).
		WithAuthorPlaceholder(opts.AuthorPlaceholder)
	resolver := usage.NewResolver(surface, c).WithLogger(wrapped).WithMetrics(metrics)
	controller := toggle.NewController(index, tracker, resolver).
		WithLogger(wrapped).
		WithMetrics(metrics)
	if opts.Viewers != nil {
		controller.WithViewerCloser(opts.Viewers)
	}

	active := tracker.Sync()
	wrapped.Info("Session started", logging.Count("active", active))

	return &Session{
		id:         sid,
		tracker:    tracker,
		canon:      c,
		index:      index,
		resolver:   resolver,
		controller: controller,
		logger:     wrapped,
	}, nil
}

// ID returns the session identifier
func (s *Session) ID() id.SessionID {
	return s.id
}

// Build indexes the installed groups once and returns them
func (s *Session) Build() []types.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Build()
}

// Group returns one indexed group
func (s *Session) Group(groupID string) (types.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Group(groupID)
}

// IsActive reports whether an identifier is currently loaded
func (s *Session) IsActive(entryID string) bool {
	return s.tracker.IsActive(entryID)
}

// Toggle loads or unloads a group
func (s *Session) Toggle(groupID string) (*toggle.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Toggle(groupID)
}

// State reports whether a group is complete
func (s *Session) State(groupID string) (toggle.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.State(groupID)
}

// ActiveCount returns the number of loaded entries of a kind
func (s *Session) ActiveCount(kind types.Kind) int {
	return s.tracker.ActiveCount(kind)
}

// Capacity returns the host's slot limit for a kind
func (s *Session) Capacity(kind types.Kind) int {
	return s.tracker.Capacity(kind)
}

// Rows returns the display rows of every group matching query
func (s *Session) Rows(query string) []catalog.Row {
	groups := s.Build()

	rows := make([]catalog.Row, 0, len(groups))
	for _, g := range groups {
		if !catalog.Match(g, query) {
			continue
		}
		rows = append(rows, catalog.NewRow(g, s.tracker.IsActive))
	}
	return rows
}

// Census lists the identifiers placed on the surface by kind
func (s *Session) Census() map[types.Kind][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	census := s.resolver.Census()
	out := make(map[types.Kind][]string, len(census))
	for kind, ids := range census {
		out[kind] = ids.Values()
	}
	return out
}

// Stats returns activation statistics
func (s *Session) Stats() types.ActivationStats {
	return s.tracker.Stats()
}
