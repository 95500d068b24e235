package toggle

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/sceneryloader/internal/logging"
	"github.com/GriffinCanCode/sceneryloader/internal/monitoring"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/collections"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/id"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"go.uber.org/zap"
)

// ErrGroupNotFound is returned for identifiers the index does not know
var ErrGroupNotFound = errors.New("group not found")

// Index looks up indexed groups
type Index interface {
	Group(id string) (types.Group, bool)
}

// Tracker is the activation bookkeeping the controller drives
type Tracker interface {
	IsActive(id string) bool
	Activate(id string) bool
	ActivateAll(ids []string) bool
	Deactivate(ids ...string)
}

// Resolver finds which candidates nothing on the surface references
type Resolver interface {
	SafeToDeactivate(candidates []string) *collections.Set[string]
}

// ViewerCloser closes presentation windows that list loaded items. It runs
// before anything is unloaded.
type ViewerCloser interface {
	CloseDependentViewers()
}

// ViewerCloserFunc adapts a function to ViewerCloser
type ViewerCloserFunc func()

// CloseDependentViewers calls f
func (f ViewerCloserFunc) CloseDependentViewers() { f() }

// State is a group's position in the toggle state machine
type State string

const (
	StateIncomplete State = "incomplete"
	StateComplete   State = "complete"
)

// Action is what a toggle ended up doing
type Action string

const (
	ActionLoad   Action = "load"
	ActionUnload Action = "unload"
)

// Outcome describes one toggle
type Outcome struct {
	Operation        id.OperationID `json:"operation"`
	Group            string         `json:"group"`
	Action           Action         `json:"action"`
	GroupActivated   bool           `json:"group_activated"`
	GroupDeactivated bool           `json:"group_deactivated"`
	Activated        []string       `json:"activated,omitempty"`
	Refused          []string       `json:"refused,omitempty"`
	Deactivated      []string       `json:"deactivated,omitempty"`
	Retained         []string       `json:"retained,omitempty"` // still referenced on the surface
}

// Controller orchestrates group toggles
type Controller struct {
	index    Index
	tracker  Tracker
	resolver Resolver
	viewers  ViewerCloser
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewController creates a toggle controller
func NewController(index Index, tracker Tracker, resolver Resolver) *Controller {
	return &Controller{
		index:    index,
		tracker:  tracker,
		resolver: resolver,
		logger:   logging.NewNop(),
	}
}

// WithViewerCloser registers the presentation hook run before unloading
func (c *Controller) WithViewerCloser(viewers ViewerCloser) *Controller {
	c.viewers = viewers
	return c
}

// WithLogger adds logging to the controller
func (c *Controller) WithLogger(logger *logging.Logger) *Controller {
	c.logger = logging.OrNop(logger).Named("toggle")
	return c
}

// WithMetrics adds metrics tracking to the controller
func (c *Controller) WithMetrics(metrics *monitoring.Metrics) *Controller {
	c.metrics = metrics
	return c
}

// State reports whether a group is complete
func (c *Controller) State(groupID string) (State, error) {
	g, ok := c.index.Group(groupID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	return c.state(g, collections.NewSet(g.Items...)), nil
}

func (c *Controller) state(g types.Group, members *collections.Set[string]) State {
	if !c.tracker.IsActive(g.Identifier) {
		return StateIncomplete
	}
	for _, item := range members.Values() {
		if !c.tracker.IsActive(item) {
			return StateIncomplete
		}
	}
	return StateComplete
}

// Toggle runs one user action on a group to completion
func (c *Controller) Toggle(groupID string) (*Outcome, error) {
	g, ok := c.index.Group(groupID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}

	members := collections.NewSet(g.Items...)
	out := &Outcome{
		Operation: id.NewOperationID(),
		Group:     g.Identifier,
	}

	if c.state(g, members) == StateComplete {
		c.unload(g, members, out)
	} else {
		wasActive := c.tracker.IsActive(g.Identifier)
		c.load(g, members, out)
		if wasActive && len(out.Activated) == 0 {
			c.logger.Info("Nothing left to load, unloading instead",
				logging.ID(g.Identifier),
				logging.Count("refused", len(out.Refused)))
			c.unload(g, members, out)
		}
	}

	c.metrics.RecordToggle(string(out.Action))
	c.logger.Info("Group toggled",
		logging.ID(g.Identifier),
		zap.String("operation", out.Operation.String()),
		zap.String("action", string(out.Action)),
		logging.Count("activated", len(out.Activated)),
		logging.Count("refused", len(out.Refused)),
		logging.Count("deactivated", len(out.Deactivated)),
		logging.Count("retained", len(out.Retained)))

	return out, nil
}

func (c *Controller) load(g types.Group, members *collections.Set[string], out *Outcome) {
	out.Action = ActionLoad

	if !c.tracker.IsActive(g.Identifier) {
		out.GroupActivated = c.tracker.Activate(g.Identifier)
	}

	var missing []string
	for _, item := range members.Values() {
		if !c.tracker.IsActive(item) {
			missing = append(missing, item)
		}
	}
	if len(missing) == 0 {
		return
	}

	c.tracker.ActivateAll(missing)
	for _, item := range missing {
		if c.tracker.IsActive(item) {
			out.Activated = append(out.Activated, item)
		} else {
			out.Refused = append(out.Refused, item)
		}
	}
	if len(out.Refused) > 0 {
		c.logger.Warn("Group members refused", logging.ID(g.Identifier), logging.IDs("refused", out.Refused))
	}
}

func (c *Controller) unload(g types.Group, members *collections.Set[string], out *Outcome) {
	out.Action = ActionUnload

	if c.viewers != nil {
		c.viewers.CloseDependentViewers()
	}

	safe := c.resolver.SafeToDeactivate(members.Values())

	free := safe.Values()
	for _, item := range free {
		if c.tracker.IsActive(item) {
			out.Deactivated = append(out.Deactivated, item)
		}
	}
	for _, item := range members.Values() {
		if !safe.Contains(item) {
			out.Retained = append(out.Retained, item)
		}
	}

	c.tracker.Deactivate(free...)

	if safe.Equal(members) {
		c.tracker.Deactivate(g.Identifier)
		out.GroupDeactivated = true
	}
}
