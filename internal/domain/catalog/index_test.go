package catalog

import (
	"testing"

	"github.com/GriffinCanCode/sceneryloader/internal/domain/activation"
	"github.com/GriffinCanCode/sceneryloader/internal/domain/canon"
	"github.com/GriffinCanCode/sceneryloader/internal/host/memhost"
	"github.com/GriffinCanCode/sceneryloader/internal/monitoring"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	benchCk1 = "00000003|BN1     |11111111"
	benchCk2 = "00000003|BN1     |22222222"
)

func installed() []types.Entry {
	return []types.Entry{
		{Identifier: "grp.paths", Kind: types.KindSceneryGroup, Name: "Path Items", Authors: []string{"Chris Sawyer"},
			Items: []string{benchCk2, "lamp.a", benchCk1, "lamp.a"}},
		{Identifier: benchCk1, Kind: types.KindFootpathAddition, Name: "Bench"},
		{Identifier: "lamp.a", Kind: types.KindFootpathAddition, Name: "Lamp"},
		{Identifier: "grp.empty", Kind: types.KindSceneryGroup, Name: "Empty", Authors: []string{" ", ""}},
		{Identifier: "grp.walls", Kind: types.KindSceneryGroup, Name: "Walls", Authors: []string{"A", "B"},
			Items: []string{"wall.a"}},
		{Identifier: "wall.a", Kind: types.KindWall, Name: "Wall"},
	}
}

type fixture struct {
	host    *memhost.Host
	tracker *activation.Tracker
	index   *Index
}

func newFixture(t *testing.T, h *memhost.Host) fixture {
	t.Helper()
	tracker := activation.NewTracker(h)
	tracker.Sync()
	c := canon.New(h, tracker).WithActive(tracker)
	return fixture{host: h, tracker: tracker, index: NewIndex(h, tracker, c)}
}

func TestBuildIndexesGroupsInHostOrder(t *testing.T) {
	f := newFixture(t, memhost.New(installed()...))

	groups := f.index.Build()
	require.Len(t, groups, 3)

	assert.Equal(t, "grp.paths", groups[0].Identifier)
	assert.Equal(t, "grp.empty", groups[1].Identifier)
	assert.Equal(t, "grp.walls", groups[2].Identifier)

	assert.Equal(t, "Chris Sawyer", groups[0].Authors)
	assert.Equal(t, "unknown", groups[1].Authors)
	assert.Equal(t, "A, B", groups[2].Authors)
}

func TestBuildCanonicalizesMembersKeepingDuplicates(t *testing.T) {
	f := newFixture(t, memhost.New(installed()...))

	g, ok := f.index.Group("grp.paths")
	require.True(t, ok)
	assert.Equal(t, []string{benchCk1, "lamp.a", benchCk1, "lamp.a"}, g.Items)
}

func TestBuildIsIdempotent(t *testing.T) {
	f := newFixture(t, memhost.New(installed()...))

	first := f.index.Build()
	calls := f.host.Calls()
	second := f.index.Build()

	assert.Equal(t, first, second)
	assert.Equal(t, calls, f.host.Calls(), "second build does not touch the host")
}

func TestBuildLeavesActivationStateUnchanged(t *testing.T) {
	h := memhost.New(installed()...)
	h.Activate("grp.walls")
	f := newFixture(t, h)

	f.index.Build()

	assert.Equal(t, []string{"grp.walls"}, h.ActiveIdentifiers())
	assert.Equal(t, []string{"grp.walls"}, f.tracker.Active())
}

func TestBuildToleratesUnreadableGroups(t *testing.T) {
	h := memhost.New(installed()...).WithCapacity(types.KindSceneryGroup, 0)
	f := newFixture(t, h)

	groups := f.index.Build()
	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.Empty(t, g.Items)
		assert.True(t, g.Unread)
	}
	assert.Empty(t, h.ActiveIdentifiers())
}

func TestUnreadGroupIsReadOnceHostAllows(t *testing.T) {
	h := memhost.New(installed()...).WithCapacity(types.KindSceneryGroup, 0)
	f := newFixture(t, h)

	g, ok := f.index.Group("grp.walls")
	require.True(t, ok)
	assert.True(t, g.Unread)

	h.WithCapacity(types.KindSceneryGroup, 1)

	g, ok = f.index.Group("grp.walls")
	require.True(t, ok)
	assert.False(t, g.Unread)
	assert.Equal(t, []string{"wall.a"}, g.Items)
	assert.Empty(t, h.ActiveIdentifiers(), "reading members keeps activation state")

	groups := f.index.Build()
	assert.Equal(t, []string{benchCk1, "lamp.a", benchCk1, "lamp.a"}, groups[0].Items)
	for _, g := range groups {
		assert.False(t, g.Unread, g.Identifier)
	}

	calls := f.host.Calls()
	f.index.Build()
	assert.Equal(t, calls, f.host.Calls(), "read groups are not peeked again")
}

func TestGroupLookup(t *testing.T) {
	f := newFixture(t, memhost.New(installed()...))

	_, ok := f.index.Group("wall.a")
	assert.False(t, ok, "items are not groups")

	g, ok := f.index.Group("grp.walls")
	require.True(t, ok)
	g.Items[0] = "mutated"

	again, _ := f.index.Group("grp.walls")
	assert.Equal(t, "wall.a", again.Items[0], "returned groups are copies")
	assert.Equal(t, 3, f.index.Len())
}

func TestAuthorPlaceholderAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg, "test")

	h := memhost.New(installed()...)
	tracker := activation.NewTracker(h)
	tracker.Sync()
	idx := NewIndex(h, tracker, canon.New(h, tracker).WithActive(tracker)).
		WithAuthorPlaceholder("n/a").
		WithMetrics(metrics)

	g, _ := idx.Group("grp.empty")
	assert.Equal(t, "n/a", g.Authors)
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.CatalogGroups))
}
