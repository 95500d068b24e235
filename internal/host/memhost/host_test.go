package memhost

import (
	"testing"

	"github.com/GriffinCanCode/sceneryloader/internal/host"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries() []types.Entry {
	return []types.Entry{
		{Identifier: "G", Kind: types.KindSceneryGroup, Name: "Group", Items: []string{"a", "b"}},
		{Identifier: "a", Kind: types.KindBanner, Aliases: []string{"a-alias"}},
		{Identifier: "b", Kind: types.KindBanner},
	}
}

func TestInstalledHidesMembers(t *testing.T) {
	h := New(entries()...)

	installed := h.Installed()
	require.Len(t, installed, 3)
	assert.Equal(t, "G", installed[0].Identifier)
	assert.Empty(t, installed[0].Items)

	installed[1].Aliases[0] = "mutated"
	assert.True(t, h.Activate("a-alias") != nil, "callers cannot mutate host state")
}

func TestActivateReturnsLoadedDescription(t *testing.T) {
	h := New(entries()...)

	loaded := h.Activate("G")
	require.NotNil(t, loaded)
	assert.Equal(t, []string{"a", "b"}, loaded.Items)
	assert.True(t, h.IsActive("G"))

	again := h.Activate("G")
	require.NotNil(t, again, "activating a loaded entry succeeds")
	assert.Equal(t, 1, h.Count(types.KindSceneryGroup))
}

func TestActivateByAlias(t *testing.T) {
	h := New(entries()...)

	loaded := h.Activate("a-alias")
	require.NotNil(t, loaded)
	assert.Equal(t, "a", loaded.Identifier)
	assert.True(t, h.IsActive("a"))
	assert.True(t, h.IsActive("a-alias"))
}

func TestActivateUnknown(t *testing.T) {
	h := New(entries()...)
	assert.Nil(t, h.Activate("missing"))
	assert.Empty(t, h.ActiveIdentifiers())
}

func TestCapacity(t *testing.T) {
	h := New(entries()...).WithCapacity(types.KindBanner, 1)

	out := h.ActivateMany([]string{"a", "b"})
	require.Len(t, out, 2)
	assert.NotNil(t, out[0])
	assert.Nil(t, out[1], "second banner exceeds capacity")
	assert.Equal(t, 1, h.Count(types.KindBanner))

	h.Deactivate("a")
	assert.NotNil(t, h.Activate("b"), "freed slot is reusable")
}

func TestActiveByKind(t *testing.T) {
	h := New(entries()...)
	h.ActivateMany([]string{"b", "G"})

	banners := h.Active(types.KindBanner)
	require.Len(t, banners, 1)
	assert.Equal(t, "b", banners[0].Identifier)
	assert.Empty(t, h.Active(types.KindWall))
	assert.Equal(t, []string{"G", "b"}, h.ActiveIdentifiers())
}

func TestFirstClaimWins(t *testing.T) {
	h := New(
		types.Entry{Identifier: "x", Kind: types.KindWall, Aliases: []string{"shared"}},
		types.Entry{Identifier: "y", Kind: types.KindWall, Aliases: []string{"shared"}},
	)

	loaded := h.Activate("shared")
	require.NotNil(t, loaded)
	assert.Equal(t, "x", loaded.Identifier)
}

func TestCalls(t *testing.T) {
	h := New(entries()...)
	h.Activate("a")
	h.ActivateMany([]string{"b"})
	h.Deactivate("a", "b")
	h.Deactivate()

	assert.Equal(t, Calls{Activate: 1, ActivateMany: 1, Deactivate: 2}, h.Calls())
}

func TestGrid(t *testing.T) {
	g := NewGrid(2, 3)
	w, hgt := g.Dimensions()
	assert.Equal(t, 2, w)
	assert.Equal(t, 3, hgt)

	slot := host.Slot{Kind: types.KindWall, Identifier: "w"}
	assert.True(t, g.Place(1, 2, slot))
	assert.False(t, g.Place(2, 0, slot))
	assert.Equal(t, []host.Slot{slot}, g.Cell(1, 2))
	assert.Nil(t, g.Cell(-1, 0))

	cell := g.Cell(1, 2)
	cell[0].Identifier = "mutated"
	assert.Equal(t, "w", g.Cell(1, 2)[0].Identifier)

	g.Clear(1, 2)
	assert.Empty(t, g.Cell(1, 2))
	assert.Equal(t, 5, g.Reads())
}

func TestNegativeGrid(t *testing.T) {
	w, hgt := NewGrid(-1, -4).Dimensions()
	assert.Zero(t, w)
	assert.Zero(t, hgt)
}
