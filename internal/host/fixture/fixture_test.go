package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/sceneryloader/internal/host"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlFixture = `
installed:
  - identifier: G
    kind: scenery_group
    name: Group
    items: [a, b]
  - identifier: a
    kind: banner
  - identifier: b
    kind: wall
    aliases: [b-alias]
active: [b-alias]
capacity:
  banner: 0
surface:
  width: 3
  height: 2
  cells:
    - x: 1
      y: 1
      slots:
        - kind: wall
          identifier: b
`

const tomlFixture = `
active = ["b-alias"]

[[installed]]
identifier = "G"
kind = "scenery_group"
name = "Group"
items = ["a", "b"]

[[installed]]
identifier = "a"
kind = "banner"

[[installed]]
identifier = "b"
kind = "wall"
aliases = ["b-alias"]

[capacity]
banner = 0

[surface]
width = 3
height = 2

[[surface.cells]]
x = 1
y = 1

[[surface.cells.slots]]
kind = "wall"
identifier = "b"
`

const jsonFixture = `{
  "installed": [
    {"identifier": "G", "kind": "scenery_group", "name": "Group", "items": ["a", "b"]},
    {"identifier": "a", "kind": "banner"},
    {"identifier": "b", "kind": "wall", "aliases": ["b-alias"]}
  ],
  "active": ["b-alias"],
  "capacity": {"banner": 0},
  "surface": {"width": 3, "height": 2, "cells": [
    {"x": 1, "y": 1, "slots": [{"kind": "wall", "identifier": "b"}]}
  ]}
}`

func TestParseFormats(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, yamlFixture},
		{FormatTOML, tomlFixture},
		{FormatJSON, jsonFixture},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			require.Len(t, f.Installed, 3)
			assert.Equal(t, types.KindSceneryGroup, f.Installed[0].Kind)
			assert.Equal(t, []string{"a", "b"}, f.Installed[0].Items)
			assert.Equal(t, []string{"b-alias"}, f.Installed[2].Aliases)
			assert.Equal(t, []string{"b-alias"}, f.Active)
			assert.Equal(t, map[string]int{"banner": 0}, f.Capacity)
			assert.Equal(t, 3, f.Surface.Width)
			require.Len(t, f.Surface.Cells, 1)
			assert.Equal(t, []host.Slot{{Kind: types.KindWall, Identifier: "b"}}, f.Surface.Cells[0].Slots)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("installed: [\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("{}"), Format("xml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Fixture {
		return Fixture{
			Installed: []types.Entry{{Identifier: "a", Kind: types.KindWall, Aliases: []string{"alias"}}},
			Surface:   Surface{Width: 2, Height: 2},
		}
	}

	tests := []struct {
		name   string
		mutate func(f *Fixture)
	}{
		{"missing identifier", func(f *Fixture) { f.Installed[0].Identifier = "" }},
		{"unknown kind", func(f *Fixture) { f.Installed[0].Kind = "ride" }},
		{"active not installed", func(f *Fixture) { f.Active = []string{"ghost"} }},
		{"capacity unknown kind", func(f *Fixture) { f.Capacity = map[string]int{"ride": 1} }},
		{"negative capacity", func(f *Fixture) { f.Capacity = map[string]int{"wall": -1} }},
		{"negative surface", func(f *Fixture) { f.Surface.Width = -1 }},
		{"cell out of range", func(f *Fixture) { f.Surface.Cells = []Cell{{X: 2, Y: 0}} }},
	}

	base := valid()
	require.NoError(t, base.Validate())
	base.Active = []string{"alias"}
	require.NoError(t, base.Validate(), "aliases count as installed")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid()
			tt.mutate(&f)
			assert.ErrorIs(t, f.Validate(), ErrInvalid)
		})
	}
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(yamlFixture), FormatYAML)
	require.NoError(t, err)

	h, grid, err := f.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, h.ActiveIdentifiers())
	assert.Nil(t, h.Activate("a"), "banner capacity is zero")

	w, hgt := grid.Dimensions()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, hgt)
	assert.Equal(t, []host.Slot{{Kind: types.KindWall, Identifier: "b"}}, grid.Cell(1, 1))
}

func TestBuildRefusedActivation(t *testing.T) {
	f := &Fixture{
		Installed: []types.Entry{{Identifier: "a", Kind: types.KindBanner}},
		Active:    []string{"a"},
		Capacity:  map[string]int{"banner": 0},
	}
	_, _, err := f.Build()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	for name, data := range map[string]string{
		"session.yaml": yamlFixture,
		"session.yml":  yamlFixture,
		"session.toml": tomlFixture,
		"session.json": jsonFixture,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		f, err := Load(path)
		require.NoError(t, err, name)
		assert.Len(t, f.Installed, 3, name)
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "session.ini"))
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	f := Demo()
	require.NotEmpty(t, f.Installed)

	h, grid, err := f.Build()
	require.NoError(t, err)
	assert.NotEmpty(t, h.ActiveIdentifiers())

	w, hgt := grid.Dimensions()
	assert.Positive(t, w*hgt)
}
