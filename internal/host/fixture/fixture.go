package fixture

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/sceneryloader/internal/host"
	"github.com/GriffinCanCode/sceneryloader/internal/host/memhost"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid fixture")

// Format is a fixture encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

//go:embed demo.yaml
var demo []byte

// Fixture is a serialised game session
type Fixture struct {
	Installed []types.Entry  `json:"installed" yaml:"installed" toml:"installed"`
	Active    []string       `json:"active" yaml:"active" toml:"active"`
	Capacity  map[string]int `json:"capacity" yaml:"capacity" toml:"capacity"`
	Surface   Surface        `json:"surface" yaml:"surface" toml:"surface"`
}

// Surface is the placed-scenery grid
type Surface struct {
	Width  int    `json:"width" yaml:"width" toml:"width"`
	Height int    `json:"height" yaml:"height" toml:"height"`
	Cells  []Cell `json:"cells" yaml:"cells" toml:"cells"`
}

// Cell lists the slots placed on one tile
type Cell struct {
	X     int    `json:"x" yaml:"x" toml:"x"`
	Y     int    `json:"y" yaml:"y" toml:"y"`
	Slots []host.Slot `json:"slots" yaml:"slots" toml:"slots"`
}

// FormatOf picks a format from a file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported fixture extension %q", filepath.Ext(path))
	}
}

// Load reads and validates a fixture file
func Load(path string) (*Fixture, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a fixture
func Parse(data []byte, format Format) (*Fixture, error) {
	var f Fixture

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatJSON:
		err = sonic.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported fixture format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s parse error: %w", strings.ToUpper(string(format)), err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Demo returns the built-in demo session
func Demo() *Fixture {
	f, err := Parse(demo, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("demo fixture: %v", err))
	}
	return f
}

// Validate checks the fixture is self-consistent
func (f *Fixture) Validate() error {
	known := make(map[string]bool)
	for i, e := range f.Installed {
		if e.Identifier == "" {
			return fmt.Errorf("%w: installed[%d] has no identifier", ErrInvalid, i)
		}
		if !e.Kind.Valid() {
			return fmt.Errorf("%w: %s has unknown kind %q", ErrInvalid, e.Identifier, string(e.Kind))
		}
		known[e.Identifier] = true
		for _, alias := range e.Aliases {
			known[alias] = true
		}
	}

	for _, id := range f.Active {
		if !known[id] {
			return fmt.Errorf("%w: active entry %s is not installed", ErrInvalid, id)
		}
	}

	for kind, n := range f.Capacity {
		if !types.Kind(kind).Valid() {
			return fmt.Errorf("%w: capacity for unknown kind %q", ErrInvalid, kind)
		}
		if n < 0 {
			return fmt.Errorf("%w: negative capacity for %s", ErrInvalid, kind)
		}
	}

	s := f.Surface
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: surface is %dx%d", ErrInvalid, s.Width, s.Height)
	}
	for _, c := range s.Cells {
		if c.X < 0 || c.Y < 0 || c.X >= s.Width || c.Y >= s.Height {
			return fmt.Errorf("%w: cell (%d,%d) outside %dx%d surface", ErrInvalid, c.X, c.Y, s.Width, s.Height)
		}
	}
	return nil
}

// Build creates the in-memory host and surface the fixture describes.
// Surface slots may reference identifiers that are not installed; they stand
// for stale placements and are kept as-is.
func (f *Fixture) Build() (*memhost.Host, *memhost.Grid, error) {
	h := memhost.New(f.Installed...)
	for kind, n := range f.Capacity {
		h.WithCapacity(types.Kind(kind), n)
	}

	for _, id := range f.Active {
		if h.Activate(id) == nil {
			return nil, nil, fmt.Errorf("initial activation of %s refused", id)
		}
	}

	grid := memhost.NewGrid(f.Surface.Width, f.Surface.Height)
	for _, c := range f.Surface.Cells {
		grid.Place(c.X, c.Y, c.Slots...)
	}

	return h, grid, nil
}
