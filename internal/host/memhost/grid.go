package memhost

import (
	"sync"

	"github.com/GriffinCanCode/sceneryloader/internal/host"
)

// Grid is a rectangular placed-scenery surface
type Grid struct {
	mu     sync.RWMutex
	width  int
	height int
	cells  [][]host.Slot
	reads  int
}

// NewGrid creates an empty grid
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([][]host.Slot, width*height),
	}
}

// Dimensions returns the grid size
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

// Cell returns a copy of the slots at (x, y); out of range cells are empty
func (g *Grid) Cell(x, y int) []host.Slot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reads++
	if !g.inRange(x, y) {
		return nil
	}
	return append([]host.Slot(nil), g.cells[y*g.width+x]...)
}

// Place adds slots to the cell at (x, y) and reports whether the cell exists
func (g *Grid) Place(x, y int, slots ...host.Slot) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(x, y) {
		return false
	}
	g.cells[y*g.width+x] = append(g.cells[y*g.width+x], slots...)
	return true
}

// Clear empties the cell at (x, y)
func (g *Grid) Clear(x, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inRange(x, y) {
		g.cells[y*g.width+x] = nil
	}
}

// Reads returns how many cell reads have been served
func (g *Grid) Reads() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.reads
}

func (g *Grid) inRange(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}
