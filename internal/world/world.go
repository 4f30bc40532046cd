// Package world maintains the sparse, windowed grid of track cells
// materialized around the camera during a run.
package world

import (
	"github.com/GauBen/le-pire-cube/internal/worldgen"
)

// Coord addresses a single grid cell.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Cell is one materialized grid cell. Cells are shared by pointer so
// consumption state mutates in place and survives re-materialization.
type Cell struct {
	Kind       worldgen.Kind
	Consumed   bool
	ConsumedAt float64
}

// Walkable reports whether the avatar can stand on the cell. Power-up
// cells count as solid ground even after consumption.
func (c *Cell) Walkable() bool {
	return c.Kind == worldgen.KindWalkable || c.Kind == worldgen.KindPowerUp
}

// Consume marks a power-up cell as eaten at time t. It returns true only
// on the first call for a power-up cell, so a boost is granted once.
func (c *Cell) Consume(t float64) bool {
	if c.Kind != worldgen.KindPowerUp || c.Consumed {
		return false
	}
	c.Consumed = true
	c.ConsumedAt = t
	return true
}

// World is the sparse cell store for one run. Cells exist only inside
// the current [start,end]x[start,end] window; the window advances with
// the camera and never moves backward.
type World struct {
	gen   *worldgen.Generator
	cells map[Coord]*Cell
	start int
	end   int
}

// New creates an empty world backed by the given generator. No cells
// are materialized until the first Materialize call.
func New(gen *worldgen.Generator) *World {
	return &World{
		gen:   gen,
		cells: make(map[Coord]*Cell),
		start: 0,
		end:   -1,
	}
}

// Window returns the current materialized coordinate range. Before the
// first Materialize call end is below start.
func (w *World) Window() (start, end int) {
	return w.start, w.end
}

// Cell returns the materialized cell at (x, y), or nil when the
// coordinate has not been materialized.
func (w *World) Cell(x, y int) *Cell {
	return w.cells[C(x, y)]
}

// Materialize grows the window to cover [start,end] on both axes and
// fills any missing cells from the generator. The trailing edge only
// moves forward: requests behind the current start are clamped, and
// cells left behind an advancing start are evicted. Already
// materialized cells are left untouched.
func (w *World) Materialize(start, end int) {
	if w.end < w.start {
		// First window of the run.
		if end < start {
			return
		}
		w.start, w.end = start, end
		w.fill()
		return
	}

	if start < w.start {
		start = w.start
	}
	if start > w.start {
		w.evictBefore(start)
		w.start = start
	}
	if end > w.end {
		w.end = end
	}
	w.fill()
}

func (w *World) evictBefore(start int) {
	for coord := range w.cells {
		if coord.X < start || coord.Y < start {
			delete(w.cells, coord)
		}
	}
}

func (w *World) fill() {
	for y := w.start; y <= w.end; y++ {
		for x := w.start; x <= w.end; x++ {
			coord := C(x, y)
			if _, ok := w.cells[coord]; ok {
				continue
			}
			w.cells[coord] = &Cell{Kind: w.gen.Classify(x, y)}
		}
	}
}
