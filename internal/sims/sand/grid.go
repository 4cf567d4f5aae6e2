package sand

import (
	"fmt"

	"sand-ca/internal/material"
)

// Grid owns the dense width×height cell array. All movement is expressed as
// swaps between in-bounds cells, so particles are never duplicated or lost by
// the update engine; only painting and rule-defined reactions create or
// destroy them.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates an all-empty grid. Non-positive dimensions are a caller
// contract violation and panic.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("sand: grid dimensions must be positive, got %dx%d", w, h))
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (int, int) { return g.w, g.h }

// InBounds reports whether (x, y) addresses a real cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

// Get returns the cell at (x, y). Out-of-bounds reads return the boundary
// cell, which behaves as immovable and never matches a swap rule.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return boundaryCell
	}
	return g.cells[g.index(x, y)]
}

// Set writes the cell at (x, y). Out-of-bounds writes are silently ignored;
// painting near an edge must never fault.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = c
}

// Swap exchanges the contents of two in-bounds cells. The particle arriving
// at the destination is marked as having acted this step; whatever lands back
// at the source keeps its turn.
func (g *Grid) Swap(ax, ay, bx, by int) {
	if !g.InBounds(ax, ay) || !g.InBounds(bx, by) {
		return
	}
	i, j := g.index(ax, ay), g.index(bx, by)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	g.cells[i].moved = false
	g.cells[j].moved = true
}

// Census counts cells per material, Air included.
func (g *Grid) Census() []int {
	counts := make([]int, material.Count)
	for i := range g.cells {
		counts[g.cells[i].Mat]++
	}
	return counts
}

// Clear resets every cell to empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

func (g *Grid) clearMoved() {
	for i := range g.cells {
		g.cells[i].moved = false
	}
}
