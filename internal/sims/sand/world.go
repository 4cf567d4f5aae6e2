package sand

import (
	"sand-ca/internal/core"
	"sand-ca/internal/material"
)

// World stores the full state of the falling-sand simulation.
type World struct {
	cfg Config

	w, h int

	grid    *Grid
	display *core.ByteGrid
	rng     *core.RNG
}

// New returns a falling-sand world with the provided dimensions using
// defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		grid:    NewGrid(cfg.Width, cfg.Height),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		rng:     core.NewRNG(cfg.Seed),
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer of palette indices.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Grid exposes the cell grid for tests and headless drivers.
func (w *World) Grid() *Grid { return w.grid }

// Census counts particles per material across the grid.
func (w *World) Census() []int { return w.grid.Census() }

// Reset clears the world to all-empty and reseeds the generator. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)
	w.grid.Clear()
	w.refreshDisplay()
}

// Step advances the grid by one discrete time step. Rows are visited bottom
// to top so a particle that falls is not re-examined in the same step, and
// columns are split into two parity passes scanned in opposite directions to
// avoid a horizontal drift. Which parity goes first is rerolled each step.
func (w *World) Step() {
	evenFirst := w.rng.Bool()
	for pass := 0; pass < 2; pass++ {
		even := evenFirst == (pass == 0)
		if even {
			for y := w.h - 1; y >= 0; y-- {
				for x := w.w - 1; x >= 0; x-- {
					if x%2 == 0 {
						w.updateCell(x, y)
					}
				}
			}
			continue
		}
		for y := w.h - 1; y >= 0; y-- {
			for x := 0; x < w.w; x++ {
				if x%2 == 1 {
					w.updateCell(x, y)
				}
			}
		}
	}
	w.grid.clearMoved()
	w.refreshDisplay()
}

// newCell builds a fresh particle of the given material, rolling its shade
// and initial spread direction from the world generator.
func (w *World) newCell(m material.Material) Cell {
	d := material.Describe(m)
	c := Cell{Mat: m, TTL: d.Lifetime}
	if d.Shades > 1 {
		c.Shade = w.rng.Uint8n(d.Shades)
	}
	if d.Mobility == material.Liquid || d.Mobility == material.Gas {
		if w.rng.Bool() {
			c.Bias = 1
		} else {
			c.Bias = -1
		}
	}
	return c
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
