package sand

import "sand-ca/internal/material"

var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// updateCell applies the movement rule for the particle at (x, y), if any.
// Particles that already acted this step are skipped; that is the invariant
// preventing a fallen particle from being re-processed when the scan reaches
// the row it landed in.
func (w *World) updateCell(x, y int) {
	c := w.grid.Get(x, y)
	if c.moved || c.Empty() {
		return
	}
	switch material.Describe(c.Mat).Mobility {
	case material.Powder:
		w.fall(x, y, 1)
	case material.Liquid:
		if !w.fall(x, y, 1) {
			w.spreadHorizontal(x, y)
		}
	case material.Gas:
		w.updateGas(x, y)
	default:
		if c.Mat == material.Fire {
			w.updateFire(x, y)
		}
	}
}

// tryMove swaps the particle at the source into the target cell when the
// target holds a strictly less dense material. Out-of-bounds targets read as
// the boundary cell and never pass the density check.
func (w *World) tryMove(sx, sy, tx, ty int) bool {
	mover := w.grid.Get(sx, sy)
	target := w.grid.Get(tx, ty)
	if material.Describe(target.Mat).Density >= material.Describe(mover.Mat).Density {
		return false
	}
	w.grid.Swap(sx, sy, tx, ty)
	return true
}

// fall attempts a one-cell move straight along dy (+1 down for powders and
// liquids, -1 up for gases), then the two diagonals in random order.
func (w *World) fall(x, y, dy int) bool {
	if w.tryMove(x, y, x, y+dy) {
		return true
	}
	dx := 1
	if w.rng.Bool() {
		dx = -1
	}
	if w.tryMove(x, y, x+dx, y+dy) {
		return true
	}
	return w.tryMove(x, y, x-dx, y+dy)
}

// spreadHorizontal moves one cell sideways, preferring the particle's last
// direction. When the preferred side is blocked the bias flips before the
// opposite side is tried, so a fully blocked particle varies its next
// attempt.
func (w *World) spreadHorizontal(x, y int) bool {
	c := w.grid.Get(x, y)
	dir := int(c.Bias)
	if dir == 0 {
		dir = 1
	}
	if w.tryMove(x, y, x+dir, y) {
		return true
	}
	c.Bias = int8(-dir)
	w.grid.Set(x, y, c)
	return w.tryMove(x, y, x-dir, y)
}

// updateGas ages the particle, replaces it when its lifetime runs out, and
// otherwise rises like an inverted powder before spreading sideways.
func (w *World) updateGas(x, y int) {
	c := w.grid.Get(x, y)
	if c.TTL == 0 {
		repl := Cell{}
		if c.Mat == material.Steam && w.rng.Chance(w.cfg.Params.SteamCondenseChance) {
			repl = w.newCell(material.Water)
		}
		w.grid.Set(x, y, repl)
		return
	}
	c.TTL--
	w.grid.Set(x, y, c)

	if w.fall(x, y, -1) {
		return
	}
	w.spreadHorizontal(x, y)
}

// updateFire handles the fire interaction rule. Water contact beats
// everything: the fire cell turns to steam. Otherwise, with a small per-step
// chance the fire spreads copies of itself into flammable neighbors and then
// burns out, leaving smoke or nothing.
func (w *World) updateFire(x, y int) {
	spread := w.rng.Chance(w.cfg.Params.FireSpreadChance)
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		n := w.grid.Get(nx, ny)
		if n.Mat == material.Water {
			w.grid.Set(x, y, w.newCell(material.Steam))
			return
		}
		if spread && material.Describe(n.Mat).Flammable {
			f := w.newCell(material.Fire)
			f.moved = true
			w.grid.Set(nx, ny, f)
		}
	}
	if !spread {
		return
	}
	if w.rng.Chance(w.cfg.Params.FireSmokeChance) {
		w.grid.Set(x, y, w.newCell(material.Smoke))
	} else {
		w.grid.Set(x, y, Cell{})
	}
}
