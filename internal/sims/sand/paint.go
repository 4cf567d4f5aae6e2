package sand

import "sand-ca/internal/material"

// ApplyDraw fills the inclusive disc around (cx, cy) with fresh particles of
// the given material. Only replaceable cells are written; everything else in
// the disc is left alone. Coordinates outside the grid are clipped, never an
// error. With the default spray density the operation is idempotent until
// the next step.
func (w *World) ApplyDraw(cx, cy, radius int, mat uint8) {
	m := material.Material(mat)
	if !m.Valid() || m == material.Air {
		return
	}
	spray := w.cfg.Params.SprayDensity
	w.forEachDisc(cx, cy, radius, func(x, y int) {
		if !w.replaceable(w.grid.Get(x, y).Mat) {
			return
		}
		if spray < 1 && !w.rng.Chance(spray) {
			return
		}
		w.grid.Set(x, y, w.newCell(m))
	})
	w.refreshDisplay()
}

// ApplyErase clears the inclusive disc around (cx, cy) to empty.
func (w *World) ApplyErase(cx, cy, radius int) {
	w.forEachDisc(cx, cy, radius, func(x, y int) {
		w.grid.Set(x, y, Cell{})
	})
	w.refreshDisplay()
}

// replaceable reports whether drawing may overwrite the given material.
func (w *World) replaceable(m material.Material) bool {
	if m == material.Air {
		return true
	}
	if !w.cfg.Params.PaintOverwrite {
		return false
	}
	return m == material.Smoke || m == material.Water
}

// forEachDisc visits every in-bounds cell within radius (inclusive) of the
// center, clipping the bounding box to the grid.
func (w *World) forEachDisc(cx, cy, radius int, fn func(x, y int)) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		if y < 0 || y >= w.h {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x >= w.w {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			fn(x, y)
		}
	}
}
