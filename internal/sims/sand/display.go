package sand

import (
	"image/color"

	"sand-ca/internal/material"
)

// Palette exposes the color table matching the display buffer values.
func (w *World) Palette() []color.RGBA {
	return material.Palette()
}

// displayValue maps a cell onto its palette index. Expiring materials fade
// along their lifetime ramp; everything else keeps the shade rolled at
// creation.
func displayValue(c Cell) uint8 {
	d := material.Describe(c.Mat)
	if d.Lifetime > 0 {
		return material.DisplayIndex(c.Mat, material.FadeShade(c.TTL, d.Lifetime))
	}
	return material.DisplayIndex(c.Mat, c.Shade)
}

func (w *World) refreshDisplay() {
	cells := w.display.Cells()
	for i := range w.grid.cells {
		cells[i] = displayValue(w.grid.cells[i])
	}
}
