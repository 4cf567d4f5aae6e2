package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{0, 1, 9}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	if buf[4] != 10 || buf[5] != 20 || buf[6] != 30 || buf[7] != 255 {
		t.Fatalf("cell 1 rendered as %v", buf[4:8])
	}
	// Indices past the palette clamp to the last entry.
	if buf[8] != 10 || buf[11] != 255 {
		t.Fatalf("out-of-palette cell rendered as %v", buf[8:12])
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{3, 7}
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	fillPaletteRGBA(buf, cells, nil)

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %d", i, b)
		}
	}
}
