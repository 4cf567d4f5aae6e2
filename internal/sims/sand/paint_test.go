package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sand-ca/internal/material"
)

func TestDrawDiscShape(t *testing.T) {
	world := NewWithConfig(testConfig(5, 5))
	world.Reset(0)

	world.ApplyDraw(2, 2, 1, uint8(material.Sand))

	// Radius 1 covers the center and its four orthogonal neighbors.
	assert.Equal(t, 5, world.Census()[material.Sand])
	assert.Equal(t, material.Sand, world.grid.Get(2, 2).Mat)
	assert.Equal(t, material.Sand, world.grid.Get(1, 2).Mat)
	assert.Equal(t, material.Air, world.grid.Get(1, 1).Mat, "corner is outside the disc")
}

func TestDrawThenEraseRestoresEmpty(t *testing.T) {
	world := NewWithConfig(testConfig(6, 6))
	world.Reset(0)

	world.ApplyDraw(2, 2, 1, uint8(material.Sand))
	require.Positive(t, world.Census()[material.Sand])

	world.ApplyErase(2, 2, 1)

	counts := world.Census()
	assert.Zero(t, counts[material.Sand])
	assert.Equal(t, 36, counts[material.Air])
}

func TestDrawIsIdempotent(t *testing.T) {
	world := NewWithConfig(testConfig(8, 8))
	world.Reset(0)

	world.ApplyDraw(4, 4, 2, uint8(material.Sand))
	first := world.Census()[material.Sand]
	world.ApplyDraw(4, 4, 2, uint8(material.Sand))

	assert.Equal(t, first, world.Census()[material.Sand])
}

func TestDrawDoesNotOverwriteSolids(t *testing.T) {
	world := NewWithConfig(testConfig(5, 5))
	world.Reset(0)
	world.grid.Set(2, 2, Cell{Mat: material.Stone})

	world.ApplyDraw(2, 2, 0, uint8(material.Sand))

	assert.Equal(t, material.Stone, world.grid.Get(2, 2).Mat)
}

func TestDrawOverwritesWaterWhenConfigured(t *testing.T) {
	world := NewWithConfig(testConfig(5, 5))
	world.Reset(0)
	world.grid.Set(2, 2, world.newCell(material.Water))

	world.ApplyDraw(2, 2, 0, uint8(material.Wood))
	assert.Equal(t, material.Wood, world.grid.Get(2, 2).Mat)

	cfg := testConfig(5, 5)
	cfg.Params.PaintOverwrite = false
	strict := NewWithConfig(cfg)
	strict.Reset(0)
	strict.grid.Set(2, 2, strict.newCell(material.Water))

	strict.ApplyDraw(2, 2, 0, uint8(material.Wood))
	assert.Equal(t, material.Water, strict.grid.Get(2, 2).Mat)
}

func TestPaintBeyondEdgesIsClipped(t *testing.T) {
	world := NewWithConfig(testConfig(6, 6))
	world.Reset(0)

	assert.NotPanics(t, func() {
		world.ApplyDraw(-10, -10, 4, uint8(material.Sand))
		world.ApplyDraw(20, 20, 4, uint8(material.Sand))
		world.ApplyErase(-10, 3, 4)
		world.ApplyErase(3, 40, 4)
	})
	assert.Zero(t, world.Census()[material.Sand], "fully out-of-range discs touch nothing")

	// A disc straddling the edge paints only the in-bounds part.
	world.ApplyDraw(0, 0, 2, uint8(material.Sand))
	counts := world.Census()
	assert.Positive(t, counts[material.Sand])
	assert.Less(t, counts[material.Sand], 13, "clipped disc is smaller than the full one")
}

func TestDrawRejectsInvalidMaterials(t *testing.T) {
	world := NewWithConfig(testConfig(5, 5))
	world.Reset(0)

	world.ApplyDraw(2, 2, 2, 200)
	world.ApplyDraw(2, 2, 2, uint8(material.Air))
	world.ApplyDraw(2, 2, 2, uint8(material.Boundary))

	assert.Equal(t, 25, world.Census()[material.Air])
}

func TestSprayDensityThinsDraw(t *testing.T) {
	cfg := testConfig(32, 32)
	cfg.Params.SprayDensity = 0.125
	world := NewWithConfig(cfg)
	world.Reset(0)

	world.ApplyDraw(16, 16, 10, uint8(material.Sand))

	painted := world.Census()[material.Sand]
	assert.Positive(t, painted)
	assert.Less(t, painted, 150, "sparse spray must fill well under half the disc")
}
