//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"sand-ca/internal/core"
	"sand-ca/internal/material"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	swatchSize    = 15
	swatchSpacing = 3
)

// HUD draws the material selector, the brush cursor ring, and a status line
// on top of the simulation view.
type HUD struct {
	sim   core.Sim
	scale int

	pixel      *ebiten.Image
	showParams bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim, scale int) *HUD {
	h := &HUD{sim: sim, scale: scale}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update handles HUD-local input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.showParams = !h.showParams
	}
}

// Draw paints the selector swatches, brush ring, and status text.
func (h *HUD) Draw(screen *ebiten.Image, selected material.Material, radius, cursorX, cursorY int) {
	h.drawSwatches(screen, selected)
	h.drawCursorRing(screen, cursorX, cursorY, radius)
	h.drawStatus(screen, selected, radius)
	if h.showParams {
		h.drawParameters(screen)
	}
}

func (h *HUD) drawSwatches(screen *ebiten.Image, selected material.Material) {
	palette := material.Palette()
	x := swatchSpacing
	y := swatchSpacing
	for _, m := range material.Selectable() {
		border := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		size := swatchSize
		sx, sy := x, y
		if m == selected {
			border = color.RGBA{R: 0xff, G: 0xea, B: 0x00, A: 0xff}
			size += 2
			sx--
			sy--
		}
		h.fillRect(screen, sx, sy, size, size, border)
		fill := palette[material.DisplayIndex(m, 0)]
		h.fillRect(screen, sx+1, sy+1, size-2, size-2, fill)
		y += swatchSize + swatchSpacing
	}
}

func (h *HUD) drawCursorRing(screen *ebiten.Image, cx, cy, radius int) {
	scale := h.scale
	if scale <= 0 {
		scale = 1
	}
	r := float64(radius * scale)
	px := float64(cx*scale) + float64(scale)/2
	py := float64(cy*scale) + float64(scale)/2
	ringColor := color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}

	const segments = 72
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		h.drawPoint(screen, px+r*math.Cos(theta), py+r*math.Sin(theta), 1, ringColor)
	}
}

func (h *HUD) drawStatus(screen *ebiten.Image, selected material.Material, radius int) {
	status := fmt.Sprintf("%s  r=%d  %.1f tps", selected, radius, ebiten.ActualTPS())
	if censuser, ok := h.sim.(core.Censuser); ok {
		particles := 0
		counts := censuser.Census()
		for m, n := range counts {
			if material.Material(m) != material.Air {
				particles += n
			}
		}
		status += fmt.Sprintf("  particles=%d", particles)
	}
	size := h.sim.Size()
	y := size.H*h.scale - 6
	text.Draw(screen, status, basicfont.Face7x13, swatchSpacing, y, color.White)
}

func (h *HUD) drawParameters(screen *ebiten.Image) {
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	y := 16
	x := swatchSpacing*3 + swatchSize
	for _, group := range provider.Parameters().Groups {
		text.Draw(screen, group.Name, basicfont.Face7x13, x, y, color.RGBA{R: 0xff, G: 0xea, B: 0x00, A: 0xff})
		y += 14
		for _, param := range group.Params {
			line := fmt.Sprintf("%s: %s", param.Label, param.Value)
			text.Draw(screen, line, basicfont.Face7x13, x+8, y, color.White)
			y += 14
		}
		y += 6
	}
}

func (h *HUD) fillRect(screen *ebiten.Image, x, y, w, rh int, col color.RGBA) {
	if h.pixel == nil || w <= 0 || rh <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(rh))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(h.pixel, op)
}

func (h *HUD) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if h.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(h.pixel, op)
}
