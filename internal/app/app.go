//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sand-ca/internal/core"
	"sand-ca/internal/material"
	"sand-ca/internal/render"
	"sand-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface. Per frame it
// decodes pointer state into paint calls, advances the simulation by one
// step, and blits the settled grid.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	selected material.Material
	radius   int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size().W, sim.Size().H),
		hud:      ui.NewHUD(sim, scale),
		palette:  material.Palette(),
		scale:    scale,
		seed:     seed,
		selected: material.Sand,
		radius:   3,
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input, paints, and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.handleSelection()
	g.handleBrush()
	g.hud.Update()

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleSelection() {
	keys := []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7,
	}
	selectable := material.Selectable()
	for i, key := range keys {
		if i < len(selectable) && inpututil.IsKeyJustPressed(key) {
			g.selected = selectable[i]
		}
	}

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		g.radius += int(wheelY)
		if g.radius < 1 {
			g.radius = 1
		}
	}
}

// handleBrush translates the pointer into paint calls. Painting happens
// before the step so a frame's input is visible in that frame's state.
func (g *Game) handleBrush() {
	painter, ok := g.sim.(core.Painter)
	if !ok {
		return
	}
	gx, gy := g.cursorCell()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		painter.ApplyDraw(gx, gy, g.radius, uint8(g.selected))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		painter.ApplyErase(gx, gy, g.radius)
	}
}

func (g *Game) cursorCell() (int, int) {
	mx, my := ebiten.CursorPosition()
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	return mx / scale, my / scale
}

// Draw renders the current simulation state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	gx, gy := g.cursorCell()
	g.hud.Draw(screen, g.selected, g.radius, gx, gy)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
