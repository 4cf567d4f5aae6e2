//go:build !ebiten

package ui

import (
	"sand-ca/internal/core"
	"sand-ca/internal/material"
)

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD(core.Sim, int) *HUD { return &HUD{} }

// Update is a no-op in headless builds.
func (h *HUD) Update() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(_ any, _ material.Material, _, _, _ int) {}
