package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-dungeon/config"
)

// BaseScreen provides the fixed logical layout shared by every screen
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout returns the logical screen size regardless of the window size
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
