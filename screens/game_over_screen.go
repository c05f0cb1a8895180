package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen is shown over the play field once the player has died
type GameOverScreen struct {
	*ModalScreen
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen() *GameOverScreen {
	return &GameOverScreen{
		ModalScreen: NewModalScreen("GAME OVER", "You have fallen.\n\nEnter: try again\nEscape: quit", 180, 90),
	}
}

// Update handles input for the game over screen
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}
