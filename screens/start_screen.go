package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/logger"
	"ebiten-dungeon/sound"
)

const optionSpacing = 18

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	title          string
	selectedOption int
	options        []string
	markerColor    color.Color
	audioSystem    *sound.AudioSystem
}

// NewStartScreen creates a new start screen. audioSystem may be nil.
func NewStartScreen(title string, audioSystem *sound.AudioSystem) *StartScreen {
	return &StartScreen{
		BaseScreen:  NewBaseScreen(),
		title:       title,
		options:     []string{"New Game", "Quit"},
		markerColor: color.RGBA{255, 230, 150, 255}, // Gold
		audioSystem: audioSystem,
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	if s.audioSystem != nil && !s.audioSystem.IsBGMPlaying() {
		if err := s.audioSystem.PlayBGM(); err != nil {
			logger.System("audio").WithError(err).Warn("background music disabled")
			s.audioSystem = nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch s.selectedOption {
		case 0:
			return ErrNewGame
		default:
			return ErrQuit
		}
	}
	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	centerX, centerY := bounds.Dx()/2, bounds.Dy()/2

	ebitenutil.DebugPrintAt(screen, s.title, centerX-len(s.title)*3, centerY-3*optionSpacing)

	startY := centerY - (len(s.options)*optionSpacing)/2
	for i, option := range s.options {
		y := startY + i*optionSpacing
		x := centerX - (len(option)*6)/2
		if i == s.selectedOption {
			vector.DrawFilledRect(screen, float32(x-12), float32(y+5), 6, 6, s.markerColor, false)
		}
		ebitenutil.DebugPrintAt(screen, option, x, y)
	}
}
