package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	background color.Color
	border     color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		border:     color.White,
	}
}

// SetContent replaces the body text
func (s *ModalScreen) SetContent(content string) {
	s.content = content
}

// origin returns the top-left corner that centers the modal on screen
func (s *ModalScreen) origin(screen *ebiten.Image) (int, int) {
	bounds := screen.Bounds()
	return (bounds.Dx() - s.width) / 2, (bounds.Dy() - s.height) / 2
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	x, y := s.origin(screen)
	fx, fy, fw, fh := float32(x), float32(y), float32(s.width), float32(s.height)

	vector.DrawFilledRect(screen, fx, fy, fw, fh, s.background, false)
	vector.StrokeRect(screen, fx, fy, fw, fh, 1, s.border, false)

	titleX := x + (s.width-len(s.title)*6)/2 // Approximate text width
	ebitenutil.DebugPrintAt(screen, s.title, titleX, y+6)
	ebitenutil.DebugPrintAt(screen, s.content, x+8, y+24)
}

// Update closes the modal on Escape
func (s *ModalScreen) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}
