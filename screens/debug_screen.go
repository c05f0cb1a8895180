package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/systems"
)

const (
	debugLineHeight = 14
	debugMessages   = 4
)

// DebugScreen shows the player's component snapshot and the latest
// messages. The game keeps running underneath.
type DebugScreen struct {
	*BaseScreen
	world        *ecs.World
	messages     *systems.MessageLog
	scrollOffset int
	background   color.Color
	border       color.Color
}

// NewDebugScreen creates a new debug screen
func NewDebugScreen(world *ecs.World, messages *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(),
		world:      world,
		messages:   messages,
		background: color.RGBA{0, 0, 0, 220},
		border:     color.White,
	}
}

// Update handles scrolling; Escape closes the overlay
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) && s.scrollOffset < len(s.fields())-1 {
		s.scrollOffset++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// fields returns the snapshot filled in by the loop's debug hook
func (s *DebugScreen) fields() []components.Field {
	player, err := ecs.Player(s.world)
	if err != nil {
		return nil
	}
	debug, ok := ecs.Get[*components.DebugComponent](player)
	if !ok || !debug.Enabled {
		return nil
	}
	return debug.Fields
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width, height := bounds.Dx()-16, bounds.Dy()-16
	vector.DrawFilledRect(screen, 8, 8, float32(width), float32(height), s.background, false)
	vector.StrokeRect(screen, 8, 8, float32(width), float32(height), 1, s.border, false)

	ebitenutil.DebugPrintAt(screen, "DEBUG  PgUp/PgDn: scroll  Esc: close", 14, 10)

	top := 10 + debugLineHeight
	bottom := 8 + height - debugMessages*debugLineHeight
	fields := s.fields()
	if len(fields) == 0 {
		ebitenutil.DebugPrintAt(screen, "debug disabled for player (run with -debug)", 14, top)
	}
	maxLines := (bottom - top) / debugLineHeight
	for i := 0; i < maxLines && s.scrollOffset+i < len(fields); i++ {
		f := fields[s.scrollOffset+i]
		line := fmt.Sprintf("%s.%s = %s", f.Component, f.Name, f.Value)
		ebitenutil.DebugPrintAt(screen, line, 14, top+i*debugLineHeight)
	}

	if s.messages == nil {
		return
	}
	for i, msg := range s.messages.RecentMessages(debugMessages) {
		y := bottom + i*debugLineHeight
		vector.DrawFilledRect(screen, 14, float32(y+4), 6, 6, msg.Color(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 24, y)
	}
}
