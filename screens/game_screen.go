package screens

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-dungeon/ecs"
	"ebiten-dungeon/render"
	"ebiten-dungeon/systems"
)

// GameScreen drives one play session: it feeds keyboard state to the input
// system, ticks the loop once per host frame and draws the world
type GameScreen struct {
	*BaseScreen
	world    *ecs.World
	loop     *ecs.Loop
	input    *systems.InputSystem
	renderer *render.RenderSystem
	death    *systems.DeathSystem
	messages *systems.MessageLog
	overlay  *ScreenStack
	keys     []ebiten.Key
	started  bool
	gameOver bool
}

// NewGameScreen creates a new game screen over an already spawned world
func NewGameScreen(
	world *ecs.World,
	loop *ecs.Loop,
	input *systems.InputSystem,
	renderer *render.RenderSystem,
	death *systems.DeathSystem,
	messages *systems.MessageLog,
) *GameScreen {
	return &GameScreen{
		BaseScreen: NewBaseScreen(),
		world:      world,
		loop:       loop,
		input:      input,
		renderer:   renderer,
		death:      death,
		messages:   messages,
		overlay:    NewScreenStack(),
	}
}

// Update handles game updates
func (s *GameScreen) Update() error {
	if !s.started {
		if err := s.loop.Start(time.Now()); err != nil {
			return err
		}
		s.started = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		if _, open := s.overlay.Peek().(*DebugScreen); open {
			s.overlay.Pop()
		} else {
			s.overlay.Push(NewDebugScreen(s.world, s.messages))
		}
	}
	if err := s.overlay.Update(); err != nil {
		return err
	}

	if !s.gameOver {
		s.forwardKeys()
	}

	if err := s.loop.Frame(time.Now()); err != nil {
		if errors.Is(err, ecs.ErrLoopStopped) {
			return ErrQuit
		}
		return err
	}

	if !s.gameOver && s.death.PlayerDied() {
		s.gameOver = true
		s.input.Blur()
		s.overlay.Push(NewGameOverScreen())
	}
	return nil
}

// forwardKeys translates this frame's key edges into input system events
func (s *GameScreen) forwardKeys() {
	if !ebiten.IsFocused() {
		s.input.Blur()
		return
	}
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, key := range s.keys {
		s.input.KeyDown(key.String())
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, key := range s.keys {
		s.input.KeyUp(key.String())
	}
}

// Stop ends the session's loop
func (s *GameScreen) Stop() {
	s.loop.Stop()
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
	s.overlay.Draw(screen)
}
