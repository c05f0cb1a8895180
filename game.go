package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
	"ebiten-dungeon/render"
	"ebiten-dungeon/screens"
	"ebiten-dungeon/sound"
	"ebiten-dungeon/spawners"
	"ebiten-dungeon/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg     *config.GameConfig
	stack   *screens.ScreenStack
	audio   *sound.AudioSystem
	session *screens.GameScreen
	next    *screens.GameScreen // Prepared session used by the next "New Game"
}

// NewGame builds the first session up front so that broken content fails
// before the window opens
func NewGame(cfg *config.GameConfig) (*Game, error) {
	g := &Game{
		cfg:   cfg,
		stack: screens.NewScreenStack(),
		audio: sound.NewAudioSystem(cfg.Audio),
	}

	next, err := g.newSession()
	if err != nil {
		return nil, err
	}
	g.next = next
	g.stack.Push(screens.NewStartScreen("EBITEN DUNGEON", g.audio))
	return g, nil
}

// newSession loads the level and wires every system into a fresh world
func (g *Game) newSession() (*screens.GameScreen, error) {
	cfg := g.cfg
	world := ecs.NewWorld()

	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	templates := data.NewEntityTemplateManager()
	if err := templates.LoadTemplatesFromDirectory(cfg.Templates); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	level, err := data.LoadLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	messages := systems.NewMessageLog()
	messages.Initialize(world)
	g.audio.Initialize(world)

	spawner := spawners.NewEntitySpawner(world, templates, registry, rng)
	spawner.Debug = cfg.Debug
	if err := spawner.SpawnLevel(level); err != nil {
		return nil, fmt.Errorf("spawn level %q: %w", level.Name, err)
	}
	player, err := ecs.Player(world)
	if err != nil {
		return nil, err
	}
	if err := components.ApplyOverrides(player, cfg.Overrides); err != nil {
		return nil, fmt.Errorf("player overrides: %w", err)
	}

	bindings := systems.DefaultKeyBindings()
	for action, keys := range cfg.KeyBindings {
		bindings[systems.Action(action)] = keys
	}
	pipeline := systems.NewPipeline(bindings, rng, config.WindowWidth, config.GameScreenHeight*config.TileSize)
	if rows := len(level.Tiles); rows > 0 {
		pipeline.Camera.SetBounds(float64(len(level.Tiles[0])*level.TileSize), float64(rows*level.TileSize))
	}
	renderer := render.NewRenderSystem(render.NewSheetCache(registry), pipeline.Camera, messages)

	pipeline.Register(world)
	world.AddSystem(renderer)

	loop := ecs.NewLoop(world, func(player *ecs.Entity) {
		if debug, ok := ecs.Get[*components.DebugComponent](player); ok && debug.Enabled {
			debug.Fields = components.DescribeEntity(player)
		}
	})

	messages.Add(fmt.Sprintf("You enter %s.", level.Name))
	logger.Log.WithFields(logrus.Fields{
		"level":    level.Name,
		"seed":     seed,
		"entities": len(world.GetAllEntities()),
	}).Info("session ready")

	return screens.NewGameScreen(world, loop, pipeline.Input, renderer, pipeline.Death, messages), nil
}

// startSession replaces whatever is on the stack with a running session
func (g *Game) startSession() error {
	if g.session != nil {
		g.session.Stop()
	}
	session := g.next
	g.next = nil
	if session == nil {
		var err error
		if session, err = g.newSession(); err != nil {
			return err
		}
	}
	for g.stack.Len() > 0 {
		g.stack.Pop()
	}
	g.session = session
	g.stack.Push(session)
	return nil
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.stack.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		return g.startSession()
	case errors.Is(err, screens.ErrQuit):
		if g.session != nil {
			g.session.Stop()
		}
		g.audio.Close()
		return ebiten.Termination
	default:
		return err
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
