package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
	"ebiten-dungeon/spawners"
	"ebiten-dungeon/systems"
)

// Messages shown in the strip under the play field
const visibleMessages = 3

var (
	backgroundColor = color.RGBA{12, 10, 16, 255}
	panelColor      = color.RGBA{24, 22, 30, 255}
	healthColor     = color.RGBA{200, 0, 0, 255}
	healthBackColor = color.RGBA{80, 0, 0, 255}
	itemTint        = color.RGBA{230, 200, 60, 255}
)

// drawable is one sprite queued for the current frame
type drawable struct {
	layer   int
	order   int
	x, y    float64
	w, h    float64
	sprite  components.SpriteRef
	tiled   bool
	flipped bool
	tint    color.RGBA
}

// RenderSystem draws positioned sprites in layer order, then the HUD
type RenderSystem struct {
	ecs.BaseSystem
	sheets   *SheetCache
	camera   *systems.CameraSystem
	messages *systems.MessageLog
	queue    []drawable

	playerHealth, playerMaxHealth int
	playerItems                   int
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(sheets *SheetCache, camera *systems.CameraSystem, messages *systems.MessageLog) *RenderSystem {
	return &RenderSystem{
		sheets:   sheets,
		camera:   camera,
		messages: messages,
	}
}

// Preload decodes the sheet images
func (s *RenderSystem) Preload(world *ecs.World) error {
	n := s.sheets.Load()
	logger.System("render").WithField("sheets", n).Info("sheets loaded")
	return nil
}

// Update rebuilds the draw queue from the world
func (s *RenderSystem) Update(dt float64, world *ecs.World) {
	s.queue = s.queue[:0]

	order := 0
	for _, entity := range world.EntitiesWithAll(components.PositionID, components.RenderID) {
		pos, _ := ecs.Get[*components.PositionComponent](entity)
		render, _ := ecs.Get[*components.RenderComponent](entity)
		if !s.visible(pos.X, pos.Y, render.Width, render.Height) {
			continue
		}

		layer := 0
		if l, ok := ecs.Get[*components.LayerComponent](entity); ok {
			layer = l.Index
		}
		s.queue = append(s.queue, drawable{
			layer: layer, order: order,
			x: pos.X, y: pos.Y, w: render.Width, h: render.Height,
			sprite: render.Sprite, tiled: render.Tiled, flipped: render.Flipped, tint: render.Tint,
		})
		order++
	}

	if ground, ok := world.EntityByName(systems.WorldInventoryName); ok {
		if inv, ok := ecs.Get[*components.InventoryComponent](ground); ok {
			for _, item := range inv.Items {
				if !item.Dropped {
					continue
				}
				size := frameSize(item.Icon)
				w, h := float64(size.X), float64(size.Y)
				if w == 0 || h == 0 {
					w, h = config.TileSize/2, config.TileSize/2
				}
				if !s.visible(item.DropPosition.X, item.DropPosition.Y, w, h) {
					continue
				}
				s.queue = append(s.queue, drawable{
					layer: spawners.LayerItems, order: order,
					x: item.DropPosition.X, y: item.DropPosition.Y, w: w, h: h,
					sprite: item.Icon, tint: itemTint,
				})
				order++
			}
		}
	}

	sort.SliceStable(s.queue, func(i, j int) bool {
		if s.queue[i].layer != s.queue[j].layer {
			return s.queue[i].layer < s.queue[j].layer
		}
		return s.queue[i].order < s.queue[j].order
	})

	s.playerHealth, s.playerMaxHealth, s.playerItems = 0, 0, 0
	if player, err := ecs.Player(world); err == nil {
		if combat, ok := ecs.Get[*components.CombatComponent](player); ok {
			s.playerHealth, s.playerMaxHealth = combat.Health, combat.MaxHealth
		}
		if inv, ok := ecs.Get[*components.InventoryComponent](player); ok {
			s.playerItems = inv.Size()
		}
	}
}

func (s *RenderSystem) visible(x, y, w, h float64) bool {
	if s.camera == nil {
		return true
	}
	return s.camera.IsVisible(x, y, w, h)
}

// Draw paints the queued sprites and the HUD
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, d := range s.queue {
		x, y := d.x, d.y
		if s.camera != nil {
			x, y = s.camera.WorldToScreen(x, y)
		}
		s.drawSprite(screen, d, x, y)
	}

	s.drawStats(screen)
	s.drawMessagesPanel(screen)
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, d drawable, x, y float64) {
	img := s.sheets.SubImage(d.sprite)
	if img == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(d.w), float32(d.h), d.tint, false)
		return
	}

	src := img.Bounds()
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if !d.tiled || sw >= d.w && sh >= d.h {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(d.w/sw, d.h/sh)
		if d.flipped {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(d.w, 0)
		}
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
		return
	}

	// Tiled sprites repeat the frame at its native size across the box
	for ty := 0.0; ty < d.h; ty += sh {
		for tx := 0.0; tx < d.w; tx += sw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x+tx, y+ty)
			screen.DrawImage(img, op)
		}
	}
}

// drawStats draws the player's health bar and item count
func (s *RenderSystem) drawStats(screen *ebiten.Image) {
	if s.playerMaxHealth <= 0 {
		return
	}
	const barWidth = 60
	filled := barWidth * float32(s.playerHealth) / float32(s.playerMaxHealth)
	vector.DrawFilledRect(screen, 4, 4, barWidth, 6, healthBackColor, false)
	vector.DrawFilledRect(screen, 4, 4, filled, 6, healthColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d/%d  items %d", s.playerHealth, s.playerMaxHealth, s.playerItems), 68, 0)
}

// drawMessagesPanel draws the newest messages under the play field
func (s *RenderSystem) drawMessagesPanel(screen *ebiten.Image) {
	top := float32(config.GameScreenHeight * config.TileSize)
	vector.DrawFilledRect(screen, 0, top, config.WindowWidth, config.MessagePanelHeight*config.TileSize, panelColor, false)
	if s.messages == nil {
		return
	}

	for i, msg := range s.messages.RecentMessages(visibleMessages) {
		y := int(top) + 2 + i*config.TileSize
		vector.DrawFilledRect(screen, 4, float32(y+4), 6, 6, msg.Color(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 14, y)
	}
}
