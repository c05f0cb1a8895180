// Package spawners turns level and template data into entities.
package spawners

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/sirupsen/logrus"

	"ebiten-dungeon/assets"
	"ebiten-dungeon/components"
	"ebiten-dungeon/data"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
)

// Entity tags set by the spawner
const (
	TagEnemy = "enemy"
	TagTile  = "tile"
	TagProp  = "prop"
	TagDoor  = "door"
)

// Draw layers for spawned characters; tiles and props carry their own
const (
	LayerItems      = 3
	LayerCharacters = 4
)

// Fallback fills used when a sheet image is missing
var (
	floorTint = color.RGBA{40, 36, 48, 255}
	wallTint  = color.RGBA{96, 92, 108, 255}
	doorTint  = color.RGBA{120, 80, 40, 255}
	propTint  = color.RGBA{240, 160, 40, 255}
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world           *ecs.World
	templateManager *data.EntityTemplateManager
	registry        *assets.Registry
	items           *ItemSpawner
	rng             *rand.Rand
	log             *logrus.Entry

	// Debug attaches an enabled Debug component to the player
	Debug bool
}

// NewEntitySpawner creates a new entity spawner. rng drives loot rolls.
func NewEntitySpawner(world *ecs.World, templateManager *data.EntityTemplateManager, registry *assets.Registry, rng *rand.Rand) *EntitySpawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &EntitySpawner{
		world:           world,
		templateManager: templateManager,
		registry:        registry,
		items:           NewItemSpawner(world, templateManager, registry),
		rng:             rng,
		log:             logger.System("spawner"),
	}
}

// Items returns the item spawner sharing this spawner's world
func (s *EntitySpawner) Items() *ItemSpawner {
	return s.items
}

// SpawnLevel builds every entity of level. The world inventory is created
// first, then tiles, props, ground items, enemies and finally the player.
func (s *EntitySpawner) SpawnLevel(level *data.Level) error {
	s.items.CreateWorldInventory()

	for row, cells := range level.Tiles {
		for col, cell := range cells {
			if cell == nil {
				continue
			}
			if _, err := s.CreateTile(level, row, col, cell); err != nil {
				return err
			}
		}
	}

	for _, prop := range level.Props {
		if _, err := s.CreateProp(prop); err != nil {
			return err
		}
	}

	for _, spawn := range level.Items {
		if _, err := s.items.PlaceItem(spawn.Item, components.Vec2{X: spawn.Position.X, Y: spawn.Position.Y}); err != nil {
			return err
		}
	}

	for _, spawn := range level.Enemies {
		if _, err := s.CreateEnemy(spawn); err != nil {
			return err
		}
	}

	if level.Player == nil {
		return ecs.ErrNoPlayer
	}
	if _, err := s.CreatePlayer(*level.Player); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"level":    level.Name,
		"entities": len(s.world.GetAllEntities()),
	}).Info("level spawned")
	return nil
}

// CreatePlayer creates the player entity
func (s *EntitySpawner) CreatePlayer(spawn data.PlayerSpawn) (*ecs.Entity, error) {
	templateID := spawn.Template
	if templateID == "" {
		templateID = "hero"
	}
	template, exists := s.templateManager.GetTemplate(templateID)
	if !exists {
		return nil, fmt.Errorf("no template found for player '%s'", templateID)
	}

	player, err := s.createCharacter(template, spawn.Position)
	if err != nil {
		return nil, err
	}
	player.AddTag(ecs.PlayerTag)
	player.AddComponent(&components.PlayerComponent{})
	player.AddComponent(&components.DebugComponent{Enabled: s.Debug})

	inventory, _ := ecs.Get[*components.InventoryComponent](player)
	if err := s.items.FillInventory(inventory, spawn.Items); err != nil {
		return nil, fmt.Errorf("player inventory: %w", err)
	}

	s.log.WithFields(logrus.Fields{"x": spawn.Position.X, "y": spawn.Position.Y}).Debug("player created")
	return player, nil
}

// CreateEnemy creates an enemy entity from its template
func (s *EntitySpawner) CreateEnemy(spawn data.EnemySpawn) (*ecs.Entity, error) {
	template, exists := s.templateManager.GetTemplate(spawn.Template)
	if !exists {
		return nil, fmt.Errorf("no template found for enemy type '%s'", spawn.Template)
	}

	enemy, err := s.createCharacter(template, spawn.Position)
	if err != nil {
		return nil, err
	}
	enemy.AddTag(TagEnemy)
	enemy.AddComponent(&components.AIComponent{AggroRange: template.AggroRange})

	inventory, _ := ecs.Get[*components.InventoryComponent](enemy)
	items := append([]string{}, spawn.Items...)
	items = append(items, LootTableFromTemplate(template.Loot).Roll(s.rng)...)
	for _, id := range items {
		if !inventory.HasSpace() {
			s.log.WithFields(logrus.Fields{"enemy": template.ID, "item": id}).Warn("enemy inventory full")
			break
		}
		if err := s.items.FillInventory(inventory, []string{id}); err != nil {
			return nil, fmt.Errorf("enemy '%s' inventory: %w", template.ID, err)
		}
	}

	return enemy, nil
}

// createCharacter builds the parts every player and enemy share
func (s *EntitySpawner) createCharacter(template *data.EntityTemplate, at data.Point) (*ecs.Entity, error) {
	animations, err := s.animationTable(template)
	if err != nil {
		return nil, err
	}

	entity := ecs.NewEntity(template.Name)
	for _, tag := range template.Tags {
		entity.AddTag(tag)
	}

	entity.AddComponent(&components.PositionComponent{X: at.X, Y: at.Y})
	entity.AddComponent(&components.MovementComponent{Speed: template.Speed})
	entity.AddComponent(&components.RenderComponent{
		Width:  template.Width,
		Height: template.Height,
		Tint:   data.ParseHexColor(template.Color),
	})
	entity.AddComponent(&components.LayerComponent{Index: LayerCharacters})
	entity.AddComponent(collisionFromSpec(template.Collision))
	entity.AddComponent(&components.CombatComponent{
		AttackRange: template.AttackRange,
		AttackPower: template.AttackPower,
		Defense:     template.Defense,
		Health:      template.Health,
		MaxHealth:   template.Health,
		Knockback:   template.Knockback,
	})
	entity.AddComponent(components.NewInventoryComponent(template.InventoryCapacity))

	if len(animations) > 0 {
		anim := components.NewAnimationComponent(animations, components.AnimIdle)
		entity.AddComponent(anim)
		if render, ok := ecs.Get[*components.RenderComponent](entity); ok {
			if frame, ok := anim.CurrentFrame(); ok {
				render.Sprite = frame
			}
		}
	}

	s.world.AddEntity(entity)
	return entity, nil
}

// animationTable resolves every frame of the template up front so a
// missing frame fails construction instead of rendering blank
func (s *EntitySpawner) animationTable(template *data.EntityTemplate) (map[string]*components.AnimationDefinition, error) {
	table := make(map[string]*components.AnimationDefinition, len(template.Animations))
	for name, spec := range template.Animations {
		frames, err := s.registry.Frames(template.Sheet, template.Category, spec.Row, spec.First, spec.Count)
		if err != nil {
			return nil, fmt.Errorf("template '%s' animation '%s': %w", template.ID, name, err)
		}
		table[name] = &components.AnimationDefinition{
			Frames: frames,
			Speed:  spec.Speed,
			Loop:   spec.Loop,
		}
	}
	return table, nil
}

func collisionFromSpec(spec data.CollisionSpec) *components.CollisionComponent {
	shape := components.ShapeKind(spec.Shape)
	switch shape {
	case components.ShapeBox, components.ShapeCircle, components.ShapeNone:
	default:
		shape = components.ShapeBox
	}
	return &components.CollisionComponent{
		Shape:  shape,
		Offset: components.Vec2{X: spec.OffsetX, Y: spec.OffsetY},
		Width:  spec.Width,
		Height: spec.Height,
	}
}

// CreateTile creates the background tile at row, col
func (s *EntitySpawner) CreateTile(level *data.Level, row, col int, cell *data.TileCell) (*ecs.Entity, error) {
	sprite, err := s.registry.Frame(cell.Sheet, "", cell.Row, cell.Col)
	if err != nil {
		return nil, fmt.Errorf("tile [%d,%d]: %w", row, col, err)
	}

	tint := floorTint
	switch {
	case cell.Interactable:
		tint = doorTint
	case cell.Collision:
		tint = wallTint
	}

	size := float64(level.TileSize)
	tile := ecs.NewEntity(fmt.Sprintf("tile-%d-%d", row, col))
	tile.AddTag(TagTile)
	tile.AddComponent(&components.PositionComponent{X: float64(col) * size, Y: float64(row) * size})
	tile.AddComponent(&components.RenderComponent{Width: size, Height: size, Sprite: sprite, Tiled: true, Tint: tint})
	tile.AddComponent(&components.SolidComponent{Sprite: sprite})
	tile.AddComponent(&components.LayerComponent{Index: cell.Layer})
	if cell.Collision {
		tile.AddComponent(components.NewBoxCollision())
	}

	if cell.Interactable {
		interactable, err := s.interactableFor(level, row, col)
		if err != nil {
			return nil, err
		}
		tile.AddComponent(interactable)
		tile.AddTag(TagDoor)
	}

	s.world.AddEntity(tile)
	return tile, nil
}

func (s *EntitySpawner) interactableFor(level *data.Level, row, col int) (*components.InteractableComponent, error) {
	door, ok := level.Door(row, col)
	if !ok {
		return &components.InteractableComponent{Effect: components.Effect{Kind: components.EffectUnlock}}, nil
	}
	open, err := s.registry.Frame(door.Open.Sheet, door.Open.Category, door.Open.Row, door.Open.Col)
	if err != nil {
		return nil, fmt.Errorf("door [%d,%d] open sprite: %w", row, col, err)
	}
	return components.NewLockedDoor(door.Key, open), nil
}

// CreateProp creates an animated decoration
func (s *EntitySpawner) CreateProp(spec data.PropSpec) (*ecs.Entity, error) {
	strip := spec.Animation
	frames, err := s.registry.Frames(strip.Sheet, strip.Category, strip.Row, strip.First, strip.Count)
	if err != nil {
		return nil, fmt.Errorf("prop '%s': %w", spec.Name, err)
	}

	const propAnimation = "default"
	anim := components.NewAnimationComponent(map[string]*components.AnimationDefinition{
		propAnimation: {Frames: frames, Speed: strip.Speed, Loop: strip.Loop},
	}, propAnimation)

	prop := ecs.NewEntity(spec.Name)
	prop.AddTag(TagProp)
	prop.AddComponent(&components.PositionComponent{X: spec.Position.X, Y: spec.Position.Y})
	prop.AddComponent(&components.RenderComponent{Width: spec.Width, Height: spec.Height, Sprite: frames[0], Tint: propTint})
	prop.AddComponent(&components.PropComponent{})
	prop.AddComponent(&components.LayerComponent{Index: spec.Layer})
	prop.AddComponent(anim)

	s.world.AddEntity(prop)
	return prop, nil
}
