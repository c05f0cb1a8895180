package spawners

import (
	"fmt"

	"ebiten-dungeon/assets"
	"ebiten-dungeon/components"
	"ebiten-dungeon/data"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/systems"
)

// WorldInventoryCapacity bounds the number of items lying on the ground
const WorldInventoryCapacity = 256

// ItemSpawner handles the creation of items and the world inventory
type ItemSpawner struct {
	world           *ecs.World
	templateManager *data.EntityTemplateManager
	registry        *assets.Registry
}

// NewItemSpawner creates a new item spawner
func NewItemSpawner(world *ecs.World, templateManager *data.EntityTemplateManager, registry *assets.Registry) *ItemSpawner {
	return &ItemSpawner{
		world:           world,
		templateManager: templateManager,
		registry:        registry,
	}
}

// CreateItem builds an item from its template. Items are plain values held
// by inventories, not entities.
func (s *ItemSpawner) CreateItem(templateID string) (*components.ItemComponent, error) {
	template, exists := s.templateManager.GetItemTemplate(templateID)
	if !exists {
		return nil, fmt.Errorf("no item template found with ID '%s'", templateID)
	}

	icon, err := s.registry.Frame(template.Icon.Sheet, template.Icon.Category, template.Icon.Row, template.Icon.Col)
	if err != nil {
		return nil, fmt.Errorf("item '%s' icon: %w", templateID, err)
	}

	return &components.ItemComponent{
		Name:        template.Name,
		Description: template.Description,
		Icon:        icon,
	}, nil
}

// CreateWorldInventory creates the sentinel entity holding dropped items
func (s *ItemSpawner) CreateWorldInventory() *ecs.Entity {
	if existing, ok := s.world.EntityByName(systems.WorldInventoryName); ok {
		return existing
	}
	sentinel := s.world.CreateEntity(systems.WorldInventoryName)
	sentinel.AddComponent(components.NewInventoryComponent(WorldInventoryCapacity))
	return sentinel
}

// PlaceItem lays a new item on the ground at position
func (s *ItemSpawner) PlaceItem(templateID string, at components.Vec2) (*components.ItemComponent, error) {
	item, err := s.CreateItem(templateID)
	if err != nil {
		return nil, err
	}

	sentinel := s.CreateWorldInventory()
	ground, _ := ecs.Get[*components.InventoryComponent](sentinel)
	if !ground.Add(item) {
		return nil, fmt.Errorf("world inventory full, cannot place '%s'", templateID)
	}
	item.Dropped = true
	item.DropPosition = at
	return item, nil
}

// FillInventory creates every listed item inside inventory
func (s *ItemSpawner) FillInventory(inventory *components.InventoryComponent, templateIDs []string) error {
	for _, id := range templateIDs {
		item, err := s.CreateItem(id)
		if err != nil {
			return err
		}
		if !inventory.Add(item) {
			return fmt.Errorf("inventory full, cannot add '%s'", id)
		}
	}
	return nil
}
