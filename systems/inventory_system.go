package systems

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
)

// PickupRange is how close a dropped item must be to be picked up
const PickupRange = 20.0

var (
	// ErrNoWorldInventory is returned when the world sentinel is missing
	ErrNoWorldInventory = errors.New("world inventory not found")
	// ErrItemNotHeld is returned when moving an item its source does not hold
	ErrItemNotHeld = errors.New("item not held by source inventory")
)

// TransferItem moves item from one inventory to another. The item is only
// removed from the source when the destination accepted it, so it never
// sits in two inventories at once.
func TransferItem(from, to *components.InventoryComponent, item *components.ItemComponent) bool {
	if from == nil || to == nil || item == nil || from == to {
		return false
	}
	if !from.Holds(item) || !to.HasSpace() {
		return false
	}
	from.Remove(item)
	to.Add(item)
	return true
}

// DropItem moves item out of from into the world inventory at position at
func DropItem(world *ecs.World, from *components.InventoryComponent, item *components.ItemComponent, at components.Vec2) error {
	ground, ok := worldInventory(world)
	if !ok {
		return ErrNoWorldInventory
	}
	if !from.Holds(item) {
		return fmt.Errorf("drop %q: %w", item.Name, ErrItemNotHeld)
	}
	if !TransferItem(from, ground, item) {
		return fmt.Errorf("drop %q: world inventory full", item.Name)
	}

	item.Dropped = true
	item.DropPosition = at
	world.EmitEvent(ItemDroppedEvent{Item: item, At: at})
	return nil
}

// InventorySystem moves dropped items into the player's inventory while the
// player is picking up
type InventorySystem struct {
	ecs.BaseSystem
	log *logrus.Entry
}

// NewInventorySystem creates a new inventory system
func NewInventorySystem() *InventorySystem {
	return &InventorySystem{log: logger.System("inventory")}
}

// Update picks up at most one item per tick
func (s *InventorySystem) Update(dt float64, world *ecs.World) {
	player, ok := playerEntity(world)
	if !ok {
		return
	}
	inventory, ok := ecs.Get[*components.InventoryComponent](player)
	if !ok || !inventory.PickingUp || !inventory.HasSpace() {
		return
	}
	pos, ok := ecs.Get[*components.PositionComponent](player)
	if !ok {
		return
	}
	ground, ok := worldInventory(world)
	if !ok {
		return
	}

	for _, item := range ground.Items {
		if !item.Dropped {
			continue
		}
		if distance(pos.X, pos.Y, item.DropPosition.X, item.DropPosition.Y) > PickupRange {
			continue
		}
		if !TransferItem(ground, inventory, item) {
			return
		}
		item.Dropped = false
		s.log.WithFields(logrus.Fields{"item": item.Name, "entity": player.Name}).Debug("picked up")
		world.EmitEvent(ItemPickupEvent{Entity: player, Item: item})
		return
	}
}
