package systems

import (
	"math"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// WorldInventoryName names the sentinel entity holding dropped items
const WorldInventoryName = "world-inventory"

// playerEntity returns the first player-tagged entity
func playerEntity(world *ecs.World) (*ecs.Entity, bool) {
	return world.FirstWithTag(ecs.PlayerTag)
}

// worldInventory returns the inventory of the world sentinel
func worldInventory(world *ecs.World) (*components.InventoryComponent, bool) {
	sentinel, ok := world.EntityByName(WorldInventoryName)
	if !ok {
		return nil, false
	}
	return ecs.Get[*components.InventoryComponent](sentinel)
}

func distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// angleDifference returns the absolute difference of two angles in [0, 180]
func angleDifference(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
