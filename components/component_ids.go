package components

import (
	"ebiten-dungeon/ecs"
)

// Define component IDs for our game
const (
	PositionID ecs.ComponentID = iota
	MovementID
	CollisionID
	RenderID
	SolidID
	AnimationID
	CombatID
	AIID
	InventoryID
	ItemID
	InteractableID
	PlayerID
	PropID
	LayerID
	DebugID
)
