package components

import (
	"ebiten-dungeon/ecs"
)

// ConditionKind enumerates interaction preconditions
type ConditionKind string

const (
	// ConditionHasItem requires the player to carry an item with ItemName
	ConditionHasItem ConditionKind = "has_item"
)

// Condition is a single precondition checked against the player's inventory
type Condition struct {
	Kind     ConditionKind
	ItemName string
}

// Satisfied evaluates the condition. A nil inventory satisfies nothing
// that asks about items.
func (c Condition) Satisfied(inv *InventoryComponent) bool {
	switch c.Kind {
	case ConditionHasItem:
		return inv != nil && inv.Contains(c.ItemName)
	default:
		return false
	}
}

// EffectKind enumerates what an interaction does once allowed
type EffectKind string

const (
	// EffectConsumeItemAndUnlock removes ItemName from the player and opens the target
	EffectConsumeItemAndUnlock EffectKind = "consume_item_and_unlock"
	// EffectUnlock opens the target without cost
	EffectUnlock EffectKind = "unlock"
)

// Effect describes the outcome of a successful interaction
type Effect struct {
	Kind       EffectKind
	ItemName   string
	OpenSprite SpriteRef // Sprite shown once the target is open
}

// InteractableComponent marks entities the player can use
type InteractableComponent struct {
	Interacting  bool
	Conditions   []Condition
	Effect       Effect
	RequiredItem string
}

func (*InteractableComponent) Kind() ecs.ComponentID { return InteractableID }

// NewLockedDoor creates a door that needs and consumes the named key
func NewLockedDoor(keyName string, open SpriteRef) *InteractableComponent {
	return &InteractableComponent{
		Conditions: []Condition{{Kind: ConditionHasItem, ItemName: keyName}},
		Effect: Effect{
			Kind:       EffectConsumeItemAndUnlock,
			ItemName:   keyName,
			OpenSprite: open,
		},
		RequiredItem: keyName,
	}
}

// ConditionsMet reports whether every precondition holds
func (i *InteractableComponent) ConditionsMet(inv *InventoryComponent) bool {
	for _, c := range i.Conditions {
		if !c.Satisfied(inv) {
			return false
		}
	}
	return true
}
