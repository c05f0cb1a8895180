package systems

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// Event type constants
const (
	EventAttackStarted ecs.EventType = "attack_started"
	EventCombat        ecs.EventType = "combat"
	EventDeath         ecs.EventType = "death"
	EventRetired       ecs.EventType = "retired"
	EventItemPickup    ecs.EventType = "item_pickup"
	EventItemDropped   ecs.EventType = "item_dropped"
	EventInteraction   ecs.EventType = "interaction"
)

// AttackStartedEvent is emitted when the player starts an attack
type AttackStartedEvent struct {
	Attacker *ecs.Entity
}

// Type returns the event type
func (e AttackStartedEvent) Type() ecs.EventType {
	return EventAttackStarted
}

// CombatEvent is emitted when an attack lands
type CombatEvent struct {
	Attacker *ecs.Entity // Entity performing the attack
	Defender *ecs.Entity // Entity being attacked
	Damage   int         // Amount of damage dealt
}

// Type returns the event type
func (e CombatEvent) Type() ecs.EventType {
	return EventCombat
}

// DeathEvent is emitted once when a combatant dies
type DeathEvent struct {
	Entity *ecs.Entity // Entity that died
	Killer *ecs.Entity // Entity that caused the death
}

// Type returns the event type
func (e DeathEvent) Type() ecs.EventType {
	return EventDeath
}

// EntityRetiredEvent is emitted when a death animation has completed
type EntityRetiredEvent struct {
	Entity *ecs.Entity
}

// Type returns the event type
func (e EntityRetiredEvent) Type() ecs.EventType {
	return EventRetired
}

// ItemPickupEvent is emitted when an entity picks up an item
type ItemPickupEvent struct {
	Entity *ecs.Entity // Entity picking up the item
	Item   *components.ItemComponent
}

// Type returns the event type
func (e ItemPickupEvent) Type() ecs.EventType {
	return EventItemPickup
}

// ItemDroppedEvent is emitted when an item lands in the world inventory
type ItemDroppedEvent struct {
	Item *components.ItemComponent
	At   components.Vec2
}

// Type returns the event type
func (e ItemDroppedEvent) Type() ecs.EventType {
	return EventItemDropped
}

// InteractionEvent is emitted when an interaction effect has been applied
type InteractionEvent struct {
	Target *ecs.Entity
	Effect components.EffectKind
}

// Type returns the event type
func (e InteractionEvent) Type() ecs.EventType {
	return EventInteraction
}
