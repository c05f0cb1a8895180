package systems

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
)

// Action is a player intent bound to one or more keys
type Action string

const (
	ActionLeft     Action = "left"
	ActionRight    Action = "right"
	ActionUp       Action = "up"
	ActionDown     Action = "down"
	ActionAttack   Action = "attack"
	ActionInteract Action = "interact"
	ActionDrop     Action = "drop"
)

// InteractRange is the reach of the interact key
const InteractRange = 15.0

// KeyBindings maps actions to key identifiers
type KeyBindings map[Action][]string

// DefaultKeyBindings returns the WASD layout with arrow key alternatives
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ActionLeft:     {"A", "ArrowLeft"},
		ActionRight:    {"D", "ArrowRight"},
		ActionUp:       {"W", "ArrowUp"},
		ActionDown:     {"S", "ArrowDown"},
		ActionAttack:   {"Space"},
		ActionInteract: {"E"},
		ActionDrop:     {"Q"},
	}
}

// InputSystem turns held keys into player intent
type InputSystem struct {
	ecs.BaseSystem
	bindings    KeyBindings
	pressed     map[string]bool
	dropLatched bool
}

// NewInputSystem creates an input system with the given bindings
func NewInputSystem(bindings KeyBindings) *InputSystem {
	if bindings == nil {
		bindings = DefaultKeyBindings()
	}
	return &InputSystem{
		bindings: bindings,
		pressed:  make(map[string]bool),
	}
}

// KeyDown records a pressed key
func (s *InputSystem) KeyDown(key string) {
	s.pressed[key] = true
}

// KeyUp records a released key
func (s *InputSystem) KeyUp(key string) {
	delete(s.pressed, key)
}

// Blur forgets every held key so none stays stuck after focus loss
func (s *InputSystem) Blur() {
	for key := range s.pressed {
		delete(s.pressed, key)
	}
}

// IsPressed reports whether any key bound to action is held
func (s *InputSystem) IsPressed(action Action) bool {
	for _, key := range s.bindings[action] {
		if s.pressed[key] {
			return true
		}
	}
	return false
}

// Update applies the held keys to the player entity
func (s *InputSystem) Update(dt float64, world *ecs.World) {
	player, ok := playerEntity(world)
	if !ok {
		return
	}

	movement, hasMovement := ecs.Get[*components.MovementComponent](player)
	combat, hasCombat := ecs.Get[*components.CombatComponent](player)

	if hasMovement && (!hasCombat || !combat.Attacking) {
		var dir components.Vec2
		if s.IsPressed(ActionLeft) {
			dir.X = 1
		}
		if s.IsPressed(ActionRight) {
			dir.X = -1
		}
		if s.IsPressed(ActionUp) {
			dir.Y = -1
		}
		if s.IsPressed(ActionDown) {
			dir.Y = 1
		}
		movement.Direction = dir
	}

	inventory, hasInventory := ecs.Get[*components.InventoryComponent](player)
	if s.IsPressed(ActionInteract) {
		ProximityScan(world, player, InteractRange)
		if hasInventory {
			inventory.PickingUp = true
		}
	} else if hasInventory {
		inventory.PickingUp = false
	}

	if hasCombat {
		s.handleAttack(world, player, combat)
	}

	drop := s.IsPressed(ActionDrop)
	if drop && !s.dropLatched && hasInventory {
		s.dropLast(world, player, inventory)
	}
	s.dropLatched = drop
}

func (s *InputSystem) handleAttack(world *ecs.World, player *ecs.Entity, combat *components.CombatComponent) {
	if !s.IsPressed(ActionAttack) {
		combat.AttackInitiated = false
		return
	}
	if combat.AttackInitiated || !combat.CanAttack() {
		return
	}

	combat.AttackInitiated = true
	combat.Attacking = true
	if anim, ok := ecs.Get[*components.AnimationComponent](player); ok {
		anim.ResetFrame()
	}
	world.EmitEvent(AttackStartedEvent{Attacker: player})
}

func (s *InputSystem) dropLast(world *ecs.World, player *ecs.Entity, inventory *components.InventoryComponent) {
	item, ok := inventory.Last()
	if !ok {
		return
	}
	pos, ok := ecs.Get[*components.PositionComponent](player)
	if !ok {
		return
	}
	if err := DropItem(world, inventory, item, components.Vec2{X: pos.X, Y: pos.Y}); err != nil {
		logger.System("input").WithError(err).Warn("drop failed")
	}
}
