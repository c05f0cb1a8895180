package systems

import (
	"github.com/sirupsen/logrus"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
)

// InteractionSystem applies the effects of interactables flagged by the
// player's proximity scan
type InteractionSystem struct {
	ecs.BaseSystem
	log *logrus.Entry
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem() *InteractionSystem {
	return &InteractionSystem{log: logger.System("interaction")}
}

// Update resolves every interacting entity. Targets whose conditions do not
// hold keep their flag and are retried next tick.
func (s *InteractionSystem) Update(dt float64, world *ecs.World) {
	var inventory *components.InventoryComponent
	if player, ok := playerEntity(world); ok {
		inventory, _ = ecs.Get[*components.InventoryComponent](player)
	}

	for _, target := range world.EntitiesWith(components.InteractableID) {
		interactable, _ := ecs.Get[*components.InteractableComponent](target)
		if !interactable.Interacting {
			continue
		}
		if !interactable.ConditionsMet(inventory) {
			continue
		}
		s.apply(world, target, interactable, inventory)
	}
}

func (s *InteractionSystem) apply(world *ecs.World, target *ecs.Entity, interactable *components.InteractableComponent, inventory *components.InventoryComponent) {
	effect := interactable.Effect
	switch effect.Kind {
	case components.EffectConsumeItemAndUnlock:
		if inventory != nil {
			if item, ok := inventory.Find(effect.ItemName); ok {
				inventory.Remove(item)
			}
		}
	case components.EffectUnlock:
	default:
		s.log.WithField("effect", effect.Kind).Warn("unknown interaction effect")
		interactable.Interacting = false
		return
	}

	if !effect.OpenSprite.IsZero() {
		if solid, ok := ecs.Get[*components.SolidComponent](target); ok {
			solid.Sprite = effect.OpenSprite
		}
		if render, ok := ecs.Get[*components.RenderComponent](target); ok {
			render.Sprite = effect.OpenSprite
		}
	}
	interactable.Interacting = false
	target.RemoveComponent(components.CollisionID)
	target.RemoveComponent(components.InteractableID)

	s.log.WithFields(logrus.Fields{"target": target.Name, "effect": effect.Kind}).Info("unlocked")
	world.EmitEvent(InteractionEvent{Target: target, Effect: effect.Kind})
}
