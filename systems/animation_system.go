package systems

import (
	"math"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// AnimationSystem advances frame cursors and reports finished animations
type AnimationSystem struct {
	ecs.BaseSystem
}

// NewAnimationSystem creates a new animation playback system
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update advances every playing animation by dt milliseconds
func (s *AnimationSystem) Update(dt float64, world *ecs.World) {
	for _, entity := range world.EntitiesWithAll(components.AnimationID, components.RenderID) {
		anim, _ := ecs.Get[*components.AnimationComponent](entity)
		render, _ := ecs.Get[*components.RenderComponent](entity)
		if !anim.Playing {
			continue
		}
		def, ok := anim.CurrentDefinition()
		if !ok {
			continue
		}

		anim.Elapsed += dt
		frameDuration := def.FrameDuration()
		if frameDuration > 0 && anim.Elapsed >= frameDuration {
			steps := int(math.Floor(anim.Elapsed / frameDuration))
			anim.Elapsed -= float64(steps) * frameDuration

			next := anim.FrameIndex + steps
			if !def.Loop && next >= len(def.Frames) {
				anim.FrameIndex = len(def.Frames) - 1
				s.finish(world, entity, anim)
			} else {
				anim.FrameIndex = next % len(def.Frames)
			}
		}

		if frame, ok := anim.CurrentFrame(); ok {
			render.Sprite = frame
		}
	}
}

func (s *AnimationSystem) finish(world *ecs.World, entity *ecs.Entity, anim *components.AnimationComponent) {
	anim.Finish()

	if combat, ok := ecs.Get[*components.CombatComponent](entity); ok {
		combat.Hurt = false
		if anim.Current == components.AnimAttack || anim.Current == components.AnimAttackUp {
			combat.Attacking = false
		}
	}

	if anim.Current == components.AnimDeath {
		world.EmitEvent(EntityRetiredEvent{Entity: entity})
	}
}
