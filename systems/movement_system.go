package systems

import (
	"math"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// MovementSystem integrates positions from desired directions, honoring the
// edge flags the collision system computed on the previous tick.
type MovementSystem struct {
	ecs.BaseSystem
}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update handles entity movement
func (s *MovementSystem) Update(dt float64, world *ecs.World) {
	for _, entity := range world.EntitiesWithAll(components.MovementID, components.PositionID, components.RenderID) {
		movement, _ := ecs.Get[*components.MovementComponent](entity)
		position, _ := ecs.Get[*components.PositionComponent](entity)
		render, _ := ecs.Get[*components.RenderComponent](entity)

		var edges components.Edges
		if collision, ok := ecs.Get[*components.CollisionComponent](entity); ok {
			edges = collision.Edges
		}

		dx := movement.Direction.X * movement.Speed
		dy := movement.Direction.Y * movement.Speed

		s.moveHorizontal(position, render, edges, dx)
		s.moveVertical(position, edges, dy)

		if dx != 0 || dy != 0 {
			movement.FacingAngle = degrees(math.Atan2(dy, dx))
		}

		s.selectAnimation(entity, movement)
	}
}

// moveHorizontal applies dx with the subtraction convention: positive dx
// travels toward screen-left.
func (s *MovementSystem) moveHorizontal(position *components.PositionComponent, render *components.RenderComponent, edges components.Edges, dx float64) {
	switch {
	case dx > 0:
		if edges.Left {
			return
		}
		position.X = math.Ceil(position.X - dx)
		render.Flipped = true
	case dx < 0:
		if edges.Right {
			return
		}
		position.X = math.Floor(position.X - dx)
		render.Flipped = false
	}
}

func (s *MovementSystem) moveVertical(position *components.PositionComponent, edges components.Edges, dy float64) {
	switch {
	case dy < 0:
		if edges.Top {
			return
		}
		position.Y = math.Ceil(position.Y + dy)
	case dy > 0:
		if edges.Bottom {
			return
		}
		position.Y = math.Floor(position.Y + dy)
	}
}

// selectAnimation asks the selector for living combatants only
func (s *MovementSystem) selectAnimation(entity *ecs.Entity, movement *components.MovementComponent) {
	combat, ok := ecs.Get[*components.CombatComponent](entity)
	if !ok || combat.Dead {
		return
	}
	anim, ok := ecs.Get[*components.AnimationComponent](entity)
	if !ok {
		return
	}

	anim.Play(SelectAnimation(AnimationInput{
		X:           movement.Direction.X,
		Y:           movement.Direction.Y,
		FacingAngle: movement.FacingAngle,
		Attacking:   combat.Attacking,
		Hurt:        combat.Hurt,
	}))
}
