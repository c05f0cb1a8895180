package ai

import (
	"math"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

const (
	// AttackReach is the distance at which a chasing enemy stops and strikes
	AttackReach = 10.0
	// LineOfSightSamples is the number of points tested between enemy and player
	LineOfSightSamples = 80
	// obstacleFootprint is the side of the square each obstacle blocks
	obstacleFootprint = 1.0
)

// ChasePlayer moves its owner toward the player while the player is
// visible and in aggro range, and readies an attack once adjacent.
type ChasePlayer struct {
	World *ecs.World
	Self  *ecs.Entity
}

// NewChasePlayer creates the leaf for self
func NewChasePlayer(world *ecs.World, self *ecs.Entity) *ChasePlayer {
	return &ChasePlayer{World: world, Self: self}
}

// Tick implements Node
func (c *ChasePlayer) Tick() Status {
	player, ok := c.World.FirstWithTag(ecs.PlayerTag)
	if !ok {
		return Failure
	}
	playerPos, ok := ecs.Get[*components.PositionComponent](player)
	if !ok {
		return Failure
	}

	pos, hasPos := ecs.Get[*components.PositionComponent](c.Self)
	movement, hasMovement := ecs.Get[*components.MovementComponent](c.Self)
	brain, hasAI := ecs.Get[*components.AIComponent](c.Self)
	combat, hasCombat := ecs.Get[*components.CombatComponent](c.Self)
	if !hasPos || !hasMovement || !hasAI || !hasCombat {
		return Failure
	}

	dx := playerPos.X - pos.X
	dy := playerPos.Y - pos.Y
	distance := math.Hypot(dx, dy)

	// the player's combat state is stripped on death
	playerCombat, ok := ecs.Get[*components.CombatComponent](player)
	playerDead := !ok || playerCombat.Dead

	// refreshed every tick, in range or not
	brain.HasLineOfSight = LineOfSight(c.World,
		components.Vec2{X: pos.X, Y: pos.Y},
		components.Vec2{X: playerPos.X, Y: playerPos.Y})

	if distance <= brain.AggroRange && !playerDead {
		if brain.HasLineOfSight {
			if distance <= AttackReach {
				movement.Stop()
				brain.Chasing = false
				if combat.CanAttack() {
					combat.Attacking = true
				}
				return Success
			}

			// positive direction X moves toward screen-left
			movement.Direction = components.Vec2{
				X: clamp(-dx, -1, 1),
				Y: clamp(dy, -1, 1),
			}
			brain.Chasing = true
			combat.ClearAttack()
			return Running
		}
	}

	movement.Stop()
	brain.Chasing = false
	combat.ClearAttack()
	return Success
}

// LineOfSight samples the segment from -> to and reports whether no
// Solid+Collision entity covers any sample.
func LineOfSight(world *ecs.World, from, to components.Vec2) bool {
	obstacles := world.EntitiesWithAll(components.SolidID, components.CollisionID, components.PositionID)
	if len(obstacles) == 0 {
		return true
	}

	for i := 0; i < LineOfSightSamples; i++ {
		t := float64(i) / float64(LineOfSightSamples-1)
		x := from.X + (to.X-from.X)*t
		y := from.Y + (to.Y-from.Y)*t

		for _, obstacle := range obstacles {
			if blocksPoint(obstacle, x, y) {
				return false
			}
		}
	}
	return true
}

// blocksPoint tests a sample against the obstacle's footprint, grown by
// one footprint toward every side flagged as blocked.
func blocksPoint(obstacle *ecs.Entity, x, y float64) bool {
	pos, _ := ecs.Get[*components.PositionComponent](obstacle)
	collision, _ := ecs.Get[*components.CollisionComponent](obstacle)
	if collision.Shape == components.ShapeNone {
		return false
	}

	minX, maxX := pos.X, pos.X+obstacleFootprint
	minY, maxY := pos.Y, pos.Y+obstacleFootprint
	if collision.Edges.Left {
		minX -= obstacleFootprint
	}
	if collision.Edges.Right {
		maxX += obstacleFootprint
	}
	if collision.Edges.Top {
		minY -= obstacleFootprint
	}
	if collision.Edges.Bottom {
		maxY += obstacleFootprint
	}

	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
