package systems

import (
	"math"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// CollisionSystem recomputes blocked-edge flags for moving entities. It
// never corrects positions; movement reads the flags on the next tick.
type CollisionSystem struct {
	ecs.BaseSystem
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

type box struct {
	cx, cy float64
	w, h   float64
}

// Update resets the edges of every collider, then tests each mover against
// every other solid or moving collider. Solids are reset too so the line
// of sight footprint of a wall only reflects the current tick.
func (s *CollisionSystem) Update(dt float64, world *ecs.World) {
	colliders := world.EntitiesWithAll(components.CollisionID, components.PositionID)
	for _, e := range colliders {
		collision, _ := ecs.Get[*components.CollisionComponent](e)
		collision.ResetEdges()
	}

	movers := world.EntitiesWithAll(components.MovementID, components.CollisionID, components.PositionID)
	for _, a := range movers {
		ca, _ := ecs.Get[*components.CollisionComponent](a)
		if ca.Shape == components.ShapeNone {
			continue
		}
		boxA := bounds(a, ca)

		for _, b := range colliders {
			if a == b {
				continue
			}
			if !b.HasComponent(components.SolidID) && !b.HasComponent(components.MovementID) {
				continue
			}
			cb, _ := ecs.Get[*components.CollisionComponent](b)
			if cb.Shape == components.ShapeNone {
				continue
			}
			resolvePair(boxA, ca, bounds(b, cb), cb)
		}
	}
}

// resolvePair flags the edges facing each other along the axis of least
// overlap. Equal overlaps resolve on the y axis.
func resolvePair(a box, ca *components.CollisionComponent, b box, cb *components.CollisionComponent) {
	overlapX := (a.w+b.w)/2 - math.Abs(a.cx-b.cx)
	overlapY := (a.h+b.h)/2 - math.Abs(a.cy-b.cy)
	if overlapX <= 0 || overlapY <= 0 {
		return
	}

	if overlapX < overlapY {
		if a.cx < b.cx {
			ca.Edges.Right = true
			cb.Edges.Left = true
		} else {
			ca.Edges.Left = true
			cb.Edges.Right = true
		}
		return
	}

	if a.cy < b.cy {
		ca.Edges.Bottom = true
		cb.Edges.Top = true
	} else {
		ca.Edges.Top = true
		cb.Edges.Bottom = true
	}
}

// bounds returns the collision box of e. Circles use their bounding box.
func bounds(e *ecs.Entity, c *components.CollisionComponent) box {
	pos, _ := ecs.Get[*components.PositionComponent](e)
	w, h := c.Width, c.Height
	if render, ok := ecs.Get[*components.RenderComponent](e); ok {
		if w == 0 {
			w = render.Width
		}
		if h == 0 {
			h = render.Height
		}
	}
	return box{
		cx: pos.X + c.Offset.X + w/2,
		cy: pos.Y + c.Offset.Y + h/2,
		w:  w,
		h:  h,
	}
}

// ProximityScan flags every Interactable+Position+Solid entity within
// reach of the player as interacting.
func ProximityScan(world *ecs.World, player *ecs.Entity, reach float64) int {
	playerPos, ok := ecs.Get[*components.PositionComponent](player)
	if !ok {
		return 0
	}

	flagged := 0
	for _, e := range world.EntitiesWithAll(components.InteractableID, components.PositionID, components.SolidID) {
		pos, _ := ecs.Get[*components.PositionComponent](e)
		if distance(playerPos.X, playerPos.Y, pos.X, pos.Y) > reach {
			continue
		}
		interactable, _ := ecs.Get[*components.InteractableComponent](e)
		interactable.Interacting = true
		flagged++
	}
	return flagged
}
