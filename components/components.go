package components

import (
	"image"
	"image/color"

	"ebiten-dungeon/ecs"
)

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// SpriteRef is an opaque handle to a frame on a sprite sheet
type SpriteRef struct {
	Sheet string          // Sheet name in the asset registry
	Frame image.Rectangle // Source rectangle on the sheet
}

// IsZero reports whether the reference points at nothing
func (s SpriteRef) IsZero() bool {
	return s.Sheet == "" && s.Frame.Empty()
}

// PositionComponent stores entity position (top-left corner)
type PositionComponent struct {
	X, Y float64
}

func (*PositionComponent) Kind() ecs.ComponentID { return PositionID }

// MovementComponent stores the desired direction and facing
type MovementComponent struct {
	Direction   Vec2    // Each axis in [-1, 1]; positive X moves toward screen-left
	Speed       float64 // Units per tick
	FacingAngle float64 // Degrees, atan2 of the last non-zero motion
}

func (*MovementComponent) Kind() ecs.ComponentID { return MovementID }

// Stop zeroes the desired direction
func (m *MovementComponent) Stop() {
	m.Direction = Vec2{}
}

// ShapeKind is the collision shape of an entity
type ShapeKind string

const (
	ShapeBox    ShapeKind = "box"
	ShapeCircle ShapeKind = "circle"
	ShapeNone   ShapeKind = "none"
)

// Edges records which sides of an entity are blocked this tick
type Edges struct {
	Top, Left, Right, Bottom bool
}

// CollisionComponent marks an entity as taking part in collision checks
type CollisionComponent struct {
	Shape  ShapeKind
	Offset Vec2
	Width  float64 // Overrides RenderComponent.Width when non-zero
	Height float64 // Overrides RenderComponent.Height when non-zero
	Edges  Edges
}

func (*CollisionComponent) Kind() ecs.ComponentID { return CollisionID }

// ResetEdges clears all four blocked-edge flags
func (c *CollisionComponent) ResetEdges() {
	c.Edges = Edges{}
}

// NewBoxCollision creates a box collider sized from the render component
func NewBoxCollision() *CollisionComponent {
	return &CollisionComponent{Shape: ShapeBox}
}

// RenderComponent stores rendering information
type RenderComponent struct {
	Width, Height float64
	Sprite        SpriteRef
	Tiled         bool
	Flipped       bool       // Mirror horizontally when drawing
	Tint          color.RGBA // Fallback fill when the sheet image is unavailable
}

func (*RenderComponent) Kind() ecs.ComponentID { return RenderID }

// SolidComponent marks a background tile that takes part in collision
type SolidComponent struct {
	Sprite SpriteRef
}

func (*SolidComponent) Kind() ecs.ComponentID { return SolidID }

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

func (*PlayerComponent) Kind() ecs.ComponentID { return PlayerID }

// PropComponent marks decorative animated objects
type PropComponent struct{}

func (*PropComponent) Kind() ecs.ComponentID { return PropID }

// LayerComponent orders drawing; lower indices are drawn first
type LayerComponent struct {
	Index int
}

func (*LayerComponent) Kind() ecs.ComponentID { return LayerID }

// DebugComponent carries the inspection snapshot shown by the debug overlay
type DebugComponent struct {
	Enabled bool
	Fields  []Field
}

func (*DebugComponent) Kind() ecs.ComponentID { return DebugID }
