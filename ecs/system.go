package ecs

// System defines an interface for processing entities with specific components
type System interface {
	// Preload runs once before the first frame
	Preload(world *World) error
	// Update is called each frame with the elapsed milliseconds
	Update(dt float64, world *World)
}

// BaseSystem provides a no-op Preload for systems that need no setup
type BaseSystem struct{}

// Preload implements System
func (BaseSystem) Preload(*World) error { return nil }
