package ecs

import (
	"sync/atomic"

	"github.com/TheBitDrifter/mask"
)

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Name is descriptive only; several entities may share one.
	Name string
	// Tags can be used for quick identification (e.g., "player", "enemy")
	Tags map[string]bool

	components ComponentMap
	signature  mask.Mask
}

// NewEntity creates a new entity
func NewEntity(name string) *Entity {
	return &Entity{
		ID:         NewEntityID(),
		Name:       name,
		Tags:       make(map[string]bool),
		components: make(ComponentMap),
	}
}

// AddTag adds a tag to the entity
func (e *Entity) AddTag(tag string) {
	e.Tags[tag] = true
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// RemoveTag removes a tag from the entity
func (e *Entity) RemoveTag(tag string) {
	delete(e.Tags, tag)
}

// AddComponent attaches c, replacing any component of the same kind.
func (e *Entity) AddComponent(c Component) *Entity {
	id := c.Kind()
	e.components[id] = c
	e.signature.Mark(uint32(id))
	return e
}

// GetComponent retrieves a component by kind
func (e *Entity) GetComponent(id ComponentID) (Component, bool) {
	c, ok := e.components[id]
	return c, ok
}

// HasComponent checks if the entity has a specific component
func (e *Entity) HasComponent(id ComponentID) bool {
	_, ok := e.components[id]
	return ok
}

// RemoveComponent detaches a component. Removing an absent kind is a no-op.
func (e *Entity) RemoveComponent(id ComponentID) {
	if _, ok := e.components[id]; !ok {
		return
	}
	delete(e.components, id)
	e.signature.Unmark(uint32(id))
}

// Components returns the attached components keyed by kind.
// The map is shared with the entity and must not be modified.
func (e *Entity) Components() ComponentMap {
	return e.components
}

// Signature returns the component bitmask of the entity
func (e *Entity) Signature() mask.Mask {
	return e.signature
}

// HasAll reports whether the entity carries every kind in sig
func (e *Entity) HasAll(sig mask.Mask) bool {
	return e.signature.ContainsAll(sig)
}
