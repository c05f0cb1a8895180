package ecs

import "github.com/TheBitDrifter/mask"

// World owns every entity and the ordered system pipeline
type World struct {
	// entities in insertion order; queries preserve it
	entities []*Entity
	// Systems slice to store all systems
	systems []System
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make([]*Entity, 0),
		systems:      make([]System, 0),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new named entity and adds it to the world
func (w *World) CreateEntity(name string) *Entity {
	entity := NewEntity(name)
	w.AddEntity(entity)
	return entity
}

// AddEntity appends an entity. No duplicate check is made.
func (w *World) AddEntity(entity *Entity) {
	w.entities = append(w.entities, entity)
}

// AddEntities appends several entities in order
func (w *World) AddEntities(entities ...*Entity) {
	w.entities = append(w.entities, entities...)
}

// RemoveEntity removes an entity from the world
func (w *World) RemoveEntity(entityID EntityID) {
	for i, e := range w.entities {
		if e.ID == entityID {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return
		}
	}
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	for _, e := range w.entities {
		if e.ID == entityID {
			return e
		}
	}
	return nil
}

// Contains reports whether the entity is still owned by the world
func (w *World) Contains(entity *Entity) bool {
	for _, e := range w.entities {
		if e == entity {
			return true
		}
	}
	return false
}

// EntityByName returns the first entity with the given name
func (w *World) EntityByName(name string) (*Entity, bool) {
	for _, e := range w.entities {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// EntitiesWith returns all entities that have a specific component
func (w *World) EntitiesWith(id ComponentID) []*Entity {
	entities := make([]*Entity, 0)
	for _, e := range w.entities {
		if e.HasComponent(id) {
			entities = append(entities, e)
		}
	}
	return entities
}

// EntitiesWithAll returns the entities holding every listed component
func (w *World) EntitiesWithAll(ids ...ComponentID) []*Entity {
	var sig mask.Mask
	for _, id := range ids {
		sig.Mark(uint32(id))
	}

	entities := make([]*Entity, 0)
	for _, e := range w.entities {
		if e.HasAll(sig) {
			entities = append(entities, e)
		}
	}
	return entities
}

// EntitiesWithTag returns all entities with a specific tag
func (w *World) EntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)
	for _, e := range w.entities {
		if e.HasTag(tag) {
			entities = append(entities, e)
		}
	}
	return entities
}

// FirstWithTag returns the first entity carrying tag
func (w *World) FirstWithTag(tag string) (*Entity, bool) {
	for _, e := range w.entities {
		if e.HasTag(tag) {
			return e, true
		}
	}
	return nil, false
}

// GetAllEntities returns a slice of all entities in the world
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, len(w.entities))
	copy(entities, w.entities)
	return entities
}

// AddSystem adds a system to the world. Registration order is execution order.
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Preload runs every system's Preload once, in order
func (w *World) Preload() error {
	for _, system := range w.systems {
		if err := system.Preload(w); err != nil {
			return err
		}
	}
	return nil
}

// Update runs every system once, in registration order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(dt, w)
	}
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
