package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint32

// Component is implemented by every component record. Kind must not
// dereference its receiver so it can be called on a nil pointer.
type Component interface {
	Kind() ComponentID
}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component

// Get returns the component of type T attached to e.
func Get[T Component](e *Entity) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	c, ok := e.components[zero.Kind()]
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}
