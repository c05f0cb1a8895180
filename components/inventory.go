package components

import (
	"ebiten-dungeon/ecs"
)

// ItemComponent is a collectible object. Inventories hold pointers to
// items; an item lives in exactly one inventory at a time.
type ItemComponent struct {
	Name         string
	Description  string
	Icon         SpriteRef
	DropPosition Vec2
	Dropped      bool
}

func (*ItemComponent) Kind() ecs.ComponentID { return ItemID }

// InventoryComponent represents an entity's inventory of items
type InventoryComponent struct {
	Items     []*ItemComponent
	Capacity  int
	PickingUp bool
}

func (*InventoryComponent) Kind() ecs.ComponentID { return InventoryID }

// NewInventoryComponent creates a new inventory component with a given capacity
func NewInventoryComponent(capacity int) *InventoryComponent {
	return &InventoryComponent{
		Items:    make([]*ItemComponent, 0, capacity),
		Capacity: capacity,
	}
}

// HasSpace returns true if there's still room in the inventory
func (i *InventoryComponent) HasSpace() bool {
	return len(i.Items) < i.Capacity
}

// Add appends an item if there's space
// Returns true if the item was added, false if inventory is full
func (i *InventoryComponent) Add(item *ItemComponent) bool {
	if !i.HasSpace() {
		return false
	}
	i.Items = append(i.Items, item)
	return true
}

// Remove takes the item out, keeping the order of the others
// Returns true if item was found and removed, false otherwise
func (i *InventoryComponent) Remove(item *ItemComponent) bool {
	for idx, it := range i.Items {
		if it == item {
			i.Items = append(i.Items[:idx], i.Items[idx+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first item with the given name
func (i *InventoryComponent) Find(name string) (*ItemComponent, bool) {
	for _, it := range i.Items {
		if it.Name == name {
			return it, true
		}
	}
	return nil, false
}

// Contains reports whether an item with the given name is held
func (i *InventoryComponent) Contains(name string) bool {
	_, ok := i.Find(name)
	return ok
}

// Holds reports whether this exact item is held
func (i *InventoryComponent) Holds(item *ItemComponent) bool {
	for _, it := range i.Items {
		if it == item {
			return true
		}
	}
	return false
}

// Size returns the current number of items in the inventory
func (i *InventoryComponent) Size() int {
	return len(i.Items)
}

// Last returns the most recently added item
func (i *InventoryComponent) Last() (*ItemComponent, bool) {
	if len(i.Items) == 0 {
		return nil, false
	}
	return i.Items[len(i.Items)-1], true
}
