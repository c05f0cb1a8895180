package components

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"ebiten-dungeon/ecs"
)

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentID{
	"Position":     PositionID,
	"Movement":     MovementID,
	"Collision":    CollisionID,
	"Render":       RenderID,
	"Solid":        SolidID,
	"Animation":    AnimationID,
	"Combat":       CombatID,
	"AI":           AIID,
	"Inventory":    InventoryID,
	"Item":         ItemID,
	"Interactable": InteractableID,
	"Player":       PlayerID,
	"Prop":         PropID,
	"Layer":        LayerID,
	"Debug":        DebugID,
}

// GetComponentIDByName returns the ComponentID for a given component name string
// The lookup is case-insensitive
func GetComponentIDByName(name string) (ecs.ComponentID, bool) {
	// Try exact match first
	if id, exists := componentNameMap[name]; exists {
		return id, true
	}

	for compName, id := range componentNameMap {
		if strings.EqualFold(compName, name) {
			return id, true
		}
	}

	return 0, false
}

// ComponentName returns the display name of a component kind
func ComponentName(id ecs.ComponentID) string {
	for name, cid := range componentNameMap {
		if cid == id {
			return name
		}
	}
	return fmt.Sprintf("Component#%d", id)
}

// Field is one attribute of a component, rendered for the debug overlay
type Field struct {
	Component string
	Name      string
	Value     string // JSON encoding of the attribute
}

// Describe enumerates every exported non-function attribute of comp
func Describe(comp ecs.Component) []Field {
	val := reflect.ValueOf(comp)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	compName := ComponentName(comp.Kind())
	typ := val.Type()
	fields := make([]Field, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() || sf.Type.Kind() == reflect.Func {
			continue
		}
		encoded, err := json.Marshal(val.Field(i).Interface())
		if err != nil {
			encoded = []byte(fmt.Sprintf("%q", err.Error()))
		}
		fields = append(fields, Field{Component: compName, Name: sf.Name, Value: string(encoded)})
	}
	return fields
}

// DescribeEntity describes all components of e, ordered by component name.
// The Debug component itself is skipped.
func DescribeEntity(e *ecs.Entity) []Field {
	comps := e.Components()
	ids := make([]ecs.ComponentID, 0, len(comps))
	for id := range comps {
		if id == DebugID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool {
		return ComponentName(ids[a]) < ComponentName(ids[b])
	})

	var fields []Field
	for _, id := range ids {
		fields = append(fields, Describe(comps[id])...)
	}
	return fields
}

// GetComponentProperty returns the value of a property in a component
// Uses reflection to access component properties dynamically
func GetComponentProperty(comp interface{}, propertyName string) (interface{}, error) {
	val := reflect.ValueOf(comp)

	// Handle pointer types
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("component is not a struct: %T", comp)
	}

	field := val.FieldByName(propertyName)
	if !field.IsValid() {
		return nil, fmt.Errorf("property not found: %s", propertyName)
	}

	return field.Interface(), nil
}

// SetComponentProperty sets the value of a property in a component
// Uses reflection to modify component properties dynamically
func SetComponentProperty(comp interface{}, propertyName string, value interface{}) error {
	val := reflect.ValueOf(comp)

	if val.Kind() != reflect.Ptr {
		return fmt.Errorf("component must be a pointer to struct: %T", comp)
	}
	val = val.Elem()

	if val.Kind() != reflect.Struct {
		return fmt.Errorf("component is not a struct: %T", comp)
	}

	field := val.FieldByName(propertyName)
	if !field.IsValid() {
		return fmt.Errorf("property not found: %s", propertyName)
	}
	if !field.CanSet() {
		return fmt.Errorf("property cannot be set: %s", propertyName)
	}

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var intVal int64
		switch v := value.(type) {
		case int:
			intVal = int64(v)
		case int64:
			intVal = v
		case float64:
			intVal = int64(v)
		default:
			return fmt.Errorf("cannot convert %T to int64 for property %s", value, propertyName)
		}
		field.SetInt(intVal)

	case reflect.Float32, reflect.Float64:
		var floatVal float64
		switch v := value.(type) {
		case float64:
			floatVal = v
		case float32:
			floatVal = float64(v)
		case int:
			floatVal = float64(v)
		default:
			return fmt.Errorf("cannot convert %T to float64 for property %s", value, propertyName)
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("cannot convert %T to bool for property %s", value, propertyName)
		}
		field.SetBool(boolVal)

	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("cannot convert %T to string for property %s", value, propertyName)
		}
		field.SetString(strVal)

	default:
		valueVal := reflect.ValueOf(value)
		if valueVal.IsValid() && field.Type() == valueVal.Type() {
			field.Set(valueVal)
		} else {
			return fmt.Errorf("unsupported property type: %s for %s", field.Kind(), propertyName)
		}
	}

	return nil
}

// ApplyOverrides sets "Component.Field" keyed values on e's components.
// Unknown components or fields are reported as errors.
func ApplyOverrides(e *ecs.Entity, overrides map[string]interface{}) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		compName, fieldName, ok := strings.Cut(key, ".")
		if !ok {
			return fmt.Errorf("override %q: want Component.Field", key)
		}
		id, ok := GetComponentIDByName(compName)
		if !ok {
			return fmt.Errorf("override %q: unknown component %s", key, compName)
		}
		comp, ok := e.GetComponent(id)
		if !ok {
			return fmt.Errorf("override %q: entity %s has no %s", key, e.Name, compName)
		}
		if err := SetComponentProperty(comp, fieldName, overrides[key]); err != nil {
			return fmt.Errorf("override %q: %w", key, err)
		}
	}
	return nil
}
