// Package data holds the YAML formats levels and templates are authored in.
package data

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel wraps every structural problem found in a level file
var ErrInvalidLevel = errors.New("invalid level")

// Point is a position in world units
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpriteSpec addresses one frame in the asset registry
type SpriteSpec struct {
	Sheet    string `yaml:"sheet"`
	Category string `yaml:"category"`
	Row      int    `yaml:"row"`
	Col      int    `yaml:"col"`
}

// TileCell is one grid cell, written in YAML as the 6-tuple
// [interactable, layer, collision, sheet, row, col]. A null cell is empty.
type TileCell struct {
	Interactable bool
	Layer        int
	Collision    bool
	Sheet        string
	Row          int
	Col          int
}

// UnmarshalYAML decodes the tuple form of a cell
func (c *TileCell) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 6 {
		return fmt.Errorf("line %d: tile must be a 6-tuple [interactable, layer, collision, sheet, row, col]: %w", value.Line, ErrInvalidLevel)
	}
	fields := []interface{}{&c.Interactable, &c.Layer, &c.Collision, &c.Sheet, &c.Row, &c.Col}
	for i, field := range fields {
		if err := value.Content[i].Decode(field); err != nil {
			return fmt.Errorf("line %d: tile field %d: %v: %w", value.Line, i, err, ErrInvalidLevel)
		}
	}
	return nil
}

// PropSpec places an animated decoration
type PropSpec struct {
	Name      string     `yaml:"name"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Position  Point      `yaml:"position"`
	Animation FrameStrip `yaml:"animation"`
	Layer     int        `yaml:"layer"`
}

// FrameStrip is a run of consecutive frames on one sheet row
type FrameStrip struct {
	Sheet    string  `yaml:"sheet"`
	Category string  `yaml:"category"`
	Row      int     `yaml:"row"`
	First    int     `yaml:"first"`
	Count    int     `yaml:"count"`
	Speed    float64 `yaml:"speed"` // Frames per millisecond
	Loop     bool    `yaml:"loop"`
}

// PlayerSpawn places the player
type PlayerSpawn struct {
	Template string   `yaml:"template"`
	Position Point    `yaml:"position"`
	Items    []string `yaml:"items"`
}

// EnemySpawn places one enemy built from a template
type EnemySpawn struct {
	Template string   `yaml:"template"`
	Position Point    `yaml:"position"`
	Items    []string `yaml:"items"`
}

// DoorSpec turns the interactable tile at Cell into a locked door
type DoorSpec struct {
	Cell [2]int     `yaml:"cell"` // [row, col] in the tile grid
	Key  string     `yaml:"key"`
	Open SpriteSpec `yaml:"open"`
}

// ItemSpawn lays an item on the ground
type ItemSpawn struct {
	Item     string `yaml:"item"`
	Position Point  `yaml:"position"`
}

// Level is a complete level definition
type Level struct {
	Name     string        `yaml:"name"`
	TileSize int           `yaml:"tile_size"`
	Tiles    [][]*TileCell `yaml:"tiles"`
	Props    []PropSpec    `yaml:"props"`
	Player   *PlayerSpawn  `yaml:"player"`
	Enemies  []EnemySpawn  `yaml:"enemies"`
	Doors    []DoorSpec    `yaml:"doors"`
	Items    []ItemSpawn   `yaml:"items"`
}

// LoadLevel reads and validates a level file
func LoadLevel(path string) (*Level, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	level, err := ParseLevel(raw)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel decodes and validates a level document
func ParseLevel(raw []byte) (*Level, error) {
	var level Level
	if err := yaml.Unmarshal(raw, &level); err != nil {
		if errors.Is(err, ErrInvalidLevel) {
			return nil, err
		}
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidLevel)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &level, nil
}

// Validate checks the references inside the level
func (l *Level) Validate() error {
	if l.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive: %w", ErrInvalidLevel)
	}
	if l.Player == nil {
		return fmt.Errorf("no player spawn: %w", ErrInvalidLevel)
	}
	for i, door := range l.Doors {
		cell, ok := l.Cell(door.Cell[0], door.Cell[1])
		if !ok {
			return fmt.Errorf("door %d: no tile at %v: %w", i, door.Cell, ErrInvalidLevel)
		}
		if !cell.Interactable {
			return fmt.Errorf("door %d: tile at %v is not interactable: %w", i, door.Cell, ErrInvalidLevel)
		}
		if door.Key == "" {
			return fmt.Errorf("door %d: key is empty: %w", i, ErrInvalidLevel)
		}
	}
	for i, prop := range l.Props {
		if prop.Animation.Count <= 0 {
			return fmt.Errorf("prop %d (%s): animation has no frames: %w", i, prop.Name, ErrInvalidLevel)
		}
	}
	return nil
}

// Cell returns the tile at row, col when one is present
func (l *Level) Cell(row, col int) (*TileCell, bool) {
	if row < 0 || row >= len(l.Tiles) || col < 0 || col >= len(l.Tiles[row]) {
		return nil, false
	}
	cell := l.Tiles[row][col]
	return cell, cell != nil
}

// Door returns the door placed on row, col
func (l *Level) Door(row, col int) (DoorSpec, bool) {
	for _, door := range l.Doors {
		if door.Cell[0] == row && door.Cell[1] == col {
			return door, true
		}
	}
	return DoorSpec{}, false
}
