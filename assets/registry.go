// Package assets maps sprite-sheet metadata to frame rectangles. It holds no
// image data; the render package loads pixels for the sheets named here.
package assets

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"ebiten-dungeon/components"
)

// ErrSpriteNotFound is returned for any lookup the registry cannot resolve
var ErrSpriteNotFound = errors.New("sprite not found")

// SheetSpec describes one sprite sheet laid out as a grid of equal tiles.
// Categories map a name ("player", "goblin", "tiles") to the first grid row
// that category occupies.
type SheetSpec struct {
	Name       string         `yaml:"name"`
	Path       string         `yaml:"path"`
	TileWidth  int            `yaml:"tile_width"`
	TileHeight int            `yaml:"tile_height"`
	Columns    int            `yaml:"columns"` // 0 leaves the grid unbounded
	Rows       int            `yaml:"rows"`
	Categories map[string]int `yaml:"categories"`
}

// Registry resolves (sheet, category, row, col) to sprite references
type Registry struct {
	sheets map[string]SheetSpec
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{sheets: make(map[string]SheetSpec)}
}

// AddSheet registers a sheet, replacing any sheet with the same name
func (r *Registry) AddSheet(spec SheetSpec) error {
	if spec.Name == "" {
		return errors.New("sheet name is empty")
	}
	if spec.TileWidth <= 0 || spec.TileHeight <= 0 {
		return fmt.Errorf("sheet %q: tile size %dx%d must be positive", spec.Name, spec.TileWidth, spec.TileHeight)
	}
	r.sheets[spec.Name] = spec
	return nil
}

// Sheet returns the spec registered under name
func (r *Registry) Sheet(name string) (SheetSpec, bool) {
	spec, ok := r.sheets[name]
	return spec, ok
}

// Sheets returns every registered sheet sorted by name
func (r *Registry) Sheets() []SheetSpec {
	out := make([]SheetSpec, 0, len(r.sheets))
	for _, spec := range r.sheets {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Frame returns the frame at row/col inside category. An empty category
// addresses the sheet from its first row.
func (r *Registry) Frame(sheet, category string, row, col int) (components.SpriteRef, error) {
	spec, ok := r.sheets[sheet]
	if !ok {
		return components.SpriteRef{}, fmt.Errorf("sheet %q: %w", sheet, ErrSpriteNotFound)
	}

	base := 0
	if category != "" {
		base, ok = spec.Categories[category]
		if !ok {
			return components.SpriteRef{}, fmt.Errorf("sheet %q category %q: %w", sheet, category, ErrSpriteNotFound)
		}
	}

	gridRow := base + row
	if row < 0 || col < 0 ||
		(spec.Columns > 0 && col >= spec.Columns) ||
		(spec.Rows > 0 && gridRow >= spec.Rows) {
		return components.SpriteRef{}, fmt.Errorf("sheet %q %s[%d,%d]: %w", sheet, category, row, col, ErrSpriteNotFound)
	}

	x := col * spec.TileWidth
	y := gridRow * spec.TileHeight
	return components.SpriteRef{
		Sheet: sheet,
		Frame: image.Rect(x, y, x+spec.TileWidth, y+spec.TileHeight),
	}, nil
}

// Frames resolves consecutive columns first..first+count-1 of one row
func (r *Registry) Frames(sheet, category string, row, first, count int) ([]components.SpriteRef, error) {
	if count <= 0 {
		return nil, fmt.Errorf("sheet %q %s row %d: no frames requested: %w", sheet, category, row, ErrSpriteNotFound)
	}
	out := make([]components.SpriteRef, 0, count)
	for col := first; col < first+count; col++ {
		ref, err := r.Frame(sheet, category, row, col)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}
