// Package render draws the world with ebiten. Everything here runs on the
// host side; the simulation packages never import it.
package render

import (
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-dungeon/assets"
	"ebiten-dungeon/components"
	"ebiten-dungeon/logger"
)

// SheetCache holds the decoded image of every registry sheet
type SheetCache struct {
	registry *assets.Registry
	images   map[string]*ebiten.Image
}

// NewSheetCache creates an empty cache over registry
func NewSheetCache(registry *assets.Registry) *SheetCache {
	return &SheetCache{
		registry: registry,
		images:   make(map[string]*ebiten.Image),
	}
}

// Load decodes every sheet that has a path. A sheet whose image cannot be
// read is skipped; sprites from it fall back to their tint.
func (c *SheetCache) Load() int {
	log := logger.System("render")
	loaded := 0
	for _, spec := range c.registry.Sheets() {
		if spec.Path == "" {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(spec.Path)
		if err != nil {
			log.WithError(err).WithField("sheet", spec.Name).Warn("sheet image unavailable")
			continue
		}
		c.images[spec.Name] = img
		loaded++
	}
	return loaded
}

// Put stores an already decoded sheet image
func (c *SheetCache) Put(sheet string, img *ebiten.Image) {
	c.images[sheet] = img
}

// SubImage returns the frame referenced by sprite, or nil when the sheet
// image is not loaded or the frame lies outside it
func (c *SheetCache) SubImage(sprite components.SpriteRef) *ebiten.Image {
	img, ok := c.images[sprite.Sheet]
	if !ok || sprite.Frame.Empty() {
		return nil
	}
	if !sprite.Frame.In(img.Bounds()) {
		return nil
	}
	return img.SubImage(sprite.Frame).(*ebiten.Image)
}

// frameSize returns the source size of a sprite in pixels
func frameSize(sprite components.SpriteRef) image.Point {
	return sprite.Frame.Size()
}
