package systems

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// CameraSystem keeps the viewport centred on the player, clamped to the
// level bounds
type CameraSystem struct {
	ecs.BaseSystem
	X, Y float64

	viewW, viewH     float64
	boundsW, boundsH float64
}

// NewCameraSystem creates a camera with a viewport of viewW x viewH pixels
func NewCameraSystem(viewW, viewH float64) *CameraSystem {
	return &CameraSystem{viewW: viewW, viewH: viewH}
}

// SetBounds sets the level size the camera may not scroll past. Zero
// leaves an axis unbounded.
func (s *CameraSystem) SetBounds(w, h float64) {
	s.boundsW, s.boundsH = w, h
}

// Update centers the camera on the player
func (s *CameraSystem) Update(dt float64, world *ecs.World) {
	player, ok := playerEntity(world)
	if !ok {
		return
	}
	pos, ok := ecs.Get[*components.PositionComponent](player)
	if !ok {
		return
	}

	var w, h float64
	if render, ok := ecs.Get[*components.RenderComponent](player); ok {
		w, h = render.Width, render.Height
	}

	s.X = clampAxis(pos.X+w/2-s.viewW/2, s.viewW, s.boundsW)
	s.Y = clampAxis(pos.Y+h/2-s.viewH/2, s.viewH, s.boundsH)
}

func clampAxis(v, view, bound float64) float64 {
	if bound <= 0 {
		return v
	}
	if bound <= view {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > bound-view {
		return bound - view
	}
	return v
}

// WorldToScreen converts world coordinates to screen coordinates
func (s *CameraSystem) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	return worldX - s.X, worldY - s.Y
}

// ScreenToWorld converts screen coordinates to world coordinates
func (s *CameraSystem) ScreenToWorld(screenX, screenY float64) (worldX, worldY float64) {
	return screenX + s.X, screenY + s.Y
}

// IsVisible reports whether a w x h box at world x, y overlaps the viewport
func (s *CameraSystem) IsVisible(x, y, w, h float64) bool {
	return x+w > s.X && x < s.X+s.viewW &&
		y+h > s.Y && y < s.Y+s.viewH
}
