package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Logical screen dimensions in tiles
	ScreenWidth  = 20
	ScreenHeight = 15

	// Height of the message strip under the play field, in tiles
	MessagePanelHeight = 3

	// Play field height in tiles
	GameScreenHeight = ScreenHeight - MessagePanelHeight

	// Logical screen dimensions in pixels
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize

	// Integer scale applied to the window
	WindowScale = 3
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the size of the OS window
func GetWindowSize() (width, height int) {
	return WindowWidth * WindowScale, WindowHeight * WindowScale
}
