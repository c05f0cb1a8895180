package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ebiten-dungeon/assets"
)

// AudioConfig names optional sound files; empty paths disable a sound
type AudioConfig struct {
	Music  string  `yaml:"music"`
	Hit    string  `yaml:"hit"`
	Volume float64 `yaml:"volume"`
}

// GameConfig is everything the host reads at startup
type GameConfig struct {
	Level       string                 `yaml:"level"`
	Templates   string                 `yaml:"templates"` // Directory of template documents
	Sheets      []assets.SheetSpec     `yaml:"sheets"`
	KeyBindings map[string][]string    `yaml:"key_bindings"`
	Audio       AudioConfig            `yaml:"audio"`
	Debug       bool                   `yaml:"debug"`
	Seed        int64                  `yaml:"seed"` // 0 seeds from the clock
	Overrides   map[string]interface{} `yaml:"player_overrides"`
}

// DefaultGameConfig returns the configuration used when no file is given
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Level:     "levels/crypt.yaml",
		Templates: "templates",
		Sheets: []assets.SheetSpec{
			{
				Name: "dungeon", Path: "images/dungeon.png",
				TileWidth: TileSize, TileHeight: TileSize, Columns: 8, Rows: 4,
				Categories: map[string]int{"props": 2, "items": 3},
			},
			{
				Name: "characters", Path: "images/characters.png",
				TileWidth: TileSize, TileHeight: TileSize, Columns: 8, Rows: 20,
				Categories: map[string]int{"hero": 0, "goblin": 8, "skeleton": 13},
			},
		},
		KeyBindings: map[string][]string{
			"left":     {"A", "ArrowLeft"},
			"right":    {"D", "ArrowRight"},
			"up":       {"W", "ArrowUp"},
			"down":     {"S", "ArrowDown"},
			"attack":   {"Space"},
			"interact": {"E"},
			"drop":     {"Q"},
		},
		Audio: AudioConfig{Volume: 0.5},
	}
}

// LoadGameConfig reads path over the defaults. A missing file is not an
// error when allowMissing is set.
func LoadGameConfig(path string, allowMissing bool) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Merge(raw); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge decodes a YAML document on top of the current values. Bindings are
// merged per action; sheets replace the default list when given.
func (c *GameConfig) Merge(raw []byte) error {
	bindings := c.KeyBindings
	c.KeyBindings = nil
	if err := yaml.Unmarshal(raw, c); err != nil {
		c.KeyBindings = bindings
		return err
	}
	for action, keys := range c.KeyBindings {
		if bindings == nil {
			bindings = make(map[string][]string)
		}
		bindings[action] = keys
	}
	c.KeyBindings = bindings
	return c.Validate()
}

// Validate checks values that would only fail later at runtime
func (c *GameConfig) Validate() error {
	if c.Level == "" {
		return errors.New("level path is empty")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %.2f outside [0, 1]", c.Audio.Volume)
	}
	seen := make(map[string]bool)
	for _, sheet := range c.Sheets {
		if seen[sheet.Name] {
			return fmt.Errorf("sheet %q listed twice", sheet.Name)
		}
		seen[sheet.Name] = true
	}
	return nil
}

// Registry builds the sprite registry described by the sheets
func (c *GameConfig) Registry() (*assets.Registry, error) {
	registry := assets.NewRegistry()
	for _, sheet := range c.Sheets {
		if err := registry.AddSheet(sheet); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
