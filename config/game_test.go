package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultGameConfig()
	require.NoError(t, cfg.Validate())

	registry, err := cfg.Registry()
	require.NoError(t, err)
	_, ok := registry.Sheet("characters")
	assert.True(t, ok)
}

func TestMergeOverDefaults(t *testing.T) {
	cfg := DefaultGameConfig()
	require.NoError(t, cfg.Merge([]byte(`
level: levels/other.yaml
debug: true
key_bindings:
  attack: [J, Space]
audio:
  music: sounds/theme.ogg
  volume: 0.8
player_overrides:
  Combat.AttackPower: 20
`)))

	assert.Equal(t, "levels/other.yaml", cfg.Level)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"J", "Space"}, cfg.KeyBindings["attack"])
	assert.Equal(t, []string{"A", "ArrowLeft"}, cfg.KeyBindings["left"], "other actions keep defaults")
	assert.Equal(t, "sounds/theme.ogg", cfg.Audio.Music)
	assert.Equal(t, 0.8, cfg.Audio.Volume)
	assert.Equal(t, "templates", cfg.Templates)
	assert.Equal(t, 20, cfg.Overrides["Combat.AttackPower"])
	assert.Len(t, cfg.Sheets, 2)
}

func TestMergeRejectsBadValues(t *testing.T) {
	assert.Error(t, DefaultGameConfig().Merge([]byte("audio: {volume: 3}\n")))
	assert.Error(t, DefaultGameConfig().Merge([]byte("level: ''\n")))
	assert.Error(t, DefaultGameConfig().Merge([]byte("sheets:\n  - {name: a, tile_width: 1, tile_height: 1}\n  - {name: a, tile_width: 1, tile_height: 1}\n")))
	assert.Error(t, DefaultGameConfig().Merge([]byte("level: [\n")))
}

func TestLoadGameConfig(t *testing.T) {
	cfg, err := LoadGameConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultGameConfig().Level, cfg.Level)

	missing := filepath.Join(t.TempDir(), "game.yaml")
	_, err = LoadGameConfig(missing, false)
	assert.Error(t, err)
	cfg, err = LoadGameConfig(missing, true)
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	require.NoError(t, os.WriteFile(missing, []byte("seed: 42\n"), 0o644))
	cfg, err = LoadGameConfig(missing, false)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestWindowSize(t *testing.T) {
	w, h := GetWindowSize()
	sw, sh := GetScreenDimensions()
	assert.Equal(t, sw*WindowScale, w)
	assert.Equal(t, sh*WindowScale, h)
}
