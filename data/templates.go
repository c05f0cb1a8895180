package data

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// AnimationSpec places one named animation on a sheet row
type AnimationSpec struct {
	Row   int     `yaml:"row"`
	First int     `yaml:"first"`
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"` // Frames per millisecond
	Loop  bool    `yaml:"loop"`
}

// CollisionSpec overrides the render box used for collision
type CollisionSpec struct {
	Shape   string  `yaml:"shape"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// EntityTemplate describes a character: the player or an enemy kind
type EntityTemplate struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Visual appearance
	Sheet      string                   `yaml:"sheet"`
	Category   string                   `yaml:"category"`
	Width      float64                  `yaml:"width"`
	Height     float64                  `yaml:"height"`
	Color      string                   `yaml:"color"` // Fallback fill, hex "#rrggbb"
	Animations map[string]AnimationSpec `yaml:"animations"`
	Collision  CollisionSpec            `yaml:"collision"`

	// Stats
	Health      int     `yaml:"health"`
	AttackPower int     `yaml:"attack_power"`
	AttackRange float64 `yaml:"attack_range"`
	Defense     int     `yaml:"defense"`
	Knockback   float64 `yaml:"knockback"`
	Speed       float64 `yaml:"speed"`

	// Behavior
	AggroRange        float64     `yaml:"aggro_range"`
	InventoryCapacity int         `yaml:"inventory_capacity"`
	Loot              []LootEntry `yaml:"loot"`
	Tags              []string    `yaml:"tags"`
}

// LootEntry is one weighted roll of an enemy's loot table
type LootEntry struct {
	Item     string `yaml:"item"`
	Weight   int    `yaml:"weight"`
	MinCount int    `yaml:"min"`
	MaxCount int    `yaml:"max"`
}

// ItemTemplate defines a template for creating items
type ItemTemplate struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Icon        SpriteSpec `yaml:"icon"`
	Size        float64    `yaml:"size"`
}

// templateFile is the on-disk layout of a template document
type templateFile struct {
	Entities []*EntityTemplate `yaml:"entities"`
	Items    []*ItemTemplate   `yaml:"items"`
}

// EntityTemplateManager manages all entity and item templates
type EntityTemplateManager struct {
	Templates     map[string]*EntityTemplate
	ItemTemplates map[string]*ItemTemplate
}

// NewEntityTemplateManager creates a new template manager
func NewEntityTemplateManager() *EntityTemplateManager {
	return &EntityTemplateManager{
		Templates:     make(map[string]*EntityTemplate),
		ItemTemplates: make(map[string]*ItemTemplate),
	}
}

// LoadTemplatesFromDirectory loads every .yaml/.yml file in dirPath
func (m *EntityTemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, file := range files {
		ext := filepath.Ext(file.Name())
		if file.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTemplateFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load template from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTemplateFromFile loads one template document
func (m *EntityTemplateManager) LoadTemplateFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return m.LoadTemplates(raw)
}

// LoadTemplates decodes a template document and adds its templates
func (m *EntityTemplateManager) LoadTemplates(raw []byte) error {
	var doc templateFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}

	for _, template := range doc.Entities {
		if err := ValidateEntityTemplate(template); err != nil {
			return err
		}
		m.Templates[template.ID] = template
	}
	for _, template := range doc.Items {
		if err := ValidateItemTemplate(template); err != nil {
			return err
		}
		m.ItemTemplates[template.ID] = template
	}
	return nil
}

// GetTemplate returns a template by ID
func (m *EntityTemplateManager) GetTemplate(id string) (*EntityTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// GetItemTemplate returns an item template by ID
func (m *EntityTemplateManager) GetItemTemplate(id string) (*ItemTemplate, bool) {
	template, ok := m.ItemTemplates[id]
	return template, ok
}

// TemplateIDs returns the IDs of all entity templates, sorted
func (m *EntityTemplateManager) TemplateIDs() []string {
	ids := make([]string, 0, len(m.Templates))
	for id := range m.Templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}

// ValidateEntityTemplate ensures that the template can build an entity
func ValidateEntityTemplate(template *EntityTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("entity template missing id")
	}
	if template.Width <= 0 || template.Height <= 0 {
		return fmt.Errorf("entity template '%s' needs a positive width and height", template.ID)
	}
	if template.Health <= 0 {
		return fmt.Errorf("entity template '%s' needs positive health", template.ID)
	}
	for name, anim := range template.Animations {
		if anim.Count <= 0 {
			return fmt.Errorf("entity template '%s' animation '%s' has no frames", template.ID, name)
		}
	}
	return nil
}

// ValidateItemTemplate ensures that the item template has all required fields
func ValidateItemTemplate(template *ItemTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("item template missing id")
	}
	if template.Name == "" {
		return fmt.Errorf("item template '%s' missing name", template.ID)
	}
	return nil
}
