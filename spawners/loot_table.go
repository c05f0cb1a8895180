package spawners

import (
	"math/rand"

	"ebiten-dungeon/data"
)

// LootTable defines a table of possible items and their drop chances
type LootTable struct {
	Entries []LootTableEntry
}

// LootTableEntry represents a single entry in a loot table
type LootTableEntry struct {
	ItemTemplateID string
	Weight         int
	MinCount       int
	MaxCount       int
}

// NewLootTable creates a new loot table
func NewLootTable(entries []LootTableEntry) *LootTable {
	return &LootTable{
		Entries: entries,
	}
}

// LootTableFromTemplate converts the loot entries of a template
func LootTableFromTemplate(entries []data.LootEntry) *LootTable {
	table := &LootTable{Entries: make([]LootTableEntry, 0, len(entries))}
	for _, e := range entries {
		table.Entries = append(table.Entries, LootTableEntry{
			ItemTemplateID: e.Item,
			Weight:         e.Weight,
			MinCount:       e.MinCount,
			MaxCount:       e.MaxCount,
		})
	}
	return table
}

// Roll returns the item template IDs won on one roll of every entry.
// Each entry hits with probability weight/total.
func (lt *LootTable) Roll(rng *rand.Rand) []string {
	totalWeight := 0
	for _, entry := range lt.Entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return nil
	}

	var items []string
	for _, entry := range lt.Entries {
		if rng.Intn(totalWeight) >= entry.Weight {
			continue
		}
		count := entry.MinCount
		if entry.MaxCount > entry.MinCount {
			count += rng.Intn(entry.MaxCount - entry.MinCount + 1)
		}
		for i := 0; i < count; i++ {
			items = append(items, entry.ItemTemplateID)
		}
	}
	return items
}
