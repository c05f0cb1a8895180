package systems

import (
	"github.com/sirupsen/logrus"

	"ebiten-dungeon/ai"
	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
)

// AISystem ticks one behavior tree per AI-controlled entity
type AISystem struct {
	trees map[*ecs.Entity]ai.Node
	log   *logrus.Entry
}

// NewAISystem creates a new AI system
func NewAISystem() *AISystem {
	return &AISystem{
		trees: make(map[*ecs.Entity]ai.Node),
		log:   logger.System("ai"),
	}
}

// Preload builds the trees of every entity present at startup
func (s *AISystem) Preload(world *ecs.World) error {
	for _, entity := range world.EntitiesWith(components.AIID) {
		s.trees[entity] = s.buildTree(world, entity)
	}
	s.log.WithField("agents", len(s.trees)).Debug("behavior trees built")
	return nil
}

// buildTree returns the root node for entity
func (s *AISystem) buildTree(world *ecs.World, entity *ecs.Entity) ai.Node {
	return ai.NewSelector(ai.NewChasePlayer(world, entity))
}

// Update ticks each tree exactly once. Entities spawned later get a tree
// lazily; trees of entities that lost their AI are dropped.
func (s *AISystem) Update(dt float64, world *ecs.World) {
	alive := make(map[*ecs.Entity]bool)
	for _, entity := range world.EntitiesWith(components.AIID) {
		alive[entity] = true
		tree, ok := s.trees[entity]
		if !ok {
			tree = s.buildTree(world, entity)
			s.trees[entity] = tree
		}
		tree.Tick()
	}

	for entity := range s.trees {
		if !alive[entity] {
			delete(s.trees, entity)
		}
	}
}

// Agents returns the number of entities with a behavior tree
func (s *AISystem) Agents() int {
	return len(s.trees)
}
