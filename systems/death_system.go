package systems

import (
	"github.com/sirupsen/logrus"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
)

// CorpseTag marks entities whose death animation has completed
const CorpseTag = "corpse"

// DeathSystem handles the consequences of death events
type DeathSystem struct {
	initialized bool
	playerDied  bool
	log         *logrus.Entry
}

// NewDeathSystem creates a new death system
func NewDeathSystem() *DeathSystem {
	return &DeathSystem{log: logger.System("death")}
}

// Initialize sets up event listeners
func (s *DeathSystem) Initialize(world *ecs.World) {
	if s.initialized {
		return
	}

	world.GetEventManager().Subscribe(EventDeath, func(event ecs.Event) {
		s.handleDeath(event.(DeathEvent))
	})
	world.GetEventManager().Subscribe(EventRetired, func(event ecs.Event) {
		s.handleRetired(event.(EntityRetiredEvent))
	})

	s.initialized = true
}

// Preload implements ecs.System
func (s *DeathSystem) Preload(world *ecs.World) error {
	s.Initialize(world)
	return nil
}

func (s *DeathSystem) handleDeath(event DeathEvent) {
	fields := logrus.Fields{"entity": event.Entity.Name}
	if event.Killer != nil {
		fields["killer"] = event.Killer.Name
	}
	s.log.WithFields(fields).Info("death")

	if event.Entity.HasTag(ecs.PlayerTag) {
		s.playerDied = true
	}
}

// handleRetired turns a finished death animation into a corpse that no
// longer collides
func (s *DeathSystem) handleRetired(event EntityRetiredEvent) {
	event.Entity.RemoveComponent(components.CollisionID)
	event.Entity.AddTag(CorpseTag)
	s.log.WithField("entity", event.Entity.Name).Debug("retired")
}

// PlayerDied reports whether the player has died
func (s *DeathSystem) PlayerDied() bool {
	return s.playerDied
}

// Update registers with the event system if not already initialized
func (s *DeathSystem) Update(dt float64, world *ecs.World) {
	if !s.initialized {
		s.Initialize(world)
	}
}
