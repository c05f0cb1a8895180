package systems

import (
	"math/rand"

	"ebiten-dungeon/ecs"
)

// Pipeline holds the simulation systems in the order they run each tick.
// Rendering is appended by the host after Register.
type Pipeline struct {
	Input       *InputSystem
	Movement    *MovementSystem
	Collision   *CollisionSystem
	Animation   *AnimationSystem
	Combat      *CombatSystem
	Inventory   *InventorySystem
	Interaction *InteractionSystem
	AI          *AISystem
	Death       *DeathSystem
	Camera      *CameraSystem
}

// NewPipeline creates every simulation system. viewW and viewH size the
// camera viewport in pixels.
func NewPipeline(bindings KeyBindings, rng *rand.Rand, viewW, viewH float64) *Pipeline {
	return &Pipeline{
		Input:       NewInputSystem(bindings),
		Movement:    NewMovementSystem(),
		Collision:   NewCollisionSystem(),
		Animation:   NewAnimationSystem(),
		Combat:      NewCombatSystem(rng),
		Inventory:   NewInventorySystem(),
		Interaction: NewInteractionSystem(),
		AI:          NewAISystem(),
		Death:       NewDeathSystem(),
		Camera:      NewCameraSystem(viewW, viewH),
	}
}

// Systems returns the systems in execution order
func (p *Pipeline) Systems() []ecs.System {
	return []ecs.System{
		p.Input,
		p.Movement,
		p.Collision,
		p.Animation,
		p.Combat,
		p.Inventory,
		p.Interaction,
		p.AI,
		p.Death,
		p.Camera,
	}
}

// Register adds the systems to world in execution order
func (p *Pipeline) Register(world *ecs.World) {
	for _, system := range p.Systems() {
		world.AddSystem(system)
	}
}
