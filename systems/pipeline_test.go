package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

const frameStep = 16 * time.Millisecond

// newPipelineLoop registers the full simulation in tick order and starts it
func newPipelineLoop(t *testing.T, world *ecs.World) (*Pipeline, *ecs.Loop, time.Time) {
	t.Helper()
	pipeline := NewPipeline(nil, rand.New(rand.NewSource(1)), 160, 120)
	pipeline.Register(world)

	loop := ecs.NewLoop(world, nil)
	start := time.Unix(0, 0)
	require.NoError(t, loop.Start(start))
	return pipeline, loop, start
}

func TestPipelineRegistersSystemsInTickOrder(t *testing.T) {
	p := NewPipeline(nil, nil, 160, 120)
	assert.Equal(t, []ecs.System{
		p.Input, p.Movement, p.Collision, p.Animation, p.Combat,
		p.Inventory, p.Interaction, p.AI, p.Death, p.Camera,
	}, p.Systems())
}

func TestPipelineBumpThenStop(t *testing.T) {
	world := ecs.NewWorld()
	hero := newBox(world, "hero", 0, 0)
	hero.AddTag(ecs.PlayerTag)
	hero.AddComponent(&components.MovementComponent{Speed: 2})
	wall := newBox(world, "wall", 12, 0)
	wall.AddComponent(&components.SolidComponent{})

	pipeline, loop, start := newPipelineLoop(t, world)
	pipeline.Input.KeyDown("D")

	pos, _ := ecs.Get[*components.PositionComponent](hero)
	var xs []float64
	var blocked []bool
	for i := 1; i <= 5; i++ {
		require.NoError(t, loop.Frame(start.Add(time.Duration(i)*frameStep)))
		xs = append(xs, pos.X)
		blocked = append(blocked, edgesOf(hero).Right)
	}

	// the third step overlaps the wall, the fourth is refused
	assert.Equal(t, []float64{2, 4, 6, 6, 6}, xs)
	assert.Equal(t, []bool{false, false, true, true, true}, blocked)
	assert.True(t, edgesOf(wall).Left)

	// backing off clears both sides on the next tick
	pipeline.Input.KeyUp("D")
	pipeline.Input.KeyDown("A")
	require.NoError(t, loop.Frame(start.Add(6*frameStep)))
	assert.Equal(t, 4.0, pos.X)
	assert.Equal(t, components.Edges{}, edgesOf(hero))
	assert.Equal(t, components.Edges{}, edgesOf(wall))
}

func TestPipelineKillTickWithVictimStoredAfterKiller(t *testing.T) {
	world := ecs.NewWorld()

	// the killer is stored first so the combat pass reaches the victim after
	// it has been stripped
	enemyCombat := &components.CombatComponent{AttackRange: 12, AttackPower: 9, Health: 10, MaxHealth: 10, Attacking: true}
	enemy := newBox(world, "goblin", 0, 0)
	enemy.AddComponent(&components.MovementComponent{Speed: 1, FacingAngle: 0})
	enemy.AddComponent(&components.AIComponent{AggroRange: 50})
	enemy.AddComponent(enemyCombat)

	heroCombat := &components.CombatComponent{AttackRange: 12, AttackPower: 3, Health: 3, MaxHealth: 3}
	hero := newBox(world, "hero", -6, 0)
	hero.AddTag(ecs.PlayerTag)
	hero.AddComponent(&components.MovementComponent{Speed: 1})
	hero.AddComponent(heroCombat)

	deaths := 0
	world.GetEventManager().Subscribe(EventDeath, func(ecs.Event) { deaths++ })

	pipeline, loop, start := newPipelineLoop(t, world)
	pipeline.Input.KeyDown("Space")

	require.NotPanics(t, func() {
		require.NoError(t, loop.Frame(start.Add(frameStep)))
	})

	assert.Equal(t, 1, deaths)
	assert.True(t, heroCombat.Dead)
	assert.True(t, pipeline.Death.PlayerDied())
	for _, id := range []ecs.ComponentID{components.CombatID, components.MovementID} {
		assert.False(t, hero.HasComponent(id), components.ComponentName(id))
	}
	assert.Equal(t, AttackCooldownUnits, enemyCombat.AttackCooldown)

	// later ticks see a corpse player and an idle enemy
	for i := 2; i <= 70; i++ {
		require.NotPanics(t, func() {
			require.NoError(t, loop.Frame(start.Add(time.Duration(i)*frameStep)))
		})
	}
	assert.Equal(t, 1, deaths)
	assert.False(t, enemyCombat.Attacking)
	assert.Equal(t, 0, pipeline.Combat.ActiveCooldowns())
}
