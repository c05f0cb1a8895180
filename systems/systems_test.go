package systems

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

func frames(n int) []components.SpriteRef {
	out := make([]components.SpriteRef, n)
	for i := range out {
		out[i] = components.SpriteRef{Sheet: "test", Frame: image.Rect(i*8, 0, i*8+8, 8)}
	}
	return out
}

func newBox(world *ecs.World, name string, x, y float64) *ecs.Entity {
	e := world.CreateEntity(name)
	e.AddComponent(&components.PositionComponent{X: x, Y: y})
	e.AddComponent(&components.RenderComponent{Width: 8, Height: 8})
	e.AddComponent(components.NewBoxCollision())
	return e
}

func newWorldInventory(world *ecs.World) *components.InventoryComponent {
	inv := components.NewInventoryComponent(64)
	world.CreateEntity(WorldInventoryName).AddComponent(inv)
	return inv
}

func edgesOf(e *ecs.Entity) components.Edges {
	c, _ := ecs.Get[*components.CollisionComponent](e)
	return c.Edges
}

func TestCollisionFlagsFacingEdges(t *testing.T) {
	world := ecs.NewWorld()
	a := newBox(world, "a", 10, 10)
	a.AddComponent(&components.MovementComponent{Speed: 1})
	b := newBox(world, "b", 14, 10)
	b.AddComponent(&components.SolidComponent{})

	NewCollisionSystem().Update(16, world)

	assert.Equal(t, components.Edges{Right: true}, edgesOf(a))
	assert.Equal(t, components.Edges{Left: true}, edgesOf(b))
}

func TestCollisionVerticalAxis(t *testing.T) {
	world := ecs.NewWorld()
	a := newBox(world, "a", 10, 10)
	a.AddComponent(&components.MovementComponent{Speed: 1})
	b := newBox(world, "b", 10, 16)
	b.AddComponent(&components.SolidComponent{})

	NewCollisionSystem().Update(16, world)

	assert.Equal(t, components.Edges{Bottom: true}, edgesOf(a))
	assert.Equal(t, components.Edges{Top: true}, edgesOf(b))
}

func TestCollisionResetsStaleEdges(t *testing.T) {
	world := ecs.NewWorld()
	a := newBox(world, "a", 10, 10)
	a.AddComponent(&components.MovementComponent{Speed: 1})
	b := newBox(world, "b", 14, 10)
	b.AddComponent(&components.SolidComponent{})

	sys := NewCollisionSystem()
	sys.Update(16, world)
	require.True(t, edgesOf(a).Right)

	pos, _ := ecs.Get[*components.PositionComponent](a)
	pos.X = 100
	sys.Update(16, world)
	assert.Equal(t, components.Edges{}, edgesOf(a))
}

func TestCollisionClearsSolidEdgesOnceMoverLeaves(t *testing.T) {
	world := ecs.NewWorld()
	a := newBox(world, "a", 10, 10)
	a.AddComponent(&components.MovementComponent{Speed: 1})
	wall := newBox(world, "wall", 14, 10)
	wall.AddComponent(&components.SolidComponent{})

	sys := NewCollisionSystem()
	sys.Update(16, world)
	require.True(t, edgesOf(wall).Left)

	pos, _ := ecs.Get[*components.PositionComponent](a)
	pos.X = 100
	sys.Update(16, world)
	assert.Equal(t, components.Edges{}, edgesOf(wall))
}

func TestCollisionSkipsDecorAndShapeNone(t *testing.T) {
	world := ecs.NewWorld()
	a := newBox(world, "a", 10, 10)
	a.AddComponent(&components.MovementComponent{Speed: 1})
	// no Solid and no Movement: decoration
	newBox(world, "rug", 12, 10)
	ghost := newBox(world, "ghost", 14, 10)
	ghost.AddComponent(&components.SolidComponent{})
	c, _ := ecs.Get[*components.CollisionComponent](ghost)
	c.Shape = components.ShapeNone

	NewCollisionSystem().Update(16, world)
	assert.Equal(t, components.Edges{}, edgesOf(a))
}

func TestMovementSubtractionConvention(t *testing.T) {
	world := ecs.NewWorld()
	e := newBox(world, "hero", 10, 10)
	move := &components.MovementComponent{Direction: components.Vec2{X: 1}, Speed: 2}
	e.AddComponent(move)
	pos, _ := ecs.Get[*components.PositionComponent](e)
	render, _ := ecs.Get[*components.RenderComponent](e)

	sys := NewMovementSystem()
	sys.Update(16, world)
	assert.Equal(t, 8.0, pos.X)
	assert.True(t, render.Flipped)
	assert.Equal(t, 0.0, move.FacingAngle)

	move.Direction = components.Vec2{X: -1}
	sys.Update(16, world)
	assert.Equal(t, 10.0, pos.X)
	assert.False(t, render.Flipped)
	assert.InDelta(t, 180.0, move.FacingAngle, 1e-9)

	move.Direction = components.Vec2{Y: 1}
	sys.Update(16, world)
	assert.Equal(t, 12.0, pos.Y)
	assert.InDelta(t, 90.0, move.FacingAngle, 1e-9)

	// standing still keeps the last facing
	move.Stop()
	sys.Update(16, world)
	assert.InDelta(t, 90.0, move.FacingAngle, 1e-9)
}

func TestMovementHonorsBlockedEdges(t *testing.T) {
	world := ecs.NewWorld()
	e := newBox(world, "hero", 10, 10)
	e.AddComponent(&components.MovementComponent{Direction: components.Vec2{X: 1, Y: -1}, Speed: 1})
	c, _ := ecs.Get[*components.CollisionComponent](e)
	c.Edges = components.Edges{Left: true, Top: true}

	NewMovementSystem().Update(16, world)

	pos, _ := ecs.Get[*components.PositionComponent](e)
	assert.Equal(t, components.PositionComponent{X: 10, Y: 10}, *pos)
}

func TestMovementIgnoresStaticEntities(t *testing.T) {
	world := ecs.NewWorld()
	wall := newBox(world, "wall", 3, 4)
	wall.AddComponent(&components.SolidComponent{})

	NewMovementSystem().Update(16, world)

	pos, _ := ecs.Get[*components.PositionComponent](wall)
	assert.Equal(t, components.PositionComponent{X: 3, Y: 4}, *pos)
}

func TestSelectAnimation(t *testing.T) {
	tests := []struct {
		name string
		in   AnimationInput
		want string
	}{
		{"idle default", AnimationInput{}, components.AnimIdle},
		{"idle facing down", AnimationInput{FacingAngle: 90}, components.AnimIdle},
		{"idle facing up", AnimationInput{FacingAngle: -90}, components.AnimIdleUp},
		{"run sideways", AnimationInput{X: 1}, components.AnimRun},
		{"run down", AnimationInput{Y: 1}, components.AnimRun},
		{"run up", AnimationInput{Y: -1}, components.AnimRunUp},
		{"attack", AnimationInput{X: 1, Attacking: true}, components.AnimAttack},
		{"attack up", AnimationInput{Attacking: true, FacingAngle: -90}, components.AnimAttackUp},
		{"hurt wins", AnimationInput{Attacking: true, Hurt: true, X: 1}, components.AnimHurt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectAnimation(tt.in))
		})
	}
}

func TestNonLoopingAttackFinishes(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity("hero")
	e.AddComponent(&components.RenderComponent{})
	anim := components.NewAnimationComponent(map[string]*components.AnimationDefinition{
		components.AnimAttack: {Frames: frames(4), Speed: 0.01},
	}, components.AnimAttack)
	e.AddComponent(anim)
	combat := &components.CombatComponent{Attacking: true, AttackInitiated: true}
	e.AddComponent(combat)

	sys := NewAnimationSystem()
	sys.Update(150, world)
	assert.Equal(t, 1, anim.FrameIndex)
	assert.Equal(t, components.AnimationPlaying, anim.State())

	sys.Update(1000, world)
	assert.Equal(t, components.AnimationFinished, anim.State())
	assert.False(t, anim.Playing)
	assert.Equal(t, 3, anim.FrameIndex)
	assert.False(t, combat.Attacking)

	render, _ := ecs.Get[*components.RenderComponent](e)
	assert.Equal(t, frames(4)[3], render.Sprite)
}

func TestLoopingAnimationWraps(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity("torch")
	e.AddComponent(&components.RenderComponent{})
	anim := components.NewAnimationComponent(map[string]*components.AnimationDefinition{
		"flicker": {Frames: frames(3), Speed: 0.01, Loop: true},
	}, "flicker")
	e.AddComponent(anim)

	NewAnimationSystem().Update(450, world)
	assert.Equal(t, 1, anim.FrameIndex)
	assert.InDelta(t, 50, anim.Elapsed, 1e-9)
	assert.True(t, anim.Playing)
}

func TestDeathAnimationRetiresEntity(t *testing.T) {
	world := ecs.NewWorld()
	e := newBox(world, "goblin", 0, 0)
	anim := components.NewAnimationComponent(map[string]*components.AnimationDefinition{
		components.AnimDeath: {Frames: frames(2), Speed: 0.01},
	}, components.AnimDeath)
	e.AddComponent(anim)

	death := NewDeathSystem()
	require.NoError(t, death.Preload(world))

	NewAnimationSystem().Update(500, world)
	assert.True(t, e.HasTag(CorpseTag))
	assert.False(t, e.HasComponent(components.CollisionID))
}

type combatFixture struct {
	world    *ecs.World
	system   *CombatSystem
	attacker *ecs.Entity
	target   *ecs.Entity
	atk      *components.CombatComponent
	def      *components.CombatComponent
	ground   *components.InventoryComponent
}

// newCombatFixture places the target screen-left of an attacker that last
// moved left, which the cone test accepts.
func newCombatFixture(targetHealth int) *combatFixture {
	f := &combatFixture{world: ecs.NewWorld()}
	f.ground = newWorldInventory(f.world)

	f.atk = &components.CombatComponent{AttackRange: 12, AttackPower: 9, Health: 10, MaxHealth: 10}
	f.attacker = newBox(f.world, "hero", 0, 0)
	f.attacker.AddTag(ecs.PlayerTag)
	f.attacker.AddComponent(&components.MovementComponent{Speed: 1, FacingAngle: 0})
	f.attacker.AddComponent(f.atk)

	f.def = &components.CombatComponent{Defense: 4, Health: targetHealth, MaxHealth: targetHealth}
	f.target = newBox(f.world, "goblin", -6, 0)
	f.target.AddComponent(f.def)
	f.target.AddComponent(&components.MovementComponent{Speed: 1})
	f.target.AddComponent(&components.AIComponent{AggroRange: 40})

	f.system = NewCombatSystem(rand.New(rand.NewSource(1)))
	return f
}

func TestCombatAppliesDamageOnce(t *testing.T) {
	f := newCombatFixture(20)
	var hits []CombatEvent
	f.world.GetEventManager().Subscribe(EventCombat, func(e ecs.Event) {
		hits = append(hits, e.(CombatEvent))
	})

	f.atk.Attacking = true
	f.system.Update(16, f.world)
	f.system.Update(16, f.world)
	f.system.Update(16, f.world)

	assert.Equal(t, 15, f.def.Health)
	assert.True(t, f.def.Hurt)
	require.Len(t, hits, 1)
	assert.Equal(t, 5, hits[0].Damage)
	assert.Equal(t, AttackCooldownUnits, f.atk.AttackCooldown)
}

func TestCombatDamageNeverNegative(t *testing.T) {
	f := newCombatFixture(20)
	f.def.Defense = 50
	f.atk.Attacking = true
	f.system.Update(16, f.world)
	assert.Equal(t, 20, f.def.Health)
	assert.True(t, f.def.Hurt)
}

func TestCombatConeExcludesTargetStraightAhead(t *testing.T) {
	f := newCombatFixture(20)
	pos, _ := ecs.Get[*components.PositionComponent](f.target)
	pos.X = 6
	f.atk.Attacking = true
	f.system.Update(16, f.world)
	assert.Equal(t, 20, f.def.Health)
}

func TestCombatOutOfRange(t *testing.T) {
	f := newCombatFixture(20)
	pos, _ := ecs.Get[*components.PositionComponent](f.target)
	pos.X = -12
	f.atk.Attacking = true
	f.system.Update(16, f.world)
	assert.Equal(t, 20, f.def.Health)
}

func TestCooldownCountsDownAndClearsAttack(t *testing.T) {
	f := newCombatFixture(100)
	f.atk.Attacking = true
	f.atk.AttackInitiated = true
	f.system.Update(16, f.world)
	require.Equal(t, 1, f.system.ActiveCooldowns())

	f.system.Update(50, f.world)
	f.system.Update(50, f.world)
	assert.Equal(t, AttackCooldownUnits-1, f.atk.AttackCooldown)
	assert.True(t, f.atk.Attacking)

	f.system.Update(900, f.world)
	assert.Equal(t, 0, f.atk.AttackCooldown)
	assert.False(t, f.atk.Attacking)
	assert.False(t, f.atk.AttackInitiated)
	assert.Equal(t, 0, f.system.ActiveCooldowns())
	assert.True(t, f.atk.CanAttack())
}

func TestCooldownCancelledWhenCombatRemoved(t *testing.T) {
	f := newCombatFixture(100)
	f.atk.Attacking = true
	f.system.Update(16, f.world)
	require.Equal(t, 1, f.system.ActiveCooldowns())

	f.attacker.RemoveComponent(components.CombatID)
	f.system.Update(16, f.world)
	assert.Equal(t, 0, f.system.ActiveCooldowns())
}

func TestKillRunsOnce(t *testing.T) {
	f := newCombatFixture(5)
	key := &components.ItemComponent{Name: "key"}
	inv := components.NewInventoryComponent(4)
	inv.Add(key)
	f.target.AddComponent(inv)
	f.target.AddComponent(components.NewAnimationComponent(map[string]*components.AnimationDefinition{
		components.AnimIdle:  {Frames: frames(1), Speed: 0.01, Loop: true},
		components.AnimDeath: {Frames: frames(3), Speed: 0.01},
	}, components.AnimIdle))

	deaths := 0
	f.world.GetEventManager().Subscribe(EventDeath, func(ecs.Event) { deaths++ })

	f.atk.Attacking = true
	f.system.Update(16, f.world)

	assert.Equal(t, 1, deaths)
	assert.True(t, f.def.Dead)
	assert.Equal(t, 0, f.def.Health)
	for _, id := range []ecs.ComponentID{components.CombatID, components.AIID, components.MovementID, components.InventoryID} {
		assert.False(t, f.target.HasComponent(id), components.ComponentName(id))
	}

	anim, _ := ecs.Get[*components.AnimationComponent](f.target)
	assert.Equal(t, components.AnimDeath, anim.Current)

	require.True(t, f.ground.Holds(key))
	assert.True(t, key.Dropped)
	assert.InDelta(t, -6, key.DropPosition.X, DropSpread)
	assert.InDelta(t, 0, key.DropPosition.Y, DropSpread)

	// the corpse is no longer a combatant
	for i := 0; i < 20; i++ {
		f.system.Update(100, f.world)
		f.atk.Attacking = true
	}
	assert.Equal(t, 1, deaths)
}

func TestItemRoundTrip(t *testing.T) {
	world := ecs.NewWorld()
	ground := newWorldInventory(world)
	player := newBox(world, "hero", 0, 0)
	player.AddTag(ecs.PlayerTag)
	bag := components.NewInventoryComponent(2)
	player.AddComponent(bag)

	potion := &components.ItemComponent{Name: "potion"}
	bag.Add(potion)

	require.NoError(t, DropItem(world, bag, potion, components.Vec2{X: 5, Y: 5}))
	assert.False(t, bag.Holds(potion))
	assert.True(t, ground.Holds(potion))
	assert.True(t, potion.Dropped)

	// dropping again fails: the bag no longer holds it
	assert.ErrorIs(t, DropItem(world, bag, potion, components.Vec2{}), ErrItemNotHeld)

	sys := NewInventorySystem()
	sys.Update(16, world)
	assert.True(t, ground.Holds(potion), "not picking up")

	bag.PickingUp = true
	sys.Update(16, world)
	assert.True(t, bag.Holds(potion))
	assert.False(t, ground.Holds(potion))
	assert.False(t, potion.Dropped)
}

func TestPickupRespectsRangeAndCapacity(t *testing.T) {
	world := ecs.NewWorld()
	ground := newWorldInventory(world)
	player := newBox(world, "hero", 0, 0)
	player.AddTag(ecs.PlayerTag)
	bag := components.NewInventoryComponent(1)
	bag.PickingUp = true
	player.AddComponent(bag)

	far := &components.ItemComponent{Name: "far", Dropped: true, DropPosition: components.Vec2{X: 100}}
	near := &components.ItemComponent{Name: "near", Dropped: true, DropPosition: components.Vec2{X: 3}}
	extra := &components.ItemComponent{Name: "extra", Dropped: true, DropPosition: components.Vec2{X: 1}}
	ground.Add(far)
	ground.Add(near)
	ground.Add(extra)

	sys := NewInventorySystem()
	sys.Update(16, world)
	sys.Update(16, world)

	assert.Equal(t, []*components.ItemComponent{near}, bag.Items)
	assert.True(t, ground.Holds(far))
	assert.True(t, ground.Holds(extra))
}

func TestDropWithoutWorldInventory(t *testing.T) {
	world := ecs.NewWorld()
	bag := components.NewInventoryComponent(1)
	item := &components.ItemComponent{Name: "x"}
	bag.Add(item)
	assert.ErrorIs(t, DropItem(world, bag, item, components.Vec2{}), ErrNoWorldInventory)
	assert.True(t, bag.Holds(item))
}

func TestTransferItemRefusesFullDestination(t *testing.T) {
	from := components.NewInventoryComponent(2)
	to := components.NewInventoryComponent(0)
	item := &components.ItemComponent{Name: "x"}
	from.Add(item)
	assert.False(t, TransferItem(from, to, item))
	assert.True(t, from.Holds(item))
}

func newDoorWorld(withKey bool) (*ecs.World, *ecs.Entity, *components.InventoryComponent) {
	world := ecs.NewWorld()
	player := newBox(world, "hero", 0, 0)
	player.AddTag(ecs.PlayerTag)
	bag := components.NewInventoryComponent(4)
	if withKey {
		bag.Add(&components.ItemComponent{Name: "gold-key"})
	}
	player.AddComponent(bag)

	open := components.SpriteRef{Sheet: "tiles", Frame: image.Rect(16, 0, 32, 16)}
	door := newBox(world, "door", 10, 0)
	door.AddComponent(&components.SolidComponent{})
	door.AddComponent(components.NewLockedDoor("gold-key", open))
	return world, door, bag
}

func TestInteractionUnlocksDoor(t *testing.T) {
	world, door, bag := newDoorWorld(true)
	var events []InteractionEvent
	world.GetEventManager().Subscribe(EventInteraction, func(e ecs.Event) {
		events = append(events, e.(InteractionEvent))
	})

	input := NewInputSystem(nil)
	input.KeyDown("E")
	input.Update(16, world)
	NewInteractionSystem().Update(16, world)

	assert.False(t, bag.Contains("gold-key"))
	assert.False(t, door.HasComponent(components.CollisionID))
	assert.False(t, door.HasComponent(components.InteractableID))
	solid, _ := ecs.Get[*components.SolidComponent](door)
	assert.Equal(t, image.Rect(16, 0, 32, 16), solid.Sprite.Frame)
	require.Len(t, events, 1)
	assert.Equal(t, components.EffectConsumeItemAndUnlock, events[0].Effect)
}

func TestInteractionWithoutKeyKeepsDoorLocked(t *testing.T) {
	world, door, _ := newDoorWorld(false)

	input := NewInputSystem(nil)
	input.KeyDown("E")
	input.Update(16, world)
	NewInteractionSystem().Update(16, world)

	interactable, ok := ecs.Get[*components.InteractableComponent](door)
	require.True(t, ok)
	assert.True(t, interactable.Interacting)
	assert.True(t, door.HasComponent(components.CollisionID))
}

func newInputWorld() (*ecs.World, *components.MovementComponent, *components.CombatComponent) {
	world := ecs.NewWorld()
	player := newBox(world, "hero", 0, 0)
	player.AddTag(ecs.PlayerTag)
	move := &components.MovementComponent{Speed: 1}
	combat := &components.CombatComponent{Health: 10}
	player.AddComponent(move)
	player.AddComponent(combat)
	return world, move, combat
}

func TestInputDirectionAndBlur(t *testing.T) {
	world, move, _ := newInputWorld()
	input := NewInputSystem(nil)

	input.KeyDown("A")
	input.KeyDown("W")
	input.Update(16, world)
	assert.Equal(t, components.Vec2{X: 1, Y: -1}, move.Direction)

	// right is evaluated after left and wins
	input.KeyDown("ArrowRight")
	input.Update(16, world)
	assert.Equal(t, components.Vec2{X: -1, Y: -1}, move.Direction)

	input.Blur()
	input.Update(16, world)
	assert.Equal(t, components.Vec2{}, move.Direction)
}

func TestInputAttackLatch(t *testing.T) {
	world, move, combat := newInputWorld()
	started := 0
	world.GetEventManager().Subscribe(EventAttackStarted, func(ecs.Event) { started++ })
	input := NewInputSystem(nil)

	input.KeyDown("Space")
	input.Update(16, world)
	assert.True(t, combat.Attacking)
	assert.True(t, combat.AttackInitiated)

	// direction is frozen while attacking
	input.KeyDown("D")
	input.Update(16, world)
	assert.Equal(t, components.Vec2{}, move.Direction)

	// holding the key after the swing ends does not start another
	combat.Attacking = false
	input.Update(16, world)
	assert.False(t, combat.Attacking)
	assert.Equal(t, components.Vec2{X: -1}, move.Direction)
	assert.Equal(t, 1, started)

	input.KeyUp("Space")
	input.Update(16, world)
	assert.False(t, combat.AttackInitiated)

	input.KeyDown("Space")
	input.Update(16, world)
	assert.True(t, combat.Attacking)
	assert.Equal(t, 2, started)
}

func TestInputDropIsEdgeTriggered(t *testing.T) {
	world, _, _ := newInputWorld()
	ground := newWorldInventory(world)
	player, _ := world.FirstWithTag(ecs.PlayerTag)
	bag := components.NewInventoryComponent(4)
	bag.Add(&components.ItemComponent{Name: "a"})
	bag.Add(&components.ItemComponent{Name: "b"})
	player.AddComponent(bag)

	input := NewInputSystem(nil)
	input.KeyDown("Q")
	input.Update(16, world)
	input.Update(16, world)

	assert.Equal(t, 1, bag.Size())
	assert.True(t, ground.Contains("b"))
}

func TestAISystemTicksEachTreeOnce(t *testing.T) {
	world := ecs.NewWorld()
	player := newBox(world, "hero", 0, 0)
	player.AddTag(ecs.PlayerTag)
	player.AddComponent(&components.CombatComponent{Health: 10})

	goblin := newBox(world, "goblin", 30, 0)
	move := &components.MovementComponent{Speed: 1}
	goblin.AddComponent(move)
	goblin.AddComponent(&components.AIComponent{AggroRange: 50})
	goblin.AddComponent(&components.CombatComponent{Health: 5})

	sys := NewAISystem()
	require.NoError(t, sys.Preload(world))
	assert.Equal(t, 1, sys.Agents())

	sys.Update(16, world)
	assert.Equal(t, components.Vec2{X: 1}, move.Direction)

	late := newBox(world, "late", 60, 60)
	late.AddComponent(&components.MovementComponent{})
	late.AddComponent(&components.AIComponent{})
	late.AddComponent(&components.CombatComponent{})
	sys.Update(16, world)
	assert.Equal(t, 2, sys.Agents())

	goblin.RemoveComponent(components.AIID)
	sys.Update(16, world)
	assert.Equal(t, 1, sys.Agents())
}

func TestMessageLogFollowsEvents(t *testing.T) {
	f := newCombatFixture(5)
	log := NewMessageLog()
	log.Initialize(f.world)

	f.atk.Attacking = true
	f.system.Update(16, f.world)

	recent := log.RecentMessages(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "goblin was killed by hero", recent[0].Text)
	assert.Equal(t, LogDeath, recent[0].Kind)
	assert.Equal(t, "hero hits goblin for 5", recent[1].Text)
	assert.Equal(t, LogHit, recent[1].Kind)
	assert.NotEqual(t, recent[0].Color(), recent[1].Color())
	assert.Equal(t, logColors[LogNote], LogEntry{Kind: LogKind(42)}.Color())
}

func TestMessageLogTruncates(t *testing.T) {
	log := NewMessageLog()
	log.MaxMessages = 2
	log.Add("a")
	log.Add("b")
	log.Add("c")
	assert.Equal(t, []LogEntry{{Text: "b"}, {Text: "c"}}, log.Messages)
}

func TestCameraFollowsPlayerWithinBounds(t *testing.T) {
	world := ecs.NewWorld()
	player := newBox(world, "hero", 100, 60)
	player.AddTag(ecs.PlayerTag)

	cam := NewCameraSystem(80, 40)
	cam.SetBounds(200, 100)
	cam.Update(16, world)
	assert.Equal(t, 64.0, cam.X)
	assert.Equal(t, 44.0, cam.Y)

	sx, sy := cam.WorldToScreen(100, 60)
	assert.Equal(t, 36.0, sx)
	assert.Equal(t, 16.0, sy)
	wx, wy := cam.ScreenToWorld(sx, sy)
	assert.Equal(t, []float64{100, 60}, []float64{wx, wy})

	pos, _ := ecs.Get[*components.PositionComponent](player)
	pos.X, pos.Y = 0, 0
	cam.Update(16, world)
	assert.Equal(t, 0.0, cam.X)
	assert.Equal(t, 0.0, cam.Y)

	pos.X, pos.Y = 500, 500
	cam.Update(16, world)
	assert.Equal(t, 120.0, cam.X)
	assert.Equal(t, 60.0, cam.Y)

	assert.True(t, cam.IsVisible(130, 70, 8, 8))
	assert.False(t, cam.IsVisible(100, 70, 8, 8))
}
