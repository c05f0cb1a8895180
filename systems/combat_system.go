package systems

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/logger"
)

const (
	// AttackCooldownUnits is the cooldown set when an attack starts
	AttackCooldownUnits = 10
	// CooldownUnit is the length of one cooldown unit in milliseconds
	CooldownUnit = 100.0
	// attackConeHalfAngle gates target acquisition, in degrees
	attackConeHalfAngle = 45.0
	// DropSpread bounds the random offset of items dropped on death
	DropSpread = 8.0
)

// cooldown tracks one running attack cooldown
type cooldown struct {
	combat  *components.CombatComponent
	elapsed float64
}

// CombatSystem resolves attacks, damage and deaths
type CombatSystem struct {
	ecs.BaseSystem
	rng       *rand.Rand
	cooldowns map[*ecs.Entity]*cooldown
	log       *logrus.Entry
}

// NewCombatSystem creates a combat system; rng drives drop scatter.
func NewCombatSystem(rng *rand.Rand) *CombatSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &CombatSystem{
		rng:       rng,
		cooldowns: make(map[*ecs.Entity]*cooldown),
		log:       logger.System("combat"),
	}
}

// Update advances cooldowns, then resolves every fresh attack
func (s *CombatSystem) Update(dt float64, world *ecs.World) {
	s.tickCooldowns(dt, world)

	for _, attacker := range world.EntitiesWith(components.CombatID) {
		// an earlier attacker in this pass may have killed and stripped it
		combat, ok := ecs.Get[*components.CombatComponent](attacker)
		if !ok || combat.Dead || combat.AttackCooldown > 0 || !combat.Attacking {
			continue
		}

		s.startCooldown(attacker, combat)

		target, ok := s.selectTarget(world, attacker, combat)
		if !ok {
			continue
		}
		s.resolveHit(world, attacker, combat, target)
	}
}

// ActiveCooldowns returns the number of cooldowns being tracked
func (s *CombatSystem) ActiveCooldowns() int {
	return len(s.cooldowns)
}

// CancelCooldown forgets the cooldown of entity without touching its flags
func (s *CombatSystem) CancelCooldown(entity *ecs.Entity) {
	delete(s.cooldowns, entity)
}

func (s *CombatSystem) startCooldown(entity *ecs.Entity, combat *components.CombatComponent) {
	combat.AttackCooldown = AttackCooldownUnits
	s.cooldowns[entity] = &cooldown{combat: combat}
}

// tickCooldowns counts down in fixed 100ms units of accumulated frame
// time. Cooldowns whose owner left the world or lost its combat
// component are cancelled.
func (s *CombatSystem) tickCooldowns(dt float64, world *ecs.World) {
	for entity, cd := range s.cooldowns {
		current, ok := ecs.Get[*components.CombatComponent](entity)
		if !ok || current != cd.combat || !world.Contains(entity) {
			s.log.WithField("entity", entity.Name).Debug("cooldown cancelled")
			s.CancelCooldown(entity)
			continue
		}

		cd.elapsed += dt
		for cd.elapsed >= CooldownUnit && cd.combat.AttackCooldown > 0 {
			cd.combat.AttackCooldown--
			cd.elapsed -= CooldownUnit
		}
		if cd.combat.AttackCooldown <= 0 {
			cd.combat.AttackCooldown = 0
			cd.combat.ClearAttack()
			s.CancelCooldown(entity)
		}
	}
}

// selectTarget returns the nearest combatant within range whose bearing
// differs from the attacker's facing by at least the cone half angle.
func (s *CombatSystem) selectTarget(world *ecs.World, attacker *ecs.Entity, combat *components.CombatComponent) (*ecs.Entity, bool) {
	pos, ok := ecs.Get[*components.PositionComponent](attacker)
	if !ok {
		return nil, false
	}
	var facing float64
	if movement, ok := ecs.Get[*components.MovementComponent](attacker); ok {
		facing = movement.FacingAngle
	}

	rangeSq := combat.AttackRange * combat.AttackRange
	var best *ecs.Entity
	bestDistSq := math.Inf(1)

	for _, candidate := range world.EntitiesWithAll(components.CombatID, components.PositionID) {
		if candidate == attacker {
			continue
		}
		tpos, _ := ecs.Get[*components.PositionComponent](candidate)
		dx := tpos.X - pos.X
		dy := tpos.Y - pos.Y
		distSq := dx*dx + dy*dy
		if distSq >= rangeSq {
			continue
		}

		bearing := degrees(math.Atan2(dy, dx))
		if angleDifference(facing, bearing) < attackConeHalfAngle {
			continue
		}

		if distSq < bestDistSq {
			best = candidate
			bestDistSq = distSq
		}
	}
	return best, best != nil
}

func (s *CombatSystem) resolveHit(world *ecs.World, attacker *ecs.Entity, combat *components.CombatComponent, target *ecs.Entity) {
	targetCombat, _ := ecs.Get[*components.CombatComponent](target)
	if targetCombat.Dead {
		return
	}

	targetCombat.Hurt = true
	damage := combat.AttackPower - targetCombat.Defense
	if damage < 0 {
		damage = 0
	}
	targetCombat.Health -= damage
	s.applyKnockback(attacker, target, combat.Knockback)

	s.log.WithFields(logrus.Fields{
		"attacker": attacker.Name,
		"target":   target.Name,
		"damage":   damage,
		"health":   targetCombat.Health,
	}).Debug("hit")
	world.EmitEvent(CombatEvent{Attacker: attacker, Defender: target, Damage: damage})

	if targetCombat.Health <= 0 {
		s.kill(world, attacker, target, targetCombat)
	}
}

// applyKnockback pushes the target away from the attacker on every axis
// its collision edges leave open.
func (s *CombatSystem) applyKnockback(attacker, target *ecs.Entity, knockback float64) {
	if knockback <= 0 {
		return
	}
	apos, ok := ecs.Get[*components.PositionComponent](attacker)
	if !ok {
		return
	}
	tpos, ok := ecs.Get[*components.PositionComponent](target)
	if !ok {
		return
	}
	dx, dy := tpos.X-apos.X, tpos.Y-apos.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length

	var edges components.Edges
	if collision, ok := ecs.Get[*components.CollisionComponent](target); ok {
		edges = collision.Edges
	}
	if (ux > 0 && !edges.Right) || (ux < 0 && !edges.Left) {
		tpos.X += ux * knockback
	}
	if (uy > 0 && !edges.Bottom) || (uy < 0 && !edges.Top) {
		tpos.Y += uy * knockback
	}
}

// kill runs the one-time death transition
func (s *CombatSystem) kill(world *ecs.World, killer, target *ecs.Entity, combat *components.CombatComponent) {
	combat.Dead = true
	combat.Health = 0
	combat.ClearAttack()

	s.dropInventory(world, target)

	if anim, ok := ecs.Get[*components.AnimationComponent](target); ok {
		anim.Restart(components.AnimDeath)
	}

	target.RemoveComponent(components.InventoryID)
	target.RemoveComponent(components.AIID)
	target.RemoveComponent(components.MovementID)
	target.RemoveComponent(components.CombatID)
	s.CancelCooldown(target)

	s.log.WithFields(logrus.Fields{"entity": target.Name, "killer": killer.Name}).Info("entity died")
	world.EmitEvent(DeathEvent{Entity: target, Killer: killer})
}

// dropInventory scatters every carried item around the corpse
func (s *CombatSystem) dropInventory(world *ecs.World, target *ecs.Entity) {
	inventory, ok := ecs.Get[*components.InventoryComponent](target)
	if !ok || inventory.Size() == 0 {
		return
	}
	var origin components.Vec2
	if pos, ok := ecs.Get[*components.PositionComponent](target); ok {
		origin = components.Vec2{X: pos.X, Y: pos.Y}
	}

	items := append([]*components.ItemComponent(nil), inventory.Items...)
	for _, item := range items {
		at := components.Vec2{
			X: origin.X + (s.rng.Float64()*2-1)*DropSpread,
			Y: origin.Y + (s.rng.Float64()*2-1)*DropSpread,
		}
		if err := DropItem(world, inventory, item, at); err != nil {
			s.log.WithError(err).WithField("item", item.Name).Warn("item lost on death")
		}
	}
}
