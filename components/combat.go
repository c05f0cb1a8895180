package components

import (
	"ebiten-dungeon/ecs"
)

// CombatComponent stores the fighting state and stats of an entity
type CombatComponent struct {
	Attacking       bool
	Hurt            bool
	Dead            bool // One-way latch
	AttackInitiated bool // Set by the attack key, cleared on release or cooldown end
	AttackRange     float64
	AttackPower     int
	Defense         int
	Health          int
	MaxHealth       int
	AttackCooldown  int     // Remaining cooldown in 100ms units
	Knockback       float64 // Distance a hit pushes the target
}

func (*CombatComponent) Kind() ecs.ComponentID { return CombatID }

// CanAttack reports whether a new attack may start
func (c *CombatComponent) CanAttack() bool {
	return !c.Dead && c.AttackCooldown == 0
}

// ClearAttack drops both the latch and the attacking flag
func (c *CombatComponent) ClearAttack() {
	c.Attacking = false
	c.AttackInitiated = false
}

// AIComponent stores the chase state of an enemy
type AIComponent struct {
	AggroRange     float64
	HasLineOfSight bool
	Chasing        bool
}

func (*AIComponent) Kind() ecs.ComponentID { return AIID }
