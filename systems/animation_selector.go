package systems

import (
	"ebiten-dungeon/components"
)

// AnimationInput is the motion and combat state the selector decides on
type AnimationInput struct {
	X, Y        float64
	FacingAngle float64
	Attacking   bool
	Hurt        bool
}

type animationRule struct {
	name     string
	priority int
	when     func(in AnimationInput) bool
}

// animationRules is evaluated in full on every call; order breaks ties.
var animationRules = []animationRule{
	{components.AnimHurt, 10, func(in AnimationInput) bool { return in.Hurt }},
	{components.AnimAttackUp, 5, func(in AnimationInput) bool { return in.Attacking && in.FacingAngle < 0 }},
	{components.AnimAttack, 5, func(in AnimationInput) bool { return in.Attacking && in.FacingAngle >= 0 }},
	{components.AnimRun, 1, func(in AnimationInput) bool { return (in.X != 0 || in.Y == 1) && in.Y != -1 }},
	{components.AnimRunUp, 1, func(in AnimationInput) bool { return in.Y < 0 }},
	{components.AnimIdleUp, 0, func(in AnimationInput) bool { return in.X == 0 && in.Y == 0 && in.FacingAngle < 0 }},
	{components.AnimIdle, 0, func(in AnimationInput) bool { return in.X == 0 && in.Y == 0 && in.FacingAngle > 0 }},
}

// SelectAnimation returns the name of the highest-priority matching
// animation, or "idle" when nothing matches.
func SelectAnimation(in AnimationInput) string {
	selected := components.AnimIdle
	best := -1
	for _, rule := range animationRules {
		if rule.when(in) && rule.priority > best {
			selected = rule.name
			best = rule.priority
		}
	}
	return selected
}
