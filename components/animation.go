package components

import (
	"context"

	"github.com/looplab/fsm"

	"ebiten-dungeon/ecs"
)

// AnimationState is the playback lifecycle of the current animation
type AnimationState string

const (
	AnimationPlaying  AnimationState = "playing"
	AnimationFinished AnimationState = "finished"
)

const (
	eventFinish = "finish"
	eventReplay = "replay"
)

// Well-known animation names
const (
	AnimIdle     = "idle"
	AnimIdleUp   = "idle-up"
	AnimRun      = "run"
	AnimRunUp    = "run-up"
	AnimAttack   = "attack"
	AnimAttackUp = "attack-up"
	AnimHurt     = "hurt"
	AnimDeath    = "death"
)

// AnimationDefinition is one named frame sequence
type AnimationDefinition struct {
	Frames []SpriteRef
	Speed  float64 // Frames per millisecond; frame duration is 1/Speed
	Loop   bool
}

// FrameDuration returns the time one frame stays on screen, in milliseconds
func (d *AnimationDefinition) FrameDuration() float64 {
	if d.Speed <= 0 {
		return 0
	}
	return 1 / d.Speed
}

// AnimationComponent holds the animation table and playback cursor
type AnimationComponent struct {
	Animations map[string]*AnimationDefinition
	Current    string
	FrameIndex int
	Elapsed    float64 // Milliseconds spent on the current frame
	Playing    bool

	lifecycle *fsm.FSM
}

func (*AnimationComponent) Kind() ecs.ComponentID { return AnimationID }

// NewAnimationComponent creates a component that starts playing initial
// when it exists in the table.
func NewAnimationComponent(animations map[string]*AnimationDefinition, initial string) *AnimationComponent {
	a := &AnimationComponent{
		Animations: animations,
		lifecycle:  newLifecycle(),
	}
	a.Play(initial)
	return a
}

func newLifecycle() *fsm.FSM {
	return fsm.NewFSM(
		string(AnimationPlaying),
		fsm.Events{
			{Name: eventFinish, Src: []string{string(AnimationPlaying)}, Dst: string(AnimationFinished)},
			{Name: eventReplay, Src: []string{string(AnimationFinished)}, Dst: string(AnimationPlaying)},
		},
		fsm.Callbacks{},
	)
}

func (a *AnimationComponent) machine() *fsm.FSM {
	if a.lifecycle == nil {
		a.lifecycle = newLifecycle()
	}
	return a.lifecycle
}

// State returns the lifecycle state of the current animation
func (a *AnimationComponent) State() AnimationState {
	return AnimationState(a.machine().Current())
}

// CurrentDefinition returns the definition being played, if any
func (a *AnimationComponent) CurrentDefinition() (*AnimationDefinition, bool) {
	def, ok := a.Animations[a.Current]
	return def, ok && len(def.Frames) > 0
}

// CurrentFrame returns the sprite of the current frame
func (a *AnimationComponent) CurrentFrame() (SpriteRef, bool) {
	def, ok := a.CurrentDefinition()
	if !ok || a.FrameIndex < 0 || a.FrameIndex >= len(def.Frames) {
		return SpriteRef{}, false
	}
	return def.Frames[a.FrameIndex], true
}

// Play switches to name. Unknown names and the animation already playing
// are left untouched.
func (a *AnimationComponent) Play(name string) {
	if _, ok := a.Animations[name]; !ok {
		return
	}
	if a.Current == name && a.Playing {
		return
	}
	a.Restart(name)
}

// Restart plays name from its first frame even if it is already current.
func (a *AnimationComponent) Restart(name string) {
	if _, ok := a.Animations[name]; !ok {
		return
	}
	a.Current = name
	a.FrameIndex = 0
	a.Elapsed = 0
	a.Playing = true

	m := a.machine()
	if m.Can(eventReplay) {
		_ = m.Event(context.Background(), eventReplay)
	}
}

// Finish marks the current animation finished and stops playback
func (a *AnimationComponent) Finish() {
	a.Playing = false
	m := a.machine()
	if m.Can(eventFinish) {
		_ = m.Event(context.Background(), eventFinish)
	}
}

// ResetFrame rewinds the current animation without switching it
func (a *AnimationComponent) ResetFrame() {
	a.FrameIndex = 0
	a.Elapsed = 0
}
