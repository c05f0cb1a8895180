package ecs

import (
	"context"
	"errors"
	"time"
)

// PlayerTag marks the entity the debug hook inspects
const PlayerTag = "player"

var (
	// ErrLoopStopped is returned by Frame once Stop has been called
	ErrLoopStopped = errors.New("ecs: loop stopped")
	// ErrLoopNotStarted is returned by Frame before Start
	ErrLoopNotStarted = errors.New("ecs: loop not started")
	// ErrNoPlayer is returned when the world holds no player-tagged entity
	ErrNoPlayer = errors.New("ecs: no player entity")
)

// Player returns the first player-tagged entity of world
func Player(world *World) (*Entity, error) {
	player, ok := world.FirstWithTag(PlayerTag)
	if !ok {
		return nil, ErrNoPlayer
	}
	return player, nil
}

// DebugHook inspects the first player entity after every frame
type DebugHook func(player *Entity)

// Loop drives the world one tick per host frame callback
type Loop struct {
	world     *World
	debugHook DebugHook
	lastTime  time.Time
	started   bool
	stopped   bool
	frames    uint64
}

// NewLoop creates a loop over world. hook may be nil.
func NewLoop(world *World, hook DebugHook) *Loop {
	return &Loop{
		world:     world,
		debugHook: hook,
	}
}

// Start runs every system's Preload once and records the reference time.
func (l *Loop) Start(now time.Time) error {
	if l.started {
		return nil
	}
	if err := l.world.Preload(); err != nil {
		return err
	}
	l.lastTime = now
	l.started = true
	return nil
}

// Frame performs one tick: delta time in milliseconds since the previous
// frame, every system in registration order, then the debug hook.
func (l *Loop) Frame(now time.Time) error {
	if l.stopped {
		return ErrLoopStopped
	}
	if !l.started {
		return ErrLoopNotStarted
	}

	dt := float64(now.Sub(l.lastTime)) / float64(time.Millisecond)
	l.lastTime = now

	l.world.Update(dt)
	l.frames++

	if l.debugHook != nil {
		if player, ok := l.world.FirstWithTag(PlayerTag); ok {
			l.debugHook(player)
		}
	}
	return nil
}

// Run feeds frames from the scheduler channel until ctx is done, the
// channel closes or Stop is called.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			if err := l.Frame(now); err != nil {
				if errors.Is(err, ErrLoopStopped) {
					return nil
				}
				return err
			}
		}
	}
}

// Stop ends the loop; subsequent frames are rejected
func (l *Loop) Stop() {
	l.stopped = true
}

// Stopped reports whether Stop has been called
func (l *Loop) Stopped() bool {
	return l.stopped
}

// Frames returns the number of completed ticks
func (l *Loop) Frames() uint64 {
	return l.frames
}
