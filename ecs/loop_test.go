package ecs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	name     string
	log      *[]string
	dts      []float64
	preloads int
	failWith error
}

func (s *recordingSystem) Preload(*World) error {
	s.preloads++
	*s.log = append(*s.log, "preload:"+s.name)
	return s.failWith
}

func (s *recordingSystem) Update(dt float64, _ *World) {
	s.dts = append(s.dts, dt)
	*s.log = append(*s.log, s.name)
}

func TestLoopRunsSystemsInRegistrationOrder(t *testing.T) {
	var log []string
	w := NewWorld()
	input := &recordingSystem{name: "input", log: &log}
	movement := &recordingSystem{name: "movement", log: &log}
	collision := &recordingSystem{name: "collision", log: &log}
	w.AddSystem(input)
	w.AddSystem(movement)
	w.AddSystem(collision)

	player := w.CreateEntity("player")
	player.AddTag(PlayerTag)

	var inspected []*Entity
	loop := NewLoop(w, func(p *Entity) {
		inspected = append(inspected, p)
		log = append(log, "debug")
	})

	start := time.Unix(0, 0)
	require.NoError(t, loop.Start(start))
	require.NoError(t, loop.Start(start), "second start is a no-op")
	assert.Equal(t, 1, input.preloads)

	require.NoError(t, loop.Frame(start.Add(16*time.Millisecond)))
	require.NoError(t, loop.Frame(start.Add(50*time.Millisecond)))

	assert.Equal(t, []string{
		"preload:input", "preload:movement", "preload:collision",
		"input", "movement", "collision", "debug",
		"input", "movement", "collision", "debug",
	}, log)
	assert.Equal(t, []float64{16, 34}, movement.dts)
	assert.Len(t, inspected, 2)
	assert.Same(t, player, inspected[0])
	assert.Equal(t, uint64(2), loop.Frames())
}

func TestLoopPreloadFailureAbortsStart(t *testing.T) {
	var log []string
	w := NewWorld()
	boom := errors.New("missing sheet")
	w.AddSystem(&recordingSystem{name: "render", log: &log, failWith: boom})

	loop := NewLoop(w, nil)
	err := loop.Start(time.Now())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, loop.Frame(time.Now()), ErrLoopNotStarted)
}

func TestLoopStop(t *testing.T) {
	var log []string
	w := NewWorld()
	sys := &recordingSystem{name: "s", log: &log}
	w.AddSystem(sys)

	loop := NewLoop(w, nil)
	now := time.Now()
	require.NoError(t, loop.Start(now))
	loop.Stop()
	assert.True(t, loop.Stopped())
	assert.ErrorIs(t, loop.Frame(now.Add(time.Second)), ErrLoopStopped)
	assert.Empty(t, sys.dts)
}

func TestLoopRun(t *testing.T) {
	var log []string
	w := NewWorld()
	sys := &recordingSystem{name: "s", log: &log}
	w.AddSystem(sys)

	loop := NewLoop(w, nil)
	now := time.Now()
	require.NoError(t, loop.Start(now))

	frames := make(chan time.Time, 3)
	frames <- now.Add(10 * time.Millisecond)
	frames <- now.Add(20 * time.Millisecond)
	frames <- now.Add(30 * time.Millisecond)
	close(frames)

	require.NoError(t, loop.Run(context.Background(), frames))
	assert.Equal(t, []float64{10, 10, 10}, sys.dts)
}

func TestLoopRunCancelled(t *testing.T) {
	w := NewWorld()
	loop := NewLoop(w, nil)
	require.NoError(t, loop.Start(time.Now()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := loop.Run(ctx, make(chan time.Time))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayerLookup(t *testing.T) {
	w := NewWorld()
	_, err := Player(w)
	assert.ErrorIs(t, err, ErrNoPlayer)

	hero := w.CreateEntity("hero")
	hero.AddTag(PlayerTag)
	got, err := Player(w)
	require.NoError(t, err)
	assert.Same(t, hero, got)
}
