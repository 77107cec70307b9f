package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/petal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestSpawnInitializesInfluencers(t *testing.T) {
	world := donburi.NewWorld()
	size := petal.NewSizeInfluencer()
	size.AddKeyframe(petal.Splat(4), petal.Linear)
	size.AddKeyframe(petal.Splat(0), petal.Linear)
	sys := NewSystem(size)

	e := sys.Spawn(world, petal.Vec3{X: 1, Y: 2}, petal.Vec3{X: 10}, 2)
	if !world.Valid(e) {
		t.Fatal("spawned entity is not valid")
	}
	p := ParticleComponent.Get(world.Entry(e))
	if p.Lifetime != 2 || p.Position.X != 1 {
		t.Errorf("particle = %+v", p)
	}
	if p.Size.Value.X != 4 || p.Size.Duration != 2 {
		t.Errorf("size state = %+v, want value 4 duration 2", p.Size)
	}
	if sys.Count(world) != 1 {
		t.Errorf("count = %d, want 1", sys.Count(world))
	}
}

func TestUpdateAdvancesParticles(t *testing.T) {
	world := donburi.NewWorld()
	size := petal.NewSizeInfluencer()
	sys := NewSystem(size, petal.NewGravityInfluencer(petal.Vec3{Y: 10}))

	e := sys.Spawn(world, petal.Vec3{}, petal.Vec3{X: 4}, 2)
	sys.Update(world, 1)

	p := ParticleComponent.Get(world.Entry(e))
	if math.Abs(p.Position.X-4) > 1e-9 {
		t.Errorf("x = %v, want 4", p.Position.X)
	}
	if math.Abs(p.Velocity.Y-10) > 1e-9 {
		t.Errorf("vy = %v, want 10", p.Velocity.Y)
	}
	// Default size sequence 1 → 0 over the 2s lifetime.
	if math.Abs(p.Size.Value.X-0.5) > 1e-6 {
		t.Errorf("size = %v, want 0.5", p.Size.Value.X)
	}
}

func TestExpiredParticlesRemovedWithEvent(t *testing.T) {
	world := donburi.NewWorld()
	sys := NewSystem(petal.NewSizeInfluencer())

	var expired []ParticleExpired
	ParticleExpiredEvent.Subscribe(world, func(w donburi.World, e ParticleExpired) {
		expired = append(expired, e)
	})

	short := sys.Spawn(world, petal.Vec3{X: 7}, petal.Vec3{}, 0.5)
	long := sys.Spawn(world, petal.Vec3{}, petal.Vec3{}, 5)

	sys.Update(world, 1)
	events.ProcessAllEvents(world)

	if world.Valid(short) {
		t.Error("expired entity should be removed")
	}
	if !world.Valid(long) {
		t.Error("live entity should remain")
	}
	if sys.Count(world) != 1 {
		t.Errorf("count = %d, want 1", sys.Count(world))
	}
	if len(expired) != 1 || expired[0].Entity != short || expired[0].Position.X != 7 {
		t.Errorf("expired events = %+v", expired)
	}
}

func TestNewSystemNilInfluencerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil influencer")
		}
	}()
	NewSystem(nil)
}
