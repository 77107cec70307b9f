package ecs

import (
	"github.com/phanxgames/petal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ParticleComponent stores one petal.Particle record per entity.
var ParticleComponent = donburi.NewComponentType[petal.Particle]()

// ParticleExpired is published when a particle entity runs out of lifetime,
// just before the entity is removed.
type ParticleExpired struct {
	Entity   donburi.Entity
	Position petal.Vec3
}

// ParticleExpiredEvent is the Donburi event type for expired particles.
var ParticleExpiredEvent = events.NewEventType[ParticleExpired]()

// System runs a fixed list of influencers over every particle entity.
type System struct {
	influencers []petal.Influencer
	query       *donburi.Query
	expired     []donburi.Entity
}

// NewSystem creates a System. Influencers run in the given order. It panics
// if an influencer is nil.
func NewSystem(influencers ...petal.Influencer) *System {
	for _, inf := range influencers {
		if inf == nil {
			panic("petal/ecs: nil influencer")
		}
	}
	return &System{
		influencers: influencers,
		query:       donburi.NewQuery(filter.Contains(ParticleComponent)),
	}
}

// Influencers returns the system's influencers in run order.
func (s *System) Influencers() []petal.Influencer {
	return s.influencers
}

// Spawn creates a particle entity and initializes it with every influencer.
func (s *System) Spawn(world donburi.World, origin, velocity petal.Vec3, lifetime float64) donburi.Entity {
	entity := world.Create(ParticleComponent)
	p := ParticleComponent.Get(world.Entry(entity))
	p.Spawn(origin, velocity, lifetime)
	for _, inf := range s.influencers {
		inf.Initialize(p)
	}
	return entity
}

// Count returns the number of live particle entities in world.
func (s *System) Count(world donburi.World) int {
	return s.query.Count(world)
}

// Update advances every particle entity by dt seconds. Expired particles are
// reset by every influencer, announced on ParticleExpiredEvent and removed
// after the pass.
func (s *System) Update(world donburi.World, dt float64) {
	s.expired = s.expired[:0]
	s.query.Each(world, func(entry *donburi.Entry) {
		p := ParticleComponent.Get(entry)
		if !p.Advance(dt) {
			for _, inf := range s.influencers {
				inf.Reset(p)
			}
			ParticleExpiredEvent.Publish(world, ParticleExpired{
				Entity:   entry.Entity(),
				Position: p.Position,
			})
			s.expired = append(s.expired, entry.Entity())
			return
		}
		for _, inf := range s.influencers {
			inf.Update(p, dt)
		}
	})
	for _, e := range s.expired {
		world.Remove(e)
	}
}
