// Package ecs drives petal influencers over particles stored in a [Donburi]
// world.
//
// Each particle is an entity carrying [ParticleComponent]. A [System] owns the
// influencers and applies the same Initialize / Update / Reset protocol as
// petal.Emitter, removing entities whose lifetime has run out and publishing
// a [ParticleExpired] event for each.
//
// Usage:
//
//	sys := ecs.NewSystem(petal.NewSizeInfluencer(), petal.NewColorInfluencer())
//	sys.Spawn(world, origin, velocity, 1.5)
//	// each frame:
//	sys.Update(world, dt)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
