package petal

// Influencer drives one aspect of every particle an emitter owns. One
// influencer instance is shared by all particles of an emitter; per-particle
// state lives in the Particle record.
//
// The driver calls Initialize once per emission, Update every frame while the
// particle is alive, and Reset once when the particle dies. Update and Reset
// are called unconditionally; a disabled influencer returns early from Update.
//
// Configuration methods on concrete influencers must not be called while an
// update pass is running: removing a keyframe can invalidate a segment index
// already held by a live particle.
type Influencer interface {
	Initialize(p *Particle)
	Update(p *Particle, dt float64)
	Reset(p *Particle)
	IsEnabled() bool
	SetEnabled(enabled bool)
	// Clone returns a deep copy suitable for another emitter.
	Clone() Influencer
}
