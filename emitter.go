package petal

import "math"

// EmitterConfig controls how particles are spawned and which influencers
// drive them.
type EmitterConfig struct {
	// MaxParticles is the pool size. New particles are silently dropped when full.
	MaxParticles int
	// EmitRate is the number of particles spawned per second.
	EmitRate float64
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial particle speeds in units per second.
	Speed Range
	// Angle is the range of emission angles in radians, in the XY plane.
	Angle Range
	// Origin is where new particles are spawned.
	Origin Vec3
	// BlendMode is the compositing operation for particle rendering.
	BlendMode BlendMode
	// Influencers are run in order on every particle: Initialize at spawn,
	// Update every frame, Reset at death.
	Influencers []Influencer
}

// Emitter manages a pool of particles and drives their influencers.
type Emitter struct {
	config    EmitterConfig
	particles []Particle
	alive     int
	emitAccum float64
	active    bool
}

// NewEmitter creates an Emitter with a preallocated pool. It panics if an
// influencer is nil.
func NewEmitter(cfg EmitterConfig) *Emitter {
	for _, inf := range cfg.Influencers {
		if inf == nil {
			panic("petal: nil influencer in EmitterConfig")
		}
	}
	max := cfg.MaxParticles
	if max <= 0 {
		max = 128
	}
	return &Emitter{
		config:    cfg,
		particles: make([]Particle, max),
	}
}

// Start begins emitting particles.
func (e *Emitter) Start() {
	e.active = true
}

// Stop stops emitting new particles. Existing particles continue to live out.
func (e *Emitter) Stop() {
	e.active = false
}

// Reset stops emitting and kills all alive particles. Every influencer's
// Reset runs on each killed particle so pooled slots carry no stale state.
func (e *Emitter) Reset() {
	for i := 0; i < e.alive; i++ {
		e.kill(&e.particles[i])
	}
	e.active = false
	e.alive = 0
	e.emitAccum = 0
}

// IsActive reports whether the emitter is currently emitting new particles.
func (e *Emitter) IsActive() bool {
	return e.active
}

// AliveCount returns the number of alive particles.
func (e *Emitter) AliveCount() int {
	return e.alive
}

// Particles returns the alive particles. The slice aliases the pool and is
// only valid until the next Update, Burst or Reset.
func (e *Emitter) Particles() []Particle {
	return e.particles[:e.alive]
}

// Config returns a pointer to the emitter's config for live tuning. Do not
// change Influencers while particles are alive.
func (e *Emitter) Config() *EmitterConfig {
	return &e.config
}

// Clone returns a stopped emitter with the same configuration and deep
// copies of every influencer.
func (e *Emitter) Clone() *Emitter {
	cfg := e.config
	cfg.Influencers = make([]Influencer, len(e.config.Influencers))
	for i, inf := range e.config.Influencers {
		cfg.Influencers[i] = inf.Clone()
	}
	return NewEmitter(cfg)
}

// Update advances particle simulation by dt seconds.
func (e *Emitter) Update(dt float64) {
	infs := e.config.Influencers

	// Update existing particles, swap-remove dead ones.
	i := 0
	for i < e.alive {
		p := &e.particles[i]
		if !p.Advance(dt) {
			e.kill(p)
			e.alive--
			// Swap so the reset record is what returns to the pool.
			e.particles[i], e.particles[e.alive] = e.particles[e.alive], e.particles[i]
			continue
		}
		for _, inf := range infs {
			inf.Update(p, dt)
		}
		i++
	}

	// Emit new particles.
	if e.active && e.config.EmitRate > 0 {
		e.emitAccum += e.config.EmitRate * dt
		for e.emitAccum >= 1.0 {
			e.emitAccum -= 1.0
			if e.alive < len(e.particles) {
				e.spawnParticle()
			}
		}
	}
}

// Burst spawns up to n particles immediately, regardless of Start/Stop.
// It returns the number actually spawned.
func (e *Emitter) Burst(n int) int {
	spawned := 0
	for ; spawned < n && e.alive < len(e.particles); spawned++ {
		e.spawnParticle()
	}
	return spawned
}

func (e *Emitter) kill(p *Particle) {
	for _, inf := range e.config.Influencers {
		inf.Reset(p)
	}
}

// spawnParticle initializes the particle at slot e.alive and increments alive.
func (e *Emitter) spawnParticle() {
	p := &e.particles[e.alive]

	angle := e.config.Angle.Random()
	speed := e.config.Speed.Random()
	vel := Vec3{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}

	life := e.config.Lifetime.Random()
	if life <= 0 {
		life = 1.0
	}
	p.Spawn(e.config.Origin, vel, life)

	for _, inf := range e.config.Influencers {
		inf.Initialize(p)
	}
	e.alive++
}
