package petal

import "math"

// AttributeState is the per-particle state one keyframe influencer drives:
// the live value, the endpoints of the current segment, and the segment clock.
//
// Value is always Start.Lerp(End, Interpolation.Apply(Elapsed/Duration)) after
// an update. Elapsed is carried over (not zeroed) when a segment completes.
type AttributeState struct {
	Value Vec3
	Start Vec3
	End   Vec3

	// Index is the current segment; segment i runs from keyframe i to i+1.
	Index int
	// Elapsed is the time spent in the current segment, in seconds.
	Elapsed float64
	// Duration is the length of every segment for this particle, in seconds.
	Duration float64
	// Interpolation eases the current segment.
	Interpolation *Interpolation
}

// reset puts the state into the idle configuration used between lives.
func (s *AttributeState) reset(start, end Vec3) {
	s.Value = start
	s.Start = start
	s.End = end
	s.Index = 0
	s.Elapsed = 0
	s.Duration = 0
	s.Interpolation = nil
}

// Particle is the mutable record of one pooled particle slot. Records are
// reused across lives; the emitter calls Spawn before the influencers'
// Initialize and the influencers' Reset when the particle dies.
type Particle struct {
	Position Vec3
	Velocity Vec3
	// Life is the remaining lifetime in seconds.
	Life float64
	// Lifetime is the total lifetime in seconds. Set once by the driver
	// before Initialize; influencers only read it.
	Lifetime float64

	Size     AttributeState
	Color    AttributeState
	Alpha    AttributeState
	Rotation AttributeState
}

// Spawn prepares the record for a new life. Attribute states are put into a
// neutral visible configuration (unit size, white, opaque, unrotated) so an
// emitter without, say, a color influencer still renders sensibly.
func (p *Particle) Spawn(pos, vel Vec3, lifetime float64) {
	p.Position = pos
	p.Velocity = vel
	p.Life = lifetime
	p.Lifetime = lifetime
	p.Size.reset(Splat(1), Splat(1))
	p.Color.reset(Splat(1), Splat(1))
	p.Alpha.reset(Splat(1), Splat(1))
	p.Rotation.reset(Vec3{}, Vec3{})
}

// Advance integrates the position by dt and consumes lifetime. It reports
// whether the particle is still alive.
func (p *Particle) Advance(dt float64) bool {
	p.Life -= dt
	if p.Life <= 0 {
		return false
	}
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	return true
}

// Progress returns the fraction of the lifetime already used, in [0, 1].
func (p *Particle) Progress() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	return math.Min(1, math.Max(0, 1-p.Life/p.Lifetime))
}
