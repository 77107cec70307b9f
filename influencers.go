package petal

import "math"

// SizeInfluencer animates Particle.Size through its keyframes.
// Default endpoints are (1,1,1) → (0,0,0).
type SizeInfluencer struct {
	attributeAnimator
}

// NewSizeInfluencer creates an enabled SizeInfluencer with no keyframes.
func NewSizeInfluencer() *SizeInfluencer {
	return &SizeInfluencer{newAttributeAnimator(Splat(1), Vec3{})}
}

func (i *SizeInfluencer) Initialize(p *Particle)         { i.initialize(p, &p.Size) }
func (i *SizeInfluencer) Update(p *Particle, dt float64) { i.update(&p.Size, dt) }
func (i *SizeInfluencer) Reset(p *Particle)              { i.reset(&p.Size) }
func (i *SizeInfluencer) Clone() Influencer              { return &SizeInfluencer{i.clone()} }

// ColorInfluencer animates Particle.Color (R, G, B in X, Y, Z).
// Default endpoints are white → black.
type ColorInfluencer struct {
	attributeAnimator
}

// NewColorInfluencer creates an enabled ColorInfluencer with no keyframes.
func NewColorInfluencer() *ColorInfluencer {
	return &ColorInfluencer{newAttributeAnimator(Splat(1), Vec3{})}
}

func (i *ColorInfluencer) Initialize(p *Particle)         { i.initialize(p, &p.Color) }
func (i *ColorInfluencer) Update(p *Particle, dt float64) { i.update(&p.Color, dt) }
func (i *ColorInfluencer) Reset(p *Particle)              { i.reset(&p.Color) }
func (i *ColorInfluencer) Clone() Influencer              { return &ColorInfluencer{i.clone()} }

// AlphaInfluencer animates Particle.Alpha. Renderers read the X component.
// Default endpoints are opaque → transparent.
type AlphaInfluencer struct {
	attributeAnimator
}

// NewAlphaInfluencer creates an enabled AlphaInfluencer with no keyframes.
func NewAlphaInfluencer() *AlphaInfluencer {
	return &AlphaInfluencer{newAttributeAnimator(Splat(1), Vec3{})}
}

func (i *AlphaInfluencer) Initialize(p *Particle)         { i.initialize(p, &p.Alpha) }
func (i *AlphaInfluencer) Update(p *Particle, dt float64) { i.update(&p.Alpha, dt) }
func (i *AlphaInfluencer) Reset(p *Particle)              { i.reset(&p.Alpha) }
func (i *AlphaInfluencer) Clone() Influencer              { return &AlphaInfluencer{i.clone()} }

// RotationInfluencer animates Particle.Rotation as Euler angles in radians.
// Default endpoints are no rotation → one full turn around Z.
type RotationInfluencer struct {
	attributeAnimator
}

// NewRotationInfluencer creates an enabled RotationInfluencer with no keyframes.
func NewRotationInfluencer() *RotationInfluencer {
	return &RotationInfluencer{newAttributeAnimator(Vec3{}, Vec3{Z: 2 * math.Pi})}
}

func (i *RotationInfluencer) Initialize(p *Particle)         { i.initialize(p, &p.Rotation) }
func (i *RotationInfluencer) Update(p *Particle, dt float64) { i.update(&p.Rotation, dt) }
func (i *RotationInfluencer) Reset(p *Particle)              { i.reset(&p.Rotation) }
func (i *RotationInfluencer) Clone() Influencer              { return &RotationInfluencer{i.clone()} }

// GravityInfluencer applies a constant acceleration to Particle.Velocity.
type GravityInfluencer struct {
	Gravity  Vec3
	disabled bool
}

// NewGravityInfluencer creates an enabled GravityInfluencer.
func NewGravityInfluencer(gravity Vec3) *GravityInfluencer {
	return &GravityInfluencer{Gravity: gravity}
}

func (g *GravityInfluencer) Initialize(p *Particle) {}

func (g *GravityInfluencer) Update(p *Particle, dt float64) {
	if g.disabled {
		return
	}
	p.Velocity = p.Velocity.Add(g.Gravity.Scale(dt))
}

func (g *GravityInfluencer) Reset(p *Particle)       {}
func (g *GravityInfluencer) IsEnabled() bool         { return !g.disabled }
func (g *GravityInfluencer) SetEnabled(enabled bool) { g.disabled = !enabled }

func (g *GravityInfluencer) Clone() Influencer {
	c := *g
	return &c
}

// keyframed is implemented by every influencer built on attributeAnimator.
type keyframed interface {
	Influencer
	animator() *attributeAnimator
}

var (
	_ keyframed  = (*SizeInfluencer)(nil)
	_ keyframed  = (*ColorInfluencer)(nil)
	_ keyframed  = (*AlphaInfluencer)(nil)
	_ keyframed  = (*RotationInfluencer)(nil)
	_ Influencer = (*GravityInfluencer)(nil)
)
