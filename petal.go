package petal

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec3 is a 3D vector used for keyframe values and per-particle attribute
// state. Vec3 is a value type: storing one copies it, so a caller can never
// mutate a stored keyframe through its own variable.
type Vec3 struct {
	X, Y, Z float64
}

// Splat returns a Vec3 with all three components set to v.
func Splat(v float64) Vec3 {
	return Vec3{v, v, v}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the componentwise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Lerp linearly interpolates componentwise between v and o by t.
// t is not clamped.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t), lerp(v.Z, o.Z, t)}
}

// Range is a general-purpose min/max range.
// Used by EmitterConfig for lifetimes, speeds and angles.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

var blendModeNames = [...]string{
	BlendNormal:   "normal",
	BlendAdd:      "add",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
}

// String returns the lower-case name used in effect files.
func (b BlendMode) String() string {
	if int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return "normal"
}

// parseBlendMode maps an effect-file name back to a BlendMode. Empty selects BlendNormal.
func parseBlendMode(name string) (BlendMode, bool) {
	if name == "" {
		return BlendNormal, true
	}
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), true
		}
	}
	return BlendNormal, false
}
