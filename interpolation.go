package petal

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Interpolation maps normalized segment progress to eased progress. It wraps
// a gween easing function evaluated over the unit interval. Interpolations
// are stateless and shared by pointer between keyframes, influencers and
// particles.
type Interpolation struct {
	name string
	fn   ease.TweenFunc
}

// NewInterpolation creates an Interpolation from a gween easing function.
// The name is what effect files use to refer to it; see RegisterInterpolation.
func NewInterpolation(name string, fn ease.TweenFunc) *Interpolation {
	if fn == nil {
		fn = ease.Linear
	}
	return &Interpolation{name: name, fn: fn}
}

// Name returns the registry name of the interpolation.
func (i *Interpolation) Name() string {
	if i == nil {
		return Linear.name
	}
	return i.name
}

// Apply returns the eased progress for t. t is normally in [0, 1] but is not
// clamped; values past 1 extrapolate along the curve. gween evaluates in
// float32, so eased results carry single precision. Linear and nil return t
// unchanged.
func (i *Interpolation) Apply(t float64) float64 {
	if i == nil || i == Linear {
		return t
	}
	return float64(i.fn(float32(t), 0, 1, 1))
}

// Built-in interpolations.
var (
	Linear     = NewInterpolation("linear", ease.Linear)
	EaseIn     = NewInterpolation("easeIn", ease.InQuad)
	EaseOut    = NewInterpolation("easeOut", ease.OutQuad)
	EaseInOut  = NewInterpolation("easeInOut", ease.InOutQuad)
	CubicIn    = NewInterpolation("cubicIn", ease.InCubic)
	CubicOut   = NewInterpolation("cubicOut", ease.OutCubic)
	CubicInOut = NewInterpolation("cubicInOut", ease.InOutCubic)
	SineIn     = NewInterpolation("sineIn", ease.InSine)
	SineOut    = NewInterpolation("sineOut", ease.OutSine)
	SineInOut  = NewInterpolation("sineInOut", ease.InOutSine)
	ExpoIn     = NewInterpolation("expoIn", ease.InExpo)
	ExpoOut    = NewInterpolation("expoOut", ease.OutExpo)
	BackIn     = NewInterpolation("backIn", ease.InBack)
	BackOut    = NewInterpolation("backOut", ease.OutBack)
	BounceIn   = NewInterpolation("bounceIn", ease.InBounce)
	BounceOut  = NewInterpolation("bounceOut", ease.OutBounce)
	ElasticOut = NewInterpolation("elasticOut", ease.OutElastic)
)

var interpolations = map[string]*Interpolation{}

func init() {
	for _, i := range []*Interpolation{
		Linear, EaseIn, EaseOut, EaseInOut,
		CubicIn, CubicOut, CubicInOut,
		SineIn, SineOut, SineInOut,
		ExpoIn, ExpoOut, BackIn, BackOut,
		BounceIn, BounceOut, ElasticOut,
	} {
		interpolations[i.name] = i
	}
}

// RegisterInterpolation makes i resolvable by name when loading effect files.
// A later registration under the same name replaces the earlier one. Register
// during program setup; the registry is not safe for concurrent mutation.
func RegisterInterpolation(i *Interpolation) {
	if i == nil || i.name == "" {
		panic("petal: cannot register unnamed interpolation")
	}
	interpolations[i.name] = i
}

// InterpolationNamed looks up a registered interpolation.
func InterpolationNamed(name string) (*Interpolation, bool) {
	i, ok := interpolations[name]
	return i, ok
}

// InterpolationNames returns the sorted names of all registered interpolations.
func InterpolationNames() []string {
	names := make([]string, 0, len(interpolations))
	for n := range interpolations {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
