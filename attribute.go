package petal

import "math/rand/v2"

// attributeAnimator is the keyframe cycling state machine shared by every
// keyframe influencer. It owns the keyframe sequence and configuration; the
// per-particle half lives in AttributeState.
//
// Segments always wrap from the last keyframe back to the first. The cycle
// flag only selects where the segment duration comes from: a fixed duration
// when cycling, lifetime/(keyframes-1) otherwise.
type attributeAnimator struct {
	seq keyframeSequence

	// start and end are the endpoints synthesized into an empty sequence and
	// restored on Reset.
	start, end Vec3

	enabled       bool
	prepared      bool
	useRandom     bool
	tolerance     float64
	cycle         bool
	fixedDuration float64
	catchUp       bool

	rng *rand.Rand
}

// defaultRandomTolerance is the band used when randomization is switched on
// without an explicit tolerance.
const defaultRandomTolerance = 0.5

func newAttributeAnimator(start, end Vec3) attributeAnimator {
	return attributeAnimator{start: start, end: end, enabled: true, tolerance: defaultRandomTolerance}
}

func (a *attributeAnimator) animator() *attributeAnimator {
	return a
}

// AddKeyframe appends a keyframe. A nil interpolation means Linear. The
// interpolation eases the segment that starts at this keyframe.
func (a *attributeAnimator) AddKeyframe(value Vec3, interp *Interpolation) {
	a.seq.add(value, interp)
}

// RemoveKeyframe removes the keyframe at index. It returns an error wrapping
// ErrKeyframeIndex when index is out of range. Live particles keep the segment
// they are in; indexes are only re-checked at their next segment boundary.
func (a *attributeAnimator) RemoveKeyframe(index int) error {
	return a.seq.remove(index)
}

// RemoveAll clears the keyframe sequence.
func (a *attributeAnimator) RemoveAll() {
	a.seq.clear()
}

// SetKeyframes replaces the whole sequence.
func (a *attributeAnimator) SetKeyframes(frames []Keyframe) {
	a.seq.clear()
	for _, kf := range frames {
		a.seq.add(kf.Value, kf.Interpolation)
	}
}

// KeyframeCount returns the number of keyframes.
func (a *attributeAnimator) KeyframeCount() int {
	return a.seq.len()
}

// Keyframes returns a copy of the keyframe sequence.
func (a *attributeAnimator) Keyframes() []Keyframe {
	out := make([]Keyframe, a.seq.len())
	copy(out, a.seq.frames)
	return out
}

// Values returns a copy of the keyframe values in order.
func (a *attributeAnimator) Values() []Vec3 {
	out := make([]Vec3, a.seq.len())
	for i := range out {
		out[i] = a.seq.value(i)
	}
	return out
}

// Interpolations returns a copy of the keyframe interpolations in order.
func (a *attributeAnimator) Interpolations() []*Interpolation {
	out := make([]*Interpolation, a.seq.len())
	for i := range out {
		out[i] = a.seq.interpolation(i)
	}
	return out
}

// SetUseRandomValue enables per-particle randomization of sampled keyframe values.
func (a *attributeAnimator) SetUseRandomValue(use bool) {
	a.useRandom = use
}

// UseRandomValue reports whether sampled keyframe values are randomized.
func (a *attributeAnimator) UseRandomValue() bool {
	return a.useRandom
}

// SetRandomTolerance sets the randomization band, expected in [0, 1]. A
// sampled value lies in [base - base*tolerance, base). The value is not
// clamped. The default is 0.5.
func (a *attributeAnimator) SetRandomTolerance(tolerance float64) {
	a.tolerance = tolerance
}

// RandomTolerance returns the randomization band.
func (a *attributeAnimator) RandomTolerance() float64 {
	return a.tolerance
}

// SetFixedDuration sets a fixed segment duration in seconds. A nonzero
// duration turns cycle mode on; zero turns it off and segments are derived
// from the particle lifetime again.
func (a *attributeAnimator) SetFixedDuration(d float64) {
	a.fixedDuration = d
	a.cycle = d != 0
}

// FixedDuration returns the fixed segment duration.
func (a *attributeAnimator) FixedDuration() float64 {
	return a.fixedDuration
}

// Cycle reports whether segment durations are fixed rather than derived from
// the particle lifetime.
func (a *attributeAnimator) Cycle() bool {
	return a.cycle
}

// SetEndpoints sets the values synthesized into an empty sequence and
// restored by Reset.
func (a *attributeAnimator) SetEndpoints(start, end Vec3) {
	a.start = start
	a.end = end
}

// Endpoints returns the start and end values set by SetEndpoints.
func (a *attributeAnimator) Endpoints() (start, end Vec3) {
	return a.start, a.end
}

// IsEnabled reports whether Update has any effect.
func (a *attributeAnimator) IsEnabled() bool {
	return a.enabled
}

// SetEnabled enables or disables the influencer.
func (a *attributeAnimator) SetEnabled(enabled bool) {
	a.enabled = enabled
}

// SetCatchUp makes Update consume every segment boundary a single large dt
// crosses. By default Update advances at most one segment per call.
func (a *attributeAnimator) SetCatchUp(catchUp bool) {
	a.catchUp = catchUp
}

// CatchUp reports whether Update advances through multiple segments per call.
func (a *attributeAnimator) CatchUp() bool {
	return a.catchUp
}

// SetRand sets the random source used for value randomization. nil selects
// the global math/rand/v2 source. A *rand.Rand is not safe for concurrent use;
// Clone never copies it.
func (a *attributeAnimator) SetRand(r *rand.Rand) {
	a.rng = r
}

func (a *attributeAnimator) clone() attributeAnimator {
	c := *a
	c.seq = a.seq.clone()
	c.rng = nil
	return c
}

func (a *attributeAnimator) randFloat() float64 {
	if a.rng != nil {
		return a.rng.Float64()
	}
	return rand.Float64()
}

// prepare runs once per influencer, on the first Initialize. An empty sequence
// gets start→end; a single keyframe has nothing to move toward, so the
// influencer disables itself.
func (a *attributeAnimator) prepare() {
	a.prepared = true
	switch a.seq.len() {
	case 0:
		a.seq.add(a.start, Linear)
		a.seq.add(a.end, Linear)
	case 1:
		a.enabled = false
	}
}

func (a *attributeAnimator) initialize(p *Particle, s *AttributeState) {
	if !a.prepared {
		a.prepare()
	}
	n := a.seq.len()
	s.Index = 0
	s.Elapsed = 0
	if a.cycle {
		s.Duration = a.fixedDuration
	} else {
		s.Duration = p.Lifetime / float64(max(1, n-1-s.Index))
	}
	if n == 0 {
		// Emptied after the first Initialize.
		s.Value, s.Start, s.End = a.start, a.start, a.start
		s.Interpolation = Linear
		return
	}
	s.Start = a.sample(0)
	s.End = a.segmentEnd(s)
	s.Value = s.Start
	s.Interpolation = a.seq.interpolation(0)
}

func (a *attributeAnimator) update(s *AttributeState, dt float64) {
	if !a.enabled {
		return
	}
	s.Elapsed += dt
	if s.Elapsed >= s.Duration {
		a.advance(s)
		for a.catchUp && s.Duration > 0 && s.Elapsed >= s.Duration {
			a.advance(s)
		}
	}
	t := 1.0
	if s.Duration > 0 {
		t = s.Elapsed / s.Duration
	}
	s.Value = s.Start.Lerp(s.End, s.Interpolation.Apply(t))
}

func (a *attributeAnimator) reset(s *AttributeState) {
	s.reset(a.start, a.end)
}

// advance moves s to the next segment, wrapping after the last transition.
// Overshoot past the old segment is kept in Elapsed.
func (a *attributeAnimator) advance(s *AttributeState) {
	n := a.seq.len()
	s.Elapsed -= s.Duration
	if n == 0 {
		return
	}
	s.Index++
	if s.Index >= n-1 {
		s.Index = 0
	}
	if s.Index == 0 {
		s.Start = a.sample(0)
	} else {
		s.Start = s.End
	}
	s.End = a.segmentEnd(s)
	s.Value = s.Start
	s.Interpolation = a.seq.interpolation(s.Index)
}

func (a *attributeAnimator) segmentEnd(s *AttributeState) Vec3 {
	n := a.seq.len()
	if n <= 1 {
		return s.Start
	}
	next := s.Index + 1
	if s.Index == n-1 {
		next = 0
	}
	return a.sample(next)
}

// sample reads keyframe i, randomized into [base - base*tol, base) when
// enabled. The stored keyframe is never modified.
func (a *attributeAnimator) sample(i int) Vec3 {
	v := a.seq.value(i)
	if !a.useRandom {
		return v
	}
	band := v.Scale(a.tolerance)
	return v.Sub(band).Add(band.Scale(a.randFloat()))
}
