// Package petal animates particle attributes through keyframes.
//
// An [Influencer] drives one aspect of every particle an [Emitter] owns. The
// keyframe influencers ([SizeInfluencer], [ColorInfluencer],
// [AlphaInfluencer], [RotationInfluencer]) move an attribute through an
// ordered list of values, easing each segment with an [Interpolation] built
// on [gween] easing functions:
//
//	size := petal.NewSizeInfluencer()
//	size.AddKeyframe(petal.Splat(0.2), petal.EaseOut)
//	size.AddKeyframe(petal.Splat(1.5), petal.Linear)
//	size.AddKeyframe(petal.Splat(0), nil)
//
//	e := petal.NewEmitter(petal.EmitterConfig{
//		EmitRate:    60,
//		Lifetime:    petal.Range{Min: 1, Max: 2},
//		Speed:       petal.Range{Min: 40, Max: 80},
//		Angle:       petal.Range{Min: 0, Max: 2 * math.Pi},
//		Influencers: []petal.Influencer{size, petal.NewColorInfluencer()},
//	})
//	e.Start()
//	// each frame:
//	e.Update(dt)
//
// # Segments
//
// N keyframes make N-1 segments. By default the particle lifetime is split
// evenly between them; [SizeInfluencer.SetFixedDuration] switches to a fixed
// segment length instead (cycle mode). Either way the last keyframe wraps back
// to the first, so a particle that outlives its segments starts over.
//
// # Effect files
//
// [LoadEffect] reads emitters and their influencers from YAML. [Renderer]
// draws an emitter with [Ebitengine]; examples/particles shows both. The ecs
// sub-module drives particles stored in a [Donburi] world.
//
// [gween]: https://github.com/tanema/gween
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package petal
