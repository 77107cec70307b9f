package petal

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// setupBenchEmitter creates a full emitter driven by the four keyframed
// influencers plus gravity.
func setupBenchEmitter(n int) *Emitter {
	size := NewSizeInfluencer()
	size.AddKeyframe(Splat(1), EaseOut)
	size.AddKeyframe(Splat(3), SineInOut)
	size.AddKeyframe(Splat(0.5), Linear)
	color := NewColorInfluencer()
	color.AddKeyframe(Vec3{1, 1, 0.5}, Linear)
	color.AddKeyframe(Vec3{1, 0, 0}, Linear)
	alpha := NewAlphaInfluencer()
	alpha.SetUseRandomValue(true)
	alpha.SetRandomTolerance(0.3)

	cfg := EmitterConfig{
		MaxParticles: n,
		EmitRate:     100000,
		Lifetime:     Range{Min: 10, Max: 10},
		Speed:        Range{Min: 10, Max: 50},
		Angle:        Range{Min: 0, Max: 2 * math.Pi},
		Influencers: []Influencer{
			size, color, alpha, NewRotationInfluencer(),
			NewGravityInfluencer(Vec3{Y: 9.8}),
		},
	}
	e := NewEmitter(cfg)
	e.Start()
	for e.alive < n {
		e.Update(1.0 / 60.0)
	}
	return e
}

// --- Simulation Benchmarks ---

func BenchmarkEmitter_Update_10000(b *testing.B) {
	e := setupBenchEmitter(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Update(1.0 / 60.0)
	}
}

func BenchmarkEmitter_Spawn_Burst(b *testing.B) {
	e := setupBenchEmitter(1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Reset()
		e.Burst(1000)
	}
}

// --- Draw Benchmarks ---

func BenchmarkEmitter_Draw_10000(b *testing.B) {
	e := setupBenchEmitter(10000)
	screen := ebiten.NewImage(640, 480)
	var r Renderer
	r.Draw(screen, e, nil, 8) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Draw(screen, e, nil, 8)
	}
}
