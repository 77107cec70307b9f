package petal

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws emitters as batches of textured quads. Each particle is a
// quad of base*Size.X by base*Size.Y pixels centered on Position (X, Y),
// rotated by Rotation.Z and tinted by Color and Alpha.X. A Renderer keeps its
// vertex buffers between frames; it is not safe for concurrent use.
type Renderer struct {
	verts []ebiten.Vertex
	inds  []uint32
	white *ebiten.Image
}

// Draw renders all alive particles of e onto target in a single
// DrawTriangles32 call. A nil img draws solid quads.
func (r *Renderer) Draw(target *ebiten.Image, e *Emitter, img *ebiten.Image, base float64) {
	if e == nil || e.alive == 0 {
		return
	}
	if img == nil {
		if r.white == nil {
			r.white = ebiten.NewImage(1, 1)
			r.white.Fill(whiteRGBA)
		}
		img = r.white
	}
	src := img.Bounds()

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	for i := 0; i < e.alive; i++ {
		r.verts, r.inds = appendParticleQuad(r.verts, r.inds, &e.particles[i], base, src)
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = e.config.BlendMode.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(r.verts, r.inds, img, &op)
}

// appendParticleQuad appends the four vertices and six indices of one
// particle quad. Vertex colors are premultiplied.
func appendParticleQuad(verts []ebiten.Vertex, inds []uint32, p *Particle, base float64, src image.Rectangle) ([]ebiten.Vertex, []uint32) {
	hw := base * p.Size.Value.X / 2
	hh := base * p.Size.Value.Y / 2
	sin, cos := math.Sincos(p.Rotation.Value.Z)

	a := clamp01(p.Alpha.Value.X)
	cr := float32(clamp01(p.Color.Value.X) * a)
	cg := float32(clamp01(p.Color.Value.Y) * a)
	cb := float32(clamp01(p.Color.Value.Z) * a)
	ca := float32(a)

	su0, sv0 := float32(src.Min.X), float32(src.Min.Y)
	su1, sv1 := float32(src.Max.X), float32(src.Max.Y)
	psx := [4]float32{su0, su1, su0, su1}
	psy := [4]float32{sv0, sv0, sv1, sv1}
	qlx := [4]float64{-hw, hw, -hw, hw}
	qly := [4]float64{-hh, -hh, hh, hh}

	first := uint32(len(verts))
	for j := 0; j < 4; j++ {
		dx := qlx[j]*cos - qly[j]*sin + p.Position.X
		dy := qlx[j]*sin + qly[j]*cos + p.Position.Y
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   psx[j],
			SrcY:   psy[j],
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	inds = append(inds,
		first+0, first+1, first+2,
		first+1, first+3, first+2,
	)
	return verts, inds
}

var whiteRGBA = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
