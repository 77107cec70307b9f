package petal

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// Legacy endpoint defaults. Older effect files persist only these two values,
// under the "startColor" and "endColor" keys regardless of influencer type.
var (
	DefaultStartValue = Splat(1)
	DefaultEndValue   = Vec3{}
)

// MarshalYAML writes v as a flow sequence [x, y, z].
func (v Vec3) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		var item yaml.Node
		if err := item.Encode(c); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &item)
	}
	return n, nil
}

// UnmarshalYAML reads a three-element sequence. A single scalar is accepted
// and applied to all components.
func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s float64
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("petal: vector at line %d: %w", value.Line, err)
		}
		*v = Splat(s)
		return nil
	}
	var c []float64
	if err := value.Decode(&c); err != nil {
		return fmt.Errorf("petal: vector at line %d: %w", value.Line, err)
	}
	if len(c) != 3 {
		return fmt.Errorf("petal: vector at line %d has %d components, want 3", value.Line, len(c))
	}
	*v = Vec3{c[0], c[1], c[2]}
	return nil
}

// KeyframeDoc is the persisted form of a Keyframe.
type KeyframeDoc struct {
	Value         Vec3   `yaml:"value"`
	Interpolation string `yaml:"interpolation,omitempty"`
}

// InfluencerDoc is the persisted form of an Influencer.
//
// StartColor and EndColor hold the influencer endpoints for every keyframe
// type; the key names are kept for compatibility with existing files. A
// document carrying only those two keys is a legacy document and loads as an
// influencer with no keyframes.
type InfluencerDoc struct {
	Type           string        `yaml:"type"`
	Enabled        *bool         `yaml:"enabled,omitempty"`
	StartColor     *Vec3         `yaml:"startColor,omitempty"`
	EndColor       *Vec3         `yaml:"endColor,omitempty"`
	Keyframes      []KeyframeDoc `yaml:"keyframes,omitempty"`
	UseRandomValue bool          `yaml:"useRandomValue,omitempty"`
	RandomTol      *float64      `yaml:"randomTolerance,omitempty"`
	FixedDuration  float64       `yaml:"fixedDuration,omitempty"`
	CatchUp        bool          `yaml:"catchUp,omitempty"`
	Gravity        *Vec3         `yaml:"gravity,omitempty"`
}

// Influencer type names used in documents.
const (
	TypeSize     = "size"
	TypeColor    = "color"
	TypeAlpha    = "alpha"
	TypeRotation = "rotation"
	TypeGravity  = "gravity"
)

// EncodeInfluencer converts an influencer to its document form.
func EncodeInfluencer(inf Influencer) (InfluencerDoc, error) {
	var doc InfluencerDoc
	enabled := inf.IsEnabled()
	doc.Enabled = &enabled

	switch v := inf.(type) {
	case *SizeInfluencer:
		doc.Type = TypeSize
	case *ColorInfluencer:
		doc.Type = TypeColor
	case *AlphaInfluencer:
		doc.Type = TypeAlpha
	case *RotationInfluencer:
		doc.Type = TypeRotation
	case *GravityInfluencer:
		doc.Type = TypeGravity
		g := v.Gravity
		doc.Gravity = &g
		return doc, nil
	default:
		return doc, fmt.Errorf("petal: cannot encode influencer of type %T", inf)
	}

	a := inf.(keyframed).animator()
	start, end := a.Endpoints()
	doc.StartColor = &start
	doc.EndColor = &end
	for _, kf := range a.seq.frames {
		doc.Keyframes = append(doc.Keyframes, KeyframeDoc{
			Value:         kf.Value,
			Interpolation: kf.Interpolation.Name(),
		})
	}
	doc.UseRandomValue = a.useRandom
	tol := a.tolerance
	doc.RandomTol = &tol
	doc.FixedDuration = a.fixedDuration
	doc.CatchUp = a.catchUp
	return doc, nil
}

// DecodeInfluencer builds an influencer from its document form. Missing
// endpoints take DefaultStartValue and DefaultEndValue. Unknown interpolation
// names fall back to Linear with a logged warning.
func DecodeInfluencer(doc InfluencerDoc) (Influencer, error) {
	var inf keyframed
	switch doc.Type {
	case TypeSize:
		inf = NewSizeInfluencer()
	case TypeColor:
		inf = NewColorInfluencer()
	case TypeAlpha:
		inf = NewAlphaInfluencer()
	case TypeRotation:
		inf = NewRotationInfluencer()
	case TypeGravity:
		g := NewGravityInfluencer(Vec3{})
		if doc.Gravity != nil {
			g.Gravity = *doc.Gravity
		}
		if doc.Enabled != nil {
			g.SetEnabled(*doc.Enabled)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("petal: unknown influencer type %q", doc.Type)
	}

	a := inf.animator()
	start, end := DefaultStartValue, DefaultEndValue
	if doc.StartColor != nil {
		start = *doc.StartColor
	}
	if doc.EndColor != nil {
		end = *doc.EndColor
	}
	a.SetEndpoints(start, end)

	for _, kd := range doc.Keyframes {
		interp := Linear
		if kd.Interpolation != "" {
			var ok bool
			if interp, ok = InterpolationNamed(kd.Interpolation); !ok {
				log.Printf("petal: unknown interpolation %q, using linear", kd.Interpolation)
				interp = Linear
			}
		}
		a.AddKeyframe(kd.Value, interp)
	}
	a.SetUseRandomValue(doc.UseRandomValue)
	if doc.RandomTol != nil {
		a.SetRandomTolerance(*doc.RandomTol)
	}
	a.SetFixedDuration(doc.FixedDuration)
	a.SetCatchUp(doc.CatchUp)
	if doc.Enabled != nil {
		a.SetEnabled(*doc.Enabled)
	}
	return inf, nil
}

// EmitterDoc is the persisted form of an EmitterConfig.
type EmitterDoc struct {
	Name         string          `yaml:"name,omitempty"`
	MaxParticles int             `yaml:"maxParticles,omitempty"`
	EmitRate     float64         `yaml:"emitRate"`
	Lifetime     Range           `yaml:"lifetime"`
	Speed        Range           `yaml:"speed"`
	Angle        Range           `yaml:"angle"`
	Origin       Vec3            `yaml:"origin"`
	BlendMode    string          `yaml:"blend,omitempty"`
	Influencers  []InfluencerDoc `yaml:"influencers,omitempty"`
}

// EffectDoc is a named set of emitters, the top level of an effect file.
type EffectDoc struct {
	Name     string       `yaml:"name,omitempty"`
	Emitters []EmitterDoc `yaml:"emitters"`
}

// Effect is a loaded effect: its emitters in file order, stopped.
type Effect struct {
	Name     string
	Names    []string
	Emitters []*Emitter
}

// LoadEffect parses a YAML effect document.
func LoadEffect(data []byte) (*Effect, error) {
	var doc EffectDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("petal: failed to parse effect YAML: %w", err)
	}

	fx := &Effect{Name: doc.Name}
	for i, ed := range doc.Emitters {
		cfg, err := ed.config()
		if err != nil {
			return nil, fmt.Errorf("petal: emitter %d (%q): %w", i, ed.Name, err)
		}
		fx.Names = append(fx.Names, ed.Name)
		fx.Emitters = append(fx.Emitters, NewEmitter(cfg))
	}
	return fx, nil
}

// MarshalEffect encodes the effect's emitter configurations as YAML.
func MarshalEffect(fx *Effect) ([]byte, error) {
	doc := EffectDoc{Name: fx.Name}
	for i, e := range fx.Emitters {
		var name string
		if i < len(fx.Names) {
			name = fx.Names[i]
		}
		ed, err := encodeEmitter(name, e.Config())
		if err != nil {
			return nil, err
		}
		doc.Emitters = append(doc.Emitters, ed)
	}
	return yaml.Marshal(&doc)
}

func (ed EmitterDoc) config() (EmitterConfig, error) {
	blend, ok := parseBlendMode(ed.BlendMode)
	if !ok {
		return EmitterConfig{}, fmt.Errorf("unknown blend mode %q", ed.BlendMode)
	}
	cfg := EmitterConfig{
		MaxParticles: ed.MaxParticles,
		EmitRate:     ed.EmitRate,
		Lifetime:     ed.Lifetime,
		Speed:        ed.Speed,
		Angle:        ed.Angle,
		Origin:       ed.Origin,
		BlendMode:    blend,
	}
	for _, id := range ed.Influencers {
		inf, err := DecodeInfluencer(id)
		if err != nil {
			return EmitterConfig{}, err
		}
		cfg.Influencers = append(cfg.Influencers, inf)
	}
	return cfg, nil
}

func encodeEmitter(name string, cfg *EmitterConfig) (EmitterDoc, error) {
	ed := EmitterDoc{
		Name:         name,
		MaxParticles: cfg.MaxParticles,
		EmitRate:     cfg.EmitRate,
		Lifetime:     cfg.Lifetime,
		Speed:        cfg.Speed,
		Angle:        cfg.Angle,
		Origin:       cfg.Origin,
		BlendMode:    cfg.BlendMode.String(),
	}
	for _, inf := range cfg.Influencers {
		id, err := EncodeInfluencer(inf)
		if err != nil {
			return EmitterDoc{}, err
		}
		ed.Influencers = append(ed.Influencers, id)
	}
	return ed, nil
}
