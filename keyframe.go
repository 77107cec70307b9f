package petal

import (
	"errors"
	"fmt"
)

// ErrKeyframeIndex is returned when a keyframe index is out of range.
var ErrKeyframeIndex = errors.New("petal: keyframe index out of range")

// Keyframe is one waypoint of an attribute animation: a value and the
// interpolation used for the segment that starts at it.
type Keyframe struct {
	Value         Vec3
	Interpolation *Interpolation
}

// keyframeSequence is the ordered keyframe list owned by one influencer.
// Values and interpolations live in the same slice so they can never diverge
// in length.
type keyframeSequence struct {
	frames []Keyframe
}

func (s *keyframeSequence) len() int {
	return len(s.frames)
}

func (s *keyframeSequence) add(value Vec3, interp *Interpolation) {
	if interp == nil {
		interp = Linear
	}
	s.frames = append(s.frames, Keyframe{Value: value, Interpolation: interp})
}

func (s *keyframeSequence) remove(index int) error {
	if index < 0 || index >= len(s.frames) {
		return fmt.Errorf("%w: %d (have %d)", ErrKeyframeIndex, index, len(s.frames))
	}
	s.frames = append(s.frames[:index], s.frames[index+1:]...)
	return nil
}

func (s *keyframeSequence) clear() {
	s.frames = s.frames[:0]
}

func (s *keyframeSequence) value(index int) Vec3 {
	return s.frames[index].Value
}

func (s *keyframeSequence) interpolation(index int) *Interpolation {
	return s.frames[index].Interpolation
}

// clone returns an independent copy; the Interpolation pointers are shared
// since interpolations are stateless.
func (s *keyframeSequence) clone() keyframeSequence {
	if s.frames == nil {
		return keyframeSequence{}
	}
	frames := make([]Keyframe, len(s.frames))
	copy(frames, s.frames)
	return keyframeSequence{frames: frames}
}
