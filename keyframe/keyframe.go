package keyframe

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-cover/timing"

	cover "github.com/gogpu/gg-cover"
)

// ErrOffsets is returned for keyframes outside [0,1] or out of order.
var ErrOffsets = errors.New("keyframe: offsets must be non-decreasing in [0,1]")

// Keyframe is one entry of a keyframe array.
type Keyframe struct {
	// Offset is the position on the timeline in [0,1]. Two keyframes with
	// the same offset form a step.
	Offset float64

	// Easing applies from this keyframe to the next.
	Easing timing.Easing

	// Opacity is nil when the keyframe does not animate opacity.
	Opacity *float64

	// Transform is applied left to right. Nil means no transform.
	Transform []cover.TransformOp

	Visible bool
}

// State is the value of a keyframe array at one instant.
type State struct {
	Opacity   float64
	Transform []cover.TransformOp
	Visible   bool
}

// Matrix returns the composed transform.
func (s State) Matrix() gg.Matrix { return cover.Compose(s.Transform...) }

func (k Keyframe) opacity() float64 {
	if k.Opacity == nil {
		return 1
	}
	return *k.Opacity
}

func (k Keyframe) state() State {
	return State{Opacity: k.opacity(), Transform: k.Transform, Visible: k.Visible}
}

// Validate checks the offsets of frames.
func Validate(frames []Keyframe) error {
	prev := 0.0
	for i, k := range frames {
		if k.Offset < 0 || k.Offset > 1 || k.Offset < prev {
			return fmt.Errorf("keyframe %d at %v: %w", i, k.Offset, ErrOffsets)
		}
		prev = k.Offset
	}
	return nil
}

// Sample evaluates frames at t with Web Animations semantics: values hold
// before the first and after the last keyframe, each segment uses the
// easing of its first keyframe, and at a repeated offset the last keyframe
// wins. An empty array samples as fully opaque and visible.
func Sample(frames []Keyframe, t float64) State {
	if len(frames) == 0 {
		return State{Opacity: 1, Visible: true}
	}
	if t < frames[0].Offset {
		return frames[0].state()
	}

	i := 0
	for i+1 < len(frames) && frames[i+1].Offset <= t {
		i++
	}
	if i == len(frames)-1 {
		return frames[i].state()
	}

	a, b := frames[i], frames[i+1]
	local := (t - a.Offset) / (b.Offset - a.Offset)
	e := a.Easing.Apply(local)

	s := State{
		Opacity:   a.opacity() + (b.opacity()-a.opacity())*e,
		Transform: lerpOps(a.Transform, b.Transform, e),
		Visible:   a.Visible,
	}
	if a.Visible != b.Visible && local > 0 {
		// visibility is visible strictly inside a segment with one
		// visible end.
		s.Visible = true
	}
	return s
}

// lerpOps interpolates op lists of the same shape component-wise. Lists of
// different shapes flip halfway, like a discrete property.
func lerpOps(a, b []cover.TransformOp, t float64) []cover.TransformOp {
	if !sameShape(a, b) {
		if t < 0.5 {
			return a
		}
		return b
	}
	if len(a) == 0 {
		return nil
	}
	out := make([]cover.TransformOp, len(a))
	for i := range a {
		out[i] = cover.TransformOp{
			Kind: a[i].Kind,
			X:    a[i].X + (b[i].X-a[i].X)*t,
			Y:    a[i].Y + (b[i].Y-a[i].Y)*t,
		}
	}
	return out
}

func sameShape(a, b []cover.TransformOp) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			return false
		}
	}
	return true
}
