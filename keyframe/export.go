package keyframe

import (
	"encoding/json"
	"math"
	"time"

	"github.com/gogpu/gg-cover/anim"
	"github.com/gogpu/gg-cover/timing"

	cover "github.com/gogpu/gg-cover"
)

// Fill modes of a Timing.
const (
	FillNone     = "none"
	FillForwards = "forwards"
	FillBoth     = "both"
)

// Infinite is the iteration count of a looping animation.
const Infinite = -1

// Timing describes playback of a keyframe array.
type Timing struct {
	Duration time.Duration

	// Iterations is the repeat count; Infinite loops forever.
	Iterations int

	Fill string

	// Easing maps playback time onto the whole keyframe timeline. The zero
	// value is linear.
	Easing timing.Easing
}

// DefaultTiming plays a cover once over five seconds and holds the end.
var DefaultTiming = Timing{Duration: 5 * time.Second, Iterations: 1, Fill: FillBoth}

type timingJSON struct {
	Duration   float64 `json:"duration"`
	Iterations any     `json:"iterations"`
	Fill       string  `json:"fill,omitempty"`
	Easing     string  `json:"easing,omitempty"`
}

// MarshalJSON encodes t as Element.animate options. Durations are in
// milliseconds; infinite iterations are encoded as the string "Infinity".
func (t Timing) MarshalJSON() ([]byte, error) {
	v := timingJSON{
		Duration:   float64(t.Duration) / float64(time.Millisecond),
		Iterations: t.Iterations,
		Fill:       t.Fill,
	}
	if t.Iterations == Infinite {
		v.Iterations = "Infinity"
	}
	if css := t.Easing.CSS(); css != "linear" {
		v.Easing = css
	}
	return json.Marshal(v)
}

type keyframeJSON struct {
	Offset     float64  `json:"offset"`
	Easing     string   `json:"easing,omitempty"`
	Opacity    *float64 `json:"opacity,omitempty"`
	Transform  string   `json:"transform,omitempty"`
	Visibility string   `json:"visibility"`
}

// CSSTransform returns the transform property of k.
func (k Keyframe) CSSTransform() string {
	return cover.CSSTransform(k.Transform...)
}

// MarshalJSON encodes k as a Web Animations keyframe.
func (k Keyframe) MarshalJSON() ([]byte, error) {
	v := keyframeJSON{
		Offset:     round(k.Offset),
		Visibility: "visible",
	}
	if css := k.Easing.CSS(); css != "" && css != "linear" {
		v.Easing = css
	}
	if k.Opacity != nil {
		o := round(*k.Opacity)
		v.Opacity = &o
	}
	if k.Transform != nil {
		v.Transform = cover.CSSTransform(roundOps(k.Transform)...)
	}
	if !k.Visible {
		v.Visibility = "hidden"
	}
	return json.Marshal(v)
}

func round(v float64) float64 {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		return 0
	}
	return r
}

func roundOps(ops []cover.TransformOp) []cover.TransformOp {
	out := make([]cover.TransformOp, len(ops))
	for i, op := range ops {
		out[i] = cover.TransformOp{Kind: op.Kind, X: round(op.X), Y: round(op.Y)}
	}
	return out
}

// Animation is one keyframe array with its playback timing.
type Animation struct {
	Keyframes []Keyframe `json:"keyframes"`
	Timing    Timing     `json:"timing"`
}

// TextAnimation is the declarative form of a text layer. Block is set for
// whole-block animations, Letters for per-letter ones.
type TextAnimation struct {
	ID      string        `json:"id,omitempty"`
	Clip    bool          `json:"clip"`
	Block   *Animation    `json:"block,omitempty"`
	Letters []LetterTrack `json:"letters,omitempty"`
}

// LetterTrack is the animation of one visible letter.
type LetterTrack struct {
	Character string       `json:"character"`
	Index     int          `json:"index"`
	Left      float64      `json:"left"`
	Top       float64      `json:"top"`
	Stagger   anim.Stagger `json:"-"`
	Animation Animation    `json:"animation"`
}

// Text builds the declarative form of def over ctx.
func Text(def *anim.Definition, ctx anim.TextContext, t Timing, opts ...Option) TextAnimation {
	out := TextAnimation{Clip: Clip(def, ctx)}
	if def != nil {
		out.ID = def.ID
	}
	if def == nil || def.Category != anim.CategoryLetters {
		out.Block = &Animation{Keyframes: Block(def, ctx, opts...), Timing: t}
		return out
	}
	n := len(ctx.Letters)
	gen := Letters(def, ctx, opts...)
	for i, l := range ctx.Letters {
		s := def.StaggerOf(i, n, l, ctx.Random)
		out.Letters = append(out.Letters, LetterTrack{
			Character: l.Character,
			Index:     i,
			Left:      round(l.Position.X),
			Top:       round(l.Position.Y),
			Stagger:   s,
			Animation: Animation{Keyframes: gen(s), Timing: t},
		})
	}
	return out
}

// MediaAnimation is the declarative form of a media layer.
func MediaAnimation(def *anim.Definition, t Timing, opts ...Option) Animation {
	return Animation{Keyframes: Media(def, opts...), Timing: t}
}
