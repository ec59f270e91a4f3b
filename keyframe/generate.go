package keyframe

import (
	"math"

	"github.com/gogpu/gg-cover/anim"
	"github.com/gogpu/gg-cover/timing"

	cover "github.com/gogpu/gg-cover"
)

const (
	defaultSteps          = 200
	defaultTolerance      = 1e-3
	defaultPixelTolerance = 0.05
	bisectIterations      = 40
)

type options struct {
	steps    int
	tol      float64
	pixelTol float64
	from, to float64
}

func defaultOptions() options {
	return options{
		steps:    defaultSteps,
		tol:      defaultTolerance,
		pixelTol: defaultPixelTolerance,
		from:     0,
		to:       1,
	}
}

// Option configures keyframe generation.
type Option func(*options)

// WithSteps sets the number of sampling intervals. Visibility windows
// narrower than one interval may be missed. Values below 2 are ignored.
func WithSteps(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.steps = n
		}
	}
}

// WithTolerance sets how far the simplified array may deviate from the law:
// value applies to opacity and scale, pixels to translations.
func WithTolerance(value, pixels float64) Option {
	return func(o *options) {
		o.tol = math.Max(value, 0)
		o.pixelTol = math.Max(pixels, 0)
	}
}

// WithRange maps offsets [0,1] onto progress [from,to]. Media laws are
// defined over [-1,2]; the default range is [0,1].
func WithRange(from, to float64) Option {
	return func(o *options) {
		if to > from {
			o.from, o.to = from, to
		}
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Generator builds the keyframes of one letter from its stagger.
type Generator func(s anim.Stagger) []Keyframe

// Block returns the keyframes of a whole-text-block animation. A nil or
// non-block definition yields a static array.
func Block(def *anim.Definition, ctx anim.TextContext, opts ...Option) []Keyframe {
	o := newOptions(opts)
	return o.track(func(p float64) Keyframe {
		e := def.Block(p, ctx)
		return textFrame(e.Alpha, e.Offset, e.Visible)
	})
}

// Letters returns the per-letter generator of a letters animation.
func Letters(def *anim.Definition, ctx anim.TextContext, opts ...Option) Generator {
	o := newOptions(opts)
	return func(s anim.Stagger) []Keyframe {
		return o.track(func(p float64) Keyframe {
			e := def.Letter(p, s, ctx)
			return textFrame(e.Alpha, e.Offset, e.Visible)
		})
	}
}

// ForLetters returns one keyframe array per visible letter of ctx, using the
// stagger law of def. Per-frame random staggers are drawn once.
func ForLetters(def *anim.Definition, ctx anim.TextContext, opts ...Option) [][]Keyframe {
	n := len(ctx.Letters)
	if n == 0 {
		return nil
	}
	gen := Letters(def, ctx, opts...)
	out := make([][]Keyframe, n)
	for i, l := range ctx.Letters {
		out[i] = gen(def.StaggerOf(i, n, l, ctx.Random))
	}
	return out
}

// Media returns the keyframes of a media animation. Scales are emitted as
// scale() about the element centre, which is the CSS default origin.
func Media(def *anim.Definition, opts ...Option) []Keyframe {
	o := newOptions(opts)
	return o.track(func(p float64) Keyframe {
		e := def.Media(p)
		a := e.Alpha
		return Keyframe{
			Opacity:   &a,
			Transform: []cover.TransformOp{cover.ScaleOp(e.Scale)},
			Visible:   true,
		}
	})
}

// Clip reports whether drawing def must be clipped to the text box.
func Clip(def *anim.Definition, ctx anim.TextContext) bool {
	if def == nil {
		return false
	}
	if def.Category == anim.CategoryLetters {
		return def.ClipLetters
	}
	return def.Block(0.5, ctx).Clip
}

func textFrame(alpha float64, off cover.Point, visible bool) Keyframe {
	return Keyframe{
		Opacity:   &alpha,
		Transform: []cover.TransformOp{cover.TranslateOp(off.X, off.Y)},
		Visible:   visible,
	}
}

// progress maps an offset to law progress.
func (o options) progress(offset float64) float64 {
	return o.from + offset*(o.to-o.from)
}

// track samples eval on the grid, splits visibility steps and simplifies.
func (o options) track(eval func(p float64) Keyframe) []Keyframe {
	at := func(offset float64) Keyframe {
		k := eval(o.progress(offset))
		k.Offset = offset
		k.Easing = timing.Linear
		return k
	}

	raw := make([]Keyframe, 0, o.steps+1)
	prev := at(0)
	raw = append(raw, prev)
	for i := 1; i <= o.steps; i++ {
		cur := at(float64(i) / float64(o.steps))
		if cur.Visible != prev.Visible {
			before, after := o.bisect(at, prev, cur)
			after.Offset = before.Offset
			raw = append(raw, before, after)
		}
		raw = append(raw, cur)
		prev = cur
	}
	return o.simplify(raw)
}

// bisect narrows [a,b] to the visibility change and returns the states on
// either side. Both are placed at the first offset with the new state.
func (o options) bisect(at func(float64) Keyframe, a, b Keyframe) (before, after Keyframe) {
	lo, hi := a, b
	for range bisectIterations {
		mid := at((lo.Offset + hi.Offset) / 2)
		if mid.Visible == lo.Visible {
			lo = mid
		} else {
			hi = mid
		}
	}
	lo.Offset = hi.Offset
	return lo, hi
}

// simplify drops keyframes that linear interpolation between their kept
// neighbours reproduces within tolerance. Steps, visibility changes and the
// end points are always kept.
func (o options) simplify(raw []Keyframe) []Keyframe {
	if len(raw) <= 2 {
		return raw
	}
	out := []Keyframe{raw[0]}
	anchor := 0
	for i := 1; i < len(raw)-1; i++ {
		next := raw[i+1]
		if raw[i].Offset == next.Offset || raw[i].Offset == raw[i-1].Offset ||
			raw[i].Visible != next.Visible || !o.covers(raw, anchor, i+1) {
			out = append(out, raw[i])
			anchor = i
		}
	}
	return append(out, raw[len(raw)-1])
}

// covers reports whether the segment raw[a]..raw[b] reproduces every frame
// strictly between them.
func (o options) covers(raw []Keyframe, a, b int) bool {
	ka, kb := raw[a], raw[b]
	if ka.Visible != kb.Visible || !sameShape(ka.Transform, kb.Transform) {
		return false
	}
	span := kb.Offset - ka.Offset
	if span <= 0 {
		return false
	}
	for j := a + 1; j < b; j++ {
		t := (raw[j].Offset - ka.Offset) / span
		if raw[j].Visible != ka.Visible {
			return false
		}
		if math.Abs(ka.opacity()+(kb.opacity()-ka.opacity())*t-raw[j].opacity()) > o.tol {
			return false
		}
		ops := lerpOps(ka.Transform, kb.Transform, t)
		if !sameShape(ops, raw[j].Transform) {
			return false
		}
		for n, op := range ops {
			tol := o.tol
			if op.Kind == cover.OpTranslate {
				tol = o.pixelTol
			}
			want := raw[j].Transform[n]
			if math.Abs(op.X-want.X) > tol || math.Abs(op.Y-want.Y) > tol {
				return false
			}
		}
	}
	return true
}
