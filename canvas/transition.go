package canvas

import (
	"time"

	"github.com/gogpu/gg-cover/timing"

	cover "github.com/gogpu/gg-cover"
)

// Transition is a cut between two rendered covers.
type Transition uint8

const (
	TransitionFade Transition = iota
	TransitionSlideRight
	TransitionSlideBottom
	TransitionSlideLeft
	TransitionSlideTop
	TransitionWipeRight
	TransitionZoom

	transitionCount
)

var transitionIDs = [transitionCount]string{
	TransitionFade:        "fade",
	TransitionSlideRight:  "slideRight",
	TransitionSlideBottom: "slideBottom",
	TransitionSlideLeft:   "slideLeft",
	TransitionSlideTop:    "slideTop",
	TransitionWipeRight:   "wipeRight",
	TransitionZoom:        "zoom",
}

var transitionLabels = [transitionCount]string{
	TransitionFade:        "Fade",
	TransitionSlideRight:  "Slide right",
	TransitionSlideBottom: "Slide bottom",
	TransitionSlideLeft:   "Slide left",
	TransitionSlideTop:    "Slide top",
	TransitionWipeRight:   "Wipe right",
	TransitionZoom:        "Zoom",
}

// TransitionDuration is the length of every transition.
const TransitionDuration = 500 * time.Millisecond

// String returns the transition id.
func (t Transition) String() string {
	if t < transitionCount {
		return transitionIDs[t]
	}
	return "unknown"
}

// Label returns the human label.
func (t Transition) Label() string {
	if t < transitionCount {
		return transitionLabels[t]
	}
	return ""
}

// Duration returns how long the transition lasts.
func (t Transition) Duration() time.Duration { return TransitionDuration }

// ParseTransition looks up a transition by id.
func ParseTransition(id string) (Transition, bool) {
	for t, s := range transitionIDs {
		if s == id {
			return Transition(t), true
		}
	}
	return 0, false
}

// Transitions returns every transition in display order.
func Transitions() []Transition {
	out := make([]Transition, transitionCount)
	for i := range out {
		out[i] = Transition(i)
	}
	return out
}

var zoomOutAlpha = [2][]float64{{0, 0.4, 1}, {1, 1, 0}}

// DrawTransition draws the frame of t at elapsed, going from one cover to
// the next. Both images cover the w x h frame.
func DrawTransition(c Canvas, t Transition, elapsed time.Duration, from, to Image, w, h float64) {
	p := float64(elapsed) / float64(t.Duration())
	p = timing.Interpolate(p, []float64{0, 1}, []float64{0, 1})
	frame := cover.R(0, 0, w, h)

	draw := func(img Image, ops []cover.TransformOp, alpha float64) {
		if img == nil || alpha <= 0 {
			return
		}
		c.Save()
		Apply(c, ops)
		c.DrawImage(img, frame, ImagePaint(alpha))
		c.Restore()
	}

	switch t {
	case TransitionFade:
		draw(from, nil, 1-p)
		draw(to, nil, p)

	case TransitionSlideRight, TransitionSlideBottom, TransitionSlideLeft, TransitionSlideTop:
		var d cover.Point
		switch t {
		case TransitionSlideRight:
			d = cover.Pt(-w, 0)
		case TransitionSlideLeft:
			d = cover.Pt(w, 0)
		case TransitionSlideBottom:
			d = cover.Pt(0, -h)
		case TransitionSlideTop:
			d = cover.Pt(0, h)
		}
		out := d.Mul(p)
		in := d.Mul(p - 1)
		draw(from, []cover.TransformOp{cover.TranslateOp(out.X, out.Y)}, 1)
		draw(to, []cover.TransformOp{cover.TranslateOp(in.X, in.Y)}, 1)

	case TransitionWipeRight:
		draw(to, nil, 1)
		if from != nil && p < 1 {
			c.Save()
			c.ClipRect(cover.R(0, 0, w-p*w, h))
			c.DrawImage(from, frame, ImagePaint(1))
			c.Restore()
		}

	case TransitionZoom:
		draw(to, nil, 1)
		zoom := 1 + p*9
		alpha := timing.Interpolate(p, zoomOutAlpha[0], zoomOutAlpha[1])
		draw(from, cover.ScaleAbout(frame.Center(), zoom), alpha)

	default:
		draw(to, nil, 1)
	}
}
