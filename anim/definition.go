package anim

import (
	"math/rand/v2"

	"github.com/gogpu/gg-cover/letters"
	"github.com/gogpu/gg-cover/timing"

	cover "github.com/gogpu/gg-cover"
)

// RandomMode selects how letterFadeAnimationRandom draws its staggers.
type RandomMode uint8

const (
	// RandomSeeded derives staggers from the letter seeds, so evaluation
	// stays pure.
	RandomSeeded RandomMode = iota
	// RandomPerFrame draws fresh staggers on every evaluation, giving a
	// flicker effect.
	RandomPerFrame
)

// String returns the mode name.
func (m RandomMode) String() string {
	switch m {
	case RandomSeeded:
		return "seeded"
	case RandomPerFrame:
		return "perFrame"
	default:
		return "unknown"
	}
}

// TextContext is the measured text a text law animates.
type TextContext struct {
	// TextWidth is the layout width: canvasWidth * layer width / 100.
	TextWidth float64
	// TextHeight is the laid-out paragraph height.
	TextHeight float64

	// Letters are the visible (non-whitespace) letters in order.
	Letters []letters.Letter

	Random RandomMode
}

// NewTextContext builds a context for layer measured as textHeight tall.
// Whitespace letters are dropped.
func NewTextContext(layer cover.TextLayer, canvasWidth, textHeight float64, ls []letters.Letter) TextContext {
	return TextContext{
		TextWidth:  layer.LayoutWidth(canvasWidth),
		TextHeight: textHeight,
		Letters:    letters.Visible(ls),
	}
}

// Stagger is the per-letter timing of a letters law. Enter and Exit are
// timeline fractions in [0, 0.25].
type Stagger struct {
	Index, Count int
	Enter, Exit  float64
}

// Laws that make up a definition.
type (
	BlockLaw   func(p float64, ctx TextContext) BlockEffect
	StaggerLaw func(i, n int, l letters.Letter, mode RandomMode) Stagger
	LetterLaw  func(p float64, s Stagger, ctx TextContext) LetterEffect
	MediaLaw   func(p float64) MediaEffect
)

// Definition is one catalog entry. Only the laws of its Category are used.
//
// A nil *Definition is valid and evaluates to the static effects, which is
// how unknown ids render.
type Definition struct {
	ID       string
	Label    string
	Kind     Kind
	Category Category

	BlockLaw BlockLaw

	StaggerLaw  StaggerLaw
	LetterLaw   LetterLaw
	ClipLetters bool

	MediaLaw MediaLaw
}

func (d *Definition) valid() bool {
	if d == nil || d.ID == "" {
		return false
	}
	switch d.Category {
	case CategoryBlock:
		return d.BlockLaw != nil
	case CategoryLetters:
		return d.StaggerLaw != nil && d.LetterLaw != nil
	case CategoryMedia:
		return d.MediaLaw != nil
	}
	return false
}

// Block evaluates a block definition. Other categories evaluate static.
func (d *Definition) Block(p float64, ctx TextContext) BlockEffect {
	if d == nil || d.Category != CategoryBlock || d.BlockLaw == nil {
		return StaticBlock()
	}
	return d.BlockLaw(p, ctx)
}

// StaggerOf returns the stagger of visible letter i of n.
func (d *Definition) StaggerOf(i, n int, l letters.Letter, mode RandomMode) Stagger {
	if d == nil || d.StaggerLaw == nil {
		return Stagger{Index: i, Count: n}
	}
	return d.StaggerLaw(i, n, l, mode)
}

// Letter evaluates a single letter with a known stagger.
func (d *Definition) Letter(p float64, s Stagger, ctx TextContext) LetterEffect {
	if d == nil || d.Category != CategoryLetters || d.LetterLaw == nil {
		return StaticLetter()
	}
	return d.LetterLaw(p, s, ctx)
}

// Letters evaluates every visible letter of ctx. With no visible letters
// the effect is empty.
func (d *Definition) Letters(p float64, ctx TextContext) LettersEffect {
	n := len(ctx.Letters)
	if n == 0 {
		return LettersEffect{}
	}
	out := LettersEffect{
		Clip:    d != nil && d.ClipLetters,
		Letters: make([]LetterEffect, n),
	}
	for i, l := range ctx.Letters {
		out.Letters[i] = d.Letter(p, d.StaggerOf(i, n, l, ctx.Random), ctx)
	}
	return out
}

// Media evaluates a media definition. Other categories evaluate static.
func (d *Definition) Media(p float64) MediaEffect {
	if d == nil || d.Category != CategoryMedia || d.MediaLaw == nil {
		return StaticMedia()
	}
	return d.MediaLaw(p)
}

// drawFraction returns a stagger fraction in [0, 0.25).
func drawFraction(r float64) float64 { return r * 0.25 }

func perFrameFractions() (a, b float64) {
	return drawFraction(rand.Float64()), drawFraction(rand.Float64())
}

// quartile is the envelope shared by the eased laws.
func quartile(p float64) float64 {
	return timing.Quartile(p, timing.EaseInOut)
}
