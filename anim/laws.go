package anim

import (
	"math"

	"github.com/gogpu/gg-cover/letters"
	"github.com/gogpu/gg-cover/timing"
)

var (
	quarters = []float64{0, 0.25, 0.75, 1}
	envelope = []float64{0, 1, 1, 0}
	outAndIn = []float64{1, 0, 0, 1}

	mediaKnots = []float64{-1, 0, 1, 2}
)

// neonWindows are the inclusive progress windows in which neon text is lit.
var neonWindows = [...][2]float64{
	{0.10, 0.11},
	{0.12, 0.13},
	{0.14, 0.86},
	{0.87, 0.88},
	{0.89, 0.90},
}

func fadeInOut(p float64, _ TextContext) BlockEffect {
	return BlockEffect{
		Visible: true,
		Alpha:   timing.Interpolate(quartile(p), quarters, envelope),
	}
}

func neon(p float64, _ TextContext) BlockEffect {
	e := BlockEffect{Alpha: 1}
	for _, w := range neonWindows {
		if p >= w[0] && p <= w[1] {
			e.Visible = true
			break
		}
	}
	return e
}

func slide(d Direction) BlockLaw {
	return func(p float64, ctx TextContext) BlockEffect {
		k := timing.Interpolate(quartile(p), quarters, outAndIn)
		return BlockEffect{
			Visible: true,
			Alpha:   1,
			Offset:  d.Delta(ctx.TextWidth, ctx.TextHeight).Mul(k),
			Clip:    true,
		}
	}
}

func smooth(d Direction) BlockLaw {
	return func(p float64, ctx TextContext) BlockEffect {
		q := quartile(p)
		k := timing.Interpolate(q, []float64{0, 0.25, 1}, []float64{1, 0, 0})
		return BlockEffect{
			Visible: true,
			Alpha:   timing.Interpolate(q, quarters, envelope),
			Offset:  d.Delta(ctx.TextWidth, ctx.TextHeight).Mul(k),
			Group:   true,
		}
	}
}

func indexStagger(i, n int, _ letters.Letter, _ RandomMode) Stagger {
	return Stagger{Index: i, Count: n}
}

// letterAppears reveals round(interp(p)) letters, without easing.
func letterAppears(p float64, s Stagger, _ TextContext) LetterEffect {
	n := float64(s.Count)
	count := math.Round(timing.Interpolate(p, quarters, []float64{0, n, n, 0}))
	return LetterEffect{Visible: float64(s.Index) < count, Alpha: 1}
}

// fadeStagger is first in, first out.
func fadeStagger(i, n int, _ letters.Letter, _ RandomMode) Stagger {
	return Stagger{
		Index: i,
		Count: n,
		Enter: float64(i) / float64(n) * 0.25,
		Exit:  (1 - float64(i+1)/float64(n)) * 0.25,
	}
}

func randomFadeStagger(i, n int, l letters.Letter, mode RandomMode) Stagger {
	var a, b float64
	if mode == RandomPerFrame {
		a, b = perFrameFractions()
	} else {
		ra, rb := letters.SeedFloats(l.Seed)
		a, b = drawFraction(ra), drawFraction(rb)
	}
	return Stagger{Index: i, Count: n, Enter: a, Exit: b}
}

func letterFade(p float64, s Stagger, _ TextContext) LetterEffect {
	a, b := s.Enter, s.Exit
	return LetterEffect{
		Visible: true,
		Alpha: timing.Interpolate(quartile(p),
			[]float64{a, a + 0.25, 0.75 - b, 1 - b}, envelope),
	}
}

// directionStagger gives the same fraction f to enter and exit.
func directionStagger(d Direction) StaggerLaw {
	return func(i, n int, _ letters.Letter, _ RandomMode) Stagger {
		var f float64
		if d.leadingFirst() {
			f = float64(i+1) / float64(n) * 0.25
		} else {
			f = (1 - float64(i)/float64(n)) * 0.25
		}
		return Stagger{Index: i, Count: n, Enter: f, Exit: f}
	}
}

func letterSlide(d Direction) LetterLaw {
	return func(p float64, s Stagger, ctx TextContext) LetterEffect {
		f := s.Enter
		k := timing.Interpolate(quartile(p), []float64{0, f, 1 - f, 1}, outAndIn)
		return LetterEffect{
			Visible: true,
			Alpha:   1,
			Offset:  d.Delta(ctx.TextWidth, ctx.TextHeight).Mul(k),
		}
	}
}

func letterSmooth(d Direction) LetterLaw {
	return func(p float64, s Stagger, ctx TextContext) LetterEffect {
		f := s.Enter
		q := quartile(p)
		k := timing.Interpolate(q, []float64{0, f, 1}, []float64{1, 0, 0})
		return LetterEffect{
			Visible: true,
			Alpha:   timing.Interpolate(q, []float64{0, f}, []float64{0, 1}),
			Offset:  d.Delta(ctx.TextWidth, ctx.TextHeight).Mul(k),
		}
	}
}

func mediaFade(p float64) MediaEffect {
	return MediaEffect{
		Alpha: timing.Interpolate(quartile(p), quarters, envelope),
		Scale: 1,
	}
}

func zoomOpacity(scales []float64, level MediaLevel) MediaLaw {
	return func(p float64) MediaEffect {
		return MediaEffect{
			Alpha: timing.Interpolate(p, mediaKnots, envelope),
			Scale: timing.Interpolate(p, mediaKnots, scales),
			Level: level,
		}
	}
}

func zoomQuartile(scales []float64) MediaLaw {
	return func(p float64) MediaEffect {
		return MediaEffect{
			Alpha: 1,
			Scale: timing.Interpolate(quartile(p), quarters, scales),
			Level: LevelCanvas,
		}
	}
}
