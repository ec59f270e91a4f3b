package canvas

import (
	"github.com/gogpu/gg/text"

	"github.com/gogpu/gg-cover/anim"
	"github.com/gogpu/gg-cover/letters"
	"github.com/gogpu/gg-cover/palette"

	cover "github.com/gogpu/gg-cover"
)

// Paragraph is laid-out text. *letters.ShapedLayout satisfies it.
type Paragraph interface {
	letters.Layout
	letters.GlyphResolver

	// Lines may be empty while layout is not ready.
	Lines() []letters.Line
	Height() float64
	Face() text.Face
}

// TextInput is everything DrawText needs besides the animation.
type TextInput struct {
	Layer     cover.TextLayer
	Paragraph Paragraph
	Palette   palette.Palette

	CanvasWidth  float64
	CanvasHeight float64

	Random  anim.RandomMode
	Letters []letters.Option
}

// Baseline returns the baseline of the first line relative to the
// paragraph top. Without line metrics it falls back to the paragraph height.
func Baseline(p Paragraph) float64 {
	lines := p.Lines()
	if len(lines) == 0 {
		cover.Logger().Debug("canvas: no line metrics, using paragraph height")
		return p.Height()
	}
	return lines[0].Baseline()
}

// Context measures the layer and returns the context its laws evaluate
// against, along with its visible letters.
func (in TextInput) Context() anim.TextContext {
	ls := letters.Extract(in.Layer.Text, in.Paragraph, in.Paragraph, in.Letters...)
	ctx := anim.NewTextContext(in.Layer, in.CanvasWidth, in.Paragraph.Height(), ls)
	ctx.Random = in.Random
	return ctx
}

// DrawText draws a text layer at progress with def. A nil def draws the
// layer static.
func DrawText(c Canvas, def *anim.Definition, progress float64, in TextInput) {
	if in.Paragraph == nil {
		return
	}
	ctx := in.Context()
	origin := in.Layer.Origin(in.CanvasWidth, in.CanvasHeight)
	box := cover.R(0, 0, ctx.TextWidth, ctx.TextHeight)
	baseline := Baseline(in.Paragraph)
	font := in.Paragraph.Face()
	color := in.Palette.Resolve(in.Layer.Color)

	c.Save()
	defer c.Restore()
	c.Translate(origin.X, origin.Y)

	if def != nil && def.Category == anim.CategoryLetters {
		eff := def.Letters(progress, ctx)
		if eff.Clip {
			c.ClipRect(box)
		}
		for i, le := range eff.Letters {
			if !le.Visible || le.Alpha <= 0 {
				continue
			}
			l := ctx.Letters[i]
			run := GlyphRun{BaselineY: baseline, Font: font}
			run.add(l.GlyphID, l.Character, l.Position.Add(le.Offset), l.Size.W)
			c.DrawGlyphs(run, Paint{Color: color, Alpha: le.Alpha})
		}
		return
	}

	eff := def.Block(progress, ctx)
	if !eff.Visible || len(ctx.Letters) == 0 {
		return
	}
	if eff.Clip {
		c.ClipRect(box)
	}
	paint := Paint{Color: color, Alpha: eff.Alpha}
	if eff.Group {
		if eff.Alpha <= 0 {
			return
		}
		c.SaveLayer(eff.Alpha)
		defer c.Restore()
		paint.Alpha = 1
	} else if eff.Alpha <= 0 {
		return
	}

	run := GlyphRun{BaselineY: baseline, Font: font}
	for _, l := range ctx.Letters {
		run.add(l.GlyphID, l.Character, l.Position.Add(eff.Offset), l.Size.W)
	}
	c.DrawGlyphs(run, paint)
}
