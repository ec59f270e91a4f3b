package canvas

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	cover "github.com/gogpu/gg-cover"
)

// Canvas is an imperative 2D drawing surface with a save/restore stack.
//
// Restore pops the most recent Save or SaveLayer. Transforms compose in call
// order: an op applies in the space left by the previous ones.
type Canvas interface {
	Save()
	Restore()
	Translate(x, y float64)
	Scale(x, y float64)
	ClipRect(r cover.Rect)

	// SaveLayer starts an offscreen layer composited with alpha on Restore.
	SaveLayer(alpha float64)

	DrawGlyphs(run GlyphRun, paint Paint)
	DrawImage(img Image, dst cover.Rect, paint Paint)
	FillRect(r cover.Rect, paint Paint)
}

// Image is anything with pixel dimensions. *gg.ImageBuf satisfies it.
type Image interface {
	Bounds() (width, height int)
}

// Paint is a colour with an extra alpha multiplier. Images ignore Color.
type Paint struct {
	Color gg.RGBA
	Alpha float64
}

// RGBA returns the colour with Alpha applied.
func (p Paint) RGBA() gg.RGBA {
	c := p.Color
	c.A *= clampAlpha(p.Alpha)
	return c
}

// ImagePaint returns a paint for drawing images at alpha.
func ImagePaint(alpha float64) Paint {
	return Paint{Color: gg.RGBA{R: 1, G: 1, B: 1, A: 1}, Alpha: alpha}
}

func clampAlpha(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// GlyphRun is a sequence of positioned glyphs sharing a font.
// Positions are the top-left corners of the letter boxes; glyphs sit on
// the baseline at Position.Y + BaselineY.
//
// GlyphIDs are for consumers that address glyphs directly, such as the
// Recorder. GGCanvas draws Chars, since gg.Context only draws strings.
type GlyphRun struct {
	GlyphIDs  []text.GlyphID
	Chars     []string
	Positions []cover.Point
	Advances  []float64
	BaselineY float64
	Font      text.Face
}

// Len returns the number of glyphs.
func (r GlyphRun) Len() int { return len(r.GlyphIDs) }

func (r *GlyphRun) add(gid text.GlyphID, ch string, pos cover.Point, advance float64) {
	r.GlyphIDs = append(r.GlyphIDs, gid)
	r.Chars = append(r.Chars, ch)
	r.Positions = append(r.Positions, pos)
	r.Advances = append(r.Advances, advance)
}

// Apply issues ops on c in order.
func Apply(c Canvas, ops []cover.TransformOp) {
	for _, op := range ops {
		switch op.Kind {
		case cover.OpTranslate:
			c.Translate(op.X, op.Y)
		case cover.OpScale:
			c.Scale(op.X, op.Y)
		}
	}
}
