package canvas

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	cover "github.com/gogpu/gg-cover"
)

// GGCanvas draws onto a *gg.Context.
//
// gg draws images and text in device space without consulting the clip
// stack, so GGCanvas tracks the device clip itself. Images are cropped to
// it. A glyph is drawn only when the centre of its box is inside it.
// Glyphs are positioned through the transform but never scaled.
type GGCanvas struct {
	dc     *gg.Context
	clip   cover.Rect
	frames []ggFrame
}

type ggFrame struct {
	clip  cover.Rect
	layer bool
}

// NewGGCanvas wraps dc. The initial clip is the whole context.
func NewGGCanvas(dc *gg.Context) *GGCanvas {
	return &GGCanvas{
		dc:   dc,
		clip: cover.R(0, 0, float64(dc.Width()), float64(dc.Height())),
	}
}

// Context returns the wrapped context.
func (g *GGCanvas) Context() *gg.Context { return g.dc }

// Save implements Canvas.
func (g *GGCanvas) Save() {
	g.frames = append(g.frames, ggFrame{clip: g.clip})
	g.dc.Push()
}

// SaveLayer implements Canvas.
func (g *GGCanvas) SaveLayer(alpha float64) {
	g.frames = append(g.frames, ggFrame{clip: g.clip, layer: true})
	g.dc.Push()
	g.dc.PushLayer(gg.BlendNormal, clampAlpha(alpha))
}

// Restore implements Canvas.
func (g *GGCanvas) Restore() {
	n := len(g.frames)
	if n == 0 {
		return
	}
	f := g.frames[n-1]
	g.frames = g.frames[:n-1]
	if f.layer {
		g.dc.PopLayer()
	}
	g.dc.Pop()
	g.clip = f.clip
}

// Translate implements Canvas.
func (g *GGCanvas) Translate(x, y float64) { g.dc.Translate(x, y) }

// Scale implements Canvas.
func (g *GGCanvas) Scale(x, y float64) { g.dc.Scale(x, y) }

// ClipRect implements Canvas.
func (g *GGCanvas) ClipRect(r cover.Rect) {
	g.dc.ClipRect(r.X, r.Y, r.W, r.H)
	g.clip = g.clip.Intersect(g.device(r))
}

// device maps r through the current transform.
func (g *GGCanvas) device(r cover.Rect) cover.Rect {
	x0, y0 := g.dc.TransformPoint(r.X, r.Y)
	x1, y1 := g.dc.TransformPoint(r.X+r.W, r.Y+r.H)
	return cover.R(math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0))
}

// DrawGlyphs implements Canvas. It draws run.Chars with DrawString and
// ignores run.GlyphIDs.
func (g *GGCanvas) DrawGlyphs(run GlyphRun, paint Paint) {
	if run.Font == nil || paint.Alpha <= 0 || g.clip.Empty() {
		return
	}
	height := run.Font.Metrics().LineHeight()
	g.dc.SetFont(run.Font)
	g.dc.SetColor(paint.RGBA().Color())
	for i, ch := range run.Chars {
		pos := run.Positions[i]
		cx, cy := g.dc.TransformPoint(pos.X+run.Advances[i]/2, pos.Y+height/2)
		if !g.clip.Contains(cover.Pt(cx, cy)) {
			continue
		}
		x, y := g.dc.TransformPoint(pos.X, pos.Y+run.BaselineY)
		g.dc.DrawString(ch, x, y)
	}
}

// DrawImage implements Canvas. img must be a *gg.ImageBuf; use NewImage to
// convert an image.Image.
func (g *GGCanvas) DrawImage(img Image, dst cover.Rect, paint Paint) {
	alpha := clampAlpha(paint.Alpha)
	if alpha <= 0 || dst.Empty() {
		return
	}
	buf, ok := img.(*gg.ImageBuf)
	if !ok || buf == nil {
		cover.Logger().Warn("canvas: unsupported image type")
		return
	}
	sw, sh := buf.Bounds()
	if sw == 0 || sh == 0 {
		return
	}

	full := g.device(dst)
	vis := full.Intersect(g.clip)
	if vis.Empty() {
		return
	}
	kx := float64(sw) / full.W
	ky := float64(sh) / full.H
	src := image.Rect(
		int(math.Floor((vis.X-full.X)*kx)),
		int(math.Floor((vis.Y-full.Y)*ky)),
		int(math.Ceil((vis.X+vis.W-full.X)*kx)),
		int(math.Ceil((vis.Y+vis.H-full.Y)*ky)),
	).Intersect(image.Rect(0, 0, sw, sh))
	if src.Empty() {
		return
	}

	g.dc.Push()
	g.dc.Identity()
	g.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:         vis.X,
		Y:         vis.Y,
		DstWidth:  vis.W,
		DstHeight: vis.H,
		SrcRect:   &src,
		Opacity:   alpha,
		BlendMode: gg.BlendNormal,
	})
	g.dc.Pop()
}

// FillRect implements Canvas.
func (g *GGCanvas) FillRect(r cover.Rect, paint Paint) {
	if paint.Alpha <= 0 || r.Empty() {
		return
	}
	g.dc.SetColor(paint.RGBA().Color())
	g.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	if err := g.dc.Fill(); err != nil {
		cover.Logger().Warn("canvas: fill failed", "err", err)
	}
}

// NewImage converts img into pixels GGCanvas can draw.
func NewImage(img image.Image) *gg.ImageBuf {
	if img == nil {
		return nil
	}
	return gg.ImageBufFromImage(img)
}
