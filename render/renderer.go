// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-cover/anim"
	"github.com/gogpu/gg-cover/canvas"
	"github.com/gogpu/gg-cover/keyframe"
	"github.com/gogpu/gg-cover/letters"
	"github.com/gogpu/gg-cover/palette"
	"github.com/gogpu/gg-cover/timing"

	cover "github.com/gogpu/gg-cover"
)

// Renderer turns covers into frames.
type Renderer struct {
	opts options
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = NewFontSet()
	}
	return &Renderer{opts: o}
}

// Prepared is a cover with its fonts resolved, its text laid out and its
// images scaled. It is immutable.
type Prepared struct {
	width, height int
	background    *gg.RGBA
	media         *mediaLayer
	overlay       *mediaLayer
	texts         []textLayer

	mediaFrom, mediaTo float64
	easing             timing.Easing
}

type mediaLayer struct {
	def *anim.Definition
	in  canvas.MediaInput
}

type textLayer struct {
	def *anim.Definition
	in  canvas.TextInput
}

// Prepare resolves everything c needs to be drawn.
func (r *Renderer) Prepare(c *Cover) (*Prepared, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	pal := c.Palette.WithDefaults()
	if r.opts.palette != nil {
		pal = r.opts.palette.WithDefaults()
	}

	p := &Prepared{
		width:     c.Width,
		height:    c.Height,
		mediaFrom: r.opts.mediaFrom,
		mediaTo:   r.opts.mediaTo,
		easing:    c.Easing,
	}
	if c.Background != "" {
		col := pal.Resolve(c.Background)
		p.background = &col
	}
	if m := c.Media; m != nil && m.Image != nil {
		rect := c.layerRect(m.Layer)
		p.media = &mediaLayer{
			def: r.opts.catalog.Media(m.Layer.Animation),
			in: canvas.MediaInput{
				Layer: cover.MediaLayer{Rect: rect, Animation: m.Layer.Animation},
				Image: canvas.NewImage(fitImage(m.Image, rect)),
			},
		}
	}
	if fg := c.Foreground; fg != nil && fg.Image != nil {
		rect := c.layerRect(fg.Layer)
		img := fitImage(fg.Image, rect)
		if fg.Color != "" {
			img = tint(img, pal.Resolve(fg.Color).Color())
		}
		p.overlay = &mediaLayer{
			def: r.opts.catalog.Media(fg.Layer.Animation),
			in: canvas.MediaInput{
				Layer: cover.MediaLayer{Rect: rect, Animation: fg.Layer.Animation},
				Image: canvas.NewImage(img),
			},
		}
	}
	for i, l := range c.Texts {
		t, err := r.prepareText(l, pal, c)
		if err != nil {
			return nil, fmt.Errorf("render: text layer %d: %w", i, err)
		}
		p.texts = append(p.texts, t)
	}

	cover.Logger().Debug("render: cover prepared",
		"width", c.Width, "height", c.Height, "texts", len(p.texts),
		"media", p.media != nil, "overlay", p.overlay != nil)
	return p, nil
}

func (r *Renderer) prepareText(l cover.TextLayer, pal palette.Palette, c *Cover) (textLayer, error) {
	src, err := r.opts.fonts.ResolveFont(l.FontFamily)
	if err != nil {
		return textLayer{}, err
	}
	if l.FontSize <= 0 {
		l.FontSize = r.opts.fontSize
	}
	l.Text = letters.Normalize(l.Text)

	w, h := float64(c.Width), float64(c.Height)
	para := letters.NewShapedLayout(l.Text, src.Face(l.FontSize), l.LayoutWidth(w))
	return textLayer{
		def: r.opts.catalog.Text(l.Animation),
		in: canvas.TextInput{
			Layer:        l,
			Paragraph:    para,
			Palette:      pal,
			CanvasWidth:  w,
			CanvasHeight: h,
			Random:       r.opts.random,
			Letters:      []letters.Option{letters.WithUnit(r.opts.unit)},
		},
	}, nil
}

// Size returns the cover size in pixels.
func (p *Prepared) Size() (width, height int) { return p.width, p.height }

// MediaProgress maps cover progress onto the media range.
func (p *Prepared) MediaProgress(progress float64) float64 {
	return p.mediaFrom + progress*(p.mediaTo-p.mediaFrom)
}

// Draw draws the frame at progress onto c.
func (p *Prepared) Draw(c canvas.Canvas, progress float64) {
	if p.background != nil {
		frame := cover.R(0, 0, float64(p.width), float64(p.height))
		c.FillRect(frame, canvas.Paint{Color: *p.background, Alpha: 1})
	}
	mp := p.MediaProgress(progress)
	if p.media != nil {
		canvas.DrawMedia(c, p.media.def, mp, p.media.in)
	}
	if p.overlay != nil {
		canvas.DrawMedia(c, p.overlay.def, mp, p.overlay.in)
	}
	for _, t := range p.texts {
		canvas.DrawText(c, t.def, progress, t.in)
	}
}

// DrawFrame clears dc and draws the frame at progress. dc must match the
// cover size.
func (p *Prepared) DrawFrame(ctx context.Context, dc *gg.Context, progress float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dc.Width() != p.width || dc.Height() != p.height {
		return fmt.Errorf("render: context is %dx%d, cover is %dx%d: %w",
			dc.Width(), dc.Height(), p.width, p.height, ErrSize)
	}
	dc.Clear()
	p.Draw(canvas.NewGGCanvas(dc), progress)
	return nil
}

// RenderFrame prepares c and draws its frame at progress into a new
// context.
func (r *Renderer) RenderFrame(ctx context.Context, c *Cover, progress float64) (*gg.Context, error) {
	p, err := r.Prepare(c)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(p.width, p.height)
	if err := p.DrawFrame(ctx, dc, progress); err != nil {
		return nil, err
	}
	return dc, nil
}

// Keyframes is the declarative form of a prepared cover.
type Keyframes struct {
	Media      *keyframe.Animation      `json:"media,omitempty"`
	Foreground *keyframe.Animation      `json:"foreground,omitempty"`
	Texts      []keyframe.TextAnimation `json:"texts"`
}

// Progress maps playback time t in [0,1] to the progress passed to Draw.
func (p *Prepared) Progress(t float64) float64 { return p.easing.Apply(t) }

// Keyframes exports every animated layer of p with timing t. A linear t
// takes the cover easing.
func (p *Prepared) Keyframes(t keyframe.Timing, opts ...keyframe.Option) Keyframes {
	if t.Easing.CSS() == "linear" {
		if p.easing.CSS() == "" {
			cover.Logger().Warn("render: cover easing has no CSS form, keyframes play linear")
		} else {
			t.Easing = p.easing
		}
	}
	mediaOpts := append([]keyframe.Option{keyframe.WithRange(p.mediaFrom, p.mediaTo)}, opts...)
	var out Keyframes
	if p.media != nil {
		a := keyframe.MediaAnimation(p.media.def, t, mediaOpts...)
		out.Media = &a
	}
	if p.overlay != nil {
		a := keyframe.MediaAnimation(p.overlay.def, t, mediaOpts...)
		out.Foreground = &a
	}
	out.Texts = make([]keyframe.TextAnimation, 0, len(p.texts))
	for _, l := range p.texts {
		out.Texts = append(out.Texts, keyframe.Text(l.def, l.in.Context(), t, opts...))
	}
	return out
}

// DrawTransition clears dc and draws transition tr at elapsed between two
// rendered covers of the size of dc.
func DrawTransition(ctx context.Context, dc *gg.Context, tr canvas.Transition, elapsed time.Duration, from, to image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dc.Clear()
	w, h := float64(dc.Width()), float64(dc.Height())
	canvas.DrawTransition(canvas.NewGGCanvas(dc), tr, elapsed, imageOrNil(from), imageOrNil(to), w, h)
	return nil
}

// imageOrNil keeps a nil image.Image a nil canvas.Image.
func imageOrNil(img image.Image) canvas.Image {
	if img == nil {
		return nil
	}
	return canvas.NewImage(img)
}

// FrameProgress returns the progress of frame i of n, spanning [0,1]
// inclusive.
func FrameProgress(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
