// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	cover "github.com/gogpu/gg-cover"
)

// fitImage crops src to the aspect ratio of r around its centre and scales
// the crop to the pixel size of r.
func fitImage(src image.Image, r cover.Rect) *image.RGBA {
	w := max(int(math.Ceil(r.W)), 1)
	h := max(int(math.Ceil(r.H)), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, coverCrop(src.Bounds(), w, h), xdraw.Over, nil)
	return dst
}

// coverCrop returns the centred sub-rectangle of b with the aspect ratio
// w:h.
func coverCrop(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 {
		return b
	}
	if sw*h > sh*w {
		cw := max(sh*w/h, 1)
		x := b.Min.X + (sw-cw)/2
		return image.Rect(x, b.Min.Y, x+cw, b.Max.Y)
	}
	ch := max(sw*h/w, 1)
	y := b.Min.Y + (sh-ch)/2
	return image.Rect(b.Min.X, y, b.Max.X, y+ch)
}

// tint paints the alpha channel of src with c.
func tint(src *image.RGBA, c color.Color) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	xdraw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, src, src.Bounds().Min, xdraw.Src)
	return dst
}
