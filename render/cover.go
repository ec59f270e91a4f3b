// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg-cover/palette"
	"github.com/gogpu/gg-cover/timing"

	cover "github.com/gogpu/gg-cover"
)

// ErrSize is returned for covers without a positive size.
var ErrSize = errors.New("render: cover size must be positive")

// Cover is everything needed to draw one cover.
type Cover struct {
	Width, Height int

	Palette palette.Palette

	// Background is a colour token. Empty leaves the frame transparent.
	Background string

	Media      *Media
	Foreground *Overlay

	// Texts are drawn in order, normally title then subtitle.
	Texts []cover.TextLayer

	// Easing maps playback time in [0,1] to cover progress. The zero value
	// is linear.
	Easing timing.Easing
}

// Media is the media layer of a cover. An empty Rect fills the cover.
type Media struct {
	Layer cover.MediaLayer
	Image image.Image
}

// Overlay is the foreground overlay. Its alpha channel is painted with
// Color; an empty Color keeps the overlay's own colours.
type Overlay struct {
	Layer cover.MediaLayer
	Image image.Image
	Color string
}

// Validate checks that c can be drawn.
func (c *Cover) Validate() error {
	if c == nil || c.Width <= 0 || c.Height <= 0 {
		return ErrSize
	}
	return nil
}

// Bounds returns the cover frame.
func (c *Cover) Bounds() cover.Rect {
	return cover.R(0, 0, float64(c.Width), float64(c.Height))
}

func (c *Cover) layerRect(l cover.MediaLayer) cover.Rect {
	if l.Rect.Empty() {
		return c.Bounds()
	}
	return l.Rect
}

func (c *Cover) String() string {
	return fmt.Sprintf("cover %dx%d, %d text layers", c.Width, c.Height, len(c.Texts))
}
