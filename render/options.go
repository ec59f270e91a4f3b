// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gg-cover/anim"
	"github.com/gogpu/gg-cover/letters"
	"github.com/gogpu/gg-cover/palette"
)

// DefaultFontSize is used for text layers without a font size.
const DefaultFontSize = 32

// Option configures a Renderer during creation.
//
// Example:
//
//	r := render.New(
//	    render.WithPalette(pal),
//	    render.WithMediaRange(-1, 2),
//	)
type Option func(*options)

// options holds optional configuration for a Renderer.
type options struct {
	fonts    FontResolver
	palette  *palette.Palette
	catalog  *anim.Catalog
	random   anim.RandomMode
	unit     letters.Unit
	fontSize float64

	mediaFrom, mediaTo float64
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		fonts:    nil, // Will be set to NewFontSet if nil
		catalog:  anim.DefaultCatalog,
		random:   anim.RandomSeeded,
		unit:     letters.UnitGrapheme,
		fontSize: DefaultFontSize,
		mediaTo:  1,
	}
}

// WithFontResolver sets how text layer families become font sources.
// The default is NewFontSet.
func WithFontResolver(f FontResolver) Option {
	return func(o *options) {
		o.fonts = f
	}
}

// WithPalette overrides the palette of every cover.
func WithPalette(p palette.Palette) Option {
	return func(o *options) {
		o.palette = &p
	}
}

// WithCatalog sets the catalog animation ids are looked up in.
func WithCatalog(c *anim.Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithRandomMode sets the random mode of letterFadeAnimationRandom.
func WithRandomMode(m anim.RandomMode) Option {
	return func(o *options) {
		o.random = m
	}
}

// WithLetterUnit sets what a letter is for per-letter animations.
func WithLetterUnit(u letters.Unit) Option {
	return func(o *options) {
		o.unit = u
	}
}

// WithDefaultFontSize sets the size of text layers that do not set one.
func WithDefaultFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithMediaRange maps cover progress [0,1] onto media progress
// [from,to]. Media laws are defined over [-1,2]; the default is [0,1].
func WithMediaRange(from, to float64) Option {
	return func(o *options) {
		if to > from {
			o.mediaFrom, o.mediaTo = from, to
		}
	}
}
