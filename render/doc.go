// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render composes complete cover frames.
//
// A cover is drawn back to front:
//
//  1. the background colour token
//  2. the media layer, with its media animation
//  3. the foreground overlay, tinted with its colour token
//  4. the text layers, each with its text animation
//
// Every layer is drawn through a [canvas.Canvas], so the same composition
// can be recorded for tests or rasterised with gg.
//
// # Usage
//
//	r := render.New(render.WithPalette(pal))
//	p, err := r.Prepare(cov)
//	if err != nil {
//	    return err
//	}
//	dc := gg.NewContext(p.Size())
//	for i := range frames {
//	    if err := r.DrawFrame(ctx, dc, p, float64(i)/float64(frames-1)); err != nil {
//	        return err
//	    }
//	    // encode dc...
//	}
//
// # Thread Safety
//
// A Renderer and a Prepared cover are read-only and may be shared. A
// gg.Context must not: give each goroutine its own.
package render
