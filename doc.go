// Package cover is the root of gg-cover, the cover animation engine for the
// gg 2D graphics library.
//
// # Overview
//
// A cover is a short looping intro: a background colour, a media layer, an
// optional foreground overlay and title/subtitle text. Every animation is a
// pure function of a progress value in [0,1] (media layers may be sampled
// over [-1,2]). Given the same progress and context, the engine always
// produces the same effect, so it can be evaluated from any render callback
// or scrubbed freely.
//
// # Packages
//
//   - timing: quartile easing, phase evaluation, clamped interpolation
//   - letters: per-letter layout extraction over gg text faces
//   - palette: colour tokens
//   - anim: the animation catalog and its laws
//   - canvas: imperative backend (command recorder and gg adapter)
//   - keyframe: declarative backend (Web Animations keyframes)
//   - render: full-frame cover composition onto a gg.Context
//
// This package holds the shared value types: Rect, transform op lists and
// the layer descriptions. Points and matrices are gg.Point and gg.Matrix.
//
// # Transform order
//
// Transform op lists are applied left to right, the same way successive
// canvas calls and CSS transform functions compose:
//
//	ops := cover.ScaleAbout(rect.Center(), 1.4)
//	m := cover.Compose(ops...)     // canvas matrix
//	css := cover.CSSTransform(ops...) // "translate(..) scale(1.4) translate(..)"
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package cover
