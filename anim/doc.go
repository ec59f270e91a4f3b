// Package anim is the catalog of cover animations.
//
// Every animation is a [Definition]: a closed [Kind], a [Category] and pure
// laws mapping progress to an effect description. Backends in canvas and
// keyframe translate the effects into draw calls or keyframes; no timing
// math lives outside this package and timing.
//
// Text and media ids live in separate namespaces:
//
//	def := anim.Text("letterSlideFromLeft")
//	eff := def.Letters(0.1, ctx)
//
//	zoom := anim.Media("zoomInOpacity")
//	m := zoom.Media(-1) // Scale 0.6, Alpha 0
//
// Unknown ids return nil, and a nil *Definition evaluates to the static
// effects, so callers never need to special-case a missing animation.
package anim
