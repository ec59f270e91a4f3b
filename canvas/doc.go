// Package canvas is the imperative backend of the cover engine.
//
// [DrawText], [DrawMedia] and [DrawTransition] evaluate an animation and
// issue the resulting operations on a [Canvas]: save, translate, clip,
// scale, save layer, draw glyphs, draw image, restore. Two canvases are
// provided:
//
//   - [Recorder] captures typed commands, for tests and inspection
//   - [GGCanvas] draws onto a *gg.Context
//
// Pass order for a text layer:
//
//	save → translate(origin) → clip? → paint → saveLayer? → glyphs → restore
package canvas
