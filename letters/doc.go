// Package letters splits laid-out text into positioned letters for
// per-letter animation.
//
// [Extract] queries a [Layout] for the bounding rect of each letter and a
// [GlyphResolver] for its glyph id. [ShapedLayout] implements both over a
// gg text.Face:
//
//	src, _ := text.NewFontSource(goregular.TTF)
//	face := src.Face(48)
//	s := letters.Normalize("Hello")
//	layout := letters.NewShapedLayout(s, face, 300)
//	ls := letters.Visible(letters.Extract(s, layout, layout))
//
// Letters are grapheme clusters by default, so "e" followed by a combining
// accent is one letter. Range queries always use rune offsets.
package letters
