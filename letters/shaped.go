package letters

import (
	"math"
	"unicode/utf8"

	"github.com/gogpu/gg/text"

	cover "github.com/gogpu/gg-cover"
)

// Line describes one laid-out line. Start and End are rune offsets.
type Line struct {
	Start, End int

	// Top is the y of the line box relative to the layout origin.
	Top     float64
	Width   float64
	Height  float64
	Ascent  float64
	Descent float64
}

// Baseline returns the baseline y relative to the line top.
func (l Line) Baseline() float64 {
	return l.Height - l.Descent
}

type cell struct {
	x, advance float64
	line       int
}

// ShapedLayout lays out text with a gg face, breaking at '\n' and wrapping
// greedily at word boundaries. It implements Layout and GlyphResolver.
type ShapedLayout struct {
	face     text.Face
	text     string
	maxWidth float64
	metrics  text.Metrics
	lines    []Line
	cells    []cell // one per rune
}

// NewShapedLayout lays out s. A maxWidth <= 0 disables wrapping.
func NewShapedLayout(s string, face text.Face, maxWidth float64) *ShapedLayout {
	l := &ShapedLayout{
		face:     face,
		text:     s,
		maxWidth: maxWidth,
	}
	if face == nil {
		return l
	}
	l.metrics = face.Metrics()
	l.layout()
	return l
}

func (l *ShapedLayout) layout() {
	runeAt := runeIndex(l.text)
	n := runeAt[len(l.text)]
	orig := foldedOffsets(l.text)

	l.cells = make([]cell, n)
	have := make([]bool, n)
	lh := l.metrics.LineHeight()

	// WrapText ignores hard breaks without a positive width.
	width := l.maxWidth
	if width <= 0 {
		width = math.MaxFloat64
	}
	for li, wr := range text.WrapText(l.text, l.face, width, text.WrapWordChar) {
		line := Line{
			Start:   runeAt[orig[wr.Start]],
			End:     runeAt[orig[wr.End]],
			Top:     float64(li) * lh,
			Height:  lh,
			Ascent:  l.metrics.Ascent,
			Descent: l.metrics.Descent,
		}
		for g := range l.face.Glyphs(wr.Text) {
			ri := runeAt[orig[wr.Start+g.Index]]
			if ri >= n || have[ri] {
				continue
			}
			have[ri] = true
			l.cells[ri] = cell{x: g.X, advance: g.Advance, line: li}
			if end := g.X + g.Advance; end > line.Width {
				line.Width = end
			}
		}
		l.lines = append(l.lines, line)
	}

	// Runes without a glyph (break whitespace, ligature tails) sit at the
	// end of the previous glyph with zero width.
	for i := range l.cells {
		if have[i] {
			continue
		}
		if i > 0 {
			prev := l.cells[i-1]
			l.cells[i] = cell{x: prev.x + prev.advance, line: prev.line}
		}
	}
}

// runeIndex maps every byte offset of s, and len(s), to its rune index.
// Continuation bytes map to the rune they belong to.
func runeIndex(s string) []int {
	runeAt := make([]int, len(s)+1)
	n := -1
	for i := 0; i < len(s); i++ {
		if utf8.RuneStart(s[i]) {
			n++
		}
		runeAt[i] = n
	}
	runeAt[len(s)] = utf8.RuneCountInString(s)
	return runeAt
}

// foldedOffsets maps byte offsets of s with "\r\n" and "\r" folded to "\n",
// the string text.WrapText reports offsets in, back to offsets in s.
func foldedOffsets(s string) []int {
	orig := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); i++ {
		orig = append(orig, i)
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
	}
	return append(orig, len(s))
}

// Text returns the laid-out text.
func (l *ShapedLayout) Text() string { return l.text }

// Face returns the face used for layout.
func (l *ShapedLayout) Face() text.Face { return l.face }

// Lines returns the line metrics. It is empty when no face was given.
func (l *ShapedLayout) Lines() []Line { return l.lines }

// Height returns the total height of all lines.
func (l *ShapedLayout) Height() float64 {
	return float64(len(l.lines)) * l.metrics.LineHeight()
}

// Width returns the widest line.
func (l *ShapedLayout) Width() float64 {
	w := 0.0
	for _, ln := range l.lines {
		w = max(w, ln.Width)
	}
	return w
}

// RectForRange returns the union of the boxes of runes [start, end).
func (l *ShapedLayout) RectForRange(start, end int) (cover.Rect, bool) {
	if start < 0 || end > len(l.cells) || start >= end || len(l.lines) == 0 {
		return cover.Rect{}, false
	}
	lh := l.metrics.LineHeight()
	var x0, y0, x1, y1 float64
	for i := start; i < end; i++ {
		c := l.cells[i]
		top := l.lines[c.line].Top
		if i == start {
			x0, y0, x1, y1 = c.x, top, c.x+c.advance, top+lh
			continue
		}
		x0 = min(x0, c.x)
		y0 = min(y0, top)
		x1 = max(x1, c.x+c.advance)
		y1 = max(y1, top+lh)
	}
	return cover.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// GlyphID returns the first glyph the face produces for letter.
func (l *ShapedLayout) GlyphID(letter string) text.GlyphID {
	if l.face == nil {
		return 0
	}
	for g := range l.face.Glyphs(letter) {
		return g.GID
	}
	return 0
}
