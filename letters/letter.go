package letters

import (
	"encoding/binary"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/go-text/typesetting/segmenter"
	"github.com/gogpu/gg/text"

	cover "github.com/gogpu/gg-cover"
)

// Layout answers bounding-rect queries over rune ranges of laid-out text.
// Rects are relative to the layout origin (top-left of the first line).
type Layout interface {
	RectForRange(start, end int) (cover.Rect, bool)
}

// GlyphResolver maps a letter to the glyph id the font draws for it.
type GlyphResolver interface {
	GlyphID(letter string) text.GlyphID
}

// Size is a width and height in pixels.
type Size struct {
	W, H float64
}

// Letter is one drawable unit of the source text.
type Letter struct {
	// Character is the grapheme cluster (or rune) text.
	Character string

	GlyphID text.GlyphID

	// Position is the top-left corner of the letter box, relative to the
	// layout origin.
	Position cover.Point
	Size     Size

	// Offset is the rune offset of the letter in the source text.
	Offset int

	// Seed is a stable hash of the source text and the letter index.
	Seed uint64
}

// Rect returns the letter box.
func (l Letter) Rect() cover.Rect {
	return cover.Rect{X: l.Position.X, Y: l.Position.Y, W: l.Size.W, H: l.Size.H}
}

// IsSpace reports whether the letter is entirely whitespace.
func (l Letter) IsSpace() bool {
	return strings.TrimFunc(l.Character, unicode.IsSpace) == ""
}

// Unit selects what counts as one letter.
type Unit uint8

const (
	// UnitGrapheme uses extended grapheme clusters.
	UnitGrapheme Unit = iota
	// UnitRune uses single code points.
	UnitRune
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitGrapheme:
		return "grapheme"
	case UnitRune:
		return "rune"
	default:
		return "unknown"
	}
}

type options struct {
	unit Unit
}

// Option configures Extract.
type Option func(*options)

// WithUnit selects the letter unit. The default is UnitGrapheme.
func WithUnit(u Unit) Option {
	return func(o *options) {
		o.unit = u
	}
}

type unit struct {
	offset int // runes
	text   []rune
}

func split(runes []rune, u Unit) []unit {
	if len(runes) == 0 {
		return nil
	}
	if u == UnitRune {
		units := make([]unit, len(runes))
		for i := range runes {
			units[i] = unit{offset: i, text: runes[i : i+1]}
		}
		return units
	}

	var seg segmenter.Segmenter
	seg.Init(runes)
	it := seg.GraphemeIterator()
	var units []unit
	for it.Next() {
		g := it.Grapheme()
		units = append(units, unit{offset: g.Offset, text: g.Text})
	}
	return units
}

// Extract returns the letters of s in source order. Whitespace letters are
// included; use Visible before computing stagger fractions.
//
// A letter whose range the layout cannot resolve keeps a zero box.
func Extract(s string, layout Layout, font GlyphResolver, opts ...Option) []Letter {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	units := split([]rune(s), o.unit)
	if len(units) == 0 {
		return nil
	}
	out := make([]Letter, len(units))
	for i, u := range units {
		ch := string(u.text)
		l := Letter{
			Character: ch,
			Offset:    u.offset,
			Seed:      Seed(s, i),
		}
		if layout != nil {
			if r, ok := layout.RectForRange(u.offset, u.offset+len(u.text)); ok {
				l.Position = r.Min()
				l.Size = Size{W: r.W, H: r.H}
			}
		}
		if font != nil {
			l.GlyphID = font.GlyphID(ch)
		}
		out[i] = l
	}
	return out
}

// Visible returns the letters that are not whitespace, in order.
func Visible(ls []Letter) []Letter {
	out := make([]Letter, 0, len(ls))
	for _, l := range ls {
		if !l.IsSpace() {
			out = append(out, l)
		}
	}
	return out
}

// Seed returns the stable per-letter seed for letter index i of s.
func Seed(s string, i int) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(s)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(i))
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// SeedFloats derives two independent floats in [0,1) from a seed.
func SeedFloats(seed uint64) (a, b float64) {
	const mantissa = 1 << 53
	a = float64(seed>>11) / mantissa
	// splitmix64 finaliser for the second draw
	z := seed + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	b = float64(z>>11) / mantissa
	return a, b
}
