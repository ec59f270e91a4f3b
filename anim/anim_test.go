package anim

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg-cover/letters"

	cover "github.com/gogpu/gg-cover"
)

const tolerance = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < tolerance }

// textContext returns a context with n single-character visible letters.
func textContext(s string, width, height float64) TextContext {
	return TextContext{
		TextWidth:  width,
		TextHeight: height,
		Letters:    letters.Visible(letters.Extract(s, nil, nil)),
	}
}

func TestCatalogIDs(t *testing.T) {
	textIDs := []string{
		"fadeInOut", "neon",
		"slideUp", "slideRight", "slideDown", "slideLeft",
		"smoothUp", "smoothRight", "smoothDown", "smoothLeft",
		"letterAppearsAnimation", "letterFadeAnimation", "letterFadeAnimationRandom",
		"letterSlideFromTop", "letterSlideFromRight", "letterSlideFromBottom", "letterSlideFromLeft",
		"letterSmoothFromTop", "letterSmoothFromRight", "letterSmoothFromBottom", "letterSmoothFromLeft",
	}
	for _, id := range textIDs {
		d := Text(id)
		if d == nil {
			t.Errorf("Text(%q) = nil", id)
			continue
		}
		if d.ID != id || d.Kind.String() != id || d.Label == "" {
			t.Errorf("Text(%q) = %+v", id, d)
		}
	}
	mediaIDs := []string{"fadeInOut", "zoomInOpacity", "zoomOutOpacity", "zoomInOut", "zoomOutIn"}
	for _, id := range mediaIDs {
		d := Media(id)
		if d == nil || d.Category != CategoryMedia {
			t.Errorf("Media(%q) = %+v", id, d)
		}
	}

	if got := len(List(FamilyText)); got != len(textIDs) {
		t.Errorf("List(text) has %d entries, want %d", got, len(textIDs))
	}
	if got := List(FamilyMedia); len(got) != len(mediaIDs) || got[0] != (Entry{ID: "fadeInOut", Label: "Fade"}) {
		t.Errorf("List(media) = %+v", got)
	}
}

func TestFamiliesAreIndependent(t *testing.T) {
	text, media := Text("fadeInOut"), Media("fadeInOut")
	if text == nil || media == nil || text == media {
		t.Fatal("fadeInOut must exist separately in both families")
	}
	if text.Kind != KindFadeInOut || media.Kind != KindMediaFadeInOut {
		t.Errorf("kinds = %v, %v", text.Kind, media.Kind)
	}
	if Media("neon") != nil || Text("zoomInOut") != nil {
		t.Error("ids leaked across families")
	}
}

func TestUnknownIDRendersStatic(t *testing.T) {
	d := Text("doesNotExist")
	if d != nil {
		t.Fatalf("Text(unknown) = %+v, want nil", d)
	}
	if got := d.Block(0.3, TextContext{}); got != StaticBlock() {
		t.Errorf("nil Block = %+v", got)
	}
	if got := d.Media(0.3); got != StaticMedia() {
		t.Errorf("nil Media = %+v", got)
	}
	eff := d.Letters(0.3, textContext("ab", 10, 10))
	if len(eff.Letters) != 2 || eff.Letters[0] != StaticLetter() || eff.Clip {
		t.Errorf("nil Letters = %+v", eff)
	}
}

func TestRegister(t *testing.T) {
	c := NewCatalog()
	def := &Definition{ID: "pulse", Label: "Pulse", Category: CategoryMedia,
		MediaLaw: func(p float64) MediaEffect { return MediaEffect{Alpha: 1, Scale: 1 + p, Level: LevelCanvas} }}
	if err := c.Register(def); err != nil {
		t.Fatalf("Register: %v", err)
	}
	def.Label = "mutated"
	got := c.Media("pulse")
	if got == nil || got.Label != "Pulse" {
		t.Errorf("registered definition = %+v, want an unaliased copy", got)
	}
	if m := got.Media(0.5); m.Scale != 1.5 {
		t.Errorf("custom law Scale = %v", m.Scale)
	}
	if err := c.Register(def); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate Register err = %v", err)
	}
	// the same id is free in the other family
	textDef := &Definition{ID: "pulse", Category: CategoryBlock, BlockLaw: fadeInOut}
	if err := c.Register(textDef); err != nil {
		t.Errorf("Register in text family: %v", err)
	}

	bad := []*Definition{
		nil,
		{Category: CategoryBlock, BlockLaw: fadeInOut},
		{ID: "x", Category: CategoryBlock},
		{ID: "x", Category: CategoryLetters, LetterLaw: letterFade},
		{ID: "x", Category: CategoryMedia},
		{ID: "x", Category: Category(9), BlockLaw: fadeInOut},
	}
	for i, d := range bad {
		if err := c.Register(d); !errors.Is(err, ErrInvalidDefinition) {
			t.Errorf("bad[%d]: err = %v, want ErrInvalidDefinition", i, err)
		}
	}
}

func TestKindCategory(t *testing.T) {
	tests := []struct {
		k    Kind
		want Category
	}{
		{KindFadeInOut, CategoryBlock},
		{KindSmoothLeft, CategoryBlock},
		{KindLetterAppears, CategoryLetters},
		{KindLetterSmoothFromLeft, CategoryLetters},
		{KindMediaFadeInOut, CategoryMedia},
		{KindZoomOutIn, CategoryMedia},
	}
	for _, tt := range tests {
		if got := tt.k.Category(); got != tt.want {
			t.Errorf("%v.Category() = %v, want %v", tt.k, got, tt.want)
		}
	}
	if Kind(200).String() != "unknown" || Category(9).String() != "unknown" {
		t.Error("out-of-range names should be unknown")
	}
}

func TestFadeInOut(t *testing.T) {
	d := Text("fadeInOut")
	tests := []struct{ p, want float64 }{
		{0, 0}, {0.25, 1}, {0.5, 1}, {0.75, 1}, {1, 0}, {-1, 0}, {2, 0},
	}
	for _, tt := range tests {
		if got := d.Block(tt.p, TextContext{}).Alpha; !near(got, tt.want) {
			t.Errorf("alpha(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if a := d.Block(0.125, TextContext{}).Alpha; !near(a, 0.5) {
		t.Errorf("alpha(0.125) = %v, want 0.5 (symmetric easing)", a)
	}
}

func TestNeon(t *testing.T) {
	d := Text("neon")
	tests := []struct {
		p    float64
		want bool
	}{
		{0.05, false},
		{0.105, true},
		{0.115, false},
		// Inside the [0.12, 0.13] flash, so visible; some sample tables list it as dark.
		{0.122, true},
		{0.135, false},
		{0.5, true},
		{0.865, false},
		{0.875, true},
		{0.905, false},
		{0.1, true},
		{0.9, true},
	}
	for _, tt := range tests {
		if got := d.Block(tt.p, TextContext{}).Visible; got != tt.want {
			t.Errorf("neon visible(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSlide(t *testing.T) {
	ctx := TextContext{TextWidth: 150, TextHeight: 40}
	tests := []struct {
		id   string
		want cover.Point
	}{
		{"slideUp", cover.Pt(0, -40)},
		{"slideRight", cover.Pt(150, 0)},
		{"slideDown", cover.Pt(0, 40)},
		{"slideLeft", cover.Pt(-150, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d := Text(tt.id)
			for _, p := range []float64{0, 1} {
				e := d.Block(p, ctx)
				if e.Offset != tt.want || !e.Clip || e.Alpha != 1 {
					t.Errorf("Block(%v) = %+v, want offset %v with clip", p, e, tt.want)
				}
			}
			for _, p := range []float64{0.25, 0.3, 0.4, 0.5, 0.6, 0.7, 0.75} {
				if off := d.Block(p, ctx).Offset; off != (cover.Point{}) {
					t.Errorf("Block(%v).Offset = %v, want exactly zero", p, off)
				}
			}
		})
	}
}

func TestSmooth(t *testing.T) {
	ctx := TextContext{TextWidth: 100, TextHeight: 30}
	d := Text("smoothDown")
	e := d.Block(0, ctx)
	if e.Offset != cover.Pt(0, 30) || e.Alpha != 0 || !e.Group || e.Clip {
		t.Errorf("Block(0) = %+v", e)
	}
	e = d.Block(0.5, ctx)
	if e.Offset != (cover.Point{}) || e.Alpha != 1 {
		t.Errorf("Block(0.5) = %+v", e)
	}
	// no exit displacement, fade only
	e = d.Block(1, ctx)
	if e.Offset != (cover.Point{}) || e.Alpha != 0 {
		t.Errorf("Block(1) = %+v", e)
	}
}

func TestLetterAppears(t *testing.T) {
	d := Text("letterAppearsAnimation")
	ctx := textContext("Hello you", 100, 20)
	n := len(ctx.Letters)
	count := func(p float64) int {
		c := 0
		for _, l := range d.Letters(p, ctx).Letters {
			if l.Visible {
				c++
			}
		}
		return c
	}
	if got := count(0.25); got != n {
		t.Errorf("count(0.25) = %d, want %d", got, n)
	}
	if got := count(0); got != 0 {
		t.Errorf("count(0) = %d, want 0", got)
	}
	if got := count(1); got != 0 {
		t.Errorf("count(1) = %d, want 0", got)
	}
	// letters appear in order
	eff := d.Letters(0.1, ctx).Letters
	seenHidden := false
	for i, l := range eff {
		if !l.Visible {
			seenHidden = true
		} else if seenHidden {
			t.Errorf("letter %d visible after a hidden one", i)
		}
	}
}

func TestEmptyTextIsNoop(t *testing.T) {
	for _, e := range List(FamilyText) {
		d := Text(e.ID)
		if d.Category != CategoryLetters {
			continue
		}
		for _, s := range []string{"", "   ", "\n\t"} {
			eff := d.Letters(0.3, textContext(s, 100, 20))
			if len(eff.Letters) != 0 {
				t.Errorf("%s(%q) = %+v, want no letters", e.ID, s, eff)
			}
		}
	}
}

func TestLetterFade(t *testing.T) {
	d := Text("letterFadeAnimation")
	ctx := textContext("abcd", 100, 20)
	s0 := d.StaggerOf(0, 4, ctx.Letters[0], RandomSeeded)
	s3 := d.StaggerOf(3, 4, ctx.Letters[3], RandomSeeded)
	if !near(s0.Enter, 0) || !near(s0.Exit, 0.1875) || !near(s3.Enter, 0.1875) || !near(s3.Exit, 0) {
		t.Errorf("staggers = %+v, %+v", s0, s3)
	}

	eff := d.Letters(0.1, ctx).Letters
	for i := 1; i < len(eff); i++ {
		if eff[i].Alpha > eff[i-1].Alpha {
			t.Errorf("letter %d brighter than %d while entering", i, i-1)
		}
	}
	for _, l := range d.Letters(0.5, ctx).Letters {
		if l.Alpha != 1 {
			t.Errorf("alpha at 0.5 = %v, want 1", l.Alpha)
		}
	}
	for _, l := range d.Letters(1, ctx).Letters {
		if l.Alpha != 0 {
			t.Errorf("alpha at 1 = %v, want 0", l.Alpha)
		}
	}
	// first in, first out: letter 0 is gone before letter 3
	out := d.Letters(0.8, ctx).Letters
	if out[0].Alpha >= out[3].Alpha {
		t.Errorf("exit order: alpha0=%v alpha3=%v", out[0].Alpha, out[3].Alpha)
	}
}

func TestLetterFadeRandomSeeded(t *testing.T) {
	d := Text("letterFadeAnimationRandom")
	ctx := textContext("Random", 100, 20)
	a := d.Letters(0.1, ctx)
	b := d.Letters(0.1, ctx)
	for i := range a.Letters {
		if a.Letters[i] != b.Letters[i] {
			t.Fatalf("seeded evaluation is not pure at letter %d", i)
		}
	}
	for i, l := range ctx.Letters {
		s := d.StaggerOf(i, len(ctx.Letters), l, RandomSeeded)
		if s.Enter < 0 || s.Enter > 0.25 || s.Exit < 0 || s.Exit > 0.25 {
			t.Errorf("stagger %d = %+v out of range", i, s)
		}
	}
}

func TestLetterFadeRandomPerFrame(t *testing.T) {
	d := Text("letterFadeAnimationRandom")
	ctx := textContext("flicker flicker", 100, 20)
	ctx.Random = RandomPerFrame
	differs := false
	first := d.Letters(0.1, ctx)
	for range 20 {
		next := d.Letters(0.1, ctx)
		for i := range next.Letters {
			if next.Letters[i] != first.Letters[i] {
				differs = true
			}
		}
	}
	if !differs {
		t.Error("per-frame mode never reseeded")
	}
	// the envelope still holds in the middle
	for _, l := range d.Letters(0.5, ctx).Letters {
		if l.Alpha != 1 {
			t.Errorf("alpha at 0.5 = %v, want 1", l.Alpha)
		}
	}
}

func TestLetterSlideFromLeftScenario(t *testing.T) {
	// "Hi", canvas 300 wide, layer width 50%.
	layer := cover.TextLayer{Text: "Hi", Width: 50}
	ctx := NewTextContext(layer, 300, 40, letters.Extract(layer.Text, nil, nil))
	if ctx.TextWidth != 150 || len(ctx.Letters) != 2 {
		t.Fatalf("context = %+v", ctx)
	}
	d := Text("letterSlideFromLeft")
	s0 := d.StaggerOf(0, 2, ctx.Letters[0], RandomSeeded)
	s1 := d.StaggerOf(1, 2, ctx.Letters[1], RandomSeeded)
	if !near(s0.Enter, 0.25) || !near(s1.Enter, 0.125) {
		t.Fatalf("staggers = %v, %v; want 0.25, 0.125", s0.Enter, s1.Enter)
	}

	eff := d.Letters(0, ctx)
	if !eff.Clip {
		t.Error("letter slide should clip")
	}
	for i, l := range eff.Letters {
		if l.Offset != cover.Pt(-150, 0) {
			t.Errorf("letter %d offset at 0 = %v, want (-150, 0)", i, l.Offset)
		}
	}

	arrival := func(i int) float64 {
		for p := 0.0; p <= 0.5; p += 0.001 {
			if d.Letters(p, ctx).Letters[i].Offset == (cover.Point{}) {
				return p
			}
		}
		return math.Inf(1)
	}
	if a0, a1 := arrival(0), arrival(1); !(a1 < a0) {
		t.Errorf("letter1 arrives at %v, letter0 at %v; want letter1 first", a1, a0)
	}
	end := d.Letters(1, ctx)
	for i, l := range end.Letters {
		if l.Offset != cover.Pt(-150, 0) {
			t.Errorf("letter %d offset at 1 = %v, want (-150, 0)", i, l.Offset)
		}
	}
}

func TestLetterSlideFromRightStagger(t *testing.T) {
	d := Text("letterSlideFromRight")
	s0 := d.StaggerOf(0, 2, letters.Letter{}, RandomSeeded)
	s1 := d.StaggerOf(1, 2, letters.Letter{}, RandomSeeded)
	if !near(s0.Enter, 0.125) || !near(s1.Enter, 0.25) {
		t.Errorf("staggers = %v, %v; want 0.125, 0.25", s0.Enter, s1.Enter)
	}
}

func TestLetterSmooth(t *testing.T) {
	d := Text("letterSmoothFromBottom")
	ctx := textContext("ab", 100, 25)
	start := d.Letters(0, ctx).Letters
	for i, l := range start {
		if l.Offset != cover.Pt(0, 25) || l.Alpha != 0 {
			t.Errorf("letter %d at 0 = %+v", i, l)
		}
	}
	end := d.Letters(1, ctx).Letters
	for i, l := range end {
		if l.Offset != (cover.Point{}) || l.Alpha != 1 {
			t.Errorf("letter %d at 1 = %+v, want settled and opaque", i, l)
		}
	}
	if d.Letters(0, ctx).Clip {
		t.Error("letter smooth should not clip")
	}
}

func TestBlockAndLettersAgreeAtEnds(t *testing.T) {
	ctx := textContext("Hi there", 200, 50)
	pairs := [][2]string{
		{"slideLeft", "letterSlideFromLeft"},
		{"slideRight", "letterSlideFromRight"},
		{"slideUp", "letterSlideFromTop"},
		{"slideDown", "letterSlideFromBottom"},
		{"smoothLeft", "letterSmoothFromLeft"},
		{"smoothUp", "letterSmoothFromTop"},
	}
	for _, pair := range pairs {
		block, perLetter := Text(pair[0]), Text(pair[1])
		for _, p := range []float64{0, 0.5} {
			b := block.Block(p, ctx)
			for i, l := range perLetter.Letters(p, ctx).Letters {
				if l.Offset != b.Offset {
					t.Errorf("%s vs %s at %v: letter %d offset %v, block %v",
						pair[0], pair[1], p, i, l.Offset, b.Offset)
				}
				if p == 0.5 && (l.Alpha != b.Alpha) {
					t.Errorf("%s vs %s at 0.5: alpha %v vs %v", pair[0], pair[1], l.Alpha, b.Alpha)
				}
			}
		}
	}
}

func TestZoomInOpacity(t *testing.T) {
	d := Media("zoomInOpacity")
	tests := []struct{ p, scale, alpha float64 }{
		{-1, 0.6, 0},
		{0, 1, 1},
		{1, 1, 1},
		{2, 1.4, 0},
		{-0.5, 0.8, 0.5},
		{-5, 0.6, 0},
	}
	for _, tt := range tests {
		e := d.Media(tt.p)
		if !near(e.Scale, tt.scale) || !near(e.Alpha, tt.alpha) || e.Level != LevelImage {
			t.Errorf("Media(%v) = %+v, want scale %v alpha %v", tt.p, e, tt.scale, tt.alpha)
		}
	}
}

func TestMediaLaws(t *testing.T) {
	tests := []struct {
		id    string
		p     float64
		want  MediaEffect
		level MediaLevel
	}{
		{"zoomOutOpacity", -1, MediaEffect{Alpha: 0, Scale: 1.4, Level: LevelCanvas}, LevelCanvas},
		{"zoomOutOpacity", 2, MediaEffect{Alpha: 0, Scale: 0.6, Level: LevelCanvas}, LevelCanvas},
		{"zoomInOut", 0, MediaEffect{Alpha: 1, Scale: 0, Level: LevelCanvas}, LevelCanvas},
		{"zoomInOut", 0.5, MediaEffect{Alpha: 1, Scale: 1, Level: LevelCanvas}, LevelCanvas},
		{"zoomOutIn", 1, MediaEffect{Alpha: 1, Scale: 1.4, Level: LevelCanvas}, LevelCanvas},
		{"zoomOutIn", 0.3, MediaEffect{Alpha: 1, Scale: 1, Level: LevelCanvas}, LevelCanvas},
		{"fadeInOut", 0.5, MediaEffect{Alpha: 1, Scale: 1}, LevelNone},
		{"fadeInOut", 0, MediaEffect{Alpha: 0, Scale: 1}, LevelNone},
	}
	for _, tt := range tests {
		e := Media(tt.id).Media(tt.p)
		if !near(e.Alpha, tt.want.Alpha) || !near(e.Scale, tt.want.Scale) || e.Level != tt.level {
			t.Errorf("%s(%v) = %+v, want %+v", tt.id, tt.p, e, tt.want)
		}
	}
}

func TestMediaEffectOps(t *testing.T) {
	rect := cover.R(0, 0, 200, 100)
	if ops := StaticMedia().Ops(rect); ops != nil {
		t.Errorf("static ops = %v", ops)
	}
	ops := MediaEffect{Scale: 2, Level: LevelCanvas}.Ops(rect)
	m := cover.Compose(ops...)
	if c := m.TransformPoint(rect.Center()); c != rect.Center() {
		t.Errorf("centre moved to %v", c)
	}
}

func TestPurity(t *testing.T) {
	ctx := textContext("Pure text", 120, 30)
	for _, f := range []Family{FamilyText, FamilyMedia} {
		for _, e := range List(f) {
			d := DefaultCatalog.Lookup(f, e.ID)
			for _, p := range []float64{-0.5, 0, 0.1, 0.33, 0.5, 0.8, 1, 1.5} {
				switch d.Category {
				case CategoryBlock:
					if d.Block(p, ctx) != d.Block(p, ctx) {
						t.Errorf("%s not pure at %v", e.ID, p)
					}
				case CategoryLetters:
					a, b := d.Letters(p, ctx), d.Letters(p, ctx)
					for i := range a.Letters {
						if a.Letters[i] != b.Letters[i] {
							t.Errorf("%s not pure at %v", e.ID, p)
						}
					}
				case CategoryMedia:
					if d.Media(p) != d.Media(p) {
						t.Errorf("%s not pure at %v", e.ID, p)
					}
				}
			}
		}
	}
}
