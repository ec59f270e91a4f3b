package anim

import (
	"errors"
	"fmt"
	"sync"

	cover "github.com/gogpu/gg-cover"
)

var (
	// ErrDuplicateID is returned when an id is already registered in the
	// definition's family.
	ErrDuplicateID = errors.New("anim: duplicate animation id")

	// ErrInvalidDefinition is returned for a definition without an id or
	// without the law its category needs.
	ErrInvalidDefinition = errors.New("anim: invalid definition")
)

// Entry is an id with its human label, for pickers.
type Entry struct {
	ID    string
	Label string
}

// Catalog maps ids to definitions, one namespace per Family.
//
// Lookups are safe for concurrent use with Register.
type Catalog struct {
	mu    sync.RWMutex
	defs  [2]map[string]*Definition
	order [2][]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	c := &Catalog{}
	for i := range c.defs {
		c.defs[i] = make(map[string]*Definition)
	}
	return c
}

// Register adds a copy of def under def.ID in the family of its category.
func (c *Catalog) Register(def *Definition) error {
	if !def.valid() {
		return ErrInvalidDefinition
	}
	f := def.Category.Family()

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.defs[f][def.ID]; dup {
		return fmt.Errorf("%w: %s %q", ErrDuplicateID, f, def.ID)
	}
	d := *def
	c.defs[f][d.ID] = &d
	c.order[f] = append(c.order[f], d.ID)
	return nil
}

// Lookup returns the definition registered under id in family f, or nil.
func (c *Catalog) Lookup(f Family, id string) *Definition {
	if int(f) >= len(c.defs) {
		return nil
	}
	c.mu.RLock()
	d := c.defs[f][id]
	c.mu.RUnlock()
	if d == nil && id != "" {
		cover.Logger().Debug("anim: unknown animation id, rendering static",
			"family", f.String(), "id", id)
	}
	return d
}

// Text returns the text animation with the given id, or nil.
func (c *Catalog) Text(id string) *Definition { return c.Lookup(FamilyText, id) }

// Media returns the media animation with the given id, or nil.
func (c *Catalog) Media(id string) *Definition { return c.Lookup(FamilyMedia, id) }

// List returns the entries of family f in registration order.
func (c *Catalog) List(f Family) []Entry {
	if int(f) >= len(c.defs) {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, 0, len(c.order[f]))
	for _, id := range c.order[f] {
		out = append(out, Entry{ID: id, Label: c.defs[f][id].Label})
	}
	return out
}

// DefaultCatalog holds every built-in animation.
var DefaultCatalog = newDefaultCatalog()

func newDefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, d := range builtins() {
		if err := c.Register(d); err != nil {
			panic(err)
		}
	}
	return c
}

// Text returns the text animation id from DefaultCatalog, or nil.
func Text(id string) *Definition { return DefaultCatalog.Text(id) }

// Media returns the media animation id from DefaultCatalog, or nil.
func Media(id string) *Definition { return DefaultCatalog.Media(id) }

// List returns the entries of family f in DefaultCatalog.
func List(f Family) []Entry { return DefaultCatalog.List(f) }

// Register adds def to DefaultCatalog.
func Register(def *Definition) error { return DefaultCatalog.Register(def) }

func builtins() []*Definition {
	block := func(k Kind, label string, law BlockLaw) *Definition {
		return &Definition{ID: k.String(), Label: label, Kind: k, Category: CategoryBlock, BlockLaw: law}
	}
	perLetter := func(k Kind, label string, s StaggerLaw, law LetterLaw, clip bool) *Definition {
		return &Definition{
			ID: k.String(), Label: label, Kind: k, Category: CategoryLetters,
			StaggerLaw: s, LetterLaw: law, ClipLetters: clip,
		}
	}
	media := func(k Kind, label string, law MediaLaw) *Definition {
		return &Definition{ID: k.String(), Label: label, Kind: k, Category: CategoryMedia, MediaLaw: law}
	}

	return []*Definition{
		block(KindFadeInOut, "Fade", fadeInOut),
		block(KindNeon, "Neon", neon),
		block(KindSlideUp, "Slide up", slide(FromTop)),
		block(KindSlideRight, "Slide right", slide(FromRight)),
		block(KindSlideDown, "Slide down", slide(FromBottom)),
		block(KindSlideLeft, "Slide left", slide(FromLeft)),
		block(KindSmoothUp, "Smooth up", smooth(FromTop)),
		block(KindSmoothRight, "Smooth right", smooth(FromRight)),
		block(KindSmoothDown, "Smooth down", smooth(FromBottom)),
		block(KindSmoothLeft, "Smooth left", smooth(FromLeft)),

		perLetter(KindLetterAppears, "Letter appears", indexStagger, letterAppears, false),
		perLetter(KindLetterFade, "Letter fade", fadeStagger, letterFade, false),
		perLetter(KindLetterFadeRandom, "Letter fade randomly", randomFadeStagger, letterFade, false),
		perLetter(KindLetterSlideFromTop, "Letter Slide from top", directionStagger(FromTop), letterSlide(FromTop), true),
		perLetter(KindLetterSlideFromRight, "Letter Slide from right", directionStagger(FromRight), letterSlide(FromRight), true),
		perLetter(KindLetterSlideFromBottom, "Letter Slide from bottom", directionStagger(FromBottom), letterSlide(FromBottom), true),
		perLetter(KindLetterSlideFromLeft, "Letter Slide from left", directionStagger(FromLeft), letterSlide(FromLeft), true),
		perLetter(KindLetterSmoothFromTop, "Letter Smooth from top", directionStagger(FromTop), letterSmooth(FromTop), false),
		perLetter(KindLetterSmoothFromRight, "Letter Smooth from right", directionStagger(FromRight), letterSmooth(FromRight), false),
		perLetter(KindLetterSmoothFromBottom, "Letter Smooth from bottom", directionStagger(FromBottom), letterSmooth(FromBottom), false),
		perLetter(KindLetterSmoothFromLeft, "Letter Smooth from left", directionStagger(FromLeft), letterSmooth(FromLeft), false),

		media(KindMediaFadeInOut, "Fade", mediaFade),
		media(KindZoomInOpacity, "Zoom in", zoomOpacity([]float64{0.6, 1, 1, 1.4}, LevelImage)),
		media(KindZoomOutOpacity, "Zoom out", zoomOpacity([]float64{1.4, 1, 1, 0.6}, LevelCanvas)),
		media(KindZoomInOut, "Zoom in and out", zoomQuartile([]float64{0, 1, 1, 0})),
		media(KindZoomOutIn, "Zoom out and in", zoomQuartile([]float64{1.4, 1, 1, 1.4})),
	}
}
