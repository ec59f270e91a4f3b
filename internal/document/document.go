// Package document reads and writes cover documents: YAML descriptions of a
// cover's palette, media, overlay and text layers.
package document

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gg-cover/anim"
	"github.com/gogpu/gg-cover/canvas"
	"github.com/gogpu/gg-cover/palette"
	"github.com/gogpu/gg-cover/timing"
)

// Version is written into new documents.
const Version = "1"

var (
	// ErrNoLayers is returned for documents with nothing to draw.
	ErrNoLayers = errors.New("document: cover has no layers")
	// ErrSize is returned for documents without a positive size.
	ErrSize = errors.New("document: width and height must be positive")
	// ErrUnknownAnimation is returned for animation ids missing from the catalog.
	ErrUnknownAnimation = errors.New("document: unknown animation")
	// ErrUnknownEasing is returned for easing names timing.Lookup does not know.
	ErrUnknownEasing = errors.New("document: unknown easing")
	// ErrInvalidLayer is returned for layers with out-of-range geometry.
	ErrInvalidLayer = errors.New("document: invalid layer")
)

// Document is one cover.
type Document struct {
	Version    string          `yaml:"version"`
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Palette    palette.Palette `yaml:"palette"`
	Background string          `yaml:"background,omitempty"`
	Media      *MediaLayer     `yaml:"media,omitempty"`
	Foreground *OverlayLayer   `yaml:"foreground,omitempty"`
	Title      *TextLayer      `yaml:"title,omitempty"`
	Subtitle   *TextLayer      `yaml:"subtitle,omitempty"`
	Transition string          `yaml:"transition,omitempty"`
	Easing     string          `yaml:"easing,omitempty"`
}

// Rect is a rectangle in cover pixels.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// MediaLayer is an image layer. Image is a path relative to the document.
// A missing Rect fills the cover.
type MediaLayer struct {
	Image     string `yaml:"image"`
	Rect      *Rect  `yaml:"rect,omitempty"`
	Animation string `yaml:"animation,omitempty"`
}

// OverlayLayer is the foreground overlay. Color tints its alpha channel.
type OverlayLayer struct {
	MediaLayer `yaml:",inline"`
	Color      string `yaml:"color,omitempty"`
}

// TextLayer is a title or subtitle. X, Y and Width are in percent of the
// cover size.
type TextLayer struct {
	Text      string  `yaml:"text"`
	Font      string  `yaml:"font,omitempty"`
	Size      float64 `yaml:"size,omitempty"`
	Color     string  `yaml:"color,omitempty"`
	Width     float64 `yaml:"width,omitempty"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Animation string  `yaml:"animation,omitempty"`
}

// Parse decodes a YAML document. It does not validate it.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document: parse: %w", err)
	}
	return &doc, nil
}

// Read reads and validates the document at path.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Marshal encodes doc as YAML.
func (d *Document) Marshal() ([]byte, error) {
	if d.Version == "" {
		c := *d
		c.Version = Version
		d = &c
	}
	return yaml.Marshal(d)
}

// Write writes doc to path.
func Write(doc *Document, path string) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports every problem of d, joined.
func (d *Document) Validate() error {
	var errs []error
	if d.Width <= 0 || d.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrSize, d.Width, d.Height))
	}
	if d.Media == nil && d.Foreground == nil && d.Title == nil && d.Subtitle == nil {
		errs = append(errs, ErrNoLayers)
	}
	if d.Media != nil {
		errs = append(errs, d.Media.validate("media", d.Width, d.Height))
	}
	if d.Foreground != nil {
		errs = append(errs, d.Foreground.validate("foreground", d.Width, d.Height))
	}
	if d.Title != nil {
		errs = append(errs, d.Title.validate("title"))
	}
	if d.Subtitle != nil {
		errs = append(errs, d.Subtitle.validate("subtitle"))
	}
	if d.Transition != "" {
		if _, ok := canvas.ParseTransition(d.Transition); !ok {
			errs = append(errs, fmt.Errorf("%w: transition %q", ErrUnknownAnimation, d.Transition))
		}
	}
	if d.Easing != "" {
		if _, ok := timing.Lookup(d.Easing); !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownEasing, d.Easing))
		}
	}
	return errors.Join(errs...)
}

func (m *MediaLayer) validate(name string, w, h int) error {
	var errs []error
	if m.Image == "" {
		errs = append(errs, fmt.Errorf("%w: %s has no image", ErrInvalidLayer, name))
	}
	if r := m.Rect; r != nil && (r.W <= 0 || r.H <= 0 || r.X >= float64(w) || r.Y >= float64(h)) {
		errs = append(errs, fmt.Errorf("%w: %s rect %+v is outside the cover", ErrInvalidLayer, name, *r))
	}
	if m.Animation != "" && anim.Media(m.Animation) == nil {
		errs = append(errs, fmt.Errorf("%w: %s animation %q", ErrUnknownAnimation, name, m.Animation))
	}
	return errors.Join(errs...)
}

func (t *TextLayer) validate(name string) error {
	var errs []error
	if t.Width < 0 || t.Width > 100 {
		errs = append(errs, fmt.Errorf("%w: %s width %v%% is outside [0, 100]", ErrInvalidLayer, name, t.Width))
	}
	if t.Size < 0 {
		errs = append(errs, fmt.Errorf("%w: %s size %v is negative", ErrInvalidLayer, name, t.Size))
	}
	if t.Animation != "" && anim.Text(t.Animation) == nil {
		errs = append(errs, fmt.Errorf("%w: %s animation %q", ErrUnknownAnimation, name, t.Animation))
	}
	return errors.Join(errs...)
}

// Example returns a small document using every layer kind.
func Example() *Document {
	return &Document{
		Version:    Version,
		Width:      1080,
		Height:     1920,
		Palette:    palette.Palette{Primary: "#1E88E5", Light: "#FFFFFF", Dark: "#0D1B2A"},
		Background: palette.TokenPrimary,
		Media:      &MediaLayer{Image: "media.png", Animation: "zoomInOpacity"},
		Title: &TextLayer{
			Text: "Hello", Size: 120, Color: palette.TokenLight,
			Width: 80, X: 10, Y: 40, Animation: "letterSlideFromLeft",
		},
		Subtitle: &TextLayer{
			Text: "gg-cover", Size: 56, Color: palette.TokenLight,
			Width: 80, X: 10, Y: 52, Animation: "smoothUp",
		},
	}
}
