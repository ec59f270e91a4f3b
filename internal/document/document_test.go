package document

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg-cover/timing"

	cover "github.com/gogpu/gg-cover"
)

const sample = `
version: "1"
width: 400
height: 300
palette:
  primary: "#FF0000"
  light: "#FFFFFF"
  dark: "#000000"
background: primary
media:
  image: media.png
  animation: zoomInOpacity
foreground:
  image: overlay.png
  rect: {x: 0, y: 200, w: 400, h: 100}
  color: light
title:
  text: Hello
  size: 48
  color: light
  width: 80
  x: 10
  y: 20
  animation: letterSlideFromLeft
transition: fade
easing: in-out-sine
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if doc.Width != 400 || doc.Palette.Primary != "#FF0000" {
		t.Errorf("doc = %+v", doc)
	}
	if doc.Foreground == nil || doc.Foreground.Image != "overlay.png" || doc.Foreground.Color != "light" {
		t.Errorf("foreground = %+v", doc.Foreground)
	}
	if r := doc.Foreground.Rect; r == nil || r.Y != 200 || r.H != 100 {
		t.Errorf("foreground rect = %+v", r)
	}
	if doc.Title.Animation != "letterSlideFromLeft" || doc.Subtitle != nil {
		t.Errorf("title = %+v subtitle = %+v", doc.Title, doc.Subtitle)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("width: [1")); err == nil {
		t.Error("Parse accepted malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Document)
		want error
	}{
		{"no layers", func(d *Document) { d.Media, d.Foreground, d.Title = nil, nil, nil }, ErrNoLayers},
		{"zero size", func(d *Document) { d.Width = 0 }, ErrSize},
		{"unknown text animation", func(d *Document) { d.Title.Animation = "wobble" }, ErrUnknownAnimation},
		{"text id on media", func(d *Document) { d.Media.Animation = "neon" }, ErrUnknownAnimation},
		{"unknown transition", func(d *Document) { d.Transition = "windowSlice" }, ErrUnknownAnimation},
		{"unknown easing", func(d *Document) { d.Easing = "springy" }, ErrUnknownEasing},
		{"width over 100", func(d *Document) { d.Title.Width = 120 }, ErrInvalidLayer},
		{"media without image", func(d *Document) { d.Media.Image = "" }, ErrInvalidLayer},
		{"rect outside", func(d *Document) { d.Foreground.Rect.X = 500 }, ErrInvalidLayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(sample))
			if err != nil {
				t.Fatal(err)
			}
			tt.edit(doc)
			if err := doc.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	doc := &Document{Title: &TextLayer{Width: -1, Animation: "nope"}}
	err := doc.Validate()
	for _, want := range []error{ErrSize, ErrInvalidLayer, ErrUnknownAnimation} {
		if !errors.Is(err, want) {
			t.Errorf("Validate = %v, missing %v", err, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.yaml")
	in := Example()
	if err := Write(in, path); err != nil {
		t.Fatal(err)
	}
	out, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if *out.Title != *in.Title || *out.Subtitle != *in.Subtitle || out.Palette != in.Palette {
		t.Errorf("round trip changed the document:\n%+v\n%+v", in, out)
	}
	if out.Media.Image != in.Media.Image || out.Media.Rect != nil {
		t.Errorf("media = %+v", out.Media)
	}
}

func TestMarshalSetsVersion(t *testing.T) {
	doc := &Document{Width: 1, Height: 1}
	data, err := doc.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `version: "1"`) {
		t.Errorf("yaml = %s", data)
	}
	if doc.Version != "" {
		t.Error("Marshal modified the document")
	}
}

func TestReadMissing(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Read = %v, want os.ErrNotExist", err)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range w {
		img.Set(i, 0, color.RGBA{R: 255, A: 255})
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestCover(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "media.png"), 8, 6)
	writePNG(t, filepath.Join(dir, "overlay.png"), 4, 1)

	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	c, err := doc.Cover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Easing.CSS() != timing.InOutSine.CSS() {
		t.Errorf("easing = %q, want %q", c.Easing.CSS(), timing.InOutSine.CSS())
	}
	if c.Width != 400 || c.Background != "primary" {
		t.Errorf("cover = %+v", c)
	}
	if c.Media == nil || c.Media.Image.Bounds().Dx() != 8 || c.Media.Layer.Animation != "zoomInOpacity" {
		t.Errorf("media = %+v", c.Media)
	}
	if !c.Media.Layer.Rect.Empty() {
		t.Errorf("media rect = %+v, want empty (fill)", c.Media.Layer.Rect)
	}
	if c.Foreground.Layer.Rect != cover.R(0, 200, 400, 100) || c.Foreground.Color != "light" {
		t.Errorf("foreground = %+v", c.Foreground)
	}
	if len(c.Texts) != 1 || c.Texts[0].Position != cover.Pt(10, 20) || c.Texts[0].FontSize != 48 {
		t.Errorf("texts = %+v", c.Texts)
	}
}

func TestCoverMissingImage(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Cover(t.TempDir()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Cover = %v, want os.ErrNotExist", err)
	}
}
