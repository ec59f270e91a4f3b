package document

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp" // register WebP

	"github.com/gogpu/gg-cover/render"
	"github.com/gogpu/gg-cover/timing"

	cover "github.com/gogpu/gg-cover"
)

// LoadImage decodes a PNG, JPEG or WebP file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("document: decode %s: %w", path, err)
	}
	return img, nil
}

// Cover converts d into a drawable cover. Image paths are resolved against
// dir.
func (d *Document) Cover(dir string) (*render.Cover, error) {
	c := &render.Cover{
		Width:      d.Width,
		Height:     d.Height,
		Palette:    d.Palette,
		Background: d.Background,
	}
	if d.Easing != "" {
		e, ok := timing.Lookup(d.Easing)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, d.Easing)
		}
		c.Easing = e
	}
	if m := d.Media; m != nil {
		img, err := LoadImage(resolve(dir, m.Image))
		if err != nil {
			return nil, fmt.Errorf("media: %w", err)
		}
		c.Media = &render.Media{Layer: m.layer(), Image: img}
	}
	if fg := d.Foreground; fg != nil {
		img, err := LoadImage(resolve(dir, fg.Image))
		if err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
		c.Foreground = &render.Overlay{Layer: fg.layer(), Image: img, Color: fg.Color}
	}
	for _, t := range []*TextLayer{d.Title, d.Subtitle} {
		if t != nil {
			c.Texts = append(c.Texts, t.layer())
		}
	}
	return c, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

func (m *MediaLayer) layer() cover.MediaLayer {
	l := cover.MediaLayer{Animation: m.Animation}
	if r := m.Rect; r != nil {
		l.Rect = cover.R(r.X, r.Y, r.W, r.H)
	}
	return l
}

func (t *TextLayer) layer() cover.TextLayer {
	return cover.TextLayer{
		Text:       t.Text,
		FontFamily: t.Font,
		FontSize:   t.Size,
		Color:      t.Color,
		Width:      t.Width,
		Position:   cover.Pt(t.X, t.Y),
		Animation:  t.Animation,
	}
}
