package canvas

import (
	"github.com/gogpu/gg-cover/anim"

	cover "github.com/gogpu/gg-cover"
)

// MediaInput is a media or overlay layer with its pixels.
type MediaInput struct {
	Layer cover.MediaLayer
	Image Image
}

// DrawMedia draws a media layer at progress with def. A nil def draws the
// image static. Fully transparent frames issue no commands.
func DrawMedia(c Canvas, def *anim.Definition, progress float64, in MediaInput) {
	if in.Image == nil || in.Layer.Rect.Empty() {
		return
	}
	eff := def.Media(progress)
	if eff.Alpha <= 0 {
		return
	}
	rect := in.Layer.Rect

	c.Save()
	defer c.Restore()
	if eff.Level == anim.LevelImage {
		c.ClipRect(rect)
	}
	Apply(c, eff.Ops(rect))
	c.DrawImage(in.Image, rect, ImagePaint(eff.Alpha))
}
