package cover

// TextLayer is one title or subtitle of a cover. It is an immutable input to
// the renderers.
type TextLayer struct {
	Text       string
	FontFamily string
	FontSize   float64

	// Color is a palette token ("primary", "light", "dark") or a hex colour.
	Color string

	// Width is the layout width in percent of the canvas width.
	Width float64

	// Position is the layer origin in percent of the canvas size.
	Position Point

	// Animation is a text animation id. Empty or unknown ids render static.
	Animation string
}

// Origin returns the layer origin in canvas pixels.
func (l TextLayer) Origin(canvasWidth, canvasHeight float64) Point {
	return Point{
		X: canvasWidth * l.Position.X / 100,
		Y: canvasHeight * l.Position.Y / 100,
	}
}

// LayoutWidth returns the text box width in canvas pixels.
func (l TextLayer) LayoutWidth(canvasWidth float64) float64 {
	return canvasWidth * l.Width / 100
}

// MediaLayer is the media or foreground overlay layer of a cover.
type MediaLayer struct {
	// Rect is the destination rectangle in canvas pixels.
	Rect Rect

	// Animation is a media animation id. Empty or unknown ids render static.
	Animation string
}
