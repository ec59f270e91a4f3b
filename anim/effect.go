package anim

import cover "github.com/gogpu/gg-cover"

// BlockEffect describes how to draw a text layer as a whole.
type BlockEffect struct {
	// Visible is false when nothing should be drawn.
	Visible bool

	// Alpha multiplies the paint alpha, in [0,1].
	Alpha float64

	// Offset translates the text inside its box.
	Offset cover.Point

	// Clip restricts drawing to the text box.
	Clip bool

	// Group applies Alpha to the whole run through one saved layer.
	Group bool
}

// StaticBlock is the effect of an unanimated layer.
func StaticBlock() BlockEffect {
	return BlockEffect{Visible: true, Alpha: 1}
}

// LetterEffect describes one letter.
type LetterEffect struct {
	Visible bool
	Alpha   float64
	Offset  cover.Point
}

// StaticLetter is the effect of an unanimated letter.
func StaticLetter() LetterEffect {
	return LetterEffect{Visible: true, Alpha: 1}
}

// LettersEffect describes every visible letter of a text layer, in order.
type LettersEffect struct {
	Clip    bool
	Letters []LetterEffect
}

// MediaLevel is where a media scale applies.
type MediaLevel uint8

const (
	// LevelNone means no transform.
	LevelNone MediaLevel = iota
	// LevelImage scales the image inside a clip to the layer rect.
	LevelImage
	// LevelCanvas scales everything drawn for the layer.
	LevelCanvas
)

// String returns the level name.
func (l MediaLevel) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelImage:
		return "image"
	case LevelCanvas:
		return "canvas"
	default:
		return "unknown"
	}
}

// MediaEffect describes a media or overlay layer.
type MediaEffect struct {
	Alpha float64
	Scale float64
	Level MediaLevel
}

// StaticMedia is the effect of an unanimated media layer.
func StaticMedia() MediaEffect {
	return MediaEffect{Alpha: 1, Scale: 1}
}

// Ops returns the transform the effect applies to a layer rect, centred on
// the rect. It is empty for LevelNone or a unit scale.
func (e MediaEffect) Ops(rect cover.Rect) []cover.TransformOp {
	if e.Level == LevelNone || e.Scale == 1 {
		return nil
	}
	return cover.ScaleAbout(rect.Center(), e.Scale)
}
