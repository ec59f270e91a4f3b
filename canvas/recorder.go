package canvas

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	cover "github.com/gogpu/gg-cover"
)

// CommandType identifies a recorded canvas operation.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save current state
	CmdRestore                      // Restore previous state
	CmdTranslate                    // Translate the current transform
	CmdScale                        // Scale the current transform
	CmdClipRect                     // Intersect the clip with a rectangle
	CmdSaveLayer                    // Start an offscreen layer

	// Drawing commands
	CmdDrawGlyphs // Draw a glyph run
	CmdDrawImage  // Draw an image
	CmdFillRect   // Fill a rectangle
)

var commandTypeNames = [...]string{
	CmdSave:       "Save",
	CmdRestore:    "Restore",
	CmdTranslate:  "Translate",
	CmdScale:      "Scale",
	CmdClipRect:   "ClipRect",
	CmdSaveLayer:  "SaveLayer",
	CmdDrawGlyphs: "DrawGlyphs",
	CmdDrawImage:  "DrawImage",
	CmdFillRect:   "FillRect",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a recorded canvas operation.
type Command interface {
	Type() CommandType
	String() string
}

// SaveCommand saves the canvas state.
type SaveCommand struct{}

func (SaveCommand) Type() CommandType { return CmdSave }
func (SaveCommand) String() string    { return "Save" }

// RestoreCommand restores the canvas state.
type RestoreCommand struct{}

func (RestoreCommand) Type() CommandType { return CmdRestore }
func (RestoreCommand) String() string    { return "Restore" }

// TranslateCommand translates the transform.
type TranslateCommand struct{ X, Y float64 }

func (TranslateCommand) Type() CommandType { return CmdTranslate }
func (c TranslateCommand) String() string {
	return "Translate(" + num(c.X) + ", " + num(c.Y) + ")"
}

// ScaleCommand scales the transform.
type ScaleCommand struct{ X, Y float64 }

func (ScaleCommand) Type() CommandType { return CmdScale }
func (c ScaleCommand) String() string {
	return "Scale(" + num(c.X) + ", " + num(c.Y) + ")"
}

// ClipRectCommand intersects the clip with Rect.
type ClipRectCommand struct{ Rect cover.Rect }

func (ClipRectCommand) Type() CommandType { return CmdClipRect }
func (c ClipRectCommand) String() string  { return "ClipRect" + rect(c.Rect) }

// SaveLayerCommand starts an offscreen layer.
type SaveLayerCommand struct{ Alpha float64 }

func (SaveLayerCommand) Type() CommandType { return CmdSaveLayer }
func (c SaveLayerCommand) String() string  { return "SaveLayer(" + num(c.Alpha) + ")" }

// DrawGlyphsCommand draws a glyph run.
type DrawGlyphsCommand struct {
	Run   GlyphRun
	Paint Paint
}

func (DrawGlyphsCommand) Type() CommandType { return CmdDrawGlyphs }
func (c DrawGlyphsCommand) String() string {
	var sb strings.Builder
	sb.WriteString("DrawGlyphs(")
	sb.WriteString(strconv.Quote(strings.Join(c.Run.Chars, "")))
	fmt.Fprintf(&sb, ", n=%d, baseline=%s, alpha=%s", c.Run.Len(), num(c.Run.BaselineY), num(c.Paint.Alpha))
	if c.Run.Len() > 0 {
		p := c.Run.Positions[0]
		fmt.Fprintf(&sb, ", at=(%s, %s)", num(p.X), num(p.Y))
	}
	sb.WriteByte(')')
	return sb.String()
}

// DrawImageCommand draws an image into Dst.
type DrawImageCommand struct {
	Image Image
	Dst   cover.Rect
	Paint Paint
}

func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
func (c DrawImageCommand) String() string {
	return "DrawImage" + rect(c.Dst) + " alpha=" + num(c.Paint.Alpha)
}

// FillRectCommand fills Rect.
type FillRectCommand struct {
	Rect  cover.Rect
	Paint Paint
}

func (FillRectCommand) Type() CommandType { return CmdFillRect }
func (c FillRectCommand) String() string {
	return "FillRect" + rect(c.Rect) + " alpha=" + num(c.Paint.Alpha)
}

func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func rect(r cover.Rect) string {
	return "(" + num(r.X) + ", " + num(r.Y) + ", " + num(r.W) + ", " + num(r.H) + ")"
}

// Recorder is a Canvas that records commands. It also tracks the current
// transform so tests can assert on composed matrices.
//
// The zero value is ready to use.
type Recorder struct {
	commands []Command
	matrix   gg.Matrix
	stack    []gg.Matrix
	inited   bool
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{matrix: gg.Identity(), inited: true}
}

func (r *Recorder) init() {
	if !r.inited {
		r.matrix = gg.Identity()
		r.inited = true
	}
}

func (r *Recorder) record(c Command) { r.commands = append(r.commands, c) }

// Save implements Canvas.
func (r *Recorder) Save() {
	r.init()
	r.stack = append(r.stack, r.matrix)
	r.record(SaveCommand{})
}

// Restore implements Canvas.
func (r *Recorder) Restore() {
	r.init()
	if n := len(r.stack); n > 0 {
		r.matrix = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.record(RestoreCommand{})
}

// Translate implements Canvas.
func (r *Recorder) Translate(x, y float64) {
	r.init()
	r.matrix = r.matrix.Multiply(gg.Translate(x, y))
	r.record(TranslateCommand{X: x, Y: y})
}

// Scale implements Canvas.
func (r *Recorder) Scale(x, y float64) {
	r.init()
	r.matrix = r.matrix.Multiply(gg.Scale(x, y))
	r.record(ScaleCommand{X: x, Y: y})
}

// ClipRect implements Canvas.
func (r *Recorder) ClipRect(rc cover.Rect) { r.record(ClipRectCommand{Rect: rc}) }

// SaveLayer implements Canvas.
func (r *Recorder) SaveLayer(alpha float64) {
	r.init()
	r.stack = append(r.stack, r.matrix)
	r.record(SaveLayerCommand{Alpha: alpha})
}

// DrawGlyphs implements Canvas.
func (r *Recorder) DrawGlyphs(run GlyphRun, paint Paint) {
	r.record(DrawGlyphsCommand{Run: run, Paint: paint})
}

// DrawImage implements Canvas.
func (r *Recorder) DrawImage(img Image, dst cover.Rect, paint Paint) {
	r.record(DrawImageCommand{Image: img, Dst: dst, Paint: paint})
}

// FillRect implements Canvas.
func (r *Recorder) FillRect(rc cover.Rect, paint Paint) {
	r.record(FillRectCommand{Rect: rc, Paint: paint})
}

// Commands returns the recorded commands.
func (r *Recorder) Commands() []Command { return r.commands }

// Types returns the types of the recorded commands, in order.
func (r *Recorder) Types() []CommandType {
	out := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		out[i] = c.Type()
	}
	return out
}

// Matrix returns the current transform.
func (r *Recorder) Matrix() gg.Matrix {
	r.init()
	return r.matrix
}

// Depth returns the number of unbalanced saves.
func (r *Recorder) Depth() int { return len(r.stack) }

// Reset clears the recording.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.stack = r.stack[:0]
	r.matrix = gg.Identity()
	r.inited = true
}

// Playback replays the recording onto dst.
func (r *Recorder) Playback(dst Canvas) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			dst.Save()
		case RestoreCommand:
			dst.Restore()
		case TranslateCommand:
			dst.Translate(c.X, c.Y)
		case ScaleCommand:
			dst.Scale(c.X, c.Y)
		case ClipRectCommand:
			dst.ClipRect(c.Rect)
		case SaveLayerCommand:
			dst.SaveLayer(c.Alpha)
		case DrawGlyphsCommand:
			dst.DrawGlyphs(c.Run, c.Paint)
		case DrawImageCommand:
			dst.DrawImage(c.Image, c.Dst, c.Paint)
		case FillRectCommand:
			dst.FillRect(c.Rect, c.Paint)
		}
	}
}

// String returns one command per line.
func (r *Recorder) String() string {
	var sb strings.Builder
	for i, c := range r.commands {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
