package cover

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// OpKind identifies a transform operation.
type OpKind uint8

const (
	// OpTranslate moves by (X, Y) pixels.
	OpTranslate OpKind = iota
	// OpScale scales by (X, Y) about the current origin.
	OpScale
)

// String returns the CSS function name of the operation.
func (k OpKind) String() string {
	switch k {
	case OpTranslate:
		return "translate"
	case OpScale:
		return "scale"
	default:
		return "unknown"
	}
}

// TransformOp is one step of a transform list.
//
// A list is applied in order, each op acting in the coordinate space left by
// the previous one. That is the order of successive canvas calls and also the
// order of CSS transform functions, so the same list drives both backends.
type TransformOp struct {
	Kind OpKind
	X, Y float64
}

// TranslateOp returns a translation op.
func TranslateOp(x, y float64) TransformOp {
	return TransformOp{Kind: OpTranslate, X: x, Y: y}
}

// ScaleOp returns a uniform scale op.
func ScaleOp(s float64) TransformOp {
	return TransformOp{Kind: OpScale, X: s, Y: s}
}

// Matrix returns the matrix of a single op.
func (op TransformOp) Matrix() gg.Matrix {
	switch op.Kind {
	case OpTranslate:
		return gg.Translate(op.X, op.Y)
	case OpScale:
		return gg.Scale(op.X, op.Y)
	default:
		return gg.Identity()
	}
}

// Compose folds ops into one matrix, left to right.
// Compose(a, b).TransformPoint(p) == a.Matrix().TransformPoint(b.Matrix().TransformPoint(p)).
func Compose(ops ...TransformOp) gg.Matrix {
	m := gg.Identity()
	for _, op := range ops {
		m = m.Multiply(op.Matrix())
	}
	return m
}

// ScaleAbout returns the ops scaling by s around c.
func ScaleAbout(c Point, s float64) []TransformOp {
	return []TransformOp{
		TranslateOp(c.X, c.Y),
		ScaleOp(s),
		TranslateOp(-c.X, -c.Y),
	}
}

// CSSTransform renders ops as a CSS transform value.
// An empty list renders as "none".
func CSSTransform(ops ...TransformOp) string {
	if len(ops) == 0 {
		return "none"
	}
	var sb strings.Builder
	for i, op := range ops {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(op.Kind.String())
		sb.WriteByte('(')
		switch op.Kind {
		case OpTranslate:
			sb.WriteString(cssNumber(op.X))
			sb.WriteString("px, ")
			sb.WriteString(cssNumber(op.Y))
			sb.WriteString("px")
		default:
			sb.WriteString(cssNumber(op.X))
			if op.Y != op.X {
				sb.WriteString(", ")
				sb.WriteString(cssNumber(op.Y))
			}
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

func cssNumber(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
