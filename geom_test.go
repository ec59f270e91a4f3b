package cover

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestRectOps(t *testing.T) {
	r := R(10, 20, 100, 50)
	if c := r.Center(); !pointNear(c, Pt(60, 45)) {
		t.Errorf("Center = %v, want (60, 45)", c)
	}
	if !r.Contains(Pt(10, 20)) || !r.Contains(Pt(110, 70)) {
		t.Error("Contains should include edges")
	}
	if r.Contains(Pt(9.9, 30)) {
		t.Error("Contains(9.9, 30) = true, want false")
	}
	if got := r.Intersect(R(100, 60, 50, 50)); got != R(100, 60, 10, 10) {
		t.Errorf("Intersect = %+v", got)
	}
	if got := r.Intersect(R(500, 500, 1, 1)); !got.Empty() {
		t.Errorf("disjoint Intersect = %+v, want empty", got)
	}
	if got := (Rect{}).Union(r); got != r {
		t.Errorf("empty Union = %+v, want %+v", got, r)
	}
	if got := r.Union(R(0, 0, 5, 5)); got != R(0, 0, 110, 70) {
		t.Errorf("Union = %+v", got)
	}
	if got := r.Translate(Pt(-10, 5)); got != R(0, 25, 100, 50) {
		t.Errorf("Translate = %+v", got)
	}
}
