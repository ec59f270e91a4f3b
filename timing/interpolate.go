package timing

// Interpolate maps x through the piecewise-linear function with knots
// (in[i], out[i]). in must be non-decreasing; values outside
// [in[0], in[len-1]] clamp to the end outputs.
//
// At a knot input the knot output is returned exactly. Repeated inputs form
// a step: at and after the repeated input the later output wins.
//
// Only the common prefix of in and out is used. Empty knots yield 0.
func Interpolate(x float64, in, out []float64) float64 {
	n := min(len(in), len(out))
	if n == 0 {
		return 0
	}
	if x <= in[0] {
		// Later knots may share in[0].
		i := 0
		for i+1 < n && in[i+1] == in[0] && x == in[0] {
			i++
		}
		return out[i]
	}
	if x >= in[n-1] {
		return out[n-1]
	}

	// Last knot with in[i] <= x.
	i := 0
	for i+1 < n && in[i+1] <= x {
		i++
	}
	if in[i] == x {
		return out[i]
	}
	x0, x1 := in[i], in[i+1]
	y0, y1 := out[i], out[i+1]
	t := (x - x0) / (x1 - x0)
	if t == 1 {
		return y1
	}
	return y0 + (y1-y0)*t
}
