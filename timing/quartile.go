package timing

// Quartile applies e to the first and last quarter of the timeline and leaves
// the middle half linear:
//
//	p < 0.25:  e(4p) / 4
//	p > 0.75:  0.75 + e(4(p-0.75)) / 4
//	otherwise: p
//
// The envelope is continuous because Easing endpoints are exact. Inputs
// outside [0,1] clamp to 0 and 1.
func Quartile(p float64, e Easing) float64 {
	switch {
	case p < 0.25:
		return e.Apply(p*4) / 4
	case p > 0.75:
		return 0.75 + e.Apply((p-0.75)*4)/4
	default:
		return p
	}
}
