// Package timing maps raw timeline progress onto the local progress consumed
// by animation laws.
//
// It provides three building blocks:
//
//   - [Interpolate]: clamped piecewise-linear mapping between knot arrays
//   - [Quartile]: an envelope that eases the first and last quarter of the
//     timeline and holds the middle linear
//   - [Phases]: an enter phase and an optional exit phase, each with its own
//     duration, delay and easing
//
// All functions are pure and safe for concurrent use.
package timing
