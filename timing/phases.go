package timing

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDuration is returned for a phase duration outside (0,1] or a delay
	// outside [0,1).
	ErrDuration = errors.New("timing: phase duration or delay out of range")

	// ErrNonMonotonic is returned when the phase breakpoints do not increase.
	ErrNonMonotonic = errors.New("timing: phase breakpoints are not increasing")
)

// PhaseSpec describes one phase of an animation in timeline units.
type PhaseSpec struct {
	// Duration in (0,1].
	Duration float64

	// Delay in [0,1). Only the enter phase uses it; the exit phase always
	// ends at 1.
	Delay float64

	Easing Easing
}

func (s PhaseSpec) validate() error {
	if math.IsNaN(s.Duration) || s.Duration <= 0 || s.Duration > 1 {
		return fmt.Errorf("%w: duration %v", ErrDuration, s.Duration)
	}
	if math.IsNaN(s.Delay) || s.Delay < 0 || s.Delay >= 1 {
		return fmt.Errorf("%w: delay %v", ErrDuration, s.Delay)
	}
	return nil
}

// Phases maps raw progress to local progress through an enter phase and an
// optional exit phase.
//
// Without exit the local progress runs 0 → 1 over [delay, delay+duration]
// and holds at 1. With exit it then holds at 1 until 1-exitDuration and runs
// to 2 at progress 1.
//
// A Phases is immutable and safe for concurrent use.
type Phases struct {
	in, out []float64
	enter   Easing
	exit    Easing
	hasExit bool
}

// NewPhases validates the specs and builds the breakpoint table. exit may be
// nil.
//
// A zero delay collapses the leading segment, and without exit a phase that
// ends exactly at 1 collapses the trailing hold. Any other breakpoint that
// fails to increase is reported as ErrNonMonotonic.
func NewPhases(enter PhaseSpec, exit *PhaseSpec) (*Phases, error) {
	if err := enter.validate(); err != nil {
		return nil, fmt.Errorf("enter phase: %w", err)
	}
	end := enter.Delay + enter.Duration

	p := &Phases{enter: enter.Easing}
	if exit == nil {
		if end > 1 {
			return nil, fmt.Errorf("%w: enter ends at %v", ErrNonMonotonic, end)
		}
		p.in = []float64{0, enter.Delay, end, 1}
		p.out = []float64{0, 0, 1, 1}
		if end == 1 {
			p.in, p.out = p.in[:3], p.out[:3]
		}
	} else {
		if err := exit.validate(); err != nil {
			return nil, fmt.Errorf("exit phase: %w", err)
		}
		start := 1 - exit.Duration
		if !(end < start) {
			return nil, fmt.Errorf("%w: enter ends at %v, exit starts at %v", ErrNonMonotonic, end, start)
		}
		p.in = []float64{0, enter.Delay, end, start, 1}
		p.out = []float64{0, 0, 1, 1, 2}
		p.exit = exit.Easing
		p.hasExit = true
	}
	if enter.Delay == 0 {
		p.in, p.out = p.in[1:], p.out[1:]
	}
	for i := 1; i < len(p.in); i++ {
		if p.in[i] <= p.in[i-1] {
			return nil, fmt.Errorf("%w: %v", ErrNonMonotonic, p.in)
		}
	}
	return p, nil
}

// MustPhases is like NewPhases but panics on error. It is intended for
// package-level tables built from constants.
func MustPhases(enter PhaseSpec, exit *PhaseSpec) *Phases {
	p, err := NewPhases(enter, exit)
	if err != nil {
		panic(err)
	}
	return p
}

// HasExit reports whether the evaluator has an exit phase.
func (p *Phases) HasExit() bool { return p.hasExit }

// Breakpoints returns copies of the progress breakpoints and their local
// progress values.
func (p *Phases) Breakpoints() (in, out []float64) {
	return append([]float64(nil), p.in...), append([]float64(nil), p.out...)
}

// Evaluate returns the eased local progress at progress.
// The result is exactly 0, 1 or 2 at the breakpoints.
func (p *Phases) Evaluate(progress float64) float64 {
	v := Interpolate(progress, p.in, p.out)
	switch {
	case v < 1:
		return p.enter.Apply(v)
	case v > 1 && p.hasExit:
		return 1 + p.exit.Apply(v-1)
	default:
		return v
	}
}

// Evaluate is a one-shot form of NewPhases followed by Phases.Evaluate.
func Evaluate(progress float64, enter PhaseSpec, exit *PhaseSpec) (float64, error) {
	p, err := NewPhases(enter, exit)
	if err != nil {
		return 0, err
	}
	return p.Evaluate(progress), nil
}
