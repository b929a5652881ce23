// Package exercise builds guided breathing schedules.
package exercise

import "errors"

// PhaseKind is either holding the breath or releasing it.
type PhaseKind string

const (
	Hold    PhaseKind = "hold"
	Release PhaseKind = "release"
)

const (
	BaseHoldSeconds = 10
	HoldStepSeconds = 5
	ReleaseSeconds  = 5
	DefaultCycles   = 3
	MaxCycles       = 20
)

var ErrCycles = errors.New("exercise: cycles must be between 1 and 20")

// Phase is one timed step of the exercise.
type Phase struct {
	Cycle   int       `json:"cycle"`
	Kind    PhaseKind `json:"kind"`
	Seconds int       `json:"seconds"`
}

// Schedule is a full breathing session.
type Schedule struct {
	Cycles       int     `json:"cycles"`
	Phases       []Phase `json:"phases"`
	TotalSeconds int     `json:"total_seconds"`
}

// HoldSeconds is the hold length for a zero-based cycle; each cycle holds
// five seconds longer than the previous one.
func HoldSeconds(cycle int) int {
	return BaseHoldSeconds + cycle*HoldStepSeconds
}

// Breathing returns the alternating hold/release schedule for the given
// number of cycles.
func Breathing(cycles int) (Schedule, error) {
	if cycles < 1 || cycles > MaxCycles {
		return Schedule{}, ErrCycles
	}
	s := Schedule{Cycles: cycles, Phases: make([]Phase, 0, cycles*2)}
	for c := 0; c < cycles; c++ {
		hold := Phase{Cycle: c, Kind: Hold, Seconds: HoldSeconds(c)}
		release := Phase{Cycle: c, Kind: Release, Seconds: ReleaseSeconds}
		s.Phases = append(s.Phases, hold, release)
		s.TotalSeconds += hold.Seconds + release.Seconds
	}
	return s, nil
}
