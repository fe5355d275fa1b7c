package anim

import (
	"time"

	"github.com/matt-g-everett/animtx/easing"
)

// Well-known property names used by the convenience constructors.
const (
	PropertyOpacity  = "opacity"
	PropertyPosition = "position"
	PropertyScale    = "scale"
	PropertyColor    = "color"
)

// SpecError reports a malformed Spec. It is raised at construction time and
// is fatal to that spec only.
type SpecError struct {
	Reason string
}

func (e *SpecError) Error() string {
	return "anim: invalid spec: " + e.Reason
}

// Spec describes one timed interpolation: which property of which target to
// drive, between which values, over how long. A Spec is immutable intent;
// the mutable run state lives on the Animation that wraps it.
type Spec struct {
	TargetID string
	Property string
	Start    Value
	End      Value
	Duration time.Duration
	Delay    time.Duration
	Easing   easing.Kind
	Loop     bool

	// LoopCount bounds looping when Loop is set; 0 means loop forever.
	// A count of N plays the animation N+1 times in total.
	LoopCount int

	// OnComplete fires exactly once when a non-looping animation finishes
	// on its own. It does not fire on cancellation.
	OnComplete func()
}

// Validate checks the Spec's shape and timing constraints.
func (s Spec) Validate() error {
	if !s.Start.SameShape(s.End) {
		return &SpecError{Reason: "start and end values must have the same shape"}
	}
	if s.Duration < 0 {
		return &SpecError{Reason: "duration must not be negative"}
	}
	if s.Delay < 0 {
		return &SpecError{Reason: "delay must not be negative"}
	}
	if s.LoopCount < 0 {
		return &SpecError{Reason: "loop count must not be negative"}
	}
	return nil
}
