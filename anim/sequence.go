package anim

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/easing"
)

// Fade starts an opacity animation on the target.
func (m *Manager) Fade(targetID string, from, to float64, duration, delay time.Duration, kind easing.Kind) (string, error) {
	return m.StartAnimation(m.nextID("fade"), Spec{
		TargetID: targetID,
		Property: PropertyOpacity,
		Start:    Scalar(from),
		End:      Scalar(to),
		Duration: duration,
		Delay:    delay,
		Easing:   kind,
	})
}

// Move starts a position animation between two XY points.
func (m *Manager) Move(targetID string, from, to [2]float64, duration, delay time.Duration, kind easing.Kind) (string, error) {
	return m.StartAnimation(m.nextID("move"), Spec{
		TargetID: targetID,
		Property: PropertyPosition,
		Start:    Vector(from[0], from[1]),
		End:      Vector(to[0], to[1]),
		Duration: duration,
		Delay:    delay,
		Easing:   kind,
	})
}

// Scale starts a scale animation on the target.
func (m *Manager) Scale(targetID string, from, to float64, duration, delay time.Duration, kind easing.Kind) (string, error) {
	return m.StartAnimation(m.nextID("scale"), Spec{
		TargetID: targetID,
		Property: PropertyScale,
		Start:    Scalar(from),
		End:      Scalar(to),
		Duration: duration,
		Delay:    delay,
		Easing:   kind,
	})
}

// Color starts an RGB colour animation; channels are in [0,1] and each one
// is interpolated with the same eased progress.
func (m *Manager) Color(targetID string, from, to [3]float64, duration, delay time.Duration, kind easing.Kind) (string, error) {
	return m.StartAnimation(m.nextID("color"), Spec{
		TargetID: targetID,
		Property: PropertyColor,
		Start:    Vector(from[0], from[1], from[2]),
		End:      Vector(to[0], to[1], to[2]),
		Duration: duration,
		Delay:    delay,
		Easing:   kind,
	})
}

// ColorHex is Color with CSS-style hex endpoints such as "#ff8800".
func (m *Manager) ColorHex(targetID, fromHex, toHex string, duration, delay time.Duration, kind easing.Kind) (string, error) {
	from, err := colorful.Hex(fromHex)
	if err != nil {
		return "", &SpecError{Reason: "bad start colour " + fromHex}
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		return "", &SpecError{Reason: "bad end colour " + toHex}
	}
	return m.Color(targetID, [3]float64{from.R, from.G, from.B}, [3]float64{to.R, to.G, to.B}, duration, delay, kind)
}

// sequenceDelays derives the member delays that make the specs play
// back-to-back: item k starts after every earlier item's delay and duration
// plus one gap per boundary, on top of its own delay.
func sequenceDelays(specs []Spec, gap time.Duration) []time.Duration {
	delays := make([]time.Duration, len(specs))
	var offset time.Duration
	for i, s := range specs {
		delays[i] = offset + s.Delay
		offset += s.Duration + s.Delay + gap
	}
	return delays
}

// Sequence builds one group whose members are the given specs with derived
// delays so they play back-to-back with gap between, then starts the group
// as a unit in the background. It returns the group name.
func (m *Manager) Sequence(specs []Spec, gap time.Duration) (string, error) {
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return "", err
		}
	}

	name := m.nextID("sequence")
	g := m.CreateAnimationGroup(name)
	for i, delay := range sequenceDelays(specs, gap) {
		spec := specs[i]
		spec.Delay = delay
		a, err := m.CreateAnimation(m.nextID("seq"), spec)
		if err != nil {
			return "", err
		}
		g.Add(a)
	}

	go m.StartAnimationGroup(name)
	return name, nil
}
