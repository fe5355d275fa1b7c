// Package easing provides the curve functions used to shape animation
// progress. Every curve maps normalized progress in [0,1] so that e(0) = 0
// and e(1) = 1; intermediate values may leave [0,1] for overshoot curves
// like Elastic and Back.
package easing

import (
	"fmt"
	"math"

	"github.com/fogleman/ease"
)

// Kind identifies an easing curve.
type Kind int

const (
	Linear Kind = iota
	EaseIn
	EaseOut
	EaseInOut
	Bounce
	Elastic
	Back
)

// Func is an easing curve over normalized progress.
type Func func(float64) float64

var funcs = map[Kind]Func{
	Linear:    ease.Linear,
	EaseIn:    ease.InQuad,
	EaseOut:   ease.OutQuad,
	EaseInOut: ease.InOutSine,
	Bounce:    bounceOut,
	Elastic:   elasticIn,
	Back:      ease.InBack,
}

// bounceOut is the Penner bounce curve with coefficient 7.5625 and
// breakpoints at fractions of 2.75. The library's bounce is a different
// variant, so this one is implemented here.
func bounceOut(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}

// elasticIn rings with amplitude growing towards the end point:
// sin(13π/2·t) · 2^(10·(t−1)). The library's elastic is a different
// variant, so this one is implemented here.
func elasticIn(t float64) float64 {
	return math.Sin(13*math.Pi/2*t) * math.Pow(2, 10*(t-1))
}

var names = map[Kind]string{
	Linear:    "linear",
	EaseIn:    "ease_in",
	EaseOut:   "ease_out",
	EaseInOut: "ease_in_out",
	Bounce:    "bounce",
	Elastic:   "elastic",
	Back:      "back",
}

// Func returns the curve function for the Kind. Unknown kinds fall back
// to Linear.
func (k Kind) Func() Func {
	if f, ok := funcs[k]; ok {
		return f
	}
	return ease.Linear
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("easing.Kind(%d)", int(k))
}

// ParseKind converts a config tag like "ease_in_out" into a Kind.
func ParseKind(tag string) (Kind, error) {
	for k, n := range names {
		if n == tag {
			return k, nil
		}
	}
	return Linear, fmt.Errorf("easing: unknown kind %q", tag)
}

// Kinds lists every known Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Linear, EaseIn, EaseOut, EaseInOut, Bounce, Elastic, Back}
}
