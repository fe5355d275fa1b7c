package sink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/animtx/anim"
)

func TestConsoleScalarBar(t *testing.T) {
	var out strings.Builder
	c := NewConsole(&out)

	c.Update("obj", anim.PropertyOpacity, anim.Scalar(0.5))

	s := out.String()
	assert.Contains(t, s, "obj opacity")
	assert.Contains(t, s, "] 0.50")
	assert.Equal(t, 25, strings.Count(s, "█"))
}

// Overshoot values render clamped; the underlying value is untouched.
func TestConsoleBarClampsForDisplay(t *testing.T) {
	var out strings.Builder
	c := NewConsole(&out)

	c.Update("obj", anim.PropertyScale, anim.Scalar(1.3))
	assert.Contains(t, out.String(), "] 1.00")

	out.Reset()
	c.Update("obj", anim.PropertyScale, anim.Scalar(-0.2))
	assert.Contains(t, out.String(), "] 0.00")
}

func TestConsolePositionGrid(t *testing.T) {
	var out strings.Builder
	c := NewConsole(&out)

	c.Update("obj", anim.PropertyPosition, anim.Vector(0.5, 0.5))

	s := out.String()
	assert.Contains(t, s, "Position: (0.50, 0.50)")
	assert.Equal(t, 1, strings.Count(s, "●"))
	assert.Equal(t, 10, strings.Count(s, "|\n"))
}

func TestConsoleColor(t *testing.T) {
	var out strings.Builder
	c := NewConsole(&out)

	c.Update("obj", anim.PropertyColor, anim.Vector(1, 0, 0))

	s := out.String()
	assert.Contains(t, s, "Color: #ff0000")
	assert.Contains(t, s, "R: [")
	assert.Contains(t, s, "G: [")
	assert.Contains(t, s, "B: [")
}

func TestConsoleGenericVector(t *testing.T) {
	var out strings.Builder
	c := NewConsole(&out)

	c.Update("obj", "velocity", anim.Vector(1, 2, 3, 4))
	assert.Contains(t, out.String(), "obj velocity: (1,2,3,4)")
}
