// Package sink contains ready-made consumers for animation value updates:
// a console visualizer and an MQTT publisher. Each exposes an Update method
// matching anim.Callback.
package sink

import (
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/anim"
)

// Console renders value updates as text bars and grids. Scalars become a
// fill bar, positions a 2D grid with a marker, colours an RGB bar block
// with the hex code.
type Console struct {
	w io.Writer

	barWidth   int
	gridWidth  int
	gridHeight int
}

// NewConsole creates an instance of a Console writing to w.
func NewConsole(w io.Writer) *Console {
	c := new(Console)
	c.w = w
	c.barWidth = 50
	c.gridWidth = 20
	c.gridHeight = 10
	return c
}

// Update renders one value update. It satisfies anim.Callback.
func (c *Console) Update(targetID, property string, value anim.Value) {
	switch {
	case property == anim.PropertyPosition && value.Len() == 2:
		fmt.Fprintf(c.w, "\n%s %s:\n%s", targetID, property,
			c.grid(value.Component(0), value.Component(1)))
	case property == anim.PropertyColor && value.Len() == 3:
		fmt.Fprintf(c.w, "\n%s %s:\n%s", targetID, property,
			c.color(value.Component(0), value.Component(1), value.Component(2)))
	case value.IsVector():
		fmt.Fprintf(c.w, "\n%s %s: (%s)\n", targetID, property, value)
	default:
		fmt.Fprintf(c.w, "\n%s %s:\n%s\n", targetID, property, c.bar(value.Float(), c.barWidth))
	}
}

// bar draws a [0,1] value as a fill bar. Overshoot values are clamped for
// display only.
func (c *Console) bar(v float64, width int) string {
	clamped := clamp01(v)
	filled := int(float64(width) * clamped)
	return "[" + strings.Repeat("█", filled) + strings.Repeat(" ", width-filled) +
		fmt.Sprintf("] %.2f", clamped)
}

// grid draws a normalized XY position as a marker on a bordered grid.
func (c *Console) grid(x, y float64) string {
	gx := int(clamp01(x) * float64(c.gridWidth))
	if gx >= c.gridWidth {
		gx = c.gridWidth - 1
	}
	gy := int(clamp01(y) * float64(c.gridHeight))
	if gy >= c.gridHeight {
		gy = c.gridHeight - 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Position: (%.2f, %.2f)\n", x, y)
	for row := 0; row < c.gridHeight; row++ {
		b.WriteString("|")
		for col := 0; col < c.gridWidth; col++ {
			if row == gy && col == gx {
				b.WriteString("●")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}

// color draws RGB channels as bars plus the hex code.
func (c *Console) color(r, g, b float64) string {
	hex := colorful.Color{R: r, G: g, B: b}.Clamped().Hex()
	var out strings.Builder
	fmt.Fprintf(&out, "Color: %s\n", hex)
	fmt.Fprintf(&out, "R: %s\n", c.bar(r, 20))
	fmt.Fprintf(&out, "G: %s\n", c.bar(g, 20))
	fmt.Fprintf(&out, "B: %s\n", c.bar(b, 20))
	return out.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
