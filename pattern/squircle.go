package pattern

import (
	"strconv"
	"strings"
)

// cornerRatio is the corner length of a squircle as a fraction of its radius.
const cornerRatio = 0.65

// pathData accumulates SVG path commands with two-decimal coordinates.
type pathData struct {
	b strings.Builder
}

func (p *pathData) cmd(op byte, coords ...float64) {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteByte(op)
	for i, v := range coords {
		if i > 0 {
			p.b.WriteByte(' ')
		}
		p.b.WriteString(formatCoord(v))
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *pathData) MoveTo(x, y float64) { p.cmd('M', x, y) }

// LineTo adds a straight segment to (x, y).
func (p *pathData) LineTo(x, y float64) { p.cmd('L', x, y) }

// QuadraticTo adds a quadratic Bezier with control point (cx, cy) ending at (x, y).
func (p *pathData) QuadraticTo(cx, cy, x, y float64) { p.cmd('Q', cx, cy, x, y) }

// Close closes the current subpath.
func (p *pathData) Close() { p.cmd('Z') }

func (p *pathData) String() string { return p.b.String() }

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// squirclePath returns the path data of a rounded square centered at
// (cx, cy) with half-size r. Corners are quadratic curves whose control point
// is the square's corner, which reads as a superellipse at small sizes.
func squirclePath(cx, cy, r float64) string {
	size := r * 2
	corner := r * cornerRatio
	x, y := cx-r, cy-r
	endX, endY := x+size, y+size

	var p pathData
	p.MoveTo(x+corner, y)
	p.LineTo(endX-corner, y)
	p.QuadraticTo(endX, y, endX, y+corner)
	p.LineTo(endX, endY-corner)
	p.QuadraticTo(endX, endY, endX-corner, endY)
	p.LineTo(x+corner, endY)
	p.QuadraticTo(x, endY, x, endY-corner)
	p.LineTo(x, y+corner)
	p.QuadraticTo(x, y, x+corner, y)
	p.Close()
	return p.String()
}
