package pattern

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmrcv/ogkit/palette"
)

// Layout constants, relative to the grid step (Cell * stepRatio).
const (
	stepRatio    = 1.6
	jitterRatio  = 0.3
	minGapRatio  = 0.2
	edgePadding  = 1.0
	radiusScale  = 3.0
	radiusMin    = 0.14
	radiusRange  = 0.24
	opacityMin   = 0.25
	opacityRange = 0.55
	maxDensity   = 0.85

	// outlineMinSize is the smallest diameter that still reads as an outlined
	// shape once the card is scaled down for previews.
	outlineMinSize = 5.0
	outlineInset   = 0.5
)

// Options configures Build. All lengths are in pixels.
type Options struct {
	Width, Height int

	// Seed drives the generator. Zero is coerced to 1; see SeedFrom.
	Seed uint32

	// Cell is the nominal shape size; the grid step is Cell*1.6.
	Cell float64

	Fill    palette.RGB
	Outline palette.RGB

	// DensityTop and DensityBottom are placement probabilities at the top
	// and bottom edges, linearly blended per row.
	DensityTop, DensityBottom float64
}

// Shape is one committed squircle.
type Shape struct {
	X, Y    float64 // center
	Radius  float64
	Opacity float64
	Row     int
	Col     int
}

// Outlined reports whether the shape carries an inset outline stroke.
func (s Shape) Outlined() bool {
	return s.Radius*2 >= outlineMinSize && s.Radius-outlineInset > 0
}

// Pattern is the result of Build. It is immutable.
type Pattern struct {
	Width, Height int
	Step          float64
	MinGap        float64
	Shapes        []Shape

	fill, outline palette.RGB
}

// Build lays out the squircle field described by opts.
//
// The grid is walked row by row. Each row's placement probability blends the
// top and bottom densities and adds two sine perturbations so that bands do
// not look uniform. A candidate is rejected when it would cross the canvas
// edge or overlap a shape in the same or a neighboring column of the current
// or the immediately preceding row. Older rows are never consulted: shapes
// are small relative to the step, so row locality is sufficient and keeps the
// texture's look stable.
func Build(opts Options) *Pattern {
	rng := NewRand(opts.Seed)
	width, height := float64(opts.Width), float64(opts.Height)

	step := opts.Cell * stepRatio
	p := &Pattern{
		Width:   opts.Width,
		Height:  opts.Height,
		Step:    step,
		MinGap:  step * minGapRatio,
		fill:    opts.Fill,
		outline: opts.Outline,
	}
	if step <= 0 || opts.Width <= 0 || opts.Height <= 0 {
		return p
	}

	columns := int(math.Ceil(width / step))
	previous := make([]*Shape, columns)

	phaseA := rng.Float64() * math.Pi * 2
	phaseB := rng.Float64() * math.Pi * 2
	freqA := 0.01 + rng.Float64()*0.02
	freqB := 0.05 + rng.Float64()*0.08

	rows := int(math.Ceil(height / step))
	for row := range rows {
		y := float64(row) * step
		t := y / height
		base := opts.DensityTop*(1-t) + opts.DensityBottom*t
		wave := 0.12*math.Sin(y*freqA+phaseA) + 0.08*math.Sin(y*freqB+phaseB)
		probability := math.Min(maxDensity, math.Max(0, base+wave))
		current := make([]*Shape, columns)

		for col := range columns {
			x := float64(col) * step
			if rng.Float64() > probability {
				continue
			}
			jitter := step * jitterRatio
			cx := x + step*0.5 + (rng.Float64()-0.5)*jitter
			cy := y + step*0.5 + (rng.Float64()-0.5)*jitter
			radius := opts.Cell * (radiusMin + radiusRange*rng.Float64()) * radiusScale

			if cx-radius < edgePadding || cx+radius > width-edgePadding ||
				cy-radius < edgePadding || cy+radius > height-edgePadding {
				continue
			}

			if collides(cx, cy, radius, p.MinGap, col, current, previous) {
				continue
			}

			s := Shape{
				X:       cx,
				Y:       cy,
				Radius:  radius,
				Opacity: opacityMin + opacityRange*rng.Float64(),
				Row:     row,
				Col:     col,
			}
			p.Shapes = append(p.Shapes, s)
			current[col] = &s
		}
		previous = current
	}

	return p
}

// collides checks the candidate against columns col-1..col+1 of both rows.
func collides(cx, cy, r, gap float64, col int, rows ...[]*Shape) bool {
	for _, row := range rows {
		for dc := -1; dc <= 1; dc++ {
			i := col + dc
			if i < 0 || i >= len(row) || row[i] == nil {
				continue
			}
			n := row[i]
			dx, dy := cx-n.X, cy-n.Y
			minDist := r + n.Radius + gap
			if dx*dx+dy*dy < minDist*minDist {
				return true
			}
		}
	}
	return false
}

// Markup renders the pattern as a standalone SVG document.
func (p *Pattern) Markup() string {
	var b strings.Builder
	w, h := strconv.Itoa(p.Width), strconv.Itoa(p.Height)
	b.WriteString("<svg xmlns='http://www.w3.org/2000/svg' width='" + w + "' height='" + h +
		"' viewBox='0 0 " + w + " " + h + "'>")

	fill, outline := p.fill.Hex(), p.outline.Hex()
	for _, s := range p.Shapes {
		opacity := strconv.FormatFloat(s.Opacity, 'f', 3, 64)
		b.WriteString(`<path d="` + squirclePath(s.X, s.Y, s.Radius) +
			`" fill="` + fill + `" fill-opacity="` + opacity + `" />`)
		if s.Outlined() {
			b.WriteString(`<path d="` + squirclePath(s.X, s.Y, s.Radius-outlineInset) +
				`" fill="none" stroke="` + outline +
				`" stroke-width="1" stroke-linejoin="round" stroke-linecap="round" stroke-opacity="` +
				opacity + `" />`)
		}
	}
	b.WriteString("</svg>")
	return b.String()
}

// DataURIPrefix prefixes every URI returned by DataURI.
const DataURIPrefix = "data:image/svg+xml;utf8,"

// DataURI returns Markup as a percent-escaped data URI.
func (p *Pattern) DataURI() string {
	return DataURIPrefix + url.PathEscape(p.Markup())
}
