package scene

import "github.com/dmrcv/ogkit/palette"

// Direction is the main axis of a box.
type Direction uint8

const (
	// Row lays children out left to right.
	Row Direction = iota
	// Column lays children out top to bottom.
	Column
)

// Justify distributes free space along the main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
)

// Align positions children on the cross axis.
type Align uint8

const (
	// AlignStretch sizes children to the box's cross extent. It is the default.
	AlignStretch Align = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// Position selects normal flow or absolute placement.
type Position uint8

const (
	Static Position = iota
	// Absolute removes the node from flow and pins it at Top/Left inside the
	// parent's border box.
	Absolute
)

// TextAlign is the horizontal alignment of wrapped lines. The zero value
// inherits from the parent.
type TextAlign uint8

const (
	TextAlignInherit TextAlign = iota
	TextAlignLeft
	TextAlignCenter
	TextAlignRight
)

// Edges holds per-side lengths in pixels.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns edges with the same length on every side.
func Uniform(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// Symmetric returns edges with vertical length v and horizontal length h.
func Symmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// Border is a solid border drawn inside the box.
type Border struct {
	Width float64
	Color palette.RGB
}

// Style is the styling of one node. Zero values mean "auto" for sizes and
// "inherit" for the text properties.
type Style struct {
	Width, Height float64
	MaxWidth      float64

	Direction Direction
	Justify   Justify
	Align     Align
	Padding   Edges
	Gap       float64
	Grow      float64

	MarginTop     float64
	MarginTopAuto bool

	Position  Position
	Top, Left float64
	ZIndex    int

	Background      *palette.RGB
	BackgroundImage string // data URI
	Border          Border

	// Inherited text properties.
	Color         *palette.RGB
	FontSize      float64
	FontWeight    int
	LineHeight    float64 // multiple of FontSize
	LetterSpacing float64 // in em
	TextAlign     TextAlign
	Uppercase     bool
}

// Color returns a pointer to c, for use in Style literals.
func Color(c palette.RGB) *palette.RGB { return &c }
