// Package monogram builds the square two-letter site icon.
//
// The icon color is chosen by a perceptual contrast search against a fixed
// near-black background, so every process start gets a different but always
// legible tint. Default memoizes that choice for the life of the process.
package monogram

import (
	"encoding/xml"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/dmrcv/ogkit/internal/logx"
	"github.com/dmrcv/ogkit/palette"
)

// Icon defaults.
const (
	Label              = "RD"
	FaviconSize        = 64
	AppleTouchIconSize = 180

	// FontStack lists script faces commonly installed on desktop and mobile
	// systems, ending in the generic cursive family.
	FontStack = "'Apple Chancery', 'Snell Roundhand', 'Zapfino', 'Brush Script MT', 'Segoe Script', cursive"
)

// Glyph geometry as fractions of the icon size.
const (
	fontSizeRatio   = 0.84
	baselineRatio   = 0.79
	textLengthRatio = 0.96
)

// Background is the fixed icon background.
var Background = palette.RGB{R: 10, G: 10, B: 13}

// Icon is a monogram with its colors.
type Icon struct {
	Label      string
	Color      palette.RGB
	Background palette.RGB
}

// New returns an icon whose color is picked against Background with the
// default constraints. rng may be nil.
func New(rng *rand.Rand) Icon {
	return Icon{
		Label:      Label,
		Color:      palette.Pick(Background, palette.DefaultConstraints(), rng),
		Background: Background,
	}
}

// Default returns the process-wide icon. The color is picked on first use.
var Default = sync.OnceValue(func() Icon {
	icon := New(nil)
	logx.Component("monogram").Info("monogram color picked",
		"color", icon.Color.CSS(),
		"contrast", palette.Contrast(icon.Color, icon.Background))
	return icon
})

// Favicon returns the default icon at FaviconSize.
func Favicon() string { return Default().SVG(FaviconSize) }

// AppleTouchIcon returns the default icon at AppleTouchIconSize.
func AppleTouchIcon() string { return Default().SVG(AppleTouchIconSize) }

func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// SVG renders the icon as a size x size document. The label is centered
// and stretched to a fixed advance so the monogram looks the same whichever
// script face the viewer resolves.
func (i Icon) SVG(size int) string {
	s := float64(size)
	n := strconv.Itoa(size)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="` + n + `" height="` + n +
		`" viewBox="0 0 ` + n + " " + n + `">` + "\n")
	b.WriteString(`  <rect width="` + n + `" height="` + n + `" fill="` + i.Background.CSS() + `" />` + "\n")
	b.WriteString(`  <text x="` + fixed2(s/2) + `" y="` + fixed2(s*baselineRatio) +
		`" fill="` + i.Color.CSS() + `" font-family="` + FontStack +
		`" font-size="` + fixed2(s*fontSizeRatio) +
		`" font-weight="700" text-anchor="middle" textLength="` + fixed2(s*textLengthRatio) +
		`" lengthAdjust="spacingAndGlyphs">`)
	_ = xml.EscapeText(&b, []byte(i.Label))
	b.WriteString("</text>\n</svg>")
	return b.String()
}
