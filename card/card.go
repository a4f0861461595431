package card

import (
	"math"
	"math/rand/v2"

	"github.com/dmrcv/ogkit/palette"
	"github.com/dmrcv/ogkit/pattern"
)

// Canvas geometry.
const (
	Width         = 1200
	Height        = 630
	PatternHeight = 240
	patternCell   = 10
)

// Palette shared by both layouts.
var (
	Background  = palette.MustHex("#ffffff")
	Foreground  = palette.MustHex("#111111")
	Muted       = palette.MustHex("#454c53")
	BorderColor = palette.MustHex("#dde3e8")
)

// Profile is the content of a profile card. Name and Title are required.
// Field order is part of the cache key and must not change.
type Profile struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Kicker          string `json:"kicker,omitempty"`
	Location        string `json:"location,omitempty"`
	OpenTo          string `json:"openTo,omitempty"`
	Relocation      string `json:"relocation,omitempty"`
	RelocationLabel string `json:"relocationLabel,omitempty"`
	Email           string `json:"email,omitempty"`
	SiteLabel       string `json:"siteLabel,omitempty"`
}

// Post is the content of a post card. Title and Date are required.
type Post struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	SiteLabel   string `json:"siteLabel,omitempty"`
	Kicker      string `json:"kicker,omitempty"`
}

// Accent is the color pair used by the squircle texture.
type Accent struct {
	Fill    palette.RGB
	Outline palette.RGB
}

// AccentFromHue returns the accent for hue h in degrees.
func AccentFromHue(h float64) Accent {
	return Accent{
		Fill:    palette.HSL{H: h, S: 0.80, L: 0.55}.RGB(),
		Outline: palette.HSL{H: h, S: 0.80, L: 0.40}.RGB(),
	}
}

// RandomAccent draws an integer hue from rng, or from the global source when
// rng is nil.
func RandomAccent(rng *rand.Rand) Accent {
	r := rand.Float64
	if rng != nil {
		r = rng.Float64
	}
	return AccentFromHue(math.Floor(r() * 360))
}

func texture(seed string, accent Accent, densityTop float64) *pattern.Pattern {
	return pattern.Build(pattern.Options{
		Width:         Width,
		Height:        PatternHeight,
		Seed:          pattern.SeedFrom(seed),
		Cell:          patternCell,
		Fill:          accent.Fill,
		Outline:       accent.Outline,
		DensityTop:    densityTop,
		DensityBottom: 0.05,
	})
}
