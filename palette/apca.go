package palette

import "math"

// APCA-style constants. The exponents differ per polarity because light text
// on a dark background reads differently from dark text on a light one.
const (
	lumRed   = 0.2126729
	lumGreen = 0.7151522
	lumBlue  = 0.072175
	gamma    = 2.4

	blackThreshold = 0.022
	blackClampExp  = 1.414

	normalTextExp  = 0.57
	normalBgExp    = 0.56
	reverseTextExp = 0.62
	reverseBgExp   = 0.65

	polarityScale   = 1.14
	lowClip         = 0.1
	polarityOffset  = 0.027
	minLumDelta     = 0.0005
	contrastPercent = 100
)

// Luminance returns the relative luminance of c, linearized with a plain
// 2.4 exponent (no sRGB piecewise toe).
func Luminance(c RGB) float64 {
	r := math.Pow(float64(c.R)/255, gamma)
	g := math.Pow(float64(c.G)/255, gamma)
	b := math.Pow(float64(c.B)/255, gamma)
	return r*lumRed + g*lumGreen + b*lumBlue
}

// softClamp lifts near-black luminance so contrast does not explode at pure black.
func softClamp(y float64) float64 {
	if y > blackThreshold {
		return y
	}
	return y + math.Pow(blackThreshold-y, blackClampExp)
}

// Contrast returns the perceptual lightness contrast of text over background.
//
// The result is positive for dark text on a lighter background, negative for
// light text on a darker background and zero when the two colors are
// perceptually indistinguishable or the contrast falls under the low clip.
// Magnitudes are roughly in [0, 108].
func Contrast(text, background RGB) float64 {
	textY := softClamp(Luminance(text))
	bgY := softClamp(Luminance(background))

	if math.Abs(bgY-textY) < minLumDelta {
		return 0
	}

	if bgY > textY {
		sapc := (math.Pow(bgY, normalBgExp) - math.Pow(textY, normalTextExp)) * polarityScale
		if sapc < lowClip {
			return 0
		}
		return (sapc - polarityOffset) * contrastPercent
	}

	sapc := (math.Pow(bgY, reverseBgExp) - math.Pow(textY, reverseTextExp)) * polarityScale
	if sapc > -lowClip {
		return 0
	}
	return (sapc + polarityOffset) * contrastPercent
}
