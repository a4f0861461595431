package palette

import (
	"math"
	"math/rand/v2"
)

// Fallback is returned by Pick when no candidate satisfies the constraints
// within the attempt budget.
var Fallback = RGB{R: 117, G: 168, B: 189}

// Constraints configures Pick. Contrast values are absolute APCA magnitudes;
// saturation and lightness are fractions in [0, 1].
//
// The zero value is valid but useless: with Attempts == 0 Pick returns
// Fallback immediately. Start from DefaultConstraints.
type Constraints struct {
	// MinTarget and MaxTarget bound the contrast drawn as the target of each attempt.
	MinTarget, MaxTarget float64

	// MaxAccepted rejects candidates whose contrast is too harsh.
	MaxAccepted float64

	MinSaturation, MaxSaturation float64
	MinLightness, MaxLightness   float64

	// SearchSteps is the number of lightness bisection steps per attempt.
	SearchSteps int

	// MaxChannel is the ceiling for the brightest channel.
	MaxChannel uint8

	// MaxSpread is the ceiling for max(R,G,B) - min(R,G,B).
	MaxSpread uint8

	// Attempts is the number of hue/saturation draws before giving up.
	Attempts int
}

// DefaultConstraints returns the constraints used for the site monogram:
// a muted, mid-contrast color for a near-black background.
func DefaultConstraints() Constraints {
	return Constraints{
		MinTarget:     50,
		MaxTarget:     62,
		MaxAccepted:   66,
		MinSaturation: 0.22,
		MaxSaturation: 0.45,
		MinLightness:  0.35,
		MaxLightness:  0.72,
		SearchSteps:   11,
		MaxChannel:    200,
		MaxSpread:     130,
		Attempts:      120,
	}
}

// Accepts reports whether c with the measured contrast magnitude satisfies
// the post-search validation rules.
func (k Constraints) Accepts(c RGB, contrast float64) bool {
	return contrast <= k.MaxAccepted &&
		c.MaxChannel() <= k.MaxChannel &&
		c.Spread() <= k.MaxSpread
}

// Pick searches for a color whose contrast against background lies in the
// configured band. rng may be nil, in which case the global math/rand/v2
// source is used.
//
// Each attempt draws a hue, a saturation and a target contrast, then bisects
// lightness: whenever the candidate reaches the target it becomes the current
// best and the search moves toward darker colors. This assumes contrast grows
// monotonically with lightness for a fixed hue and saturation, which holds
// empirically for dark backgrounds.
func Pick(background RGB, k Constraints, rng *rand.Rand) RGB {
	c, _ := Search(background, k, rng)
	return c
}

// Search is Pick with an additional flag reporting whether the result came
// from the search (true) or is Fallback (false).
func Search(background RGB, k Constraints, rng *rand.Rand) (RGB, bool) {
	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}
	between := func(lo, hi float64) float64 {
		return lo + draw()*(hi-lo)
	}

	for attempt := 0; attempt < k.Attempts; attempt++ {
		hue := math.Floor(draw() * 360)
		sat := between(k.MinSaturation, k.MaxSaturation)
		target := between(k.MinTarget, k.MaxTarget)

		lo, hi := k.MinLightness, k.MaxLightness
		var (
			best     RGB
			bestLc   float64
			hasFound bool
		)
		for step := 0; step < k.SearchSteps; step++ {
			mid := (lo + hi) / 2
			candidate := HSL{H: hue, S: sat, L: mid}.RGB()
			lc := math.Abs(Contrast(candidate, background))
			if lc >= target {
				best, bestLc, hasFound = candidate, lc, true
				hi = mid
			} else {
				lo = mid
			}
		}

		if !hasFound {
			continue
		}
		if k.Accepts(best, bestLc) {
			return best, true
		}
	}
	return Fallback, false
}
