// Package palette provides 8-bit sRGB colors, an APCA-style perceptual
// contrast model and a bisection search that picks a color inside a target
// contrast band against a fixed background.
//
// # Contrast
//
// Contrast returns a signed score: positive for dark text on a lighter
// background, negative for light text on a darker one. Callers usually
// compare the magnitude against a threshold:
//
//	bg := palette.RGB{R: 10, G: 10, B: 13}
//	lc := math.Abs(palette.Contrast(palette.RGB{R: 200, G: 200, B: 200}, bg))
//
// # Color search
//
// Pick draws random hues and saturations and bisects lightness until the
// contrast against the background lands in the configured band:
//
//	c := palette.Pick(bg, palette.DefaultConstraints(), nil)
//
// Pick never fails; when the attempt budget runs out it returns Fallback.
package palette
