// Package pattern generates the decorative squircle texture drawn behind
// card headers.
//
// The generator is a pure function of its Options. Randomness comes from a
// 32-bit linear congruential generator whose state is threaded explicitly
// through the layout loop, so the same seed always produces byte-identical
// markup:
//
//	p := pattern.Build(pattern.Options{
//	    Width: 1200, Height: 240, Cell: 10,
//	    Seed:    pattern.SeedFrom("Jane Doe"),
//	    Fill:    palette.HSL{H: 200, S: 0.8, L: 0.55}.RGB(),
//	    Outline: palette.HSL{H: 200, S: 0.8, L: 0.40}.RGB(),
//	    DensityTop: 0.55, DensityBottom: 0.05,
//	})
//	uri := p.DataURI() // usable as a background image reference
package pattern
