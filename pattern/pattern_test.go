package pattern

import (
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/dmrcv/ogkit/palette"
)

func cardOptions(seed string) Options {
	return Options{
		Width:         1200,
		Height:        240,
		Seed:          SeedFrom(seed),
		Cell:          10,
		Fill:          palette.HSL{H: 200, S: 0.8, L: 0.55}.RGB(),
		Outline:       palette.HSL{H: 200, S: 0.8, L: 0.40}.RGB(),
		DensityTop:    0.55,
		DensityBottom: 0.05,
	}
}

func TestSeedFrom(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 1},
		{"a", 97},
		{"ab", 97*31 + 98},
		{"é", 0xe9},
	}
	for _, tt := range tests {
		if got := SeedFrom(tt.in); got != tt.want {
			t.Errorf("SeedFrom(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if SeedFrom("Alice") == SeedFrom("Bob") {
		t.Error("different names produced the same seed")
	}
}

func TestRandSequence(t *testing.T) {
	r := NewRand(0)
	if r.State() != 1 {
		t.Fatalf("zero seed not coerced: state = %d", r.State())
	}
	v := r.Float64()
	if r.State() != 1015568748 {
		t.Errorf("state after one step = %d, want 1015568748", r.State())
	}
	if want := 1015568748.0 / (1 << 32); v != want {
		t.Errorf("Float64() = %v, want %v", v, want)
	}
	for range 1000 {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of [0,1)", f)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Build(cardOptions("Jane Doe")).Markup()
	b := Build(cardOptions("Jane Doe")).Markup()
	if a != b {
		t.Error("identical options produced different markup")
	}
}

func TestBuildDivergesAcrossSeeds(t *testing.T) {
	a := Build(cardOptions("Alice")).Markup()
	b := Build(cardOptions("Bob")).Markup()
	if a == b {
		t.Error("Alice and Bob produced identical textures")
	}
}

func TestOverlapInvariant(t *testing.T) {
	for _, name := range []string{"Jane Doe", "Alice", "Bob", "A rather long post title about Go"} {
		p := Build(cardOptions(name))
		if len(p.Shapes) == 0 {
			t.Fatalf("%s: no shapes generated", name)
		}
		for i, a := range p.Shapes {
			for _, b := range p.Shapes[i+1:] {
				if abs(a.Row-b.Row) > 1 {
					continue
				}
				d := math.Hypot(a.X-b.X, a.Y-b.Y)
				if min := a.Radius + b.Radius + p.MinGap; d < min-1e-9 {
					t.Errorf("%s: shapes at (%.1f,%.1f) and (%.1f,%.1f) are %.2f apart, need %.2f",
						name, a.X, a.Y, b.X, b.Y, d, min)
				}
			}
		}
	}
}

func TestShapesStayInsideCanvas(t *testing.T) {
	p := Build(cardOptions("Jane Doe"))
	for _, s := range p.Shapes {
		if s.X-s.Radius < edgePadding || s.X+s.Radius > float64(p.Width)-edgePadding ||
			s.Y-s.Radius < edgePadding || s.Y+s.Radius > float64(p.Height)-edgePadding {
			t.Errorf("shape %+v crosses the canvas edge", s)
		}
		if s.Opacity < opacityMin || s.Opacity > opacityMin+opacityRange {
			t.Errorf("shape opacity %f out of range", s.Opacity)
		}
	}
}

func TestDensityGradient(t *testing.T) {
	p := Build(cardOptions("Jane Doe"))
	var top, bottom int
	for _, s := range p.Shapes {
		if s.Y < float64(p.Height)/2 {
			top++
		} else {
			bottom++
		}
	}
	if top <= bottom {
		t.Errorf("top half has %d shapes, bottom %d; want denser top", top, bottom)
	}
}

func TestNegativeDensityYieldsEmptyPattern(t *testing.T) {
	opts := cardOptions("x")
	opts.DensityTop, opts.DensityBottom = -1, -1
	if n := len(Build(opts).Shapes); n != 0 {
		t.Errorf("got %d shapes, want 0", n)
	}
}

func TestDegenerateOptions(t *testing.T) {
	for _, opts := range []Options{{}, {Width: 100, Height: 100}, {Width: -1, Height: 10, Cell: 10}} {
		p := Build(opts)
		if len(p.Shapes) != 0 {
			t.Errorf("Build(%+v) produced %d shapes", opts, len(p.Shapes))
		}
		if !strings.HasPrefix(p.Markup(), "<svg") {
			t.Errorf("Build(%+v) markup is not an svg document", opts)
		}
	}
}

func TestMarkupStructure(t *testing.T) {
	p := Build(cardOptions("Jane Doe"))
	m := p.Markup()

	if !strings.HasPrefix(m, "<svg xmlns='http://www.w3.org/2000/svg' width='1200' height='240' viewBox='0 0 1200 240'>") {
		t.Errorf("unexpected header: %.80s", m)
	}
	if !strings.HasSuffix(m, "</svg>") {
		t.Error("markup not closed")
	}

	want := 0
	for _, s := range p.Shapes {
		want++
		if s.Outlined() {
			want++
		}
	}
	if got := strings.Count(m, "<path "); got != want {
		t.Errorf("path count = %d, want %d", got, want)
	}
	if !strings.Contains(m, `fill="`+palette.HSL{H: 200, S: 0.8, L: 0.55}.RGB().Hex()+`"`) {
		t.Error("fill color missing from markup")
	}
}

func TestDataURIRoundTrip(t *testing.T) {
	p := Build(cardOptions("Jane Doe"))
	uri := p.DataURI()
	if !strings.HasPrefix(uri, DataURIPrefix) {
		t.Fatalf("uri prefix = %.30s", uri)
	}
	if strings.ContainsAny(uri[len(DataURIPrefix):], "<>\"' #") {
		t.Error("data uri payload contains unescaped characters")
	}
	decoded, err := url.PathUnescape(strings.TrimPrefix(uri, DataURIPrefix))
	if err != nil {
		t.Fatal(err)
	}
	if decoded != p.Markup() {
		t.Error("decoded data uri differs from markup")
	}
}

func TestSquirclePath(t *testing.T) {
	got := squirclePath(10, 10, 10)
	want := "M6.50 0.00 L13.50 0.00 Q20.00 0.00 20.00 6.50 L20.00 13.50 Q20.00 20.00 13.50 20.00 " +
		"L6.50 20.00 Q0.00 20.00 0.00 13.50 L0.00 6.50 Q0.00 0.00 6.50 0.00 Z"
	if got != want {
		t.Errorf("squirclePath =\n%s\nwant\n%s", got, want)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
