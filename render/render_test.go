package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/dmrcv/ogkit/card"
	"github.com/dmrcv/ogkit/palette"
	"github.com/dmrcv/ogkit/scene"
)

func profileScene() scene.Node {
	return card.ProfileScene(card.Profile{
		Name:      "Jane Doe",
		Title:     "Staff Engineer",
		Location:  "Lyon, France",
		Email:     "jane@example.com",
		SiteLabel: "example.com",
	}, card.AccentFromHue(200))
}

func decodePNG(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	return img
}

func near(c palette.RGB, r, g, b uint32, tol uint32) bool {
	cr, cg, cb, _ := c.RGBA()
	diff := func(x, y uint32) uint32 {
		x, y = x>>8, y>>8
		if x > y {
			return x - y
		}
		return y - x
	}
	return diff(cr, r<<8) <= tol && diff(cg, g<<8) <= tol && diff(cb, b<<8) <= tol
}

func pixel(img image.Image, x, y int) palette.RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	return palette.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestRenderPNG(t *testing.T) {
	out, err := Render(profileScene(), testFonts(t), card.Width, card.Height)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("missing PNG signature")
	}
	img := decodePNG(t, out)
	if b := img.Bounds(); b.Dx() != card.Width || b.Dy() != card.Height {
		t.Fatalf("bounds = %v", b)
	}

	// Inside the right padding, below the texture: plain background.
	if c := pixel(img, card.Width-20, card.Height/2); !near(c, 255, 255, 255, 2) {
		t.Errorf("background pixel = %v, want white", c)
	}
	// Left border, below the texture.
	bc := card.BorderColor
	if c := pixel(img, 0, card.Height/2); !near(c, uint32(bc.R), uint32(bc.G), uint32(bc.B), 8) {
		t.Errorf("border pixel = %v, want %v", c, bc)
	}
}

func TestRenderScalesToWidth(t *testing.T) {
	out, err := Render(profileScene(), testFonts(t), card.Width/2, card.Height/2)
	if err != nil {
		t.Fatal(err)
	}
	if b := decodePNG(t, out).Bounds(); b.Dx() != card.Width/2 || b.Dy() != card.Height/2 {
		t.Errorf("bounds = %v", b)
	}
}

func TestRenderBackgroundOption(t *testing.T) {
	root := scene.Box(scene.Style{Width: 20, Height: 20})
	out, err := Render(root, testFonts(t), 20, 20, WithBackground(palette.RGB{R: 10, G: 10, B: 13}))
	if err != nil {
		t.Fatal(err)
	}
	if c := pixel(decodePNG(t, out), 10, 10); !near(c, 10, 10, 13, 1) {
		t.Errorf("pixel = %v, want rgb(10 10 13)", c)
	}
}

func TestRenderErrors(t *testing.T) {
	fonts := testFonts(t)
	box := scene.Box(scene.Style{Width: 10, Height: 10})

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"no fonts", func() error {
			_, err := Render(box, nil, 10, 10)
			return err
		}, ErrNoFonts},
		{"unknown backend", func() error {
			_, err := Render(box, fonts, 10, 10, WithBackend("pdf"))
			return err
		}, ErrUnknownBackend},
		{"bad image", func() error {
			root := scene.Box(scene.Style{Width: 10, Height: 10, BackgroundImage: "data:text/plain,hello"})
			_, err := Render(root, fonts, 10, 10)
			return err
		}, ErrUnsupportedImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Render(box, fonts, 0, 10); err == nil {
		t.Error("zero width accepted")
	}
}

func TestRenderSVG(t *testing.T) {
	root := scene.Box(scene.Style{Width: 1200, Height: 630, Background: scene.Color(card.Background)},
		scene.Text(scene.Style{FontWeight: 700}, "Tom & Jerry <3"))
	doc, err := RenderSVG(root, testFonts(t), 600, 315)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="600" height="315" viewBox="0 0 1200 630">`,
		"@font-face{font-family:'ogkit';font-weight:400;src:url(data:font/ttf;base64,",
		"font-weight:700",
		`font-weight="700"`,
		"Tom &amp; Jerry &lt;3</text>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if !strings.HasSuffix(doc, "</svg>") {
		t.Error("document not closed")
	}
}

func TestRenderSVGKeepsPattern(t *testing.T) {
	doc, err := RenderSVG(profileScene(), testFonts(t), card.Width, card.Height)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc, `<image x="1" y="1" width="1200" height="240" preserveAspectRatio="none" href="data:image/svg+xml;utf8,`) {
		t.Error("pattern strip not embedded as an image")
	}
	if strings.Count(doc, "<text") != 5 {
		t.Errorf("got %d text elements, want 5", strings.Count(doc, "<text"))
	}
}
