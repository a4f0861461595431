package render

import (
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/dmrcv/ogkit/palette"
)

// rasterBackend paints into a gogpu/gg software context and encodes PNG.
type rasterBackend struct {
	dc    *gg.Context
	scale float64
	fonts *FontSet
}

func (b *rasterBackend) Begin(f Frame) error {
	if !f.Fonts.ok() {
		return ErrNoFonts
	}
	b.dc = gg.NewContext(f.Width, f.Height)
	b.scale = f.Scale
	b.fonts = f.Fonts
	b.dc.ClearWithColor(gg.FromColor(f.Background))
	return nil
}

func (b *rasterBackend) FillRect(r Rect, c palette.RGB) error {
	s := b.scale
	b.dc.SetColor(c)
	b.dc.DrawRectangle(r.X*s, r.Y*s, r.W*s, r.H*s)
	return b.dc.Fill()
}

func (b *rasterBackend) StrokeRect(r Rect, c palette.RGB, width float64) error {
	s := b.scale
	half := width / 2
	b.dc.SetColor(c)
	b.dc.SetLineWidth(width * s)
	b.dc.DrawRectangle((r.X+half)*s, (r.Y+half)*s, (r.W-width)*s, (r.H-width)*s)
	return b.dc.Stroke()
}

func (b *rasterBackend) DrawImage(r Rect, uri string) error {
	s := b.scale
	w, h := int(math.Round(r.W*s)), int(math.Round(r.H*s))
	img, err := decodeDataURI(uri, w, h)
	if err != nil {
		return err
	}
	b.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             r.X * s,
		Y:             r.Y * s,
		DstWidth:      float64(w),
		DstHeight:     float64(h),
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

func (b *rasterBackend) DrawText(t DrawText) error {
	s := b.scale
	face := b.fonts.Face(t.Size*s, t.Weight)
	b.dc.SetFont(face)
	b.dc.SetColor(t.Color)

	x, y := t.X*s, t.Y*s
	if t.Spacing == 0 {
		b.dc.DrawString(t.Text, x, y)
		return nil
	}
	for _, r := range t.Text {
		ch := string(r)
		b.dc.DrawString(ch, x, y)
		x += advance(ch, face) + t.Spacing*s
	}
	return nil
}

func (b *rasterBackend) End() error { return nil }

func (b *rasterBackend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := b.dc.EncodePNG(cw)
	return cw.n, err
}

// Close releases the drawing context.
func (b *rasterBackend) Close() error {
	if b.dc == nil {
		return nil
	}
	return b.dc.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
