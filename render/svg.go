package render

import (
	"encoding/base64"
	"encoding/xml"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dmrcv/ogkit/palette"
)

// FontFamily is the family name the svg backend declares for the embedded
// fonts.
const FontFamily = "ogkit"

// svgBackend writes a standalone SVG document. Scene units map to the
// viewBox, so scaling is left to the viewer.
type svgBackend struct {
	b strings.Builder
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func fontMIME(data []byte) string {
	if len(data) >= 4 {
		switch string(data[:4]) {
		case "wOFF":
			return "font/woff"
		case "wOF2":
			return "font/woff2"
		case "OTTO":
			return "font/otf"
		}
	}
	return "font/ttf"
}

func (s *svgBackend) fontFace(weight int, data []byte) {
	s.b.WriteString("@font-face{font-family:'" + FontFamily + "';font-weight:" + strconv.Itoa(weight) +
		";src:url(data:" + fontMIME(data) + ";base64,")
	s.b.WriteString(base64.StdEncoding.EncodeToString(data))
	s.b.WriteString(")}")
}

func (s *svgBackend) attr(name, value string) {
	s.b.WriteString(" " + name + `="`)
	_ = xml.EscapeText(&s.b, []byte(value))
	s.b.WriteByte('"')
}

func (s *svgBackend) rect(r Rect) {
	s.attr("x", num(r.X))
	s.attr("y", num(r.Y))
	s.attr("width", num(r.W))
	s.attr("height", num(r.H))
}

func (s *svgBackend) Begin(f Frame) error {
	if !f.Fonts.ok() {
		return ErrNoFonts
	}
	scale := f.Scale
	if scale <= 0 {
		scale = 1
	}
	vw, vh := float64(f.Width)/scale, float64(f.Height)/scale

	s.b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	s.attr("width", strconv.Itoa(f.Width))
	s.attr("height", strconv.Itoa(f.Height))
	s.attr("viewBox", "0 0 "+num(vw)+" "+num(vh))
	s.b.WriteString("><defs><style>")
	s.fontFace(400, f.Fonts.Regular)
	s.fontFace(700, f.Fonts.Bold)
	s.b.WriteString("</style></defs>")

	s.b.WriteString("<rect")
	s.rect(Rect{W: vw, H: vh})
	s.attr("fill", f.Background.Hex())
	s.b.WriteString("/>")
	return nil
}

func (s *svgBackend) FillRect(r Rect, c palette.RGB) error {
	s.b.WriteString("<rect")
	s.rect(r)
	s.attr("fill", c.Hex())
	s.b.WriteString("/>")
	return nil
}

func (s *svgBackend) StrokeRect(r Rect, c palette.RGB, width float64) error {
	half := width / 2
	s.b.WriteString("<rect")
	s.rect(Rect{X: r.X + half, Y: r.Y + half, W: r.W - width, H: r.H - width})
	s.attr("fill", "none")
	s.attr("stroke", c.Hex())
	s.attr("stroke-width", num(width))
	s.b.WriteString("/>")
	return nil
}

func (s *svgBackend) DrawImage(r Rect, uri string) error {
	if !strings.HasPrefix(uri, "data:") {
		return ErrUnsupportedImage
	}
	s.b.WriteString("<image")
	s.rect(r)
	s.attr("preserveAspectRatio", "none")
	s.attr("href", uri)
	s.b.WriteString("/>")
	return nil
}

func (s *svgBackend) DrawText(t DrawText) error {
	s.b.WriteString("<text")
	s.attr("x", num(t.X))
	s.attr("y", num(t.Y))
	s.attr("font-family", FontFamily)
	s.attr("font-size", num(t.Size))
	if t.Weight >= boldWeight {
		s.attr("font-weight", "700")
	}
	s.attr("fill", t.Color.Hex())
	if t.Spacing != 0 {
		s.attr("letter-spacing", num(t.Spacing))
	}
	s.attr("xml:space", "preserve")
	s.b.WriteByte('>')
	_ = xml.EscapeText(&s.b, []byte(t.Text))
	s.b.WriteString("</text>")
	return nil
}

func (s *svgBackend) End() error {
	s.b.WriteString("</svg>")
	return nil
}

func (s *svgBackend) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.b.String())
	return int64(n), err
}
