package render

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmrcv/ogkit/palette"
	"github.com/dmrcv/ogkit/scene"
)

// Initial values of the inherited text properties.
var rootText = textStyle{
	color:      palette.RGB{},
	size:       16,
	weight:     400,
	lineHeight: 1.2,
	align:      scene.TextAlignLeft,
}

// textStyle is the resolved set of inherited text properties of a node.
type textStyle struct {
	color      palette.RGB
	size       float64
	weight     int
	lineHeight float64
	spacing    float64 // em
	align      scene.TextAlign
	upper      bool
}

func (t textStyle) inherit(s scene.Style) textStyle {
	if s.Color != nil {
		t.color = *s.Color
	}
	if s.FontSize > 0 {
		t.size = s.FontSize
	}
	if s.FontWeight > 0 {
		t.weight = s.FontWeight
	}
	if s.LineHeight > 0 {
		t.lineHeight = s.LineHeight
	}
	if s.LetterSpacing != 0 {
		t.spacing = s.LetterSpacing
	}
	if s.TextAlign != scene.TextAlignInherit {
		t.align = s.TextAlign
	}
	if s.Uppercase {
		t.upper = true
	}
	return t
}

func (t textStyle) linePx() float64    { return t.size * t.lineHeight }
func (t textStyle) spacingPx() float64 { return t.spacing * t.size }

type line struct {
	text  string
	width float64
}

// frame is a laid-out node. x, y, w and h describe its border box.
type frame struct {
	node       scene.Node
	text       textStyle
	x, y, w, h float64
	lines      []line
	children   []*frame
}

type engine struct {
	fonts *FontSet
}

// Layout positions root and records its paint commands. The root's own
// Width and Height take precedence over the viewport size.
func Layout(root scene.Node, fonts *FontSet, width, height float64) (*Recording, error) {
	if !fonts.ok() {
		return nil, ErrNoFonts
	}
	if root.Style.Width > 0 {
		width = root.Style.Width
	}
	if root.Style.Height > 0 {
		height = root.Style.Height
	}

	e := &engine{fonts: fonts}
	f := e.arrange(root, rootText, 0, 0, width, height)

	rec := &Recording{Width: width, Height: height, Background: palette.RGB{R: 255, G: 255, B: 255}}
	if root.Style.Background != nil {
		rec.Background = *root.Style.Background
	}
	e.paint(f, rec)
	return rec, nil
}

func (e *engine) content(n scene.Node, ts textStyle) string {
	if ts.upper {
		return cases.Upper(language.Und).String(n.Text)
	}
	return n.Text
}

// advance measures s with the installed shaper, falling back to the face's
// own advances when shaping yields nothing.
func advance(s string, face text.Face) float64 {
	if glyphs := text.Shape(s, face); len(glyphs) > 0 {
		var w float64
		for _, g := range glyphs {
			w += g.XAdvance
		}
		return w
	}
	return face.Advance(s)
}

func (e *engine) measureLine(s string, ts textStyle) float64 {
	if s == "" {
		return 0
	}
	w := advance(s, e.fonts.Face(ts.size, ts.weight))
	return w + ts.spacingPx()*float64(utf8.RuneCountInString(s))
}

// wrap breaks s into lines no wider than maxWidth where word boundaries
// allow it.
func (e *engine) wrap(s string, ts textStyle, maxWidth float64) []line {
	if maxWidth <= 0 || math.IsInf(maxWidth, 1) || e.measureLine(s, ts) <= maxWidth {
		return []line{{text: s, width: e.measureLine(s, ts)}}
	}
	if ts.spacing != 0 {
		return e.wrapWords(s, ts, maxWidth)
	}

	face := e.fonts.Face(ts.size, ts.weight)
	results := text.WrapText(s, face, maxWidth, text.WrapWordChar)
	lines := make([]line, 0, len(results))
	for _, r := range results {
		t := strings.TrimSpace(r.Text)
		lines = append(lines, line{text: t, width: e.measureLine(t, ts)})
	}
	return lines
}

// wrapWords is a greedy word wrapper used for letter-spaced text, whose
// advances the font wrapper does not know about.
func (e *engine) wrapWords(s string, ts textStyle, maxWidth float64) []line {
	var lines []line
	current := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && e.measureLine(candidate, ts) > maxWidth {
			lines = append(lines, line{text: current, width: e.measureLine(current, ts)})
			current = word
			continue
		}
		current = candidate
	}
	if current != "" || len(lines) == 0 {
		lines = append(lines, line{text: current, width: e.measureLine(current, ts)})
	}
	return lines
}

func widest(lines []line) float64 {
	var w float64
	for _, l := range lines {
		w = max(w, l.width)
	}
	return w
}

// insets returns padding plus border width per side.
func insets(s scene.Style) scene.Edges {
	b := s.Border.Width
	return scene.Edges{
		Top:    s.Padding.Top + b,
		Right:  s.Padding.Right + b,
		Bottom: s.Padding.Bottom + b,
		Left:   s.Padding.Left + b,
	}
}

// measure returns the preferred border-box size of n when at most avail
// pixels are available horizontally.
func (e *engine) measure(n scene.Node, ts textStyle, avail float64) (w, h float64) {
	st := n.Style
	ts = ts.inherit(st)

	limit := avail
	if st.Width > 0 {
		limit = st.Width
	}
	if st.MaxWidth > 0 {
		limit = math.Min(limit, st.MaxWidth)
	}

	switch n.Kind {
	case scene.KindText:
		lines := e.wrap(e.content(n, ts), ts, limit)
		w = widest(lines)
		h = float64(len(lines)) * ts.linePx()
	default:
		in := insets(st)
		inner := limit - in.Horizontal()
		row := st.Direction == scene.Row
		i := 0
		for _, c := range n.Children {
			if c.Style.Position == scene.Absolute {
				continue
			}
			cw, ch := e.measure(c, ts, inner)
			mt := c.Style.MarginTop
			if row {
				w += cw
				h = max(h, ch+mt)
				if i > 0 {
					w += st.Gap
				}
			} else {
				w = max(w, cw)
				h += ch + mt
				if i > 0 {
					h += st.Gap
				}
			}
			i++
		}
		w += in.Horizontal()
		h += in.Vertical()
	}

	if st.Width > 0 {
		w = st.Width
	}
	if st.Height > 0 {
		h = st.Height
	}
	if st.MaxWidth > 0 {
		w = math.Min(w, st.MaxWidth)
	}
	return w, h
}

type flexItem struct {
	index  int
	node   scene.Node
	main   float64
	cross  float64
	margin float64
}

// arrange lays n out in the given border box.
func (e *engine) arrange(n scene.Node, ts textStyle, x, y, w, h float64) *frame {
	ts = ts.inherit(n.Style)
	f := &frame{node: n, text: ts, x: x, y: y, w: w, h: h}
	if n.Kind == scene.KindText {
		f.lines = e.wrap(e.content(n, ts), ts, w)
		return f
	}

	st := n.Style
	in := insets(st)
	ix, iy := x+in.Left, y+in.Top
	iw, ih := max(0, w-in.Horizontal()), max(0, h-in.Vertical())
	row := st.Direction == scene.Row

	mainSize, crossSize := ih, iw
	if row {
		mainSize, crossSize = iw, ih
	}

	children := make([]*frame, len(n.Children))
	var items []flexItem
	for i, c := range n.Children {
		if c.Style.Position == scene.Absolute {
			cw, ch := e.measure(c, ts, w)
			ax := x + st.Border.Width + c.Style.Left
			ay := y + st.Border.Width + c.Style.Top
			children[i] = e.arrange(c, ts, ax, ay, cw, ch)
			continue
		}
		cw, ch := e.measure(c, ts, iw)
		it := flexItem{index: i, node: c, main: ch, cross: cw, margin: c.Style.MarginTop}
		if row {
			it.main, it.cross = cw, ch
		}
		items = append(items, it)
	}

	// Cross-axis stretch.
	if st.Align == scene.AlignStretch {
		for k := range items {
			c := items[k].node.Style
			switch {
			case row && c.Height == 0:
				items[k].cross = crossSize - items[k].margin
			case !row && c.Width == 0:
				items[k].cross = crossSize
				if c.MaxWidth > 0 {
					items[k].cross = math.Min(crossSize, c.MaxWidth)
				}
			}
		}
	}

	used := st.Gap * float64(max(0, len(items)-1))
	for _, it := range items {
		used += it.main
		if !row {
			used += it.margin
		}
	}
	free := mainSize - used

	// Grow, then shrink rows that overflow.
	var grow float64
	for _, it := range items {
		grow += it.node.Style.Grow
	}
	switch {
	case free > 0 && grow > 0:
		for k := range items {
			items[k].main += free * items[k].node.Style.Grow / grow
		}
		free = 0
	case free < 0 && row:
		var basis float64
		for _, it := range items {
			basis += it.main
		}
		if basis > 0 {
			for k := range items {
				items[k].main += free * items[k].main / basis
				if st.Align != scene.AlignStretch {
					_, items[k].cross = e.measure(items[k].node, ts, items[k].main)
				}
			}
		}
		free = 0
	}

	var autos int
	if !row {
		for _, it := range items {
			if it.node.Style.MarginTopAuto {
				autos++
			}
		}
	}
	offset, between, autoMargin := 0.0, st.Gap, 0.0
	if free > 0 {
		switch {
		case autos > 0:
			autoMargin = free / float64(autos)
		case st.Justify == scene.JustifyEnd:
			offset = free
		case st.Justify == scene.JustifyCenter:
			offset = free / 2
		case st.Justify == scene.JustifySpaceBetween && len(items) > 1:
			between += free / float64(len(items)-1)
		}
	}

	pos := offset
	for k, it := range items {
		if k > 0 {
			pos += between
		}
		var crossPos float64
		switch st.Align {
		case scene.AlignEnd:
			crossPos = crossSize - it.cross
		case scene.AlignCenter:
			crossPos = (crossSize - it.cross) / 2
		}

		if row {
			children[it.index] = e.arrange(it.node, ts, ix+pos, iy+crossPos+it.margin, it.main, it.cross)
		} else {
			pos += it.margin
			if it.node.Style.MarginTopAuto {
				pos += autoMargin
			}
			children[it.index] = e.arrange(it.node, ts, ix+crossPos, iy+pos, it.cross, it.main)
		}
		pos += it.main
	}

	f.children = children
	return f
}

// paintOrder sorts children by z-index; positioned children paint after
// in-flow siblings of the same z-index. The sort is stable so document order
// breaks remaining ties.
func paintOrder(children []*frame) []*frame {
	out := slices.Clone(children)
	slices.SortStableFunc(out, func(a, b *frame) int {
		if a.node.Style.ZIndex != b.node.Style.ZIndex {
			return a.node.Style.ZIndex - b.node.Style.ZIndex
		}
		return int(a.node.Style.Position) - int(b.node.Style.Position)
	})
	return out
}

func (e *engine) paint(f *frame, rec *Recording) {
	if f.node.Kind == scene.KindText {
		e.paintText(f, rec)
		return
	}

	st := f.node.Style
	r := Rect{X: f.x, Y: f.y, W: f.w, H: f.h}
	if st.Background != nil {
		rec.add(FillRect{Rect: r, Color: *st.Background})
	}
	if st.BackgroundImage != "" && r.W > 0 && r.H > 0 {
		rec.add(DrawImage{Rect: r, URI: st.BackgroundImage})
	}
	if st.Border.Width > 0 {
		rec.add(StrokeRect{Rect: r, Color: st.Border.Color, Width: st.Border.Width})
	}
	for _, c := range paintOrder(f.children) {
		e.paint(c, rec)
	}
}

func (e *engine) paintText(f *frame, rec *Recording) {
	ts := f.text
	m := e.fonts.Face(ts.size, ts.weight).Metrics()
	lh := ts.linePx()
	halfLeading := (lh - (m.Ascent + m.Descent)) / 2

	for i, l := range f.lines {
		if l.text == "" {
			continue
		}
		x := f.x
		switch ts.align {
		case scene.TextAlignRight:
			x = f.x + f.w - l.width
		case scene.TextAlignCenter:
			x = f.x + (f.w-l.width)/2
		}
		rec.add(DrawText{
			Text:    l.text,
			X:       x,
			Y:       f.y + float64(i)*lh + halfLeading + m.Ascent,
			Width:   l.width,
			Size:    ts.size,
			Weight:  ts.weight,
			Spacing: ts.spacingPx(),
			Color:   ts.color,
		})
	}
}
