package render

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/dmrcv/ogkit/internal/logx"
	"github.com/dmrcv/ogkit/palette"
	"github.com/dmrcv/ogkit/scene"
)

// Option configures Render.
type Option func(*options)

type options struct {
	backend    string
	background *palette.RGB
}

// WithBackend selects the output backend by registry name. The default is
// "png".
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithBackground overrides the opaque fill painted before the scene. The
// default is the root node's background, or white.
func WithBackground(c palette.RGB) Option {
	return func(o *options) {
		o.background = &c
	}
}

// Render lays out root and encodes it at width x height pixels. The scene is
// scaled so that its width fits the output width.
func Render(root scene.Node, fonts *FontSet, width, height int, opts ...Option) ([]byte, error) {
	o := options{backend: "png"}
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid size %dx%d", width, height)
	}

	start := time.Now()
	rec, err := Layout(root, fonts, float64(width), float64(height))
	if err != nil {
		return nil, err
	}

	b, err := NewBackend(o.backend)
	if err != nil {
		return nil, err
	}
	if c, ok := b.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	frame := Frame{
		Width:      width,
		Height:     height,
		Scale:      float64(width) / rec.Width,
		Background: rec.Background,
		Fonts:      fonts,
	}
	if o.background != nil {
		frame.Background = *o.background
	}

	if err := b.Begin(frame); err != nil {
		return nil, fmt.Errorf("render: begin %s: %w", o.backend, err)
	}
	if err := rec.Playback(b); err != nil {
		return nil, err
	}
	if err := b.End(); err != nil {
		return nil, fmt.Errorf("render: end %s: %w", o.backend, err)
	}

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render: encode %s: %w", o.backend, err)
	}

	logx.Component("render").Debug("rendered",
		"backend", o.backend,
		"nodes", root.Count(),
		"commands", len(rec.Commands),
		"bytes", buf.Len(),
		"elapsed", time.Since(start))
	return buf.Bytes(), nil
}

// RenderSVG lays out root and returns it as an SVG document.
func RenderSVG(root scene.Node, fonts *FontSet, width, height int, opts ...Option) (string, error) {
	opts = append([]Option{WithBackend("svg")}, opts...)
	b, err := Render(root, fonts, width, height, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
