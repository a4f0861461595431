package render

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/dmrcv/ogkit/palette"
)

// Frame describes the output surface handed to Backend.Begin.
type Frame struct {
	// Width and Height are the output size in pixels.
	Width, Height int

	// Scale maps scene units to output pixels.
	Scale float64

	Background palette.RGB
	Fonts      *FontSet
}

// Backend receives recorded commands and produces an encoded image.
//
// Commands arrive in scene units; backends apply Frame.Scale themselves.
// A backend instance renders exactly one frame.
type Backend interface {
	// Begin prepares the output surface and paints the background.
	Begin(f Frame) error

	FillRect(r Rect, c palette.RGB) error
	StrokeRect(r Rect, c palette.RGB, width float64) error
	DrawImage(r Rect, uri string) error
	DrawText(t DrawText) error

	// End finalizes the output. WriteTo may only be called after End.
	End() error

	// WriteTo writes the encoded output.
	WriteTo(w io.Writer) (int64, error)
}

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

func init() {
	Register("png", func() Backend { return &rasterBackend{} })
	Register("svg", func() Backend { return &svgBackend{} })
}

// Register makes a backend available under name.
//
// Register panics if factory is nil or name is already registered, so that
// conflicting registrations surface at init time.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("render: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a backend instance by name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
