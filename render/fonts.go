package render

import (
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/dmrcv/ogkit/internal/logx"
)

// boldWeight is the lightest weight drawn with the bold face.
const boldWeight = 600

// FontSet is the two-weight font family used by every scene. It is
// read-only after construction and safe for concurrent use.
type FontSet struct {
	// Regular and Bold hold the raw font files, embedded as-is by the svg
	// backend.
	Regular []byte
	Bold    []byte

	regular *text.FontSource
	bold    *text.FontSource
}

// NewFontSet parses the regular and bold font files.
func NewFontSet(regular, bold []byte) (*FontSet, error) {
	if len(regular) == 0 || len(bold) == 0 {
		return nil, ErrNoFonts
	}
	r, err := text.NewFontSource(regular)
	if err != nil {
		return nil, fmt.Errorf("render: parse regular font: %w", err)
	}
	b, err := text.NewFontSource(bold)
	if err != nil {
		return nil, fmt.Errorf("render: parse bold font: %w", err)
	}
	return &FontSet{Regular: regular, Bold: bold, regular: r, bold: b}, nil
}

// DefaultFontSet returns the Go fonts bundled with golang.org/x/image.
func DefaultFontSet() (*FontSet, error) {
	return NewFontSet(goregular.TTF, gobold.TTF)
}

// Face returns a face of the given pixel size. Weights of 600 and above use
// the bold source.
func (f *FontSet) Face(size float64, weight int) text.Face {
	if weight >= boldWeight {
		return f.bold.Face(size)
	}
	return f.regular.Face(size)
}

func (f *FontSet) ok() bool {
	return f != nil && f.regular != nil && f.bold != nil
}

var installShaper = sync.OnceFunc(func() {
	text.SetShaper(text.NewGoTextShaper())
})

// FontLoader loads a FontSet once per process. Empty paths select the
// embedded Go fonts.
type FontLoader struct {
	RegularPath string
	BoldPath    string

	load func() (*FontSet, error)
}

// NewFontLoader returns a loader for the given font files.
func NewFontLoader(regularPath, boldPath string) *FontLoader {
	l := &FontLoader{RegularPath: regularPath, BoldPath: boldPath}
	l.load = sync.OnceValues(l.read)
	return l
}

// Load returns the memoized FontSet. The first call reads and parses the
// files; later calls return the same result, including a failure.
func (l *FontLoader) Load() (*FontSet, error) {
	return l.load()
}

func (l *FontLoader) read() (*FontSet, error) {
	installShaper()
	log := logx.Component("render")

	if l.RegularPath == "" && l.BoldPath == "" {
		log.Info("using embedded fonts")
		return DefaultFontSet()
	}
	if l.RegularPath == "" || l.BoldPath == "" {
		return nil, fmt.Errorf("%w: both regular and bold paths are required", ErrNoFonts)
	}

	regular, err := os.ReadFile(l.RegularPath)
	if err != nil {
		return nil, fmt.Errorf("render: read font: %w", err)
	}
	bold, err := os.ReadFile(l.BoldPath)
	if err != nil {
		return nil, fmt.Errorf("render: read font: %w", err)
	}
	fonts, err := NewFontSet(regular, bold)
	if err != nil {
		return nil, err
	}
	log.Info("fonts loaded", "regular", l.RegularPath, "bold", l.BoldPath)
	return fonts, nil
}
