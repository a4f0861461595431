package render

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func testFonts(t *testing.T) *FontSet {
	t.Helper()
	fonts, err := DefaultFontSet()
	if err != nil {
		t.Fatalf("DefaultFontSet() error = %v", err)
	}
	return fonts
}

func TestNewFontSetRequiresBothWeights(t *testing.T) {
	fonts := testFonts(t)
	tests := []struct {
		name          string
		regular, bold []byte
	}{
		{"both missing", nil, nil},
		{"bold missing", fonts.Regular, nil},
		{"regular missing", nil, fonts.Bold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFontSet(tt.regular, tt.bold); !errors.Is(err, ErrNoFonts) {
				t.Errorf("NewFontSet() error = %v, want ErrNoFonts", err)
			}
		})
	}
}

func TestNewFontSetRejectsGarbage(t *testing.T) {
	if _, err := NewFontSet([]byte("not a font"), []byte("nor this")); err == nil {
		t.Error("NewFontSet() accepted garbage")
	}
}

func TestFaceWeight(t *testing.T) {
	fonts := testFonts(t)
	tests := []struct {
		weight int
		bold   bool
	}{
		{400, false},
		{500, false},
		{600, true},
		{700, true},
	}
	for _, tt := range tests {
		face := fonts.Face(20, tt.weight)
		if got := face.Source() == fonts.bold; got != tt.bold {
			t.Errorf("weight %d: bold = %v, want %v", tt.weight, got, tt.bold)
		}
		if face.Size() != 20 {
			t.Errorf("weight %d: size = %v", tt.weight, face.Size())
		}
	}
}

func TestFontLoaderMemoizes(t *testing.T) {
	l := NewFontLoader("", "")
	a, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := l.Load()
	if a != b {
		t.Error("Load() returned different font sets")
	}
}

func TestFontLoaderErrors(t *testing.T) {
	if _, err := NewFontLoader("regular.ttf", "").Load(); !errors.Is(err, ErrNoFonts) {
		t.Errorf("half-configured loader error = %v, want ErrNoFonts", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := NewFontLoader(missing, missing).Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
}
