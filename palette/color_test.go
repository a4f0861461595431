package palette

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGB implements color.Color.
var _ color.Color = RGB{}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   HSL
		want RGB
	}{
		{"red", HSL{0, 1, 0.5}, RGB{255, 0, 0}},
		{"yellow", HSL{60, 1, 0.5}, RGB{255, 255, 0}},
		{"green", HSL{120, 1, 0.5}, RGB{0, 255, 0}},
		{"cyan", HSL{180, 1, 0.5}, RGB{0, 255, 255}},
		{"blue", HSL{240, 1, 0.5}, RGB{0, 0, 255}},
		{"magenta", HSL{300, 1, 0.5}, RGB{255, 0, 255}},
		{"white", HSL{0, 0, 1}, RGB{255, 255, 255}},
		{"black", HSL{200, 1, 0}, RGB{0, 0, 0}},
		{"mid gray", HSL{90, 0, 0.5}, RGB{128, 128, 128}},
		{"negative hue wraps", HSL{-120, 1, 0.5}, RGB{0, 0, 255}},
		{"full turn wraps", HSL{360, 1, 0.5}, RGB{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.RGB(); got != tt.want {
				t.Errorf("%+v.RGB() = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in     string
		want   RGB
		wantOK bool
	}{
		{"#ffffff", RGB{255, 255, 255}, true},
		{"dde3e8", RGB{0xdd, 0xe3, 0xe8}, true},
		{"#454C53", RGB{0x45, 0x4c, 0x53}, true},
		{"#fff", RGB{255, 255, 255}, true},
		{"#12", RGB{}, false},
		{"#zzzzzz", RGB{}, false},
		{"", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRGBFormatting(t *testing.T) {
	c := RGB{117, 168, 189}
	if got := c.Hex(); got != "#75a8bd" {
		t.Errorf("Hex() = %q", got)
	}
	if got := c.CSS(); got != "rgb(117 168 189)" {
		t.Errorf("CSS() = %q", got)
	}
	if c.MaxChannel() != 189 || c.MinChannel() != 117 || c.Spread() != 72 {
		t.Errorf("channel stats = %d/%d/%d", c.MaxChannel(), c.MinChannel(), c.Spread())
	}
}

func TestRGBAIsOpaque(t *testing.T) {
	r, g, b, a := RGB{255, 0, 128}.RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex should panic on malformed input")
		}
	}()
	MustHex("nope")
}
