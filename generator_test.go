package ogkit

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/dmrcv/ogkit/cache"
	"github.com/dmrcv/ogkit/card"
	"github.com/dmrcv/ogkit/render"
)

var jane = card.Profile{Name: "Jane Doe", Title: "Engineer", Location: "Remote"}

func newTestGenerator(opts ...Option) *Generator {
	return New(append([]Option{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)...)
}

func TestJaneDoe(t *testing.T) {
	g := newTestGenerator()
	ctx := context.Background()

	first, err := g.VersionedProfileImage(ctx, jane)
	if err != nil {
		t.Fatalf("VersionedProfileImage: %v", err)
	}
	if len(first.Bytes) == 0 {
		t.Fatal("empty image")
	}
	if len(first.Hash) != cache.HashLen {
		t.Errorf("hash %q has length %d", first.Hash, len(first.Hash))
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(first.Bytes))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != card.Width || cfg.Height != card.Height {
		t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, card.Width, card.Height)
	}

	second, err := g.VersionedProfileImage(ctx, jane)
	if err != nil {
		t.Fatal(err)
	}
	if second.Hash != first.Hash {
		t.Errorf("second hash = %s, want %s", second.Hash, first.Hash)
	}
}

func TestVersionedPost(t *testing.T) {
	g := newTestGenerator()
	post := card.Post{
		Title:       "Hello",
		Description: "First post",
		Date:        "March 3, 2025",
		SiteLabel:   "example.com",
		Kicker:      "Feature",
	}
	a, err := g.VersionedPostImage(context.Background(), post)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.VersionedPostImage(context.Background(), post)
	if err != nil {
		t.Fatal(err)
	}
	if a.Hash != b.Hash {
		t.Errorf("hashes differ: %s %s", a.Hash, b.Hash)
	}

	post.Title = "Hello again"
	c, err := g.VersionedPostImage(context.Background(), post)
	if err != nil {
		t.Fatal(err)
	}
	if c.Hash == a.Hash {
		t.Error("different records share a hash")
	}
}

func TestSVG(t *testing.T) {
	g := newTestGenerator()
	svg, err := g.ProfileSVG(context.Background(), jane)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<svg", "@font-face", "Jane Doe", "data:image/svg+xml"} {
		if !strings.Contains(svg, want) {
			t.Errorf("profile svg missing %q", want)
		}
	}

	svg, err = g.PostSVG(context.Background(), card.Post{Title: "Notes", Date: "3 mars 2025"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(svg, "3 mars 2025") {
		t.Error("post svg missing date")
	}
}

func TestMissingFields(t *testing.T) {
	g := newTestGenerator()
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
	}{
		{"profile without title", func() error {
			_, err := g.ProfileImage(ctx, card.Profile{Name: "Jane"})
			return err
		}},
		{"versioned profile without name", func() error {
			_, err := g.VersionedProfileImage(ctx, card.Profile{Title: "Engineer"})
			return err
		}},
		{"post without date", func() error {
			_, err := g.PostImage(ctx, card.Post{Title: "Hello"})
			return err
		}},
		{"post svg without title", func() error {
			_, err := g.PostSVG(ctx, card.Post{Date: "today"})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, ErrMissingField) {
				t.Errorf("error = %v, want ErrMissingField", err)
			}
		})
	}
}

func TestCanceledContext(t *testing.T) {
	g := newTestGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.ProfileImage(ctx, jane); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestFontFailureNotCached(t *testing.T) {
	g := newTestGenerator(WithFonts(render.NewFontLoader("regular.ttf", "")))
	_, err := g.VersionedProfileImage(context.Background(), jane)
	if !errors.Is(err, render.ErrNoFonts) {
		t.Fatalf("error = %v, want ErrNoFonts", err)
	}
	if g.profiles.Len() != 0 {
		t.Error("failed render was cached")
	}
}

func TestFavicon(t *testing.T) {
	g := newTestGenerator()
	fav := g.Favicon()
	if !strings.Contains(fav, `width="64"`) {
		t.Errorf("favicon = %q", fav)
	}
	if !strings.Contains(g.AppleTouchIcon(), `width="180"`) {
		t.Error("apple touch icon should be 180px")
	}
	if g.Favicon() != fav {
		t.Error("favicon color changed between calls")
	}
	if !strings.Contains(fav, g.Icon().Color.CSS()) {
		t.Error("favicon does not use the icon color")
	}
}

func TestSetLoggerAfterNew(t *testing.T) {
	g := newTestGenerator()

	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, err := g.VersionedProfileImage(context.Background(), jane); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"cache miss", "component=cache", "component=render"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}
