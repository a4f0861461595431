package ogkit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/dmrcv/ogkit/cache"
	"github.com/dmrcv/ogkit/card"
	"github.com/dmrcv/ogkit/monogram"
	"github.com/dmrcv/ogkit/render"
	"github.com/dmrcv/ogkit/scene"
)

// Cache namespaces of the two record kinds.
const (
	ProfileNamespace = "profile"
	PostNamespace    = "post"
)

// Option configures a Generator.
type Option func(*config)

type config struct {
	fonts     *render.FontLoader
	stores    []cache.Store
	softLimit int
	rng       *rand.Rand
}

// WithFonts sets the font loader. The default uses the embedded Go fonts.
func WithFonts(l *render.FontLoader) Option {
	return func(c *config) {
		c.fonts = l
	}
}

// WithCacheStore adds a persistent store behind the in-memory caches.
func WithCacheStore(s cache.Store) Option {
	return func(c *config) {
		c.stores = append(c.stores, s)
	}
}

// WithCacheSoftLimit bounds each in-memory cache to roughly n images.
func WithCacheSoftLimit(n int) Option {
	return func(c *config) {
		c.softLimit = n
	}
}

// WithRand makes accent hues and the monogram color reproducible. Draws
// are serialized, so r may be shared with nothing else.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// Generator renders cards and icons. It is safe for concurrent use.
type Generator struct {
	fonts    *render.FontLoader
	profiles *cache.Cache
	posts    *cache.Cache

	mu  sync.Mutex
	rng *rand.Rand

	icon func() monogram.Icon
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fonts == nil {
		cfg.fonts = render.NewFontLoader("", "")
	}

	cacheOpts := func(ns string) []cache.Option {
		o := []cache.Option{cache.WithNamespace(ns), cache.WithSoftLimit(cfg.softLimit)}
		for _, s := range cfg.stores {
			o = append(o, cache.WithStore(s))
		}
		return o
	}

	g := &Generator{
		fonts:    cfg.fonts,
		profiles: cache.New(cacheOpts(ProfileNamespace)...),
		posts:    cache.New(cacheOpts(PostNamespace)...),
		rng:      cfg.rng,
		icon:     monogram.Default,
	}
	if g.rng != nil {
		g.icon = sync.OnceValue(func() monogram.Icon {
			g.mu.Lock()
			defer g.mu.Unlock()
			return monogram.New(g.rng)
		})
	}
	return g
}

func (g *Generator) accent() card.Accent {
	if g.rng == nil {
		return card.RandomAccent(nil)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return card.RandomAccent(g.rng)
}

func validateProfile(p card.Profile) error {
	if p.Name == "" || p.Title == "" {
		return fmt.Errorf("%w: profile needs a name and a title", ErrMissingField)
	}
	return nil
}

func validatePost(p card.Post) error {
	if p.Title == "" || p.Date == "" {
		return fmt.Errorf("%w: post needs a title and a date", ErrMissingField)
	}
	return nil
}

func (g *Generator) render(ctx context.Context, root scene.Node, backend string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fonts, err := g.fonts.Load()
	if err != nil {
		return nil, err
	}
	return render.Render(root, fonts, card.Width, card.Height, render.WithBackend(backend))
}

// ProfileImage renders p as a PNG card.
func (g *Generator) ProfileImage(ctx context.Context, p card.Profile) ([]byte, error) {
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	return g.render(ctx, card.ProfileScene(p, g.accent()), "png")
}

// PostImage renders p as a PNG card.
func (g *Generator) PostImage(ctx context.Context, p card.Post) ([]byte, error) {
	if err := validatePost(p); err != nil {
		return nil, err
	}
	return g.render(ctx, card.PostScene(p, g.accent()), "png")
}

// ProfileSVG renders p as an SVG card with the fonts embedded.
func (g *Generator) ProfileSVG(ctx context.Context, p card.Profile) (string, error) {
	if err := validateProfile(p); err != nil {
		return "", err
	}
	b, err := g.render(ctx, card.ProfileScene(p, g.accent()), "svg")
	return string(b), err
}

// PostSVG renders p as an SVG card with the fonts embedded.
func (g *Generator) PostSVG(ctx context.Context, p card.Post) (string, error) {
	if err := validatePost(p); err != nil {
		return "", err
	}
	b, err := g.render(ctx, card.PostScene(p, g.accent()), "svg")
	return string(b), err
}

// VersionedProfileImage returns the PNG card of p, rendering it only the
// first time an equal record is seen.
func (g *Generator) VersionedProfileImage(ctx context.Context, p card.Profile) (cache.Entry, error) {
	if err := validateProfile(p); err != nil {
		return cache.Entry{}, err
	}
	return g.profiles.GetOrRender(ctx, p, func(ctx context.Context) ([]byte, error) {
		return g.ProfileImage(ctx, p)
	})
}

// VersionedPostImage returns the PNG card of p, rendering it only the first
// time an equal record is seen.
func (g *Generator) VersionedPostImage(ctx context.Context, p card.Post) (cache.Entry, error) {
	if err := validatePost(p); err != nil {
		return cache.Entry{}, err
	}
	return g.posts.GetOrRender(ctx, p, func(ctx context.Context) ([]byte, error) {
		return g.PostImage(ctx, p)
	})
}

// Icon returns the monogram used by Favicon and AppleTouchIcon.
func (g *Generator) Icon() monogram.Icon {
	return g.icon()
}

// Favicon returns the monogram as a 64px SVG document.
func (g *Generator) Favicon() string {
	return g.icon().SVG(monogram.FaviconSize)
}

// AppleTouchIcon returns the monogram as a 180px SVG document.
func (g *Generator) AppleTouchIcon() string {
	return g.icon().SVG(monogram.AppleTouchIconSize)
}
