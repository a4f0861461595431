// Package ogkit renders the social preview cards and monogram icons of a
// personal site.
//
// # Overview
//
// A card is a 1200x630 image composed from a plain content record: a
// profile (name, title, location, contact) or a post (title, description,
// date). The top of every card carries a squircle texture seeded by the
// name or title, so a given page always gets the same texture while its
// accent hue changes from one render to the next.
//
// # Quick Start
//
//	g := ogkit.New()
//
//	png, err := g.ProfileImage(ctx, card.Profile{
//	    Name:     "Jane Doe",
//	    Title:    "Engineer",
//	    Location: "Remote",
//	})
//
// Versioned variants memoize the result by content and return a short
// hash suitable as a cache-busting query parameter:
//
//	entry, err := g.VersionedPostImage(ctx, post)
//	url := "/en/posts/hello/og.png?v=" + entry.Hash
//
// # Packages
//
// The facade wires together:
//   - palette: perceptual contrast and the monogram color search
//   - pattern: the deterministic squircle texture
//   - scene, card: the card scene trees
//   - render: layout and the png and svg backends
//   - cache: content-addressed memoization with optional SQLite persistence
//   - monogram: the favicon
//
// # Logging
//
// ogkit is silent by default. Call SetLogger to route its diagnostics to
// any slog handler.
package ogkit
