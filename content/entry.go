package content

import (
	"bytes"
	"time"

	"github.com/dmrcv/ogkit/i18n"
)

// Contact holds the profile's public links.
type Contact struct {
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin,omitempty"`
	GitHub   string `yaml:"github,omitempty"`
	CV       string `yaml:"cv,omitempty"`
}

// ProfileEntry is one language's profile page.
type ProfileEntry struct {
	Locale     i18n.Lang `yaml:"locale"`
	Name       string    `yaml:"name"`
	Title      string    `yaml:"title"`
	Kicker     string    `yaml:"kicker"`
	Location   string    `yaml:"location"`
	OpenTo     string    `yaml:"openTo,omitempty"`
	Relocation string    `yaml:"relocation,omitempty"`
	Contact    Contact   `yaml:"contact"`
}

// OpenGraph overrides the post fields shown on its social card.
type OpenGraph struct {
	Title       *string `yaml:"title,omitempty"`
	Description *string `yaml:"description,omitempty"`
	Image       string  `yaml:"image,omitempty"`
}

// PostEntry is one post's front matter.
type PostEntry struct {
	Slug           string     `yaml:"-"`
	Title          string     `yaml:"title"`
	Description    *string    `yaml:"description,omitempty"`
	Lang           i18n.Lang  `yaml:"lang"`
	Date           time.Time  `yaml:"date"`
	OpenGraph      *OpenGraph `yaml:"openGraph,omitempty"`
	Tags           []string   `yaml:"tags,omitempty"`
	Draft          bool       `yaml:"draft"`
	TranslationKey string     `yaml:"translationKey,omitempty"`
}

// CardTitle is the Open Graph title, falling back to the post title.
func (p PostEntry) CardTitle() string {
	if p.OpenGraph != nil && p.OpenGraph.Title != nil {
		return *p.OpenGraph.Title
	}
	return p.Title
}

// CardDescription is the Open Graph description, then the post
// description, then the post's own title when both are missing or empty.
func (p PostEntry) CardDescription() string {
	var desc string
	switch {
	case p.OpenGraph != nil && p.OpenGraph.Description != nil:
		desc = *p.OpenGraph.Description
	case p.Description != nil:
		desc = *p.Description
	}
	if desc == "" {
		return p.Title
	}
	return desc
}

var fence = []byte("---")

// splitFrontMatter returns the YAML between the leading pair of "---" lines.
func splitFrontMatter(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	line, rest, ok := bytes.Cut(data, []byte("\n"))
	if !ok || !bytes.Equal(bytes.TrimSpace(line), fence) {
		return nil, ErrNoFrontMatter
	}
	var out []byte
	for len(rest) > 0 {
		line, rest, _ = bytes.Cut(rest, []byte("\n"))
		if bytes.Equal(bytes.TrimSpace(line), fence) {
			return out, nil
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return nil, ErrNoFrontMatter
}
