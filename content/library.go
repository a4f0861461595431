package content

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmrcv/ogkit/card"
	"github.com/dmrcv/ogkit/i18n"
	"github.com/dmrcv/ogkit/internal/logx"
)

// Library is the loaded content of a site. It is read-only after Load and
// safe for concurrent use.
type Library struct {
	siteLabel string
	profiles  map[i18n.Lang]ProfileEntry
	posts     map[i18n.Lang]map[string]PostEntry
}

// SiteLabel returns the host of siteURL without a leading "www.".
func SiteLabel(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// Load reads the content directory dir. siteURL is shown on every card as
// its bare host name.
func Load(dir, siteURL string) (*Library, error) {
	return LoadFS(os.DirFS(dir), siteURL)
}

// LoadFS is Load over an arbitrary file system.
func LoadFS(fsys fs.FS, siteURL string) (*Library, error) {
	l := &Library{
		siteLabel: SiteLabel(siteURL),
		profiles:  make(map[i18n.Lang]ProfileEntry),
		posts:     make(map[i18n.Lang]map[string]PostEntry),
	}
	for _, lang := range i18n.Supported {
		if err := l.loadProfile(fsys, lang); err != nil {
			return nil, err
		}
		if err := l.loadPosts(fsys, lang); err != nil {
			return nil, err
		}
	}
	logx.Component("content").Info("content loaded",
		"profiles", len(l.profiles),
		"posts", l.postCount(),
		"site", l.siteLabel)
	return l, nil
}

func (l *Library) postCount() int {
	n := 0
	for _, posts := range l.posts {
		n += len(posts)
	}
	return n
}

func (l *Library) loadProfile(fsys fs.FS, lang i18n.Lang) error {
	for _, ext := range []string{".yaml", ".yml", ".md"} {
		name := path.Join("profile", string(lang)+ext)
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("content: read %s: %w", name, err)
		}
		if ext == ".md" {
			if data, err = splitFrontMatter(data); err != nil {
				return fmt.Errorf("%w: %s", err, name)
			}
		}
		var p ProfileEntry
		if err := yaml.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("content: parse %s: %w", name, err)
		}
		if p.Locale == "" {
			p.Locale = lang
		}
		switch {
		case p.Locale != lang:
			return fmt.Errorf("%w: %s declares locale %q", ErrInvalid, name, p.Locale)
		case p.Name == "" || p.Title == "":
			return fmt.Errorf("%w: %s needs a name and a title", ErrInvalid, name)
		}
		l.profiles[lang] = p
		return nil
	}
	return nil
}

func (l *Library) loadPosts(fsys fs.FS, lang i18n.Lang) error {
	dir := path.Join("posts", string(lang))
	posts := make(map[string]PostEntry)
	err := fs.WalkDir(fsys, dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			if name == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || path.Ext(name) != ".md" {
			return nil
		}
		p, err := readPost(fsys, name)
		if err != nil {
			return err
		}
		if p.Lang == "" {
			p.Lang = lang
		}
		if p.Lang != lang {
			return fmt.Errorf("%w: %s declares lang %q", ErrInvalid, name, p.Lang)
		}
		if p.Draft {
			return nil
		}
		p.Slug = strings.TrimSuffix(strings.TrimPrefix(name, dir+"/"), ".md")
		posts[p.Slug] = p
		return nil
	})
	if err != nil {
		return fmt.Errorf("content: load posts: %w", err)
	}
	if len(posts) > 0 {
		l.posts[lang] = posts
	}
	return nil
}

func readPost(fsys fs.FS, name string) (PostEntry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return PostEntry{}, err
	}
	fm, err := splitFrontMatter(data)
	if err != nil {
		return PostEntry{}, fmt.Errorf("%w: %s", err, name)
	}
	var p PostEntry
	if err := yaml.Unmarshal(fm, &p); err != nil {
		return PostEntry{}, fmt.Errorf("parse %s: %w", name, err)
	}
	if p.Title == "" || p.Date.IsZero() {
		return PostEntry{}, fmt.Errorf("%w: %s needs a title and a date", ErrInvalid, name)
	}
	return p, nil
}

// Profile returns the profile entry of lang.
func (l *Library) Profile(lang i18n.Lang) (ProfileEntry, error) {
	p, ok := l.profiles[lang]
	if !ok {
		return ProfileEntry{}, fmt.Errorf("%w: profile %q", ErrNotFound, lang)
	}
	return p, nil
}

// Post returns the published post slug of lang.
func (l *Library) Post(lang i18n.Lang, slug string) (PostEntry, error) {
	p, ok := l.posts[lang][slug]
	if !ok {
		return PostEntry{}, fmt.Errorf("%w: post %s/%s", ErrNotFound, lang, slug)
	}
	return p, nil
}

// Slugs returns the sorted slugs of the published posts of lang.
func (l *Library) Slugs(lang i18n.Lang) []string {
	slugs := make([]string, 0, len(l.posts[lang]))
	for slug := range l.posts[lang] {
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)
	return slugs
}

// ProfileCard maps the profile of lang to its card record.
func (l *Library) ProfileCard(lang i18n.Lang) (card.Profile, error) {
	p, err := l.Profile(lang)
	if err != nil {
		return card.Profile{}, err
	}
	return card.Profile{
		Name:            p.Name,
		Title:           p.Title,
		Kicker:          p.Kicker,
		Location:        p.Location,
		OpenTo:          p.OpenTo,
		Relocation:      p.Relocation,
		RelocationLabel: lang.Strings().Relocation,
		Email:           p.Contact.Email,
		SiteLabel:       l.siteLabel,
	}, nil
}

// PostCard maps a post to its card record.
func (l *Library) PostCard(lang i18n.Lang, slug string) (card.Post, error) {
	p, err := l.Post(lang, slug)
	if err != nil {
		return card.Post{}, err
	}
	return card.Post{
		Title:       p.CardTitle(),
		Description: p.CardDescription(),
		Date:        lang.FormatDate(p.Date),
		SiteLabel:   l.siteLabel,
		Kicker:      lang.PostKicker(),
	}, nil
}
