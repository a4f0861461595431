package card

import (
	"math/rand/v2"
	"strings"

	"github.com/dmrcv/ogkit/scene"
)

const (
	// DescriptionLimit bounds the post description in runes.
	DescriptionLimit = 220

	defaultRelocationLabel = "Relocation"
	separator              = " · "
)

// Composer builds card scenes. The zero value draws accents from the global
// random source.
type Composer struct {
	Rand *rand.Rand
}

// ComposeProfile builds a profile scene with a random accent.
func ComposeProfile(p Profile) scene.Node { return Composer{}.Profile(p) }

// ComposePost builds a post scene with a random accent.
func ComposePost(p Post) scene.Node { return Composer{}.Post(p) }

// Profile builds a profile scene.
func (c Composer) Profile(p Profile) scene.Node {
	return ProfileScene(p, RandomAccent(c.Rand))
}

// Post builds a post scene.
func (c Composer) Post(p Post) scene.Node {
	return PostScene(p, RandomAccent(c.Rand))
}

func root(direction scene.Direction, padding scene.Edges, gap float64, children ...scene.Node) scene.Node {
	return scene.Box(scene.Style{
		Width:      Width,
		Height:     Height,
		Direction:  direction,
		Padding:    padding,
		Gap:        gap,
		Background: scene.Color(Background),
		Border:     scene.Border{Width: 1, Color: BorderColor},
		Color:      scene.Color(Foreground),
	}, children...)
}

func strip(uri string) scene.Node {
	return scene.Box(scene.Style{
		Position:        scene.Absolute,
		Width:           Width,
		Height:          PatternHeight,
		BackgroundImage: uri,
	})
}

// ProfileScene lays out p with the given accent.
func ProfileScene(p Profile, accent Accent) scene.Node {
	content := []scene.Node{
		scene.Text(scene.Style{
			FontSize:      120,
			LineHeight:    1.02,
			FontWeight:    700,
			LetterSpacing: -0.01,
		}, p.Name),
		scene.Text(scene.Style{
			MarginTop:  28,
			FontSize:   36,
			LineHeight: 1.15,
			FontWeight: 600,
		}, p.Title),
	}
	if p.Kicker != "" {
		content = append(content, scene.Text(scene.Style{
			MarginTop:  18,
			FontSize:   26,
			LineHeight: 1.4,
			Color:      scene.Color(Muted),
			MaxWidth:   600,
		}, p.Kicker))
	}
	if footer, ok := profileFooter(p); ok {
		content = append(content, footer)
	}

	return root(scene.Row, scene.Symmetric(64, 72), 0,
		strip(texture(p.Name, accent, 0.55).DataURI()),
		scene.Box(scene.Style{
			Grow:      1,
			Direction: scene.Column,
			ZIndex:    1,
		}, content...),
	)
}

func desiredLocation(p Profile) string {
	var parts []string
	if p.OpenTo != "" {
		parts = append(parts, p.OpenTo)
	}
	if p.Relocation != "" {
		label := p.RelocationLabel
		if label == "" {
			label = defaultRelocationLabel
		}
		parts = append(parts, label+": "+p.Relocation)
	}
	return strings.Join(parts, separator)
}

func profileFooter(p Profile) (scene.Node, bool) {
	var left, right []scene.Node
	if p.Location != "" {
		left = append(left, scene.Text(scene.Style{
			FontWeight: 600,
			Color:      scene.Color(Foreground),
		}, p.Location))
	}
	if desired := desiredLocation(p); desired != "" {
		left = append(left, scene.Text(scene.Style{FontSize: 20}, desired))
	}
	if p.SiteLabel != "" {
		right = append(right, scene.Text(scene.Style{
			FontSize:   40,
			FontWeight: 600,
			Color:      scene.Color(Foreground),
		}, p.SiteLabel))
	}
	if p.Email != "" {
		right = append(right, scene.Text(scene.Style{FontSize: 40}, p.Email))
	}

	var columns []scene.Node
	if len(left) > 0 {
		columns = append(columns, scene.Box(scene.Style{
			Direction: scene.Column,
			Gap:       8,
		}, left...))
	}
	if len(right) > 0 {
		columns = append(columns, scene.Box(scene.Style{
			Direction: scene.Column,
			Align:     scene.AlignEnd,
			Gap:       6,
			TextAlign: scene.TextAlignRight,
		}, right...))
	}
	if len(columns) == 0 {
		return scene.Node{}, false
	}
	return scene.Box(scene.Style{
		MarginTopAuto: true,
		Direction:     scene.Row,
		Justify:       scene.JustifySpaceBetween,
		Align:         scene.AlignEnd,
		FontSize:      22,
		Color:         scene.Color(Muted),
	}, columns...), true
}

// PostScene lays out p with the given accent. The description is truncated
// to DescriptionLimit runes.
func PostScene(p Post, accent Accent) scene.Node {
	children := []scene.Node{strip(texture(p.Title, accent, 0.5).DataURI())}
	if p.Kicker != "" {
		children = append(children, scene.Text(scene.Style{
			FontSize:      22,
			LetterSpacing: 0.28,
			Uppercase:     true,
			Color:         scene.Color(Muted),
			ZIndex:        1,
		}, p.Kicker))
	}
	if p.Date != "" {
		children = append(children, scene.Text(scene.Style{
			FontSize: 28,
			Color:    scene.Color(Muted),
			ZIndex:   1,
		}, p.Date))
	}
	children = append(children, scene.Text(scene.Style{
		FontSize:      68,
		LineHeight:    1.05,
		FontWeight:    700,
		LetterSpacing: -0.01,
		MaxWidth:      960,
		ZIndex:        1,
	}, p.Title))
	if desc := Truncate(p.Description, DescriptionLimit); desc != "" {
		children = append(children, scene.Text(scene.Style{
			FontSize:   32,
			LineHeight: 1.35,
			Color:      scene.Color(Muted),
			MaxWidth:   960,
			ZIndex:     1,
		}, desc))
	}
	if p.SiteLabel != "" {
		children = append(children, scene.Text(scene.Style{
			MarginTopAuto: true,
			FontSize:      24,
			FontWeight:    600,
			Color:         scene.Color(Muted),
			ZIndex:        1,
		}, p.SiteLabel))
	}
	return root(scene.Column, scene.Uniform(72), 24, children...)
}
