package i18n

// Strings are the profile page labels of one language.
type Strings struct {
	About         string
	Experience    string
	Toolbox       string
	Writing       string
	Contact       string
	Projects      string
	Breakdown     string
	ExpandAll     string
	CollapseAll   string
	PrintCV       string
	DownloadCV    string
	OpenTo        string
	Relocation    string
	EmailLabel    string
	LinkedInLabel string
	GitHubLabel   string
	CVLabel       string
	ContactCTA    string
}

var profileStrings = map[Lang]Strings{
	En: {
		About:         "About",
		Experience:    "Experience",
		Toolbox:       "Toolbox",
		Writing:       "Writing / Deep-dives",
		Contact:       "Contact / Links",
		Projects:      "Personal projects",
		Breakdown:     "Technical breakdown",
		ExpandAll:     "Expand all",
		CollapseAll:   "Collapse all",
		PrintCV:       "Print CV",
		DownloadCV:    "Download CV",
		OpenTo:        "Open to",
		Relocation:    "Relocation",
		EmailLabel:    "Email",
		LinkedInLabel: "LinkedIn",
		GitHubLabel:   "GitHub",
		CVLabel:       "CV",
		ContactCTA:    "Contact",
	},
	Fr: {
		About:         "À propos",
		Experience:    "Expérience",
		Toolbox:       "Boîte à outils",
		Writing:       "Écrits / Analyses",
		Contact:       "Contact / Liens",
		Projects:      "Projets personnels",
		Breakdown:     "Analyse technique",
		ExpandAll:     "Tout développer",
		CollapseAll:   "Tout réduire",
		PrintCV:       "Imprimer CV",
		DownloadCV:    "Télécharger le CV",
		OpenTo:        "Ouvert à",
		Relocation:    "Relocalisation",
		EmailLabel:    "Courriel",
		LinkedInLabel: "LinkedIn",
		GitHubLabel:   "GitHub",
		CVLabel:       "CV",
		ContactCTA:    "Contacter",
	},
}

// Strings returns the profile labels of l, or those of Default for an
// unsupported language.
func (l Lang) Strings() Strings {
	if s, ok := profileStrings[l]; ok {
		return s
	}
	return profileStrings[Default]
}
