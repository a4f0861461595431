// Package i18n holds the supported site languages and their strings.
package i18n

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// Lang is a supported site language.
type Lang string

const (
	En Lang = "en"
	Fr Lang = "fr"

	Default = En
)

// Supported lists the site languages in preference order.
var Supported = []Lang{En, Fr}

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

// Parse reports whether s names a supported language.
func Parse(s string) (Lang, bool) {
	for _, l := range Supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Match picks the best supported language for an Accept-Language header
// value, falling back to Default.
func Match(acceptLanguage string) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return Supported[index]
}

// Tag returns the BCP 47 tag of l.
func (l Lang) Tag() language.Tag {
	if l == Fr {
		return language.French
	}
	return language.English
}

// PostKicker is the label shown above post titles on social cards.
func (l Lang) PostKicker() string {
	if l == Fr {
		return "Article"
	}
	return "Feature"
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDate formats t in the long date style of l, for example
// "March 3, 2025" or "3 mars 2025".
func (l Lang) FormatDate(t time.Time) string {
	if l == Fr {
		return strconv.Itoa(t.Day()) + " " + frenchMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
	}
	return t.Format("January 2, 2006")
}
