// Package card composes the 1200x630 social preview scenes for profile and
// post pages.
//
// Composition is pure apart from the accent hue, which is drawn at random on
// every call so repeated renders of the same content vary in color while the
// squircle texture, seeded by the name or title, stays put.
package card
