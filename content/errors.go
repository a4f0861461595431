package content

import "errors"

var (
	// ErrNotFound is returned for a language or slug with no entry.
	ErrNotFound = errors.New("content: not found")

	// ErrInvalid is returned for an entry missing a required field or
	// declaring a language that does not match its location.
	ErrInvalid = errors.New("content: invalid entry")

	// ErrNoFrontMatter is returned for a Markdown file that does not start
	// with a front matter block.
	ErrNoFrontMatter = errors.New("content: missing front matter")
)
