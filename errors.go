package ogkit

import "errors"

// ErrMissingField is returned for a content record without one of its
// required fields.
var ErrMissingField = errors.New("ogkit: missing required field")
