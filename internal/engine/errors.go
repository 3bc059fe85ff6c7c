package engine

import "errors"

// ErrNoMatches signals that an active predicate set eliminated every row.
// Recoverable: callers should prompt the user to relax a filter rather than
// treat the empty view as data.
var ErrNoMatches = errors.New("no records match the active filters")

// ErrEmptyGroup signals that a mean was requested over zero rows. Groups
// derived from a view can never be empty, so this only fires for externally
// supplied views.
var ErrEmptyGroup = errors.New("cannot compute mean of an empty group")
