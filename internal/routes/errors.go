package routes

import "errors"

// Sentinel errors returned by NewTable. They are wrapped with the offending
// pattern, so compare with errors.Is.
var (
	ErrInvalidPattern   = errors.New("route pattern must start with '/'")
	ErrDuplicatePattern = errors.New("route pattern registered twice")
	ErrMissingWildcard  = errors.New("route table has no wildcard entry")
	ErrWildcardNotLast  = errors.New("wildcard entry must be the last entry")
	ErrInvalidTarget    = errors.New("redirect target must be an absolute URL")
	ErrInvalidOutcome   = errors.New("route outcome is incomplete")
)
