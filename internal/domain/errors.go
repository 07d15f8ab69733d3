package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals a malformed input such as a week index below 1.
	// Surfaced immediately, never retried.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrValidation signals input the user must correct (blank team name,
	// nothing to snapshot).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")
)

// ErrEmptyTeam is the "team has no definitions" case of ErrValidation. It is
// kept distinct because the fix is to populate members, not to correct a field.
var ErrEmptyTeam = fmt.Errorf("%w: team has no member definitions", ErrValidation)
