package game

import "errors"

// Error kinds surfaced to the boundary layer. None of these are fatal to
// the process; callers match them with errors.Is and decide how to recover.
var (
	// ErrInvalidInput indicates an unparsable human token. The round does
	// not advance and nothing is recorded; the caller should re-prompt.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfiguration indicates bad session setup, such as an
	// unknown difficulty level. It surfaces before any round is played.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
