package commission

import "errors"

var (
	// ErrInvalidTransition indicates the requested status is not reachable
	// from the current one, including same-state and terminal-state requests.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation indicates required accompanying data is missing, such as
	// a rejection without a reason.
	ErrValidation = errors.New("validation failed")

	// ErrConcurrentModification indicates the compare-and-set lost against a
	// concurrent transition; the caller should re-fetch and decide.
	ErrConcurrentModification = errors.New("commission was modified concurrently")
)
