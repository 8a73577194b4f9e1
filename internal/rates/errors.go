package rates

import "errors"

var (
	// ErrInvalidInput indicates a numeric input outside its valid range
	// (non-positive sale price, rate outside 0-100).
	ErrInvalidInput = errors.New("invalid input")
)
