package owning

import "errors"

var (
	// ErrBadLength indicates an initial length outside the backing array.
	ErrBadLength = errors.New("owning: length exceeds backing capacity")

	// ErrOutOfRange indicates a Truncate target beyond the current length.
	ErrOutOfRange = errors.New("owning: index out of range")
)
