package alloc

import "errors"

var (
	// ErrAllocFailed indicates that the strategy cannot satisfy the request.
	// It is the only failure any Allocator operation reports.
	ErrAllocFailed = errors.New("alloc: allocation failed")

	// ErrBadLayout indicates an invalid layout: a negative or overflowing
	// size, or an alignment that is zero, above MaxAlign, or not a power
	// of two.
	ErrBadLayout = errors.New("alloc: size must be non-negative and alignment a power of two within MaxAlign")
)
