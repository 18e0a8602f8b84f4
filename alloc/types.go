package alloc

import "unsafe"

// Block is a pointer plus a length in bytes, describing a region returned
// from a successful allocation-style operation.
type Block struct {
	ptr unsafe.Pointer
	len int
}

// Ptr returns the start of the block. For a zero-length block the pointer is
// well-aligned but dangling and must never be dereferenced.
func (b Block) Ptr() unsafe.Pointer { return b.ptr }

// Len returns the block's length in bytes.
func (b Block) Len() int { return b.len }

// Allocator defines the allocation strategy contract consumed by containers
// that manage their own backing storage.
//
// Implementations:
//   - Noop: never allocates; reinterprets caller-owned memory (see doc.go)
//
// This interface enables different allocation strategies while keeping
// containers indifferent to where their memory comes from.
type Allocator interface {
	// Allocate obtains a block of the given shape. A zero-size layout
	// yields a zero-length block; the pointer of such a block must not be
	// dereferenced.
	Allocate(layout Layout) (Block, error)

	// AllocateZeroed is Allocate with the returned block zero-filled.
	AllocateZeroed(layout Layout) (Block, error)

	// Deallocate returns a block to the strategy. It cannot fail.
	Deallocate(ptr unsafe.Pointer, layout Layout)

	// Grow enlarges the block at ptr from oldLayout to newLayout, possibly
	// by moving it. On success the returned block is at least
	// newLayout.Size() bytes long.
	Grow(ptr unsafe.Pointer, oldLayout, newLayout Layout) (Block, error)

	// GrowZeroed is Grow with the bytes past oldLayout.Size() zero-filled,
	// where the strategy is able to produce new bytes at all. See the Noop
	// documentation for the strategy that cannot.
	GrowZeroed(ptr unsafe.Pointer, oldLayout, newLayout Layout) (Block, error)

	// Shrink reduces the block at ptr from oldLayout to newLayout.
	// newLayout.Size() must not exceed oldLayout.Size().
	Shrink(ptr unsafe.Pointer, oldLayout, newLayout Layout) (Block, error)
}
