package alloc

import "unsafe"

// Noop is an allocation strategy that never allocates or frees memory. It
// exists so containers can be laid over memory the caller already owns: every
// genuine allocation request fails, deallocation does nothing, and resizing
// merely reinterprets the same pointer under a new length.
//
// Noop carries no allocation state. Copying an instance is free and never
// duplicates a resource, because it owns none.
type Noop struct {
	// region ties the instance to the borrowed memory it fronts for. It is
	// carried for self-documentation only and is never dereferenced; the
	// instance must not outlive the region.
	region []byte
}

var _ Allocator = Noop{}

// NewNoop returns a strategy tied to no particular region.
func NewNoop() Noop {
	return Noop{}
}

// NewNoopFor returns a strategy conceptually tied to the given borrowed
// region. The strategy never reads or writes the region; the marker exists so
// the association survives in debuggers and code review.
func NewNoopFor(region []byte) Noop {
	return Noop{region: region}
}

// Allocate fails for every non-zero size: this strategy never manufactures
// new memory. A zero-size request succeeds with a zero-length block whose
// pointer is aligned for the layout but dangling.
func (Noop) Allocate(layout Layout) (Block, error) {
	if layout.Size() != 0 {
		return Block{}, ErrAllocFailed
	}
	return Block{ptr: dangling(layout.Align()), len: 0}, nil
}

// AllocateZeroed follows the same rule as Allocate. No non-zero allocation
// ever succeeds, so there is never memory to zero.
func (n Noop) AllocateZeroed(layout Layout) (Block, error) {
	return n.Allocate(layout)
}

// Deallocate does nothing. ptr need not have been produced by this strategy,
// need not be valid, and need not match layout; the call is total and
// idempotent. Containers tearing down over borrowed memory land here, and the
// memory survives untouched.
func (Noop) Deallocate(ptr unsafe.Pointer, layout Layout) {
	// intentionally empty
}

// Grow reinterprets the block at ptr under newLayout.Size() bytes. It
// succeeds iff ptr satisfies newLayout's alignment; the returned pointer is
// bit-identical to ptr and no bytes are copied or moved.
//
// Unlike the general contract, ptr need not be a live allocation of this
// strategy, and the size may move in either direction. The strategy cannot
// see the real extent of the region behind ptr: requesting a size beyond the
// borrowed region's true capacity is a caller error it cannot catch.
func (Noop) Grow(ptr unsafe.Pointer, oldLayout, newLayout Layout) (Block, error) {
	if !newLayout.Fits(ptr) {
		return Block{}, ErrAllocFailed
	}
	return Block{ptr: ptr, len: newLayout.Size()}, nil
}

// GrowZeroed follows the same rule as Grow and performs no zero fill: no new
// memory is produced, so the bytes past oldLayout.Size() keep whatever the
// region already held. Callers needing zeroed growth must not use this
// strategy for it.
func (n Noop) GrowZeroed(ptr unsafe.Pointer, oldLayout, newLayout Layout) (Block, error) {
	return n.Grow(ptr, oldLayout, newLayout)
}

// Shrink reinterprets the block at ptr under the smaller newLayout.Size().
// It succeeds iff ptr satisfies newLayout's alignment and the new size does
// not exceed the old; no bytes are copied or moved.
func (Noop) Shrink(ptr unsafe.Pointer, oldLayout, newLayout Layout) (Block, error) {
	if !newLayout.Fits(ptr) || newLayout.Size() > oldLayout.Size() {
		return Block{}, ErrAllocFailed
	}
	return Block{ptr: ptr, len: newLayout.Size()}, nil
}

// danglingBuf backs the pointers handed out for zero-length blocks. The
// garbage collector only accepts pointers that reference real storage, so a
// synthesized integer address is not an option; an aligned address inside
// this static buffer is. Nothing is ever written through such a pointer.
// MaxAlign bytes guarantee an aligned address exists for every valid Layout.
var danglingBuf [MaxAlign]byte

// dangling returns a non-nil, align-aligned pointer into danglingBuf for a
// zero-length block. The result designates no storage and must never be
// dereferenced.
func dangling(align int) unsafe.Pointer {
	if align <= 0 {
		align = 1
	}
	base := unsafe.Pointer(&danglingBuf[0])
	off := (uintptr(align) - uintptr(base)%uintptr(align)) % uintptr(align)
	return unsafe.Add(base, off)
}
