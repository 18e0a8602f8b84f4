// Package alloc defines the allocation capability contract consumed by the
// owning containers, and the no-op strategy that lets those containers run
// over memory the caller already owns.
//
// # Overview
//
// The core abstraction is the Allocator interface, a six-operation contract:
//
//   - Allocate(layout): Obtain a new block of the given shape
//   - AllocateZeroed(layout): As Allocate, with the block zero-filled
//   - Deallocate(ptr, layout): Return a block to the strategy
//   - Grow(ptr, old, new): Enlarge an existing block in place or by moving it
//   - GrowZeroed(ptr, old, new): As Grow, with the added tail zero-filled
//   - Shrink(ptr, old, new): Reduce an existing block
//
// # The No-op Strategy
//
// Noop is the only strategy in this package, and it never allocates or frees
// memory of its own:
//
//   - Allocate and AllocateZeroed fail for every non-zero size. A zero-size
//     request succeeds with a zero-length block whose pointer is well-aligned
//     but dangling; it must never be dereferenced.
//   - Deallocate does nothing, for any input. This is what makes it possible
//     to hand caller-owned memory to a container: teardown routes here and
//     the memory survives untouched.
//   - Grow, GrowZeroed, and Shrink never move or copy bytes. They succeed by
//     reinterpreting the same pointer under the new length, provided the
//     pointer satisfies the new layout's alignment (and, for Shrink, the new
//     size does not exceed the old). The returned pointer is always
//     bit-identical to the input.
//
// Grow is size-direction-agnostic and cannot verify the real extent of the
// region behind the pointer. Callers must never claim a size beyond the true
// capacity of the borrowed region; that obligation cannot be checked here.
//
// GrowZeroed performs no zero fill despite its name: no new memory is ever
// produced, so there is nothing to zero. Containers that rely on
// zero-fill-on-grow semantics must not use this strategy.
//
// # Errors
//
// Every failure is ErrAllocFailed, reported synchronously. Nothing is
// retried, nothing is logged, and every operation is idempotent to re-invoke.
//
// # Thread Safety
//
// Noop carries no allocation state, so all operations are pure functions of
// their inputs and safe to call concurrently on the same instance. The
// validity of caller-supplied pointers remains entirely the caller's
// responsibility.
//
// # Usage Example
//
//	var slots [4]uint64
//	a := alloc.NewNoopFor(unsafe.Slice((*byte)(unsafe.Pointer(&slots[0])), 32))
//
//	layout := alloc.MustLayout(16, 8)
//	blk, err := a.Grow(unsafe.Pointer(&slots[0]), alloc.MustLayout(8, 8), layout)
//	// blk.Ptr() == &slots[0], blk.Len() == 16, err == nil
//
// # Related Packages
//
//   - github.com/joshuapare/memkit/owning: containers built on this contract
//   - github.com/joshuapare/memkit/region: caller-owned scratch regions
package alloc
