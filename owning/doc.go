// Package owning provides containers that borrow a memory location but own
// the values in it: Ref[T] over a single caller-provided slot, and Slice[T]
// over a caller-provided backing array.
//
// Both are built on the no-op allocation strategy from
// github.com/joshuapare/memkit/alloc, so releasing a container routes through
// Deallocate — which does nothing — and the borrowed memory stays with its
// owner. A Slice can grow, but only by claiming more of the backing array it
// was given; once the true capacity is exhausted, Push fails with
// alloc.ErrAllocFailed exactly as a heap-backed container would report an
// out-of-memory condition.
//
// A container must not outlive the memory it borrows. Go cannot check this at
// compile time, so it is a documented caller obligation.
package owning
