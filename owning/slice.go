package owning

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/memkit/alloc"
)

// Slice is a growable slice laid over a caller-provided backing array. The
// backing memory stays with the caller; the Slice owns the values in its live
// prefix. All capacity changes run through the allocation strategy: growth
// claims more of the backing array via Grow, Truncate returns claim via
// Shrink, and Release routes through Deallocate. None of these move bytes.
//
// The backing array's length is the hard ceiling. The no-op strategy cannot
// see that ceiling, so Slice enforces it before asking the strategy to grow;
// once it is reached, Push reports alloc.ErrAllocFailed.
//
// A Slice must not outlive its backing array. It is not safe for concurrent
// use.
type Slice[T any] struct {
	ptr     unsafe.Pointer // start of the backing array
	len     int            // live elements
	claim   int            // elements currently claimed from the allocator
	trueCap int            // real element capacity of the backing array
	a       alloc.Allocator
}

// NewSlice lays a Slice over backing, with the first length elements live.
// The caller asserts those elements are initialized; the Slice takes
// ownership of them. The backing array's full length is the growth ceiling.
func NewSlice[T any](backing []T, length int) (*Slice[T], error) {
	if length < 0 || length > len(backing) {
		return nil, fmt.Errorf("%w: length=%d backing=%d", ErrBadLength, length, len(backing))
	}

	a := alloc.NewNoop()
	ptr := unsafe.Pointer(unsafe.SliceData(backing))
	if len(backing) == 0 {
		// Nothing borrowed yet: take the canonical zero-length block so the
		// pointer is non-nil and aligned for T.
		blk, err := a.Allocate(alloc.LayoutOf[T]().ZeroSized())
		if err != nil {
			return nil, err
		}
		ptr = blk.Ptr()
	}

	return &Slice[T]{
		ptr:     ptr,
		len:     length,
		claim:   length,
		trueCap: len(backing),
		a:       a,
	}, nil
}

// Len returns the number of live elements.
func (s *Slice[T]) Len() int { return s.len }

// Cap returns the capacity currently claimed from the allocator. It grows
// toward TrueCap as elements are pushed.
func (s *Slice[T]) Cap() int { return s.claim }

// TrueCap returns the backing array's element capacity, the hard ceiling.
func (s *Slice[T]) TrueCap() int { return s.trueCap }

// Push appends v. When the claimed capacity is full it grows the claim
// through the allocator; once the backing array is exhausted it fails with
// alloc.ErrAllocFailed, which callers should treat as out of memory.
func (s *Slice[T]) Push(v T) error {
	if s.len == s.claim {
		if err := s.grow(); err != nil {
			return err
		}
	}
	*s.at(s.len) = v
	s.len++
	return nil
}

// Pop removes and returns the last element. The vacated slot is cleared so
// the backing array drops its reference to the value.
func (s *Slice[T]) Pop() (T, bool) {
	var zero T
	if s.len == 0 {
		return zero, false
	}
	s.len--
	slot := s.at(s.len)
	v := *slot
	*slot = zero
	return v, true
}

// At returns the address of element i. It panics when i is outside the live
// prefix, matching built-in slice indexing.
func (s *Slice[T]) At(i int) *T {
	if i < 0 || i >= s.len {
		panic(fmt.Sprintf("owning: index %d out of range [0:%d]", i, s.len))
	}
	return s.at(i)
}

// Elems returns the live prefix as an ordinary slice view. The view aliases
// the backing array and is invalidated by Truncate and Release.
func (s *Slice[T]) Elems() []T {
	return unsafe.Slice((*T)(s.ptr), s.len)
}

// Truncate drops elements beyond n and shrinks the claim to n through the
// allocator. Dropped slots are cleared. The claim can grow again later, up
// to TrueCap.
func (s *Slice[T]) Truncate(n int) error {
	if n < 0 || n > s.len {
		return fmt.Errorf("%w: truncate to %d with length %d", ErrOutOfRange, n, s.len)
	}

	newLayout, err := alloc.ArrayLayoutOf[T](n)
	if err != nil {
		return err
	}
	blk, err := s.a.Shrink(s.ptr, s.claimLayout(), newLayout)
	if err != nil {
		return err
	}

	var zero T
	for i := n; i < s.len; i++ {
		*s.at(i) = zero
	}
	s.ptr = blk.Ptr()
	s.len = n
	s.claim = n
	return nil
}

// Release gives up the claim entirely. The backing array is untouched — the
// strategy's Deallocate does nothing — and stays with its owner. Idempotent.
func (s *Slice[T]) Release() {
	if s.claim == 0 && s.len == 0 && s.trueCap == 0 {
		return
	}
	s.a.Deallocate(s.ptr, s.claimLayout())
	s.len = 0
	s.claim = 0
	s.trueCap = 0
}

// grow enlarges the claim, doubling but never past the backing array.
func (s *Slice[T]) grow() error {
	if s.claim >= s.trueCap {
		return fmt.Errorf("owning: backing array exhausted at %d elements: %w", s.trueCap, alloc.ErrAllocFailed)
	}
	newClaim := s.claim * 2
	if newClaim == 0 {
		newClaim = 1
	}
	if newClaim > s.trueCap {
		newClaim = s.trueCap
	}

	newLayout, err := alloc.ArrayLayoutOf[T](newClaim)
	if err != nil {
		return err
	}
	blk, err := s.a.Grow(s.ptr, s.claimLayout(), newLayout)
	if err != nil {
		return err
	}

	s.ptr = blk.Ptr()
	s.claim = newClaim
	return nil
}

// claimLayout returns the layout of the currently claimed capacity. The
// claim never exceeds the backing array's length, so construction cannot
// fail; a failure here is a corrupted Slice.
func (s *Slice[T]) claimLayout() alloc.Layout {
	l, err := alloc.ArrayLayoutOf[T](s.claim)
	if err != nil {
		panic(err)
	}
	return l
}

// at returns the address of element i without bounds checking.
func (s *Slice[T]) at(i int) *T {
	size := alloc.LayoutOf[T]().Size()
	return (*T)(unsafe.Add(s.ptr, uintptr(i)*uintptr(size)))
}
