package alloc

import (
	"fmt"
	"math"
	"unsafe"
)

// MaxAlign is the largest alignment a Layout may describe: 64KiB, comfortably
// past any page size this library will meet. The cap keeps zero-length block
// pointers derivable from real storage.
const MaxAlign = 1 << 16

// Layout describes the shape of a requested or existing memory region:
// a size in bytes and a power-of-two alignment.
type Layout struct {
	size  int
	align int
}

// NewLayout builds a Layout, validating that size is non-negative and align
// is a non-zero power of two no larger than MaxAlign.
func NewLayout(size, align int) (Layout, error) {
	if size < 0 || align <= 0 || align > MaxAlign || align&(align-1) != 0 {
		return Layout{}, fmt.Errorf("%w: size=%d align=%d", ErrBadLayout, size, align)
	}
	return Layout{size: size, align: align}, nil
}

// MustLayout is NewLayout for statically known-good arguments. It panics on
// invalid input.
func MustLayout(size, align int) Layout {
	l, err := NewLayout(size, align)
	if err != nil {
		panic(err)
	}
	return l
}

// LayoutOf derives the layout of a single value of type T.
func LayoutOf[T any]() Layout {
	var v T
	return Layout{size: int(unsafe.Sizeof(v)), align: int(unsafe.Alignof(v))}
}

// ArrayLayoutOf derives the layout of a contiguous array of n values of
// type T. n must be non-negative.
func ArrayLayoutOf[T any](n int) (Layout, error) {
	if n < 0 {
		return Layout{}, fmt.Errorf("%w: array length %d", ErrBadLayout, n)
	}
	elem := LayoutOf[T]()
	if elem.size > 0 && n > math.MaxInt/elem.size {
		return Layout{}, fmt.Errorf("%w: array of %d elements of %d bytes overflows", ErrBadLayout, n, elem.size)
	}
	return Layout{size: elem.size * n, align: elem.align}, nil
}

// ZeroSized returns the layout with its size dropped to zero, keeping the
// alignment. Useful for requesting the canonical empty block.
func (l Layout) ZeroSized() Layout {
	return Layout{size: 0, align: l.align}
}

// Size returns the layout's size in bytes.
func (l Layout) Size() int { return l.size }

// Align returns the layout's alignment in bytes.
func (l Layout) Align() int { return l.align }

// Fits reports whether ptr satisfies the layout's alignment requirement.
// A zero-value Layout (align 0) fits nothing.
func (l Layout) Fits(ptr unsafe.Pointer) bool {
	if l.align <= 0 {
		return false
	}
	return uintptr(ptr)%uintptr(l.align) == 0
}

// String renders the layout for error messages and debugging.
func (l Layout) String() string {
	return fmt.Sprintf("Layout{size: %d, align: %d}", l.size, l.align)
}
