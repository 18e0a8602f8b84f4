package owning

import (
	"unsafe"

	"github.com/joshuapare/memkit/alloc"
)

// Ref is an owning reference to a value living in a caller-provided slot.
// The slot's memory stays with the caller; the Ref owns only the value in it.
// Releasing the Ref routes through the no-op strategy's Deallocate, so the
// slot itself is never freed.
//
// The Ref must not outlive the slot it borrows.
type Ref[T any] struct {
	slot  *T
	a     alloc.Allocator
	valid bool
}

// NewRef wraps an already-initialized slot. The caller asserts the slot holds
// a meaningful T; the Ref takes ownership of that value.
func NewRef[T any](slot *T) *Ref[T] {
	return &Ref[T]{slot: slot, a: alloc.NewNoop(), valid: true}
}

// NewRefValue writes v into slot and wraps it.
func NewRefValue[T any](slot *T, v T) *Ref[T] {
	*slot = v
	return NewRef(slot)
}

// Valid reports whether the Ref still owns its value.
func (r *Ref[T]) Valid() bool { return r.valid }

// Get returns the owned value's address, or nil after release.
func (r *Ref[T]) Get() *T {
	if !r.valid {
		return nil
	}
	return r.slot
}

// Set replaces the owned value. Setting a released Ref panics: the slot no
// longer belongs to it.
func (r *Ref[T]) Set(v T) {
	if !r.valid {
		panic("owning: Set on released Ref")
	}
	*r.slot = v
}

// Take moves the value out and releases the Ref. The second return is false
// if the Ref was already released; the value can be taken exactly once.
func (r *Ref[T]) Take() (T, bool) {
	var zero T
	if !r.valid {
		return zero, false
	}
	v := *r.slot
	*r.slot = zero // the slot is semantically without a value from here on
	r.release()
	return v, true
}

// Release gives the value up without reading it. Idempotent. The borrowed
// slot is untouched apart from being cleared.
func (r *Ref[T]) Release() {
	if !r.valid {
		return
	}
	var zero T
	*r.slot = zero
	r.release()
}

func (r *Ref[T]) release() {
	r.a.Deallocate(unsafe.Pointer(r.slot), alloc.LayoutOf[T]())
	r.valid = false
}
