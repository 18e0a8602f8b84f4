// Package region provides anonymous, caller-owned scratch regions: memory
// obtained outside any container, suitable for handing to the owning
// containers and the no-op allocation strategy. On platforms with virtual
// memory support the region is a private anonymous mapping and therefore
// page-aligned.
package region

import "fmt"

// Region is a block of caller-owned memory. The caller is responsible for
// unmapping it after every container laid over it has been released.
type Region struct {
	data []byte
}

// Map obtains a region of at least size bytes.
func Map(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("region: size must be positive, got %d", size)
	}
	data, err := mapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("region: map %d bytes: %w", size, err)
	}
	return &Region{data: data}, nil
}

// Bytes returns the region's memory. The slice is invalidated by Unmap.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the region's size in bytes.
func (r *Region) Len() int { return len(r.data) }

// Unmap releases the region. Calling it again is a no-op.
func (r *Region) Unmap() error {
	if r.data == nil {
		return nil
	}
	err := unmapAnon(r.data)
	r.data = nil
	return err
}
