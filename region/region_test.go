package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMap_Basic tests mapping, writing, and unmapping a region.
func TestMap_Basic(t *testing.T) {
	r, err := Map(4096)
	require.NoError(t, err, "Map should succeed")
	require.Equal(t, 4096, r.Len())

	b := r.Bytes()
	b[0] = 0xAB
	b[4095] = 0xCD
	assert.Equal(t, byte(0xAB), r.Bytes()[0])
	assert.Equal(t, byte(0xCD), r.Bytes()[4095])

	require.NoError(t, r.Unmap())
}

// TestMap_InvalidSize tests size validation.
func TestMap_InvalidSize(t *testing.T) {
	_, err := Map(0)
	require.Error(t, err)
	_, err = Map(-1)
	require.Error(t, err)
}

// TestRegion_UnmapIdempotent tests that repeated Unmap calls are no-ops.
func TestRegion_UnmapIdempotent(t *testing.T) {
	r, err := Map(1024)
	require.NoError(t, err)

	require.NoError(t, r.Unmap())
	assert.NoError(t, r.Unmap(), "second Unmap must be a no-op")
	assert.Nil(t, r.Bytes(), "Bytes after Unmap returns nil")
	assert.Equal(t, 0, r.Len())
}
