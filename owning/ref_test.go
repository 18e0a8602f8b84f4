package owning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRef_WrapAndGet tests wrapping an initialized slot.
func TestRef_WrapAndGet(t *testing.T) {
	slot := "hello"
	r := NewRef(&slot)

	require.True(t, r.Valid())
	require.NotNil(t, r.Get())
	assert.Equal(t, "hello", *r.Get())
	assert.Same(t, &slot, r.Get(), "Ref must point at the borrowed slot, not a copy")
}

// TestRef_NewRefValue tests writing into the slot on construction.
func TestRef_NewRefValue(t *testing.T) {
	var slot int
	r := NewRefValue(&slot, 41)

	assert.Equal(t, 41, slot, "value should land in the caller's slot")
	r.Set(42)
	assert.Equal(t, 42, slot, "Set should write through to the slot")
}

// TestRef_TakeMovesOnce tests that the value can be moved out exactly once.
func TestRef_TakeMovesOnce(t *testing.T) {
	slot := []byte("payload")
	r := NewRef(&slot)

	v, ok := r.Take()
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), v)
	assert.False(t, r.Valid(), "Take releases the Ref")
	assert.Nil(t, slot, "the slot is semantically empty after Take")

	_, ok = r.Take()
	assert.False(t, ok, "second Take must report no value")
}

// TestRef_ReleaseIdempotent tests Release twice and misuse after release.
func TestRef_ReleaseIdempotent(t *testing.T) {
	slot := 7
	r := NewRef(&slot)

	r.Release()
	assert.NotPanics(t, func() { r.Release() }, "Release must be idempotent")
	assert.False(t, r.Valid())
	assert.Nil(t, r.Get(), "Get after release returns nil")
	assert.Panics(t, func() { r.Set(9) }, "Set after release must panic")
}

// TestRef_SlotSurvivesRelease tests that releasing never frees the slot:
// the caller still owns and can reuse it.
func TestRef_SlotSurvivesRelease(t *testing.T) {
	var slot int
	r := NewRefValue(&slot, 5)
	r.Release()

	slot = 11 // caller's memory, caller's rules
	assert.Equal(t, 11, slot)
}
