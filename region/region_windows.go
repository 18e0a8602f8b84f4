//go:build windows

package region

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapAnon(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func unmapAnon(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	// MEM_RELEASE requires size 0 and the base address of the reservation.
	return windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE)
}
