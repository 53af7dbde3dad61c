// Package mem provides memory allocation utilities.
package mem

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Alignment is the byte alignment of every buffer returned by this package.
// It is the larger of 64 bytes and the CPU cache line size.
var Alignment = max(64, int(unsafe.Sizeof(cpu.CacheLinePad{})))

// AllocAligned allocates a zeroed byte slice of the given size whose first
// byte sits on an Alignment boundary.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	mask := uintptr(Alignment - 1)
	offset := int((uintptr(Alignment) - (addr & mask)) & mask)

	return buf[offset : offset+size : offset+size]
}

// AllocAlignedInt32 allocates a zeroed int32 slice of n elements with
// Alignment-byte alignment. len and cap of the result are both n.
func AllocAlignedInt32(n int) []int32 {
	if n <= 0 {
		return nil
	}

	byteSlice := AllocAligned(n * 4)

	// Alignment is a multiple of 4, so the cast is safe.
	ptr := unsafe.Pointer(&byteSlice[0])  //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*int32)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}
