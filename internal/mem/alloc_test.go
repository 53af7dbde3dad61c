package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAlignment(t *testing.T) {
	assert.GreaterOrEqual(t, Alignment, 64)
	assert.Zero(t, Alignment&(Alignment-1), "alignment must be a power of two")
}

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%uintptr(Alignment), "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedInt32(t *testing.T) {
	sizes := []int{1, 2, 15, 16, 17, 100, 1024}

	for _, size := range sizes {
		buf := AllocAlignedInt32(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%uintptr(Alignment), "Address %d should be aligned to %d for size %d", addr, Alignment, size)

		for _, v := range buf {
			assert.Zero(t, v)
		}
	}

	assert.Nil(t, AllocAlignedInt32(0))
	assert.Nil(t, AllocAlignedInt32(-1))
}

func BenchmarkAllocAlignedInt32(b *testing.B) {
	sizes := []int{16, 64, 256, 1024}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAlignedInt32(size)
			}
		})
	}
}
