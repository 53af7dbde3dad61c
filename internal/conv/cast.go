package conv

import (
	"fmt"
	"math"
)

// GrowCapacity returns twice c, or floor when c is zero.
// It fails instead of wrapping when the doubled value does not fit in an int.
func GrowCapacity(c, floor int) (int, error) {
	if c < 0 {
		return 0, fmt.Errorf("capacity overflow: %d cannot be grown (negative)", c)
	}
	if c == 0 {
		return floor, nil
	}
	if c > math.MaxInt/2 {
		return 0, fmt.Errorf("capacity overflow: %d cannot be doubled (too large)", c)
	}
	return c * 2, nil
}

// ByteSize returns n*elemSize as an int64 byte count.
func ByteSize(n, elemSize int) (int64, error) {
	if n < 0 || elemSize < 0 {
		return 0, fmt.Errorf("size overflow: %d elements of %d bytes (negative)", n, elemSize)
	}
	if elemSize != 0 && int64(n) > math.MaxInt64/int64(elemSize) {
		return 0, fmt.Errorf("size overflow: %d elements of %d bytes (too large)", n, elemSize)
	}
	return int64(n) * int64(elemSize), nil
}
