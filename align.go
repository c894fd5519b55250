package arena

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// DefaultAlignment is the alignment granularity used when an arena is
// created with a non-positive alignment or left as a zero value.
const DefaultAlignment = 4

// alignUp rounds v up to the next multiple of align, which must be a power
// of two.
func alignUp[T constraints.Integer](v, align T) T {
	mask := align - 1
	return (v + mask) &^ mask
}

func isPowerOf2[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

func isAligned[T constraints.Integer](v, align T) bool {
	return v&(align-1) == 0
}

func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
